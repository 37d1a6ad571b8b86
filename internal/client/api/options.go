package api

import (
	"log/slog"
	"net/http"
	"time"
)

// Option настраивает Client
type Option func(*Client)

// RequestDecorator дополняет исходящий запрос (заголовки, трассировка)
type RequestDecorator func(req *http.Request)

// WithHTTPClient подменяет http.Client (например, в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout задает общий таймаут HTTP клиента.
// Планировщик дополнительно ограничивает каждый вызов через context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithBearerToken добавляет заголовок Authorization ко всем запросам
func WithBearerToken(token string) Option {
	return func(c *Client) {
		if token == "" {
			return
		}
		c.decorators = append(c.decorators, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		})
	}
}

// WithRequestDecorator добавляет произвольный декоратор запросов
func WithRequestDecorator(d RequestDecorator) Option {
	return func(c *Client) {
		if d != nil {
			c.decorators = append(c.decorators, d)
		}
	}
}

// WithUserAgent задает заголовок User-Agent
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger задает логгер для предупреждений о пропущенных записях
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger.With("component", "api")
		}
	}
}
