package livesync

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultPollInterval           = 5 * time.Second
	DefaultRequestTimeout         = 5 * time.Second
	DefaultMaxBackoff             = time.Minute
	DefaultMaxConsecutiveFailures = 3

	// PlaceholderEndpoint адрес по умолчанию, который означает "портал не настроен"
	PlaceholderEndpoint = "http://localhost:3000"
)

// ErrInvalidConfig возвращается при недопустимых параметрах планировщика
var ErrInvalidConfig = errors.New("invalid live sync config")

// Config параметры планировщика живой синхронизации
type Config struct {
	PollInterval           time.Duration // период между циклами
	RequestTimeout         time.Duration // таймаут одного сетевого вызова
	MaxBackoff             time.Duration // верхняя граница задержки при Backoff
	MaxConsecutiveFailures int           // порог отключения при AutoReconnect=false
	Enabled                bool
	AutoReconnect          bool // не отключаться при недоступности портала
	Backoff                bool // увеличивать задержку после неудач
}

// DefaultConfig возвращает конфигурацию, с которой работает приложение
func DefaultConfig() Config {
	return Config{
		PollInterval:           DefaultPollInterval,
		RequestTimeout:         DefaultRequestTimeout,
		MaxBackoff:             DefaultMaxBackoff,
		MaxConsecutiveFailures: DefaultMaxConsecutiveFailures,
		AutoReconnect:          true,
	}
}

// withDefaults подставляет значения по умолчанию вместо нулевых длительностей и порогов
func (c Config) withDefaults() Config {
	if c.PollInterval == 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.MaxBackoff == 0 {
		c.MaxBackoff = DefaultMaxBackoff
	}
	if c.MaxConsecutiveFailures == 0 {
		c.MaxConsecutiveFailures = DefaultMaxConsecutiveFailures
	}
	return c
}

// Validate проверяет конфигурацию после подстановки значений по умолчанию
func (c Config) Validate() error {
	c = c.withDefaults()
	switch {
	case c.PollInterval < 0:
		return fmt.Errorf("%w: poll interval must be positive, got %s", ErrInvalidConfig, c.PollInterval)
	case c.RequestTimeout < 0:
		return fmt.Errorf("%w: request timeout must be positive, got %s", ErrInvalidConfig, c.RequestTimeout)
	case c.MaxConsecutiveFailures < 0:
		return fmt.Errorf("%w: max consecutive failures must be positive, got %d", ErrInvalidConfig, c.MaxConsecutiveFailures)
	case c.Backoff && c.MaxBackoff < c.PollInterval:
		return fmt.Errorf("%w: max backoff %s is shorter than poll interval %s", ErrInvalidConfig, c.MaxBackoff, c.PollInterval)
	}
	return nil
}

// ConfigPatch частичное обновление конфигурации, nil поля не меняются
type ConfigPatch struct {
	Enabled                *bool
	PollInterval           *time.Duration
	RequestTimeout         *time.Duration
	MaxBackoff             *time.Duration
	MaxConsecutiveFailures *int
	AutoReconnect          *bool
	Backoff                *bool
}

// Apply возвращает конфигурацию с примененным патчем
func (c Config) Apply(p ConfigPatch) Config {
	if p.Enabled != nil {
		c.Enabled = *p.Enabled
	}
	if p.PollInterval != nil {
		c.PollInterval = *p.PollInterval
	}
	if p.RequestTimeout != nil {
		c.RequestTimeout = *p.RequestTimeout
	}
	if p.MaxBackoff != nil {
		c.MaxBackoff = *p.MaxBackoff
	}
	if p.MaxConsecutiveFailures != nil {
		c.MaxConsecutiveFailures = *p.MaxConsecutiveFailures
	}
	if p.AutoReconnect != nil {
		c.AutoReconnect = *p.AutoReconnect
	}
	if p.Backoff != nil {
		c.Backoff = *p.Backoff
	}
	return c
}

// IsConfiguredEndpoint сообщает, указан ли реальный адрес портала
func IsConfiguredEndpoint(url string) bool {
	return url != "" && url != PlaceholderEndpoint && url != PlaceholderEndpoint+"/"
}
