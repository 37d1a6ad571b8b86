package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized портал отклонил токен (401)
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden у токена нет прав на операцию (403)
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound эндпоинт или ресурс не найден (404)
	ErrNotFound = errors.New("not found")
	// ErrRejected портал ответил 2xx, но с success=false
	ErrRejected = errors.New("rejected by portal")
	// ErrPullFailed не удалось получить ни пользователей, ни тикеты
	ErrPullFailed = errors.New("pull failed")
)

// HTTPError ответ портала с кодом вне 2xx
type HTTPError struct {
	URL        string
	Message    string
	StatusCode int
}

// NewHTTPError создает HTTPError
func NewHTTPError(statusCode int, url, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, URL: url, Message: message}
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d) from %s: %s", e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

// Unwrap сопоставляет известные коды с sentinel-ошибками пакета
func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}
