// Package handlers HTTP обработчики API портала.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/fieldsync/pkg/api"
)

// MaxRequestBodySize ограничение тела запроса синхронизации
const MaxRequestBodySize = 10 << 20

// contextKey тип для ключей контекста
type contextKey string

// DeviceKey ключ устройства из токена, устанавливается AuthMiddleware
const DeviceKey contextKey = "device"

// WithDevice кладет имя устройства в контекст
func WithDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, DeviceKey, device)
}

// GetDevice извлекает имя устройства из контекста запроса
func GetDevice(ctx context.Context) string {
	device, _ := ctx.Value(DeviceKey).(string)
	return device
}

var errEmptyBody = errors.New("request body is empty")

// WriteJSON отправляет JSON ответ
func WriteJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// WriteError отправляет api.ErrorResponse
func WriteError(w http.ResponseWriter, logger *slog.Logger, status int, code, message string) {
	WriteJSON(w, logger, status, api.ErrorResponse{
		Success: false,
		Error:   code,
		Message: message,
	})
}

// decodeJSON читает тело запроса с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errEmptyBody
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// badRequest отвечает 400 или 413 в зависимости от ошибки чтения тела
func badRequest(w http.ResponseWriter, logger *slog.Logger, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteError(w, logger, http.StatusRequestEntityTooLarge, "too_large", "request body is too large")
		return
	}
	WriteError(w, logger, http.StatusBadRequest, "bad_request", err.Error())
}
