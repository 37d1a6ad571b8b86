package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/fieldsync/internal/server/handlers"
	"github.com/iudanet/fieldsync/internal/server/jwt"
)

//go:generate moq -out validator_mock.go . TokenValidator

// TokenValidator проверяет токен устройства
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*jwt.Claims, error)
}

var _ TokenValidator = (*jwt.Issuer)(nil)

// AuthMiddleware создает middleware для проверки Bearer токена.
// Пути из openPaths проходят без токена.
func AuthMiddleware(logger *slog.Logger, validator TokenValidator, openPaths ...string) func(http.Handler) http.Handler {
	open := make(map[string]bool, len(openPaths))
	for _, p := range openPaths {
		open[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if open[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.Warn("Missing or malformed Authorization header", "path", r.URL.Path)
				handlers.WriteError(w, logger, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			claims, err := validator.Validate(r.Context(), parts[1])
			if err != nil {
				if errors.Is(err, jwt.ErrTokenRevoked) {
					logger.Warn("Revoked token used", "path", r.URL.Path)
				} else {
					logger.Warn("Invalid token", "error", err)
				}
				if !errors.Is(err, jwt.ErrInvalidToken) && !errors.Is(err, jwt.ErrTokenRevoked) {
					handlers.WriteError(w, logger, http.StatusInternalServerError, "internal", "failed to check token")
					return
				}
				handlers.WriteError(w, logger, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}

			logger.Debug("Device authenticated", "device", claims.Device)
			next.ServeHTTP(w, r.WithContext(handlers.WithDevice(r.Context(), claims.Device)))
		})
	}
}
