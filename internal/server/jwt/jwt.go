// Package jwt выпускает и проверяет токены устройств для доступа к порталу.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/fieldsync/internal/server/storage"
)

const tokenIssuer = "fieldsync-portal"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
	ErrEmptyDevice  = errors.New("device name is required")
)

// Claims содержимое токена устройства. ID (jti) совпадает с записью в TokenStorage.
type Claims struct {
	Device string `json:"device"`
	gojwt.RegisteredClaims
}

// Issuer выпускает токены и проверяет их подпись, срок и отзыв
type Issuer struct {
	tokens storage.TokenStorage
	clock  clockwork.Clock
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer. clock may be nil.
func NewIssuer(secret string, ttl time.Duration, tokens storage.TokenStorage, clock clockwork.Clock) *Issuer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Issuer{
		tokens: tokens,
		clock:  clock,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue создает подписанный токен для устройства и сохраняет его jti
func (i *Issuer) Issue(ctx context.Context, device string) (string, storage.DeviceToken, error) {
	if device == "" {
		return "", storage.DeviceToken{}, ErrEmptyDevice
	}

	now := i.clock.Now().UTC().Truncate(time.Second)
	record := storage.DeviceToken{
		ID:        uuid.NewString(),
		Device:    device,
		CreatedAt: now,
		ExpiresAt: now.Add(i.ttl),
	}

	claims := Claims{
		Device: device,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        record.ID,
			Issuer:    tokenIssuer,
			Subject:   device,
			IssuedAt:  gojwt.NewNumericDate(now),
			NotBefore: gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(record.ExpiresAt),
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", storage.DeviceToken{}, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := i.tokens.SaveToken(ctx, record); err != nil {
		return "", storage.DeviceToken{}, err
	}

	return signed, record, nil
}

// Validate проверяет подпись и срок токена, затем его отзыв в хранилище
func (i *Issuer) Validate(ctx context.Context, token string) (*Claims, error) {
	claims := &Claims{}
	_, err := gojwt.ParseWithClaims(token, claims, func(t *gojwt.Token) (any, error) {
		return i.secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(tokenIssuer),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	record, err := i.tokens.GetToken(ctx, claims.ID)
	if errors.Is(err, storage.ErrTokenNotFound) {
		return nil, fmt.Errorf("%w: unknown token id", ErrInvalidToken)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check token: %w", err)
	}
	if record.Revoked() {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke отзывает токен по jti
func (i *Issuer) Revoke(ctx context.Context, id string) error {
	return i.tokens.RevokeToken(ctx, id, i.clock.Now().UTC())
}
