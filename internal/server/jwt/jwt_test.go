package jwt

import (
	"context"
	"sync"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/server/storage"
)

// memTokens хранилище токенов поверх TokenStorageMock
func memTokens() *storage.TokenStorageMock {
	var mu sync.Mutex
	byID := map[string]storage.DeviceToken{}
	return &storage.TokenStorageMock{
		SaveTokenFunc: func(ctx context.Context, token storage.DeviceToken) error {
			mu.Lock()
			defer mu.Unlock()
			byID[token.ID] = token
			return nil
		},
		GetTokenFunc: func(ctx context.Context, id string) (storage.DeviceToken, error) {
			mu.Lock()
			defer mu.Unlock()
			tok, ok := byID[id]
			if !ok {
				return storage.DeviceToken{}, storage.ErrTokenNotFound
			}
			return tok, nil
		},
		RevokeTokenFunc: func(ctx context.Context, id string, at time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			tok, ok := byID[id]
			if !ok {
				return storage.ErrTokenNotFound
			}
			tok.RevokedAt = &at
			byID[id] = tok
			return nil
		},
	}
}

func newTestIssuer(tokens storage.TokenStorage) (*Issuer, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	return NewIssuer("test-secret", 24*time.Hour, tokens, clock), clock
}

func TestIssuer_IssueAndValidate(t *testing.T) {
	ctx := context.Background()
	tokens := memTokens()
	issuer, _ := newTestIssuer(tokens)

	signed, record, err := issuer.Issue(ctx, "tablet-07")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.Equal(t, "tablet-07", record.Device)
	assert.Equal(t, 24*time.Hour, record.ExpiresAt.Sub(record.CreatedAt))
	require.Len(t, tokens.SaveTokenCalls(), 1)

	claims, err := issuer.Validate(ctx, signed)
	require.NoError(t, err)
	assert.Equal(t, "tablet-07", claims.Device)
	assert.Equal(t, record.ID, claims.ID)
}

func TestIssuer_EmptyDevice(t *testing.T) {
	issuer, _ := newTestIssuer(memTokens())
	_, _, err := issuer.Issue(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyDevice)
}

func TestIssuer_Expired(t *testing.T) {
	ctx := context.Background()
	issuer, clock := newTestIssuer(memTokens())

	signed, _, err := issuer.Issue(ctx, "tablet-07")
	require.NoError(t, err)

	clock.Advance(25 * time.Hour)
	_, err = issuer.Validate(ctx, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Revoked(t *testing.T) {
	ctx := context.Background()
	issuer, _ := newTestIssuer(memTokens())

	signed, record, err := issuer.Issue(ctx, "tablet-07")
	require.NoError(t, err)
	require.NoError(t, issuer.Revoke(ctx, record.ID))

	_, err = issuer.Validate(ctx, signed)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestIssuer_Rejects(t *testing.T) {
	ctx := context.Background()
	tokens := memTokens()
	issuer, _ := newTestIssuer(tokens)

	other := NewIssuer("another-secret", time.Hour, memTokens(), clockwork.NewFakeClockAt(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)))
	foreign, _, err := other.Issue(ctx, "tablet-07")
	require.NoError(t, err)

	// подписан верным ключом, но jti не выпускался этим порталом
	unknown, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{
		Device: "tablet-07",
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "never-issued",
			Issuer:    tokenIssuer,
			ExpiresAt: gojwt.NewNumericDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: foreign},
		{name: "unknown jti", token: unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Validate(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
