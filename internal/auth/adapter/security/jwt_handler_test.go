package security_test

import (
	"context"
	"testing"
	"time"

	"travel-journal/internal/auth/adapter/security"
	"travel-journal/internal/auth/config"
	"travel-journal/internal/auth/domain/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-handler-tests"

func newTestService(t *testing.T) *security.JWTokenService {
	t.Helper()
	svc, err := security.NewJWTokenService(&config.Config{
		JWTSecretKey:   testSecret,
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 24 * time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestNewJWTokenService_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"empty secret", &config.Config{JWTIssuer: "i", AccessTokenTTL: time.Hour}},
		{"empty issuer", &config.Config{JWTSecretKey: "k", AccessTokenTTL: time.Hour}},
		{"zero ttl", &config.Config{JWTSecretKey: "k", JWTIssuer: "i"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := security.NewJWTokenService(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "507f1f77bcf86cd799439011", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "test-issuer", claims.Issuer)

	// The validity window is fixed at the configured TTL.
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(t)

	// Sign a token whose validity window has already closed.
	now := time.Now().Add(-48 * time.Hour)
	claims := &repository.Claims{
		UserID:   "507f1f77bcf86cd799439011",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "test-issuer",
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), expired)
	assert.ErrorIs(t, err, security.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	other, err := security.NewJWTokenService(&config.Config{
		JWTSecretKey:   "a-completely-different-secret",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 24 * time.Hour,
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(context.Background(), "507f1f77bcf86cd799439011", "alice")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, security.ErrTokenSignatureInvalid)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := newTestService(t)

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(context.Background(), bad)
		assert.ErrorIs(t, err, security.ErrTokenInvalid, "input %q", bad)
	}
}
