package auth

import (
	"testing"
	"time"

	"curator/config"
	"curator/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:    "test_access_secret_key_very_long_for_testing",
			AccessTTL: time.Hour,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	token, err := jwtService.GenerateToken("operator@example.com", []string{service.RoleCurator})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator@example.com", claims.Subject)
	assert.Equal(t, []string{service.RoleCurator}, claims.Roles)
	assert.True(t, claims.HasRole(service.RoleCurator))
	assert.False(t, claims.HasRole("admin"))
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	jwtService.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := jwtService.GenerateToken("operator@example.com", nil)
	require.NoError(t, err)

	jwtService.now = time.Now
	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	other := newTestJWTService(t)
	other.accessSecret = []byte("another_secret_key_that_is_long_enough")

	token, err := other.GenerateToken("operator@example.com", nil)
	require.NoError(t, err)

	_, err = newTestJWTService(t).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_EmptySubject(t *testing.T) {
	_, err := newTestJWTService(t).GenerateToken("", nil)

	assert.Error(t, err)
}
