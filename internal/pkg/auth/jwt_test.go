// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/logistics-backend/internal/config"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Logistics Backend"},
		JWT: config.JWTConfig{
			Secret:             secret,
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret-at-least-32-characters!!"))

	token, err := m.GenerateAccessToken("u1", "khotruong", "warehouse_manager")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "khotruong", claims.Username)
	assert.Equal(t, "warehouse_manager", claims.Role)
	assert.Equal(t, "access", claims.TokenType)
}

func TestRefreshTokenCarriesSessionID(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret-at-least-32-characters!!"))

	token, id, err := m.GenerateRefreshToken("u1", "khotruong")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.ID)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret-at-least-32-characters!!"))

	access, err := m.GenerateAccessToken("u1", "admin", "admin")
	require.NoError(t, err)
	refresh, _, err := m.GenerateRefreshToken("u1", "admin")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)
	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret-at-least-32-characters!!"))
	other := NewJWTManager(testConfig("another-secret-also-32-characters!!!"))

	token, err := m.GenerateAccessToken("u1", "admin", "admin")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader("abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}

func TestPasswordManager(t *testing.T) {
	m := NewPasswordManager(&config.Config{Security: config.SecurityConfig{BcryptCost: 4}})

	hash, err := m.HashPassword("kho123")
	require.NoError(t, err)
	assert.NoError(t, m.VerifyPassword("kho123", hash))
	assert.Error(t, m.VerifyPassword("wrong", hash))

	_, err = m.HashPassword("abcd")
	assert.Error(t, err, "passwords shorter than five characters are rejected")
}
