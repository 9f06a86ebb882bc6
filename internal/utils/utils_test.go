package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumia12/StockpileDS/config"
)

func init() {
	config.AppConfig = &config.Config{
		Server: config.ServerConfig{
			JWTSecret:          "test-secret",
			JWTExpirationHours: 1,
		},
	}
}

func TestHashPasswordVerifies(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	// bcrypt output is salted, so the plaintext never appears.
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.NotContains(t, hash, "admin123")

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("admin124", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("admin123")
	require.NoError(t, err)
	second, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "manager", "manager")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "manager", claims.Username)
	assert.Equal(t, "manager", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)

	token, err := GenerateToken(1, "admin", "admin")
	require.NoError(t, err)
	_, err = ValidateToken(token + "tampered")
	assert.Error(t, err)
}
