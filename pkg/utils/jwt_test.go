package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken_RoundTrip(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateAdminToken(secret, "admin", TokenDuration)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAdminToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TokenDuration), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateToken_Structure(t *testing.T) {
	token, err := GenerateAdminToken("test-secret-key", "admin", TokenDuration)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)
	for _, part := range parts {
		assert.NotContains(t, part, "=")
		assert.NotContains(t, part, "+")
		assert.NotContains(t, part, "/")
	}
}

func TestValidateToken_TamperDetection(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateAdminToken(secret, "admin", TokenDuration)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	for i := range parts {
		tampered := make([]string, 3)
		copy(tampered, parts)

		flipped := []byte(tampered[i])
		if flipped[0] == 'A' {
			flipped[0] = 'B'
		} else {
			flipped[0] = 'A'
		}
		tampered[i] = string(flipped)

		_, err := ValidateAdminToken(secret, strings.Join(tampered, "."))
		assert.Error(t, err, "tampering part %d must invalidate the token", i)
	}
}

func TestValidateToken_WrongPartCount(t *testing.T) {
	_, err := ValidateAdminToken("test-secret-key", "only.two")
	assert.Error(t, err)

	_, err = ValidateAdminToken("test-secret-key", "not-a-token")
	assert.Error(t, err)

	_, err = ValidateAdminToken("test-secret-key", "")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateAdminToken(secret, "admin", -time.Second)
	require.NoError(t, err)

	_, err = ValidateAdminToken(secret, token)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateAdminToken("secret-one", "admin", TokenDuration)
	require.NoError(t, err)

	_, err = ValidateAdminToken("secret-two", token)
	assert.Error(t, err)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	_, err := GenerateAdminToken("", "admin", TokenDuration)
	assert.Error(t, err)
}

func TestValidateToken_MissingSecret(t *testing.T) {
	token, err := GenerateAdminToken("test-secret-key", "admin", TokenDuration)
	require.NoError(t, err)

	_, err = ValidateAdminToken("", token)
	assert.Error(t, err)
}
