package helper_test

import (
	"testing"
	"time"

	"github.com/BrickByte/lms_service/internal/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	auth := helper.SetupAuth("test-secret")

	token, err := auth.GenerateToken(42, "jane@x.com", "MANAGER")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.Equal(t, "MANAGER", claims.Role)
	assert.Greater(t, claims.Expiry, float64(time.Now().Unix()))
}

func TestGenerateToken_MissingInputs(t *testing.T) {
	auth := helper.SetupAuth("test-secret")

	_, err := auth.GenerateToken(0, "jane@x.com", "")
	assert.Error(t, err)

	_, err = auth.GenerateToken(1, "", "")
	assert.Error(t, err)
}

func TestVerifyToken_UniformFailures(t *testing.T) {
	auth := helper.SetupAuth("test-secret")

	valid, err := auth.GenerateToken(1, "jane@x.com", "")
	require.NoError(t, err)

	expired := auth
	expired.TokenTTL = -time.Minute
	expiredToken, err := expired.GenerateToken(1, "jane@x.com", "")
	require.NoError(t, err)

	otherSecret := helper.SetupAuth("another-secret")
	tamperedToken, err := otherSecret.GenerateToken(1, "jane@x.com", "")
	require.NoError(t, err)

	cases := map[string]string{
		"empty":     "",
		"garbage":   "not-a-jwt",
		"expired":   expiredToken,
		"tampered":  tamperedToken,
		"truncated": valid[:len(valid)-5],
	}

	for name, tok := range cases {
		_, err := auth.VerifyToken(tok)
		// every failure mode must collapse to the same error
		assert.ErrorIs(t, err, helper.ErrInvalidToken, name)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	auth := helper.SetupAuth("test-secret")

	hash, err := auth.HashPassword("password1")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", hash)

	assert.NoError(t, auth.VerifyPassword("password1", hash))
	assert.Error(t, auth.VerifyPassword("wrongpass", hash))
}

func TestMintResetSecret(t *testing.T) {
	plain, hash, err := helper.MintResetSecret()
	require.NoError(t, err)

	assert.Len(t, plain, 40) // 20 random bytes, hex encoded
	assert.NotEqual(t, plain, hash)
	assert.Equal(t, hash, helper.HashResetSecret(plain))

	plain2, hash2, err := helper.MintResetSecret()
	require.NoError(t, err)
	assert.NotEqual(t, plain, plain2)
	assert.NotEqual(t, hash, hash2)
}
