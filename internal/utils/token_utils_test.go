package utils_test

import (
	"testing"
	"time"

	"github.com/gamehive/accounts_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "accounts-backend-test"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", testSecret, -time.Minute, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWTTampered(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token+"x", testSecret)
	assert.Error(t, err)
}

func TestGenerateJWTUniquePerIssue(t *testing.T) {
	first, err := utils.GenerateJWT("user-1", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	second, err := utils.GenerateJWT("user-1", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	// The jti claim keeps tokens distinct even when issued within the same
	// second for the same user.
	assert.NotEqual(t, first, second)
}
