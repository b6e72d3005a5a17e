package utils

import (
	"testing"
	"time"

	"meetsync/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	tokenString, err := GenerateToken("user-42", "user@example.com", time.Hour)
	require.NoError(t, err)

	token, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	sub, err := ExtractIDFromToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	tokenString, err := GenerateToken("user-42", "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	tokenString, err := GenerateToken("user-42", "user@example.com", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestExtractIDFromTokenRejectsGarbage(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-token")
	assert.Error(t, err)
}
