package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	tokenService := NewTokenService("test-secret-32-characters-long!!", 24*time.Hour)

	token, err := tokenService.GenerateToken("phone")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "phone", claims.Device)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	minter := NewTokenService("secret-one", 24*time.Hour)
	validator := NewTokenService("secret-two", 24*time.Hour)

	token, err := minter.GenerateToken("phone")
	assert.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	tokenService := NewTokenService("test-secret", -time.Hour)

	token, err := tokenService.GenerateToken("phone")
	assert.NoError(t, err)

	_, err = tokenService.ValidateToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	tokenService := NewTokenService("test-secret", 24*time.Hour)

	_, err := tokenService.ValidateToken("not-a-jwt")
	assert.Equal(t, ErrInvalidToken, err)
}
