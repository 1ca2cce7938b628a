package jwt

import (
	"FoodShare-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token := svc.GenerateTokenUser(42, "a@x.com")
	require.NotEmpty(t, token)

	userID, email, err := svc.GetUserByToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "a@x.com", email)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	_, _, err := svc.GetUserByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateTokenSignedWithOtherSecret(t *testing.T) {
	issuer := NewJWTService("secret-one")
	verifier := NewJWTService("secret-two")

	token := issuer.GenerateTokenUser(1, "a@x.com")

	_, _, err := verifier.GetUserByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
