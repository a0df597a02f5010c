package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "rudo@example.com", "Rudo")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "rudo@example.com", claims.Email)
	assert.Equal(t, "Rudo", claims.Name)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	prev := tokenTTL
	t.Cleanup(func() { tokenTTL = prev })

	tokenTTL = -time.Minute
	token, err := GenerateToken(1, "a@b.co", "A")
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hashed)
	assert.True(t, CheckPassword(hashed, "secret1"))
	assert.False(t, CheckPassword(hashed, "secret2"))
}
