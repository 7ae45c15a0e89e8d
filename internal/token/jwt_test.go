package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	manager := NewJWT("test-secret")
	userID := uuid.New()

	tokenString, err := manager.GenerateSessionToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsed, err := manager.ParseSessionToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWT_WrongSecret(t *testing.T) {
	tokenString, err := NewJWT("secret-one").GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("secret-two").ParseSessionToken(tokenString)
	assert.Error(t, err)
}

func TestJWT_Garbage(t *testing.T) {
	_, err := NewJWT("secret").ParseSessionToken("not-a-token")
	assert.Error(t, err)
}
