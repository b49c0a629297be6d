package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-secret"))
	require.NoError(t, err)
	return token
}

func TestParseIdentityWithoutKnowingTheSecret(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"id":   "u1",
		"name": "Amina",
		"role": "farmer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	identity, err := ParseIdentity(token)
	require.NoError(t, err)

	assert.Equal(t, "u1", identity.ID)
	assert.Equal(t, "Amina", identity.Name)
	assert.Equal(t, "farmer", identity.Role)
	assert.False(t, identity.Expired())
}

func TestParseIdentityRejectsGarbage(t *testing.T) {
	_, err := ParseIdentity("not-a-token")
	assert.Error(t, err)
}

func TestParseIdentityRequiresUserID(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"name": "NoID"})

	_, err := ParseIdentity(token)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"id":  "u1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	identity, err := ParseIdentity(token)
	require.NoError(t, err)
	assert.True(t, identity.Expired())
}

func TestTokenWithoutExpiryNeverExpiresLocally(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"id": "u1"})

	identity, err := ParseIdentity(token)
	require.NoError(t, err)
	assert.False(t, identity.Expired())
}
