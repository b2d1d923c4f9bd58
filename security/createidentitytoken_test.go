package security

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIdentityToken(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")
	base64Secret := base64.StdEncoding.EncodeToString(secret)

	tokenStr, err := CreateIdentityToken(&Identity{
		UserID:     "worker-1",
		UniqueName: "Dana Ruiz",
		Email:      "dana@shiftclock.app",
		Permission: "USER",
	}, base64Secret, 3600)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "worker-1", claims["nameid"])
	assert.Equal(t, "Dana Ruiz", claims["unique_name"])
	assert.Equal(t, "USER", claims["permission"])
	assert.Equal(t, "shiftclock", claims["iss"])
}

func TestCreateIdentityTokenBadSecret(t *testing.T) {
	_, err := CreateIdentityToken(&Identity{UserID: "worker-1"}, "not base64!!!", 60)
	assert.Error(t, err)
}
