package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	tok := CreateToken(secret)
	assert.True(t, VerifyToken(secret, tok))
}

func TestTokenWrongSecret(t *testing.T) {
	tok := CreateToken([]byte("secret-a"))
	assert.False(t, VerifyToken([]byte("secret-b"), tok))
}

func TestTokenTampered(t *testing.T) {
	secret := []byte("test-secret")
	tok := CreateToken(secret)

	raw, err := base64.StdEncoding.DecodeString(tok)
	require.NoError(t, err)
	forged := base64.StdEncoding.EncodeToString(append([]byte("x"), raw[1:]...))
	assert.False(t, VerifyToken(secret, forged))
}

func TestTokenGarbage(t *testing.T) {
	secret := []byte("test-secret")
	assert.False(t, VerifyToken(secret, ""))
	assert.False(t, VerifyToken(secret, "not-base64!!!"))
	assert.False(t, VerifyToken(secret, base64.StdEncoding.EncodeToString([]byte("user:123:deadbeef"))))
	assert.False(t, VerifyToken(secret, base64.StdEncoding.EncodeToString([]byte("admin:123"))))
}
