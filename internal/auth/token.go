// Package auth implements the admin session credential: an HMAC-signed token
// carried in a cookie. Tokens never expire; the session ends when the cookie
// is cleared.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const role = "admin"

// CookieName is the cookie the HTTP layer reads the token from.
const CookieName = "admin_session"

// CreateToken issues a session token: base64("admin:<unix-ts>:<hex hmac>")
// where the HMAC-SHA256 is computed over "admin:<unix-ts>".
func CreateToken(secret []byte) string {
	payload := fmt.Sprintf("%s:%d", role, time.Now().Unix())
	return base64.StdEncoding.EncodeToString([]byte(payload + ":" + sign(secret, payload)))
}

// VerifyToken reports whether token was issued by CreateToken with the same
// secret. The signature comparison is constant-time.
func VerifyToken(secret []byte, token string) bool {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 || parts[0] != role {
		return false
	}
	expected := sign(secret, parts[0]+":"+parts[1])
	return subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) == 1
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
