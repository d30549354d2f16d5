package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// NewSessionToken returns an opaque token suitable for a session cookie.
func NewSessionToken() (string, error) {
	const tokenLength = 32
	tokenBytes := make([]byte, tokenLength)
	_, err := rand.Read(tokenBytes)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}
