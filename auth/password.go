// Package auth covers credential hashing and session token minting.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Stored hashes look like "pbkdf2:sha256:260000$<salt>$<key>" with the salt
// and derived key base64-encoded. The iteration count travels with the hash
// so it can be raised later without invalidating existing accounts.
const (
	hashMethod = "pbkdf2:sha256"
	iterations = 260000
	saltLength = 16
	keyLength  = 32
)

func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	return fmt.Sprintf("%s:%d$%s$%s",
		hashMethod,
		iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether password matches the stored encoded hash.
// A malformed stored hash is an error, not a mismatch.
func VerifyPassword(encoded, password string) (bool, error) {
	rest, ok := strings.CutPrefix(encoded, hashMethod+":")
	if !ok {
		return false, fmt.Errorf("unsupported hash method in %q", encoded)
	}

	parts := strings.Split(rest, "$")
	if len(parts) != 3 {
		return false, fmt.Errorf("malformed password hash")
	}

	iter, err := strconv.Atoi(parts[0])
	if err != nil || iter <= 0 {
		return false, fmt.Errorf("malformed iteration count in password hash")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("malformed salt in password hash")
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false, fmt.Errorf("malformed key in password hash")
	}

	got := pbkdf2.Key([]byte(password), salt, iter, len(want), sha256.New)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
