package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN       = 16384
	scryptR       = 8
	scryptP       = 1
	derivedKeyLen = 64
	saltLen       = 16
)

// HashPassword derives a scrypt key from the password with a fresh random
// salt and returns it as "hex(key).hex(salt)".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, derivedKeyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// VerifyPassword re-derives the supplied password with the stored salt and
// compares in constant time. A malformed stored value (missing separator,
// bad hex, empty parts) is a non-match, never an error.
func VerifyPassword(password string, stored string) bool {
	parts := strings.Split(stored, ".")
	if len(parts) != 2 {
		return false
	}

	storedKey, err := hex.DecodeString(parts[0])
	if err != nil || len(storedKey) == 0 {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return false
	}

	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, len(storedKey))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(derived, storedKey) == 1
}
