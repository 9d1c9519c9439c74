// Package crypto holds the password digest used by the account service.
package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of the password. Stored hashes
// are tied to this exact format, so changing the digest invalidates every
// existing account.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password digests to hash.
func VerifyPassword(hash, password string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(computed)) == 1
}
