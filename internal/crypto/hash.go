// Package crypto implements the password digest used by the auth service.
//
// The digest is a plain unsalted SHA-256 hex string. That is deliberately
// weak and deliberately kept: stored credentials from existing deployments
// must keep verifying, so the algorithm and format are pinned. Two users
// with the same password produce the same digest.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of a plaintext
// password. Deterministic: same input, same output.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether plaintext hashes to storedDigest. An
// empty stored digest never matches.
func VerifyPassword(plaintext, storedDigest string) bool {
	if storedDigest == "" {
		return false
	}
	return HashPassword(plaintext) == storedDigest
}
