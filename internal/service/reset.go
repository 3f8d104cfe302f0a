package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// ResetTokenTTL is how long an issued reset link stays valid.
	ResetTokenTTL = time.Hour

	resetTokenBytes = 32
)

// GenerateResetToken returns a random hex secret for the reset link and the digest to persist.
func GenerateResetToken() (secret, digest string, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	secret = hex.EncodeToString(buf)
	return secret, HashResetToken(secret), nil
}

// HashResetToken returns the hex SHA-256 digest of a reset secret.
func HashResetToken(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
