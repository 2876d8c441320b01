package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRefreshToken returns an opaque token for long-lived sessions.
func MakeRefreshToken() string {
	randomBytes := make([]byte, 32)
	rand.Read(randomBytes)

	return hex.EncodeToString(randomBytes)
}
