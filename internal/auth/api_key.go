package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoAPIKey means the request carries no ApiKey credential. Callers
// should treat the request as anonymous rather than failing it.
var ErrNoAPIKey = errors.New("no api key found in authorization header")

// GetAPIKey extracts the key from an "Authorization: ApiKey <key>" header.
//
// The header must appear exactly once when present; a repeated Authorization
// header is a caller contract violation and yields an error distinct from
// ErrNoAPIKey. The value is split on single spaces with empty parts kept, so
// "ApiKey " yields the empty key and "ApiKey   xyz" yields the empty part
// before xyz. The scheme comparison is case sensitive.
func GetAPIKey(headers http.Header) (string, error) {
	values, ok := headers["Authorization"]
	if !ok {
		return "", ErrNoAPIKey
	}
	if len(values) != 1 {
		return "", fmt.Errorf("expected a single authorization header, got %d", len(values))
	}

	parts := strings.Split(values[0], " ")
	if len(parts) < 2 || parts[0] != "ApiKey" {
		return "", ErrNoAPIKey
	}

	return parts[1], nil
}

// MakeAPIKey generates the key handed to a user at registration.
func MakeAPIKey() string {
	randomBytes := make([]byte, 32)
	rand.Read(randomBytes)

	return hex.EncodeToString(randomBytes)
}
