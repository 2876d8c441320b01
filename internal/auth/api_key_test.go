package auth

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestGetAPIKey(t *testing.T) {
	longKey := strings.Repeat("a", 1000)

	tests := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectAbsent  bool
		expectBadForm bool
	}{
		{
			name:         "No headers at all",
			headers:      http.Header{},
			expectAbsent: true,
		},
		{
			name:        "Well formed key",
			headers:     http.Header{"Authorization": {"ApiKey abc123def456"}},
			expectedKey: "abc123def456",
		},
		{
			name:         "Bearer scheme",
			headers:      http.Header{"Authorization": {"Bearer abc123def456"}},
			expectAbsent: true,
		},
		{
			name:         "Scheme with no key part",
			headers:      http.Header{"Authorization": {"ApiKey"}},
			expectAbsent: true,
		},
		{
			name:        "Trailing space yields empty key",
			headers:     http.Header{"Authorization": {"ApiKey "}},
			expectedKey: "",
		},
		{
			name:        "Consecutive spaces yield empty second part",
			headers:     http.Header{"Authorization": {"ApiKey   xyz789abc123"}},
			expectedKey: "",
		},
		{
			name:        "Extra parts after the key are ignored",
			headers:     http.Header{"Authorization": {"ApiKey key123 extra456"}},
			expectedKey: "key123",
		},
		{
			name:          "Repeated authorization header",
			headers:       http.Header{"Authorization": {"ApiKey test123", "ApiKey test456"}},
			expectBadForm: true,
		},
		{
			name:          "Authorization present with zero values",
			headers:       http.Header{"Authorization": {}},
			expectBadForm: true,
		},
		{
			name:         "Scheme is case sensitive",
			headers:      http.Header{"Authorization": {"apikey test123"}},
			expectAbsent: true,
		},
		{
			name:         "Empty header value",
			headers:      http.Header{"Authorization": {""}},
			expectAbsent: true,
		},
		{
			name:         "Spaces only",
			headers:      http.Header{"Authorization": {"   "}},
			expectAbsent: true,
		},
		{
			name:        "Very long key",
			headers:     http.Header{"Authorization": {"ApiKey " + longKey}},
			expectedKey: longKey,
		},
		{
			name:        "Special characters kept verbatim",
			headers:     http.Header{"Authorization": {"ApiKey abc123-def456_ghi789.jkl012"}},
			expectedKey: "abc123-def456_ghi789.jkl012",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := GetAPIKey(tt.headers)

			if tt.expectAbsent {
				if !errors.Is(err, ErrNoAPIKey) {
					t.Errorf("GetAPIKey() error = %v, expected ErrNoAPIKey", err)
				}
				return
			}
			if tt.expectBadForm {
				if err == nil {
					t.Fatal("GetAPIKey() expected an error, got none")
				}
				if errors.Is(err, ErrNoAPIKey) {
					t.Error("GetAPIKey() returned ErrNoAPIKey, expected a malformed header error")
				}
				return
			}
			if err != nil {
				t.Fatalf("GetAPIKey() unexpected error: %v", err)
			}
			if key != tt.expectedKey {
				t.Errorf("GetAPIKey() = %q, expected %q", key, tt.expectedKey)
			}
		})
	}
}

func TestGetAPIKeyIsPure(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "ApiKey f271c81ff7084ee5b99a5091b42d486e")

	first, err1 := GetAPIKey(headers)
	second, err2 := GetAPIKey(headers)

	if first != second || err1 != err2 {
		t.Errorf("GetAPIKey() not idempotent: (%q, %v) then (%q, %v)", first, err1, second, err2)
	}
	if got := headers.Get("Authorization"); got != "ApiKey f271c81ff7084ee5b99a5091b42d486e" {
		t.Errorf("GetAPIKey() mutated the header collection: %q", got)
	}
}

func TestMakeAPIKey(t *testing.T) {
	key := MakeAPIKey()
	if len(key) != 64 {
		t.Errorf("MakeAPIKey() length = %d, expected 64 hex characters", len(key))
	}
	if key == MakeAPIKey() {
		t.Error("MakeAPIKey() returned the same key twice")
	}
}
