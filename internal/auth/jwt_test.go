package auth

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWT(t *testing.T) {
	ogUserID := uuid.New()
	secret := "secret"

	tests := []struct {
		name        string
		tokenSecret string
		expiresIn   time.Duration
		expectedID  uuid.UUID
		expectedErr error
	}{
		{
			name:        "Valid token",
			tokenSecret: secret,
			expiresIn:   20 * time.Minute,
			expectedID:  ogUserID,
			expectedErr: nil,
		},
		{
			name:        "Expired token",
			tokenSecret: secret,
			expiresIn:   0 * time.Second,
			expectedID:  uuid.UUID{},
			expectedErr: fmt.Errorf("token is expired"),
		},
		{
			name:        "Signed with wrong secret",
			tokenSecret: "wrong secret",
			expiresIn:   20 * time.Minute,
			expectedID:  uuid.UUID{},
			expectedErr: fmt.Errorf("token signature is invalid"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, err := MakeJWT(ogUserID, tt.tokenSecret, tt.expiresIn)
			if err != nil {
				t.Errorf("Error creating JWT: %v", err)
			}
			userID, err := ValidateJWT(tokenString, secret)

			correctErr := (err == nil && tt.expectedErr == nil) ||
				(err != nil && tt.expectedErr != nil && strings.Contains(err.Error(), tt.expectedErr.Error()))
			correctResult := tt.expectedID == userID

			if !correctErr {
				t.Errorf("ValidateJWT() error = %v, expectedErr %v", err, tt.expectedErr)
			}
			if !correctResult {
				t.Errorf("ValidateJWT() userId %v, expectedUserId %v", userID, tt.expectedID)
			}
		})
	}
}

func TestGetBearerToken(t *testing.T) {
	token := "abc123"
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)

	got, err := GetBearerToken(headers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != token {
		t.Fatalf("expected %s, got %s", token, got)
	}

	headers = http.Header{}
	if _, err = GetBearerToken(headers); err == nil {
		t.Fatal("expected error for missing header")
	}

	headers.Set("Authorization", "ApiKey abc123")
	if _, err = GetBearerToken(headers); err == nil {
		t.Fatal("expected error for wrong scheme")
	}
}
