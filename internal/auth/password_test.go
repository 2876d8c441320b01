package auth

import (
	"strings"
	"testing"
)

const pass = "bad-password"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword(pass)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %s", hash)
	}
}

func TestCheckPasswordHashWithValidPassword(t *testing.T) {
	hashed, err := HashPassword(pass)
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckPasswordHash(pass, hashed); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
}

func TestCheckPasswordHashWithInvalidPassword(t *testing.T) {
	hashed, err := HashPassword(pass)
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckPasswordHash("not-the-password", hashed); err == nil {
		t.Fatal("expected mismatch error, got nil")
	}
}
