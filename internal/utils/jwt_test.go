package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/dbgeneral/construction-api/internal/model"
)

func testUser() model.AdminUser {
	return model.AdminUser{
		ID:       7,
		Username: "admin",
		Email:    "admin@example.com",
		Name:     "Site Admin",
		Role:     "admin",
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	tok, err := NewAccessToken(secret, testUser(), time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	claims, err := ParseAccessToken(secret, tok)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "admin" || claims.Role != "admin" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("email mismatch: %q", claims.Email)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", claims.ExpiresAt)
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	tok, err := NewAccessToken(secret, testUser(), -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	_, err = ParseAccessToken(secret, tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("right-secret", testUser(), time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	_, err = ParseAccessToken("wrong-secret", tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseAccessToken_Garbage(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseAccessToken("secret", raw); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("ParseAccessToken(%q): expected ErrTokenInvalid, got %v", raw, err)
		}
	}
}
