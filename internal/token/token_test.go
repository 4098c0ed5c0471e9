package token

import (
	"strings"
	"testing"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	tok, err := Generate("secret", "a1", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tok == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := Validate(tok, "secret")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "a1" {
		t.Fatalf("expected subject a1, got %q", claims.Subject)
	}
	if claims.Username != "admin" {
		t.Fatalf("expected username admin, got %q", claims.Username)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Fatal("expected expiry after issue time")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	tok, err := Generate("secret", "a1", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := Validate(tok, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := Validate("not.a.token", "secret"); err == nil {
		t.Fatal("expected error for malformed token")
	}
	if _, err := Validate(strings.Repeat("x", 64), "secret"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
