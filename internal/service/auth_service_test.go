package service

import (
	"context"
	"errors"
	"testing"

	"app/internal/repository"
)

func TestLoginBootstrapsAdminOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(repository.NewMemAdminRepo(), "secret")

	admin, tok, err := svc.Login(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("bootstrap login: %v", err)
	}
	if admin.ID == "" || tok == "" {
		t.Fatalf("expected id and token, got %+v / %q", admin, tok)
	}
	if admin.PasswordHash == "admin123" {
		t.Fatal("password stored in clear")
	}

	// Second login goes through the stored-hash path and must not create a
	// second credential for the same username.
	again, tok2, err := svc.Login(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if again.ID != admin.ID {
		t.Fatalf("expected same admin record, got %q then %q", admin.ID, again.ID)
	}
	if tok2 == "" {
		t.Fatal("expected a fresh token")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(repository.NewMemAdminRepo(), "secret")

	if _, _, err := svc.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("bootstrap login: %v", err)
	}
	_, _, err := svc.Login(ctx, "admin", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginRejectsUnknownUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(repository.NewMemAdminRepo(), "secret")

	// No bootstrap match for other usernames, regardless of password.
	for _, password := range []string{"admin123", "anything"} {
		_, _, err := svc.Login(ctx, "root", password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %q, got %v", password, err)
		}
	}
}

func TestLoginRejectsBootstrapUserWrongPasswordOnFreshStore(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemAdminRepo()
	svc := NewAuthService(repo, "secret")

	_, _, err := svc.Login(ctx, "admin", "nope")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// A failed bootstrap attempt must not persist anything.
	stored, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored != nil {
		t.Fatal("failed bootstrap must not create a credential")
	}
}
