package handler

import (
	"net/http"
	"testing"

	"app/internal/api/v1/dto"
)

func TestAdminLoginBootstrapAndRepeat(t *testing.T) {
	mux := newTestAPI(t)

	rr := doJSON(t, mux, http.MethodPost, "/admin/login", "", dto.AdminLoginDTO{
		Username: "admin",
		Password: "admin123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var first dto.AdminLoginResponseDTO
	decodeInto(t, rr, &first)
	if first.ID == "" || first.Username != "admin" || first.Token == "" {
		t.Fatalf("incomplete login response: %+v", first)
	}

	// Repeat login verifies against the stored hash; same admin id.
	rr = doJSON(t, mux, http.MethodPost, "/admin/login", "", dto.AdminLoginDTO{
		Username: "admin",
		Password: "admin123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat login, got %d", rr.Code)
	}
	var second dto.AdminLoginResponseDTO
	decodeInto(t, rr, &second)
	if second.ID != first.ID {
		t.Fatalf("expected same admin id, got %q then %q", first.ID, second.ID)
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	mux := newTestAPI(t)

	cases := []dto.AdminLoginDTO{
		{Username: "admin", Password: "wrong"},
		{Username: "root", Password: "admin123"},
		{Username: "root", Password: "whatever"},
	}
	for _, c := range cases {
		rr := doJSON(t, mux, http.MethodPost, "/admin/login", "", c)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %+v, got %d", c, rr.Code)
		}
		if errorDetail(t, rr) != "Invalid credentials" {
			t.Fatalf("unexpected detail %v", errorDetail(t, rr))
		}
	}
}

func TestAdminLoginValidation(t *testing.T) {
	mux := newTestAPI(t)

	rr := doJSON(t, mux, http.MethodPost, "/admin/login", "", dto.AdminLoginDTO{Username: "admin"})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing password, got %d", rr.Code)
	}
}
