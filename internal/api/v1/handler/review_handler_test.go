package handler

import (
	"net/http"
	"testing"

	"app/internal/api/v1/dto"
	"app/internal/model"
)

func reviewBody(name string, rating int) dto.ReviewCreateDTO {
	return dto.ReviewCreateDTO{
		Name:    name,
		Rating:  &rating,
		Comment: "Great teaching",
		Course:  "JEE Foundation",
	}
}

func TestReviewCreateDefaultsApproved(t *testing.T) {
	mux := newTestAPI(t)

	rr := doJSON(t, mux, http.MethodPost, "/reviews", "", reviewBody("Asha", 5))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var created model.Review
	decodeInto(t, rr, &created)
	if !created.Approved {
		t.Fatal("expected approved to default to true")
	}
	if created.Rating != 5 || created.Name != "Asha" {
		t.Fatalf("submitted fields not returned unchanged: %+v", created)
	}
}

func TestReviewRatingUnbounded(t *testing.T) {
	mux := newTestAPI(t)

	// No 1-5 clamp: any integer is stored as submitted.
	rr := doJSON(t, mux, http.MethodPost, "/reviews", "", reviewBody("Ravi", 100))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 for out-of-range rating, got %d", rr.Code)
	}
	var created model.Review
	decodeInto(t, rr, &created)
	if created.Rating != 100 {
		t.Fatalf("expected rating 100, got %d", created.Rating)
	}
}

func TestReviewListOrderAndFilterDefaults(t *testing.T) {
	mux := newTestAPI(t)

	doJSON(t, mux, http.MethodPost, "/reviews", "", reviewBody("First", 4))
	doJSON(t, mux, http.MethodPost, "/reviews", "", reviewBody("Second", 5))

	// Default (no query) filters to approved=true; everything created via the
	// API is approved, newest first.
	rr := doJSON(t, mux, http.MethodGet, "/reviews", "", nil)
	var listed []model.Review
	decodeInto(t, rr, &listed)
	if len(listed) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(listed))
	}
	if listed[0].Name != "Second" || listed[1].Name != "First" {
		t.Fatalf("expected newest first, got %+v", listed)
	}

	// approved=false matches nothing created via the API.
	rr = doJSON(t, mux, http.MethodGet, "/reviews?approved=false", "", nil)
	decodeInto(t, rr, &listed)
	if len(listed) != 0 {
		t.Fatalf("expected 0 unapproved reviews, got %d", len(listed))
	}

	// Explicitly empty value disables the filter.
	rr = doJSON(t, mux, http.MethodGet, "/reviews?approved=", "", nil)
	decodeInto(t, rr, &listed)
	if len(listed) != 2 {
		t.Fatalf("expected 2 reviews with filter disabled, got %d", len(listed))
	}

	// Garbage value is rejected.
	rr = doJSON(t, mux, http.MethodGet, "/reviews?approved=maybe", "", nil)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for non-boolean filter, got %d", rr.Code)
	}
}

func TestReviewCreateValidation(t *testing.T) {
	mux := newTestAPI(t)

	rr := doJSON(t, mux, http.MethodPost, "/reviews", "", dto.ReviewCreateDTO{Name: "Asha"})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rr.Code, rr.Body.String())
	}
	detail, ok := errorDetail(t, rr).(map[string]any)
	if !ok {
		t.Fatalf("expected field map detail, got %v", errorDetail(t, rr))
	}
	for _, field := range []string{"rating", "comment", "course"} {
		if _, ok := detail[field]; !ok {
			t.Fatalf("expected %s in validation detail, got %v", field, detail)
		}
	}
}
