package handler

import (
	"net/http"
	"testing"

	"app/internal/api/v1/dto"
	"app/internal/model"
)

func noticeBody(title string) dto.NoticeCreateDTO {
	return dto.NoticeCreateDTO{
		Title:    title,
		Content:  "Admissions open for the new batch",
		Priority: "high",
	}
}

func TestNoticeCreateDefaultsActive(t *testing.T) {
	mux := newTestAPI(t)
	tok := adminToken(t, mux)

	rr := doJSON(t, mux, http.MethodPost, "/notices", tok, noticeBody("Admissions"))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var created model.Notice
	decodeInto(t, rr, &created)
	if !created.Active {
		t.Fatal("expected active to default to true")
	}
	if created.Priority != "high" {
		t.Fatalf("submitted fields not returned unchanged: %+v", created)
	}
}

func TestNoticeCreateRequiresAuth(t *testing.T) {
	mux := newTestAPI(t)
	rr := doJSON(t, mux, http.MethodPost, "/notices", "", noticeBody("Admissions"))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
}

func TestNoticeListOrderAndDelete(t *testing.T) {
	mux := newTestAPI(t)
	tok := adminToken(t, mux)

	doJSON(t, mux, http.MethodPost, "/notices", tok, noticeBody("First"))
	rr := doJSON(t, mux, http.MethodPost, "/notices", tok, noticeBody("Second"))
	var second model.Notice
	decodeInto(t, rr, &second)

	rr = doJSON(t, mux, http.MethodGet, "/notices", "", nil)
	var listed []model.Notice
	decodeInto(t, rr, &listed)
	if len(listed) != 2 || listed[0].Title != "Second" || listed[1].Title != "First" {
		t.Fatalf("expected newest first, got %+v", listed)
	}

	rr = doJSON(t, mux, http.MethodDelete, "/notices/"+second.ID, tok, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp map[string]string
	decodeInto(t, rr, &resp)
	if resp["message"] != "Notice deleted" {
		t.Fatalf("unexpected message %q", resp["message"])
	}

	rr = doJSON(t, mux, http.MethodDelete, "/notices/"+second.ID, tok, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rr.Code)
	}
	if errorDetail(t, rr) != "Notice not found" {
		t.Fatalf("unexpected detail %v", errorDetail(t, rr))
	}
}
