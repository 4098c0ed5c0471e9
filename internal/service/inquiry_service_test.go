package service

import (
	"context"
	"testing"
	"time"

	"app/internal/model"
	"app/internal/repository"
)

// spyDispatcher records dispatched inquiries on a channel so tests can wait
// for the detached goroutine.
type spyDispatcher struct {
	got chan *model.Inquiry
}

func newSpyDispatcher() *spyDispatcher {
	return &spyDispatcher{got: make(chan *model.Inquiry, 1)}
}

func (s *spyDispatcher) InquiryCreated(_ context.Context, inq *model.Inquiry) {
	s.got <- inq
}

func TestInquiryCreateStampsAndNotifies(t *testing.T) {
	ctx := context.Background()
	spy := newSpyDispatcher()
	svc := NewInquiryService(repository.NewMemInquiryRepo(), spy)

	start := time.Now().UTC()
	created, err := svc.Create(ctx, &model.Inquiry{
		Name:             "Asha",
		Phone:            "9876543210",
		CourseInterested: "JEE Foundation",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	if created.CreatedAt.Before(start) {
		t.Fatalf("created_at %v earlier than request start %v", created.CreatedAt, start)
	}
	if created.Status != "new" {
		t.Fatalf("expected status new, got %q", created.Status)
	}

	select {
	case notified := <-spy.got:
		if notified.ID != created.ID {
			t.Fatalf("notified wrong inquiry: %q vs %q", notified.ID, created.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for notification dispatch")
	}
}

func TestInquiryUpdateStatusNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewInquiryService(repository.NewMemInquiryRepo(), newSpyDispatcher())

	if err := svc.UpdateStatus(ctx, "missing", "contacted"); err != ErrInquiryNotFound {
		t.Fatalf("expected ErrInquiryNotFound, got %v", err)
	}
}

func TestRecordStampUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, ts := newRecordStamp()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if ts.Location() != time.UTC {
			t.Fatal("timestamp not UTC")
		}
	}
}
