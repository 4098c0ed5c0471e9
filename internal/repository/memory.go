package repository

import (
	"context"
	"sort"
	"sync"

	"app/internal/model"
)

// In-memory repository implementations. They satisfy the same interfaces as
// the Postgres ones and hold everything for the lifetime of the process. One
// mutex per collection; records are copied on the way out so callers never
// alias internal state.

// listCap matches the LIMIT the Postgres lists apply.
const listCap = 1000

func capLen(n int) int {
	if n > listCap {
		return listCap
	}
	return n
}

type memCourseRepo struct {
	mu    sync.Mutex
	items []model.Course
}

// NewMemCourseRepo creates an in-memory CourseRepository
func NewMemCourseRepo() CourseRepository {
	return &memCourseRepo{}
}

func (r *memCourseRepo) Create(_ context.Context, c *model.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *c
	stored.Features = append([]string(nil), c.Features...)
	r.items = append(r.items, stored)
	return nil
}

func (r *memCourseRepo) List(_ context.Context, stream string) ([]model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Course{}
	for _, c := range r.items {
		if stream != "" && c.Stream != stream {
			continue
		}
		c.Features = append([]string(nil), c.Features...)
		out = append(out, c)
	}
	return out[:capLen(len(out))], nil
}

func (r *memCourseRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memReviewRepo struct {
	mu    sync.Mutex
	items []model.Review
}

// NewMemReviewRepo creates an in-memory ReviewRepository
func NewMemReviewRepo() ReviewRepository {
	return &memReviewRepo{}
}

func (r *memReviewRepo) Create(_ context.Context, rv *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *rv)
	return nil
}

func (r *memReviewRepo) List(_ context.Context, approved *bool) ([]model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Review{}
	for _, rv := range r.items {
		if approved != nil && rv.Approved != *approved {
			continue
		}
		out = append(out, rv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out[:capLen(len(out))], nil
}

type memInquiryRepo struct {
	mu    sync.Mutex
	items []model.Inquiry
}

// NewMemInquiryRepo creates an in-memory InquiryRepository
func NewMemInquiryRepo() InquiryRepository {
	return &memInquiryRepo{}
}

func (r *memInquiryRepo) Create(_ context.Context, inq *model.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *inq)
	return nil
}

func (r *memInquiryRepo) List(_ context.Context) ([]model.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]model.Inquiry{}, r.items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out[:capLen(len(out))], nil
}

func (r *memInquiryRepo) UpdateStatus(_ context.Context, id, status string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

type memNoticeRepo struct {
	mu    sync.Mutex
	items []model.Notice
}

// NewMemNoticeRepo creates an in-memory NoticeRepository
func NewMemNoticeRepo() NoticeRepository {
	return &memNoticeRepo{}
}

func (r *memNoticeRepo) Create(_ context.Context, n *model.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *n)
	return nil
}

func (r *memNoticeRepo) List(_ context.Context, active *bool) ([]model.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Notice{}
	for _, n := range r.items {
		if active != nil && n.Active != *active {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out[:capLen(len(out))], nil
}

func (r *memNoticeRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, n := range r.items {
		if n.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memAdminRepo struct {
	mu    sync.Mutex
	items []model.AdminUser
}

// NewMemAdminRepo creates an in-memory AdminRepository
func NewMemAdminRepo() AdminRepository {
	return &memAdminRepo{}
}

func (r *memAdminRepo) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.Username == username {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memAdminRepo) Create(_ context.Context, a *model.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *a)
	return nil
}
