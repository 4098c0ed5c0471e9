package repository

import (
	"context"
	"database/sql"
)

// Store bundles one repository per record kind. Both backends satisfy the
// same interfaces, so everything above this package is backend-agnostic.
type Store struct {
	Courses   CourseRepository
	Reviews   ReviewRepository
	Inquiries InquiryRepository
	Notices   NoticeRepository
	Admins    AdminRepository
}

// NewPostgres builds the durable store on an open database handle.
func NewPostgres(db *sql.DB) *Store {
	return &Store{
		Courses:   NewCourseRepo(db),
		Reviews:   NewReviewRepo(db),
		Inquiries: NewInquiryRepo(db),
		Notices:   NewNoticeRepo(db),
		Admins:    NewAdminRepo(db),
	}
}

// NewMemory builds the process-lifetime store.
func NewMemory() *Store {
	return &Store{
		Courses:   NewMemCourseRepo(),
		Reviews:   NewMemReviewRepo(),
		Inquiries: NewMemInquiryRepo(),
		Notices:   NewMemNoticeRepo(),
		Admins:    NewMemAdminRepo(),
	}
}

// EnsureSchema creates the tables the Postgres backend needs. Idempotent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS courses (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			stream TEXT NOT NULL,
			type TEXT NOT NULL,
			description TEXT NOT NULL,
			duration TEXT NOT NULL,
			features JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			rating INTEGER NOT NULL,
			comment TEXT NOT NULL,
			course TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			approved BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS inquiries (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT,
			course_interested TEXT NOT NULL,
			message TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL DEFAULT 'new'
		)`,
		`CREATE TABLE IF NOT EXISTS notices (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			priority TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
