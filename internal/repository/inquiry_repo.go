package repository

import (
	"context"
	"database/sql"

	"app/internal/model"
)

// InquiryRepository defines the interface for interacting with inquiry data
type InquiryRepository interface {
	Create(ctx context.Context, inq *model.Inquiry) error
	// List retrieves all inquiries newest first.
	List(ctx context.Context) ([]model.Inquiry, error)
	// UpdateStatus sets the status of one inquiry and reports whether a row
	// was matched.
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
}

type inquiryRepo struct {
	db *sql.DB
}

// NewInquiryRepo creates a new InquiryRepository backed by Postgres
func NewInquiryRepo(db *sql.DB) InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) Create(ctx context.Context, inq *model.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, phone, email, course_interested, message, created_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		inq.ID, inq.Name, inq.Phone, inq.Email, inq.CourseInterested, inq.Message, inq.CreatedAt, inq.Status)
	return err
}

func (r *inquiryRepo) List(ctx context.Context) ([]model.Inquiry, error) {
	query := `
		SELECT id, name, phone, email, course_interested, message, created_at, status
		FROM inquiries
		ORDER BY created_at DESC
		LIMIT 1000
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []model.Inquiry
	for rows.Next() {
		var inquiry model.Inquiry
		if err := rows.Scan(
			&inquiry.ID,
			&inquiry.Name,
			&inquiry.Phone,
			&inquiry.Email,
			&inquiry.CourseInterested,
			&inquiry.Message,
			&inquiry.CreatedAt,
			&inquiry.Status,
		); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inquiry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(inquiries) == 0 {
		return []model.Inquiry{}, nil
	}

	return inquiries, nil
}

func (r *inquiryRepo) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE inquiries SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
