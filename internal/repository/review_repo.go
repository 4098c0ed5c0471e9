package repository

import (
	"context"
	"database/sql"

	"app/internal/model"
)

// ReviewRepository defines the interface for interacting with review data
type ReviewRepository interface {
	Create(ctx context.Context, rv *model.Review) error
	// List retrieves reviews newest first. A nil approved means no filter;
	// otherwise only reviews with a matching approved flag are returned.
	List(ctx context.Context, approved *bool) ([]model.Review, error)
}

type reviewRepo struct {
	db *sql.DB
}

// NewReviewRepo creates a new ReviewRepository backed by Postgres
func NewReviewRepo(db *sql.DB) ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, rv *model.Review) error {
	query := `
		INSERT INTO reviews (id, name, rating, comment, course, created_at, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		rv.ID, rv.Name, rv.Rating, rv.Comment, rv.Course, rv.CreatedAt, rv.Approved)
	return err
}

func (r *reviewRepo) List(ctx context.Context, approved *bool) ([]model.Review, error) {
	query := `
		SELECT id, name, rating, comment, course, created_at, approved
		FROM reviews
		ORDER BY created_at DESC
		LIMIT 1000
	`
	args := []any{}
	if approved != nil {
		query = `
			SELECT id, name, rating, comment, course, created_at, approved
			FROM reviews
			WHERE approved = $1
			ORDER BY created_at DESC
			LIMIT 1000
		`
		args = append(args, *approved)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var review model.Review
		if err := rows.Scan(
			&review.ID,
			&review.Name,
			&review.Rating,
			&review.Comment,
			&review.Course,
			&review.CreatedAt,
			&review.Approved,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(reviews) == 0 {
		return []model.Review{}, nil
	}

	return reviews, nil
}
