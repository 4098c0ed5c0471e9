package repository

import (
	"context"
	"database/sql"

	"app/internal/model"
)

// NoticeRepository defines the interface for interacting with notice data
type NoticeRepository interface {
	Create(ctx context.Context, n *model.Notice) error
	// List retrieves notices newest first. A nil active means no filter.
	List(ctx context.Context, active *bool) ([]model.Notice, error)
	// Delete removes a notice by id and reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

type noticeRepo struct {
	db *sql.DB
}

// NewNoticeRepo creates a new NoticeRepository backed by Postgres
func NewNoticeRepo(db *sql.DB) NoticeRepository {
	return &noticeRepo{db: db}
}

func (r *noticeRepo) Create(ctx context.Context, n *model.Notice) error {
	query := `
		INSERT INTO notices (id, title, content, priority, created_at, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.Title, n.Content, n.Priority, n.CreatedAt, n.Active)
	return err
}

func (r *noticeRepo) List(ctx context.Context, active *bool) ([]model.Notice, error) {
	query := `
		SELECT id, title, content, priority, created_at, active
		FROM notices
		ORDER BY created_at DESC
		LIMIT 1000
	`
	args := []any{}
	if active != nil {
		query = `
			SELECT id, title, content, priority, created_at, active
			FROM notices
			WHERE active = $1
			ORDER BY created_at DESC
			LIMIT 1000
		`
		args = append(args, *active)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []model.Notice
	for rows.Next() {
		var notice model.Notice
		if err := rows.Scan(
			&notice.ID,
			&notice.Title,
			&notice.Content,
			&notice.Priority,
			&notice.CreatedAt,
			&notice.Active,
		); err != nil {
			return nil, err
		}
		notices = append(notices, notice)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(notices) == 0 {
		return []model.Notice{}, nil
	}

	return notices, nil
}

func (r *noticeRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
