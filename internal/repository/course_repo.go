package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"app/internal/model"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	Create(ctx context.Context, c *model.Course) error
	// List retrieves courses, optionally filtered by exact stream match.
	// An empty stream means no filter. Order is not guaranteed.
	List(ctx context.Context, stream string) ([]model.Course, error)
	// Delete removes a course by id and reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository backed by Postgres
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, c *model.Course) error {
	features, err := json.Marshal(c.Features)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO courses (id, name, stream, type, description, duration, features, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Stream, c.Type, c.Description, c.Duration, features, c.CreatedAt)
	return err
}

func (r *courseRepo) List(ctx context.Context, stream string) ([]model.Course, error) {
	query := `
		SELECT id, name, stream, type, description, duration, features, created_at
		FROM courses
		LIMIT 1000
	`
	args := []any{}
	if stream != "" {
		query = `
			SELECT id, name, stream, type, description, duration, features, created_at
			FROM courses
			WHERE stream = $1
			LIMIT 1000
		`
		args = append(args, stream)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var course model.Course
		var features []byte
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Stream,
			&course.Type,
			&course.Description,
			&course.Duration,
			&features,
			&course.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(features, &course.Features); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}

	return courses, nil
}

func (r *courseRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
