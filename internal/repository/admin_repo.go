package repository

import (
	"context"
	"database/sql"

	"app/internal/model"
)

// AdminRepository defines the interface for interacting with admin credentials
type AdminRepository interface {
	// GetByUsername retrieves an admin by username, or nil when absent.
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	Create(ctx context.Context, a *model.AdminUser) error
}

type adminRepo struct {
	db *sql.DB
}

// NewAdminRepo creates a new AdminRepository backed by Postgres
func NewAdminRepo(db *sql.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	query := `
		SELECT id, username, password_hash
		FROM admins
		WHERE username = $1
	`
	var a model.AdminUser
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) Create(ctx context.Context, a *model.AdminUser) error {
	query := `
		INSERT INTO admins (id, username, password_hash)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Username, a.PasswordHash)
	return err
}
