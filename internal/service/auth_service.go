package service

import (
	"context"
	"errors"

	"app/internal/model"
	"app/internal/repository"
	"app/internal/token"

	"golang.org/x/crypto/bcrypt"
)

// Bootstrap credential pair: the first login with it provisions the admin
// record. Any other unknown username is rejected outright.
const (
	bootstrapUsername = "admin"
	bootstrapPassword = "admin123"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	// Login verifies a credential pair and returns the admin plus a signed
	// session token.
	Login(ctx context.Context, username, password string) (*model.AdminUser, string, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	jwtSecret string
}

func NewAuthService(adminRepo repository.AdminRepository, jwtSecret string) AuthService {
	return &authService{adminRepo: adminRepo, jwtSecret: jwtSecret}
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.AdminUser, string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	if admin == nil {
		if username != bootstrapUsername || password != bootstrapPassword {
			return nil, "", ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		id, _ := newRecordStamp()
		admin = &model.AdminUser{
			ID:           id,
			Username:     username,
			PasswordHash: string(hash),
		}
		if err := s.adminRepo.Create(ctx, admin); err != nil {
			return nil, "", err
		}
	} else if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := token.Generate(s.jwtSecret, admin.ID, admin.Username)
	if err != nil {
		return nil, "", err
	}
	return admin, tok, nil
}
