package user

import (
	"context"
	"errors"

	"classorder/internal/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*User, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

// Login authenticates a (username, role) pair. A valid password under the
// wrong role fails the same way as a bad password so the response does not
// leak which part was wrong.
func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	u, err := s.repo.FindByUsernameAndRole(ctx, req.Username, req.Role)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(u.ID, u.Username, u.Role, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}
