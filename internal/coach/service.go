package coach

import (
	"context"
	"errors"

	"classorder/internal/auth"
	"classorder/internal/user"
)

var (
	ErrUsernameTaken    = errors.New("username already taken")
	ErrWrongOldPassword = errors.New("old password does not match")
)

type Service interface {
	List(ctx context.Context) ([]CoachWithUser, error)
	Get(ctx context.Context, id int) (*CoachWithUser, error)
	Create(ctx context.Context, req CreateCoachRequest) (*Coach, error)
	Update(ctx context.Context, id int, req UpdateCoachRequest) error
	Delete(ctx context.Context, id int) error
	GetProfile(ctx context.Context, userID int) (*CoachWithUser, error)
	UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
}

func NewService(repo Repository, userRepo user.Repository) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *service) List(ctx context.Context) ([]CoachWithUser, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id int) (*CoachWithUser, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateCoachRequest) (*Coach, error) {
	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateWithUser(ctx, req.Username, passwordHash, req.Name, req.Description, req.AvatarURL)
}

func (s *service) Update(ctx context.Context, id int, req UpdateCoachRequest) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrCoachNotFound
	}

	name := req.Name
	if name == "" {
		name = existing.Name
	}

	return s.repo.Update(ctx, id, name, req.Description, req.AvatarURL)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteWithUser(ctx, id)
}

func (s *service) GetProfile(ctx context.Context, userID int) (*CoachWithUser, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// UpdateProfile applies the self-service edits. Empty fields keep their
// current value; a password change requires the old password to verify.
func (s *service) UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) error {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return ErrCoachNotFound
	}

	if req.Password != "" {
		u, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if !auth.CheckPassword(u.PasswordHash, req.OldPassword) {
			return ErrWrongOldPassword
		}
		newHash, err := auth.HashPassword(req.Password)
		if err != nil {
			return err
		}
		if err := s.userRepo.UpdatePassword(ctx, userID, newHash); err != nil {
			return err
		}
	}

	name := req.Name
	if name == "" {
		name = existing.Name
	}
	description := req.Description
	if description == "" {
		description = existing.Description
	}
	avatarURL := req.AvatarURL
	if avatarURL == "" {
		avatarURL = existing.AvatarURL
	}

	return s.repo.UpdateByUserID(ctx, userID, name, description, avatarURL)
}
