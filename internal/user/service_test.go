package user

import (
	"context"
	"database/sql"
	"testing"

	"classorder/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, username, passwordHash, role string) (*User, error) {
	args := m.Called(ctx, username, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepo) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepo) FindByUsernameAndRole(ctx context.Context, username, role string) (*User, error) {
	args := m.Called(ctx, username, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

const testSecret = "test-secret-key-12345"

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	admin := &User{ID: 1, Username: "admin", PasswordHash: hash, Role: auth.RoleAdmin}

	t.Run("Successful login returns signed token", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("FindByUsernameAndRole", mock.Anything, "admin", "admin").Return(admin, nil)

		svc := NewService(repo, testSecret)
		u, token, err := svc.Login(context.Background(), LoginRequest{
			Username: "admin",
			Password: "secret123",
			Role:     "admin",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, u.ID)

		claims, err := auth.ValidateToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("FindByUsernameAndRole", mock.Anything, "admin", "admin").Return(admin, nil)

		svc := NewService(repo, testSecret)
		_, _, err := svc.Login(context.Background(), LoginRequest{
			Username: "admin",
			Password: "wrong",
			Role:     "admin",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Valid password under wrong role fails identically", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("FindByUsernameAndRole", mock.Anything, "admin", "coach").Return(nil, sql.ErrNoRows)

		svc := NewService(repo, testSecret)
		_, _, err := svc.Login(context.Background(), LoginRequest{
			Username: "admin",
			Password: "secret123",
			Role:     "coach",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown user", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("FindByUsernameAndRole", mock.Anything, "ghost", "admin").Return(nil, sql.ErrNoRows)

		svc := NewService(repo, testSecret)
		_, _, err := svc.Login(context.Background(), LoginRequest{
			Username: "ghost",
			Password: "secret123",
			Role:     "admin",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestGetByID(t *testing.T) {
	repo := new(MockRepo)
	repo.On("FindByID", mock.Anything, 7).Return(&User{ID: 7, Username: "wang"}, nil)

	svc := NewService(repo, testSecret)
	u, err := svc.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "wang", u.Username)
}
