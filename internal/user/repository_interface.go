package user

import "context"

type Repository interface {
	Create(ctx context.Context, username, passwordHash, role string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	FindByUsernameAndRole(ctx context.Context, username, role string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}
