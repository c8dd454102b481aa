package coach

import "context"

type Repository interface {
	List(ctx context.Context) ([]CoachWithUser, error)
	GetByID(ctx context.Context, id int) (*CoachWithUser, error)
	GetByUserID(ctx context.Context, userID int) (*CoachWithUser, error)
	CreateWithUser(ctx context.Context, username, passwordHash, name, description, avatarURL string) (*Coach, error)
	Update(ctx context.Context, id int, name, description, avatarURL string) error
	UpdateByUserID(ctx context.Context, userID int, name, description, avatarURL string) error
	DeleteWithUser(ctx context.Context, id int) error
}
