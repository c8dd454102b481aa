package user

import (
	"context"

	"classorder/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, username, passwordHash, role string) (*User, error) {
	query := `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, role, created_at
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, username, passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByUsernameAndRole(ctx context.Context, username, role string) (*User, error) {
	query := `
		SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE username = $1 AND role = $2
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, username, role)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM users
			WHERE username = $1
		)
	`

	return db.Exists(ctx, r.db, query, username)
}

func (r *repository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1
		WHERE id = $2
	`

	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	return err
}
