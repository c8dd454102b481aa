package coach

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrCoachNotFound = errors.New("coach not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]CoachWithUser, error) {
	query := `
		SELECT c.id, c.user_id, c.name, c.description, c.avatar_url, c.created_at,
			u.username
		FROM coaches c
		JOIN users u ON c.user_id = u.id
		ORDER BY c.id
	`

	var coaches []CoachWithUser
	err := r.db.SelectContext(ctx, &coaches, query)
	if err != nil {
		return nil, err
	}

	return coaches, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*CoachWithUser, error) {
	query := `
		SELECT c.id, c.user_id, c.name, c.description, c.avatar_url, c.created_at,
			u.username
		FROM coaches c
		JOIN users u ON c.user_id = u.id
		WHERE c.id = $1
	`

	var c CoachWithUser
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID int) (*CoachWithUser, error) {
	query := `
		SELECT c.id, c.user_id, c.name, c.description, c.avatar_url, c.created_at,
			u.username
		FROM coaches c
		JOIN users u ON c.user_id = u.id
		WHERE c.user_id = $1
	`

	var c CoachWithUser
	err := r.db.GetContext(ctx, &c, query, userID)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// CreateWithUser inserts the coach-role login account and the coach row in
// one transaction.
func (r *repository) CreateWithUser(ctx context.Context, username, passwordHash, name, description, avatarURL string) (*Coach, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var userID int
	err = tx.GetContext(ctx, &userID, `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, 'coach')
		RETURNING id
	`, username, passwordHash)
	if err != nil {
		return nil, err
	}

	var c Coach
	err = tx.GetContext(ctx, &c, `
		INSERT INTO coaches (user_id, name, description, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, description, avatar_url, created_at
	`, userID, name, description, avatarURL)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) Update(ctx context.Context, id int, name, description, avatarURL string) error {
	query := `
		UPDATE coaches
		SET name = $1, description = $2, avatar_url = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, name, description, avatarURL, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCoachNotFound
	}

	return nil
}

func (r *repository) UpdateByUserID(ctx context.Context, userID int, name, description, avatarURL string) error {
	query := `
		UPDATE coaches
		SET name = $1, description = $2, avatar_url = $3
		WHERE user_id = $4
	`

	result, err := r.db.ExecContext(ctx, query, name, description, avatarURL, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCoachNotFound
	}

	return nil
}

// DeleteWithUser removes the linked user account; the coaches row and its
// bookings go with it via ON DELETE CASCADE.
func (r *repository) DeleteWithUser(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var userID int
	err = tx.GetContext(ctx, &userID, `SELECT user_id FROM coaches WHERE id = $1`, id)
	if err != nil {
		return ErrCoachNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return err
	}

	return tx.Commit()
}
