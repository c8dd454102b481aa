package booking

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, coachID *int, date *time.Time) ([]Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	// CreateChecked inserts the booking after verifying, under a row lock on
	// the coach's bookings for that date, that none of its slots overlap an
	// existing booking. Returns ErrSlotConflict otherwise.
	CreateChecked(ctx context.Context, b Booking) (*Booking, error)
	// UpdateChecked does the same for an update, ignoring the booking's own
	// row in the conflict scan.
	UpdateChecked(ctx context.Context, b Booking) error
	Delete(ctx context.Context, id int) error
}
