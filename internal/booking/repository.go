package booking

import (
	"context"
	"errors"
	"time"

	"classorder/internal/slot"

	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotConflict    = errors.New("time slot conflict")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, coachID *int, date *time.Time) ([]Booking, error) {
	query := `
		SELECT id, coach_id, booking_date, time_slots, student_name, created_at
		FROM bookings
		WHERE ($1::int IS NULL OR coach_id = $1)
			AND ($2::date IS NULL OR booking_date = $2)
		ORDER BY booking_date, id
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, coachID, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT id, coach_id, booking_date, time_slots, student_name, created_at
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	return &b, nil
}

// lockAndCheck loads the (coach, date) bookings FOR UPDATE and reports a
// conflict if any of the candidate slots overlap, skipping excludeID.
func lockAndCheck(ctx context.Context, tx *sqlx.Tx, coachID int, date time.Time, timeSlots string, excludeID int) error {
	var existing []Booking
	err := tx.SelectContext(ctx, &existing, `
		SELECT id, coach_id, booking_date, time_slots, student_name, created_at
		FROM bookings
		WHERE coach_id = $1 AND booking_date = $2
		FOR UPDATE
	`, coachID, date)
	if err != nil {
		return err
	}

	newRanges := slot.ParseRanges(timeSlots)
	for _, e := range existing {
		if e.ID == excludeID {
			continue
		}
		if slot.AnyOverlap(newRanges, slot.ParseRanges(e.TimeSlots)) {
			return ErrSlotConflict
		}
	}

	return nil
}

func (r *repository) CreateChecked(ctx context.Context, b Booking) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockAndCheck(ctx, tx, b.CoachID, b.Date, b.TimeSlots, 0); err != nil {
		return nil, err
	}

	var created Booking
	err = tx.GetContext(ctx, &created, `
		INSERT INTO bookings (coach_id, booking_date, time_slots, student_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, coach_id, booking_date, time_slots, student_name, created_at
	`, b.CoachID, b.Date, b.TimeSlots, b.StudentName)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) UpdateChecked(ctx context.Context, b Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockAndCheck(ctx, tx, b.CoachID, b.Date, b.TimeSlots, b.ID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET coach_id = $1, booking_date = $2, time_slots = $3, student_name = $4
		WHERE id = $5
	`, b.CoachID, b.Date, b.TimeSlots, b.StudentName, b.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return tx.Commit()
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
