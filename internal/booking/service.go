package booking

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date format")

type Service interface {
	List(ctx context.Context, coachID *int, date *time.Time) ([]Booking, error)
	Create(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	Update(ctx context.Context, id int, req UpdateBookingRequest) error
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, coachID *int, date *time.Time) ([]Booking, error) {
	return s.repo.List(ctx, coachID, date)
}

func (s *service) Create(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	date, err := time.Parse(DateFormat, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return s.repo.CreateChecked(ctx, Booking{
		CoachID:     req.CoachID,
		Date:        date,
		TimeSlots:   req.TimeSlots,
		StudentName: req.StudentName,
	})
}

// Update patches only the fields present in the request, then re-runs the
// conflict check against the booking's resulting (coach, date) pair.
func (s *service) Update(ctx context.Context, id int, req UpdateBookingRequest) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	b := *existing
	if req.StudentName != "" {
		b.StudentName = req.StudentName
	}
	if req.CoachID != 0 {
		b.CoachID = req.CoachID
	}
	if req.Date != "" {
		date, err := time.Parse(DateFormat, req.Date)
		if err != nil {
			return ErrInvalidDate
		}
		b.Date = date
	}
	if req.TimeSlots != "" {
		b.TimeSlots = req.TimeSlots
	}

	return s.repo.UpdateChecked(ctx, b)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
