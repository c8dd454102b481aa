package availability

import (
	"context"

	"classorder/internal/client"
	"classorder/internal/logger"
	"classorder/internal/slot"
)

// Source is the narrow fetch dependency; *client.Client satisfies it.
type Source interface {
	ListBookings(ctx context.Context, q client.BookingQuery) ([]client.Booking, error)
}

// Resolver computes the unavailable slot set for a coach and date: every
// slot already consumed by bookings other than the one being edited. The
// result is used purely as a disable mask over the slot catalog.
type Resolver struct {
	source Source
}

func NewResolver(source Source) *Resolver {
	return &Resolver{source: source}
}

// Unavailable returns the taken slots for (coachID, date), skipping the
// booking with excludeBookingID (0 means none).
//
// Missing coach or date means no filtering context, so nothing is disabled.
// A fetch failure also yields an empty set: the display fails open rather
// than blocking the user on a transient read error, and the server's
// conflict check remains the authority at submit time.
func (r *Resolver) Unavailable(ctx context.Context, coachID int, date string, excludeBookingID int) map[string]bool {
	unavailable := make(map[string]bool)

	if coachID == 0 || date == "" {
		return unavailable
	}

	bookings, err := r.source.ListBookings(ctx, client.BookingQuery{CoachID: coachID, Date: date})
	if err != nil {
		logger.Debug("availability fetch failed, failing open", "coach_id", coachID, "date", date, "error", err)
		return unavailable
	}

	for _, b := range bookings {
		if excludeBookingID != 0 && b.ID == excludeBookingID {
			continue
		}
		for _, s := range slot.Parse(b.TimeSlots) {
			unavailable[s] = true
		}
	}

	return unavailable
}
