package bookinglist

import (
	"context"
	"sort"

	"classorder/internal/client"
)

// Lister is the read half of the booking API the list view needs.
type Lister interface {
	ListBookings(ctx context.Context, q client.BookingQuery) ([]client.Booking, error)
}

// DateGroup is one list section: all bookings sharing a calendar date.
type DateGroup struct {
	Date     string
	Bookings []client.Booking
}

// Controller holds the booking list view's filter context and cached rows.
// The filters live here, independent of layout, so a viewport change never
// disturbs them.
type Controller struct {
	source Lister

	coachID  int
	date     string
	bookings []client.Booking
}

func NewController(source Lister) *Controller {
	return &Controller{source: source}
}

func (c *Controller) SetCoachFilter(coachID int) {
	c.coachID = coachID
}

func (c *Controller) SetDateFilter(date string) {
	c.date = date
}

func (c *Controller) Filters() (coachID int, date string) {
	return c.coachID, c.date
}

// Refresh re-fetches under the current filters. On failure the previous
// rows are kept so the view can stay up while showing a transient error.
func (c *Controller) Refresh(ctx context.Context) error {
	bookings, err := c.source.ListBookings(ctx, client.BookingQuery{
		CoachID: c.coachID,
		Date:    c.date,
	})
	if err != nil {
		return err
	}
	c.bookings = bookings
	return nil
}

func (c *Controller) Bookings() []client.Booking {
	return c.bookings
}

// Groups returns the cached bookings grouped by date, dates ascending.
func (c *Controller) Groups() []DateGroup {
	byDate := make(map[string][]client.Booking)
	for _, b := range c.bookings {
		byDate[b.Date] = append(byDate[b.Date], b)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	groups := make([]DateGroup, 0, len(dates))
	for _, d := range dates {
		groups = append(groups, DateGroup{Date: d, Bookings: byDate[d]})
	}
	return groups
}
