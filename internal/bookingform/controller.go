package bookingform

import (
	"context"
	"errors"
	"time"

	"classorder/internal/availability"
	"classorder/internal/client"
	"classorder/internal/session"
	"classorder/internal/slot"
)

// State is the form's lifecycle position:
// Closed -> Creating/Editing -> Submitting -> Closed.
type State int

const (
	StateClosed State = iota
	StateCreating
	StateEditing
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateCreating:
		return "creating"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

var (
	ErrAlreadyOpen = errors.New("form is already open")
	ErrNotOpen     = errors.New("form is not open")
	ErrNoOwnCoach  = errors.New("no coach record linked to this session")
)

// API is the write half of the booking API the form needs.
type API interface {
	CreateBooking(ctx context.Context, p client.BookingPayload) error
	UpdateBooking(ctx context.Context, id int, p client.BookingPayload) error
}

// Fields are the editable form values.
type Fields struct {
	StudentName string
	CoachID     int
	Date        string
}

// SlotOption is one catalog slot as the form renders it.
type SlotOption struct {
	Label    string
	Selected bool
	Disabled bool
}

// Controller drives the create/edit booking form. The session is passed in
// explicitly; the controller never consults ambient state. It is written for
// a single-threaded UI event loop and is not safe for concurrent use.
type Controller struct {
	api      API
	resolver *availability.Resolver
	sess     *session.Session
	coaches  []client.Coach

	now     func() time.Time
	onSaved func(coachID int, date string)

	state       State
	editingID   int
	fields      Fields
	selected    map[string]bool
	unavailable map[string]bool
	seq         int
}

type Option func(*Controller)

// WithClock overrides the "today" default used when opening without a date.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// OnSaved registers the list-refresh callback fired after a successful
// submit, with the submitted coach and date as the filter context.
func OnSaved(fn func(coachID int, date string)) Option {
	return func(c *Controller) {
		c.onSaved = fn
	}
}

func NewController(api API, resolver *availability.Resolver, sess *session.Session, coaches []client.Coach, opts ...Option) *Controller {
	c := &Controller{
		api:         api,
		resolver:    resolver,
		sess:        sess,
		coaches:     coaches,
		now:         time.Now,
		selected:    make(map[string]bool),
		unavailable: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) EditingID() int {
	return c.editingID
}

func (c *Controller) Fields() Fields {
	return c.fields
}

// ownCoachID resolves the session's linked coach record.
func (c *Controller) ownCoachID() (int, error) {
	for _, coach := range c.coaches {
		if coach.UserID == c.sess.UserID {
			return coach.ID, nil
		}
	}
	return 0, ErrNoOwnCoach
}

// Open starts a create flow from the current list filter context. An empty
// date defaults to today. For a coach session the coach is always the
// session's own coach record.
func (c *Controller) Open(ctx context.Context, coachID int, date string) error {
	if c.state != StateClosed {
		return ErrAlreadyOpen
	}

	if date == "" {
		date = c.now().Format("2006-01-02")
	}
	if c.sess.IsCoach() {
		own, err := c.ownCoachID()
		if err != nil {
			return err
		}
		coachID = own
	}

	c.state = StateCreating
	c.editingID = 0
	c.fields = Fields{CoachID: coachID, Date: date}
	c.selected = make(map[string]bool)
	c.refreshAvailability(ctx)

	return nil
}

// OpenEdit starts an edit flow pre-populated from an existing record. The
// record's own slots are excluded from the unavailable set so they stay
// enabled and selected.
func (c *Controller) OpenEdit(ctx context.Context, record client.Booking) error {
	if c.state != StateClosed {
		return ErrAlreadyOpen
	}

	c.state = StateEditing
	c.editingID = record.ID
	c.fields = Fields{
		StudentName: record.StudentName,
		CoachID:     record.CoachID,
		Date:        record.Date,
	}
	c.selected = make(map[string]bool)
	for _, s := range slot.Parse(record.TimeSlots) {
		c.selected[s] = true
	}
	c.refreshAvailability(ctx)

	return nil
}

// Close abandons the form without submitting.
func (c *Controller) Close() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = StateClosed
	c.editingID = 0
	c.fields = Fields{}
	c.selected = make(map[string]bool)
	c.unavailable = make(map[string]bool)
}

func (c *Controller) SetStudentName(name string) {
	if c.state != StateCreating && c.state != StateEditing {
		return
	}
	c.fields.StudentName = name
}

// SetCoach switches the form's coach context. Previous selections are not
// guaranteed valid under the new context, so they are discarded.
func (c *Controller) SetCoach(ctx context.Context, coachID int) {
	if c.state != StateCreating && c.state != StateEditing {
		return
	}
	c.fields.CoachID = coachID
	c.selected = make(map[string]bool)
	c.refreshAvailability(ctx)
}

// SetDate switches the form's date context, clearing the selection like
// SetCoach.
func (c *Controller) SetDate(ctx context.Context, date string) {
	if c.state != StateCreating && c.state != StateEditing {
		return
	}
	c.fields.Date = date
	c.selected = make(map[string]bool)
	c.refreshAvailability(ctx)
}

// ToggleSlot flips a slot's membership in the selection. Toggling an
// unavailable slot is a no-op; the control is disabled. Reports whether the
// selection changed.
func (c *Controller) ToggleSlot(s string) bool {
	if c.state != StateCreating && c.state != StateEditing {
		return false
	}
	if c.unavailable[s] {
		return false
	}
	if c.selected[s] {
		delete(c.selected, s)
	} else {
		c.selected[s] = true
	}
	return true
}

// SelectedSlots returns the selection in catalog order.
func (c *Controller) SelectedSlots() []string {
	var out []string
	for _, s := range slot.Catalog() {
		if c.selected[s] {
			out = append(out, s)
		}
	}
	return out
}

// SlotOptions renders the full catalog with per-slot selected/disabled
// state, ready for display.
func (c *Controller) SlotOptions() []SlotOption {
	catalog := slot.Catalog()
	options := make([]SlotOption, 0, len(catalog))
	for _, s := range catalog {
		options = append(options, SlotOption{
			Label:    s,
			Selected: c.selected[s],
			Disabled: c.unavailable[s],
		})
	}
	return options
}

// Unavailable reports whether a slot is currently masked out.
func (c *Controller) Unavailable(s string) bool {
	return c.unavailable[s]
}

// BeginAvailabilityQuery issues a sequence token for an availability fetch.
// Only the result carrying the newest token is ever applied, so a slow
// response from an earlier coach/date context can never overwrite a newer
// one.
func (c *Controller) BeginAvailabilityQuery() int {
	c.seq++
	return c.seq
}

// ApplyAvailability installs a fetch result if its token is still current.
// Reports whether the result was applied.
func (c *Controller) ApplyAvailability(token int, unavailable map[string]bool) bool {
	if token != c.seq {
		return false
	}
	if unavailable == nil {
		unavailable = make(map[string]bool)
	}
	c.unavailable = unavailable
	return true
}

func (c *Controller) refreshAvailability(ctx context.Context) {
	token := c.BeginAvailabilityQuery()
	result := c.resolver.Unavailable(ctx, c.fields.CoachID, c.fields.Date, c.editingID)
	c.ApplyAvailability(token, result)
}

// Submit validates and saves the form. Validation failures block locally
// with no network call. On success the form closes and the saved filter
// context is handed to the OnSaved callback; on a network or server failure
// the form reopens in its prior state with nothing lost.
func (c *Controller) Submit(ctx context.Context) error {
	if c.state != StateCreating && c.state != StateEditing {
		return ErrNotOpen
	}

	if verr := c.validate(); verr != nil {
		return verr
	}

	coachID := c.fields.CoachID
	if c.sess.IsCoach() {
		own, err := c.ownCoachID()
		if err != nil {
			return err
		}
		coachID = own
	}

	payload := client.BookingPayload{
		StudentName: c.fields.StudentName,
		CoachID:     coachID,
		Date:        c.fields.Date,
		TimeSlots:   slot.Join(c.SelectedSlots()),
	}

	prev := c.state
	c.state = StateSubmitting

	var err error
	if c.editingID != 0 {
		err = c.api.UpdateBooking(ctx, c.editingID, payload)
	} else {
		err = c.api.CreateBooking(ctx, payload)
	}
	if err != nil {
		c.state = prev
		return err
	}

	date := c.fields.Date
	c.reset()
	if c.onSaved != nil {
		c.onSaved(coachID, date)
	}

	return nil
}
