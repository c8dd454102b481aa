package booking

import "time"

// DateFormat is the wire format for booking dates; there is no time
// component.
const DateFormat = "2006-01-02"

type Booking struct {
	ID          int       `db:"id" json:"id"`
	CoachID     int       `db:"coach_id" json:"coach_id"`
	Date        time.Time `db:"booking_date" json:"-"`
	TimeSlots   string    `db:"time_slots" json:"time_slots"`
	StudentName string    `db:"student_name" json:"student_name"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}

// BookingResponse is the wire shape the admin client consumes.
type BookingResponse struct {
	ID          int    `json:"id"`
	CoachID     int    `json:"coach_id"`
	Date        string `json:"date"`
	TimeSlots   string `json:"time_slots"`
	StudentName string `json:"student_name"`
}

func toResponse(b Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		CoachID:     b.CoachID,
		Date:        b.Date.Format(DateFormat),
		TimeSlots:   b.TimeSlots,
		StudentName: b.StudentName,
	}
}

type CreateBookingRequest struct {
	StudentName string `json:"student_name" binding:"required"`
	CoachID     int    `json:"coach_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	TimeSlots   string `json:"time_slots" binding:"required"`
}

type UpdateBookingRequest struct {
	StudentName string `json:"student_name"`
	CoachID     int    `json:"coach_id"`
	Date        string `json:"date"`
	TimeSlots   string `json:"time_slots"`
}
