package client

// Wire types mirroring the JSON the booking API serves.

type Booking struct {
	ID          int    `json:"id"`
	CoachID     int    `json:"coach_id"`
	Date        string `json:"date"`
	TimeSlots   string `json:"time_slots"`
	StudentName string `json:"student_name"`
}

type Coach struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
}

// BookingQuery narrows a booking list fetch. Zero CoachID / empty Date mean
// no filtering on that dimension.
type BookingQuery struct {
	CoachID int
	Date    string
}

type BookingPayload struct {
	StudentName string `json:"student_name"`
	CoachID     int    `json:"coach_id"`
	Date        string `json:"date"`
	TimeSlots   string `json:"time_slots"`
}

type CoachPayload struct {
	Username    string `json:"username,omitempty"`
	Password    string `json:"password,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
}

type ProfilePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
	Password    string `json:"password,omitempty"`
	OldPassword string `json:"old_password,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type uploadResponse struct {
	Message string `json:"message"`
	FileURL string `json:"file_url"`
}
