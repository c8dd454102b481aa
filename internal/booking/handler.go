package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"classorder/internal/api"
	"classorder/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		service: NewService(NewRepository(db)),
	}
}

func NewHandlerWithService(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary      List bookings
// @Description  Returns bookings, optionally filtered by coach and date.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        coach_id  query     int     false  "Coach ID"
// @Param        date      query     string  false  "Date (YYYY-MM-DD)"
// @Success      200       {array}   BookingResponse
// @Failure      500       {object}  gin.H
// @Router       /api/bookings [get]
func (h *Handler) List(c *gin.Context) {
	var coachID *int
	if raw := c.Query("coach_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coach_id"})
			return
		}
		coachID = &id
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(DateFormat, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		date = &d
	}

	bookings, err := h.service.List(c.Request.Context(), coachID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toResponse(b))
	}

	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary      Create booking
// @Description  Creates a booking; rejects slots already taken for the coach and date.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking data"
// @Success      201      {object}  api.MessageResponse
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /api/bookings [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		case errors.Is(err, ErrSlotConflict):
			metrics.RecordBookingConflict()
			c.JSON(http.StatusConflict, gin.H{"error": "Selected time slots are already booked, please choose others"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	metrics.RecordBooking("create")
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "Booking created successfully"})
}

// Update godoc
// @Summary      Update booking
// @Description  Updates a booking; its own slots are ignored by the conflict check.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Booking ID"
// @Param        request  body      UpdateBookingRequest  true  "Booking data"
// @Success      200      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /api/bookings/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		case errors.Is(err, ErrSlotConflict):
			metrics.RecordBookingConflict()
			c.JSON(http.StatusConflict, gin.H{"error": "Selected time slots are already booked, please choose others"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		}
		return
	}

	metrics.RecordBooking("update")
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking updated successfully"})
}

// Delete godoc
// @Summary      Delete booking
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Booking ID"
// @Success      200  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /api/bookings/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}

	metrics.RecordBooking("delete")
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking deleted successfully"})
}
