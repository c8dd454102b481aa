package coach

import (
	"errors"
	"net/http"
	"strconv"

	"classorder/internal/api"
	"classorder/internal/auth"
	"classorder/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), user.NewRepository(db)),
	}
}

func NewHandlerWithService(service Service) *Handler {
	return &Handler{service: service}
}

func toResponse(c CoachWithUser) CoachResponse {
	return CoachResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Username:    c.Username,
		Name:        c.Name,
		Description: c.Description,
		AvatarURL:   c.AvatarURL,
	}
}

// List godoc
// @Summary      List coaches
// @Tags         coaches
// @Produce      json
// @Success      200  {array}   CoachResponse
// @Failure      500  {object}  gin.H
// @Router       /api/coaches [get]
func (h *Handler) List(c *gin.Context) {
	coaches, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve coaches"})
		return
	}

	response := make([]CoachResponse, 0, len(coaches))
	for _, coach := range coaches {
		response = append(response, toResponse(coach))
	}

	c.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary      Get coach
// @Tags         coaches
// @Produce      json
// @Param        id   path      int  true  "Coach ID"
// @Success      200  {object}  CoachResponse
// @Failure      404  {object}  gin.H
// @Router       /api/coaches/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coach ID"})
		return
	}

	coach, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coach not found"})
		return
	}

	c.JSON(http.StatusOK, toResponse(*coach))
}

// Create godoc
// @Summary      Create coach
// @Description  Creates a coach and its linked login account. Admin only.
// @Tags         coaches
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateCoachRequest  true  "Coach data"
// @Success      201      {object}  api.MessageResponse
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /api/coaches [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coach"})
		return
	}

	c.JSON(http.StatusCreated, api.MessageResponse{Message: "Coach created successfully"})
}

// Update godoc
// @Summary      Update coach
// @Tags         coaches
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Coach ID"
// @Param        request  body      UpdateCoachRequest  true  "Coach data"
// @Success      200      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /api/coaches/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coach ID"})
		return
	}

	var req UpdateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coach not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coach"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Coach updated successfully"})
}

// Delete godoc
// @Summary      Delete coach
// @Description  Deletes a coach, its login account and its bookings.
// @Tags         coaches
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Coach ID"
// @Success      200  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /api/coaches/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coach ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coach not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coach and associated user"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Coach deleted successfully"})
}

// GetProfile godoc
// @Summary      Get own coach profile
// @Tags         coaches
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  CoachResponse
// @Failure      404  {object}  gin.H
// @Router       /api/coach/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	coach, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coach profile not found"})
		return
	}

	c.JSON(http.StatusOK, toResponse(*coach))
}

// UpdateProfile godoc
// @Summary      Update own coach profile
// @Description  Self-service profile edit; password change requires old_password.
// @Tags         coaches
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateProfileRequest  true  "Profile data"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /api/coach/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, ErrWrongOldPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Old password does not match"})
		case errors.Is(err, ErrCoachNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Coach profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Profile updated successfully"})
}
