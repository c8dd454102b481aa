package upload

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"classorder/internal/api"
	"classorder/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	dir     string
	baseURL string
}

func NewHandler(dir, baseURL string) *Handler {
	return &Handler{dir: dir, baseURL: baseURL}
}

// Upload godoc
// @Summary      Upload avatar asset
// @Description  Stores a multipart file under a random name and returns its URL.
// @Tags         uploads
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      200   {object}  api.UploadResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /api/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "File is required"})
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save file"})
		return
	}

	// Random name so concurrent uploads of identically named files never
	// clobber each other.
	newName := uuid.New().String() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.dir, newName)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save file"})
		return
	}

	metrics.RecordUpload()
	c.JSON(http.StatusOK, api.UploadResponse{
		Message: "File uploaded successfully",
		FileURL: path.Join(h.baseURL, newName),
	})
}
