package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luminatext/internal/api/errors"
	"luminatext/internal/api/middleware"
	"luminatext/internal/api/v1/dto"
	"luminatext/internal/api/v1/services"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Transcribe handles POST /api/transcribe
// Accepts a multipart upload in the "file" field and returns the transcript
// with formatted display fields.
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	response, err := h.service.Transcribe(c.Request.Context(), file, header.Filename, header.Size)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// History handles GET /api/history
// Lists stored transcriptions newest first, paginated by limit and skip.
func (h *TranscriptionHandler) History(c *gin.Context) {
	var query dto.HistoryQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.History(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/history/:id
func (h *TranscriptionHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Message: "Transcription deleted successfully",
	})
}
