package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luminatext/internal/api/v1/services"
)

// HealthHandler reports service and store status.
type HealthHandler struct {
	service services.TranscriptionService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service services.TranscriptionService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health handles GET /api/health
// The database field reflects a live connectivity check, not a cached value.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Health(c.Request.Context()))
}
