package routes

import (
	"github.com/gin-gonic/gin"

	"luminatext/internal/api/v1/handlers"
	"luminatext/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
}

// RegisterRoutes registers the /api routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	healthHandler := handlers.NewHealthHandler(container.TranscriptionService)

	router.GET("/health", healthHandler.Health)
	router.POST("/transcribe", transcriptionHandler.Transcribe)
	router.GET("/history", transcriptionHandler.History)
	router.DELETE("/history/:id", transcriptionHandler.Delete)
}
