package services

import (
	"context"
	"io"

	"luminatext/internal/api/v1/dto"
)

// TranscriptionService orchestrates validation, the provider call, and history
// persistence for the API handlers.
type TranscriptionService interface {
	// Transcribe validates the upload, sends it to the provider, persists the
	// resulting record, and returns the response view.
	Transcribe(ctx context.Context, r io.Reader, fileName string, sizeBytes int64) (*dto.TranscribeResponse, error)

	// History returns a pagination window over past transcriptions.
	History(ctx context.Context, query dto.HistoryQuery) (*dto.HistoryResponse, error)

	// Delete removes one transcription by id.
	Delete(ctx context.Context, id string) error

	// Health reports service status including a live store connectivity check.
	Health(ctx context.Context) *dto.HealthResponse
}
