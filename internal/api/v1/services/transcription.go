package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	apierrors "luminatext/internal/api/errors"
	"luminatext/internal/api/v1/dto"
	"luminatext/internal/app/api"
	"luminatext/internal/app/format"
	"luminatext/internal/app/model"
	"luminatext/internal/app/repository"
	"luminatext/internal/app/upload"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	transcriber api.Transcriber
	history     repository.HistoryDAO
	logger      *slog.Logger

	maxFileSize int64
	allowedExts []string

	now func() time.Time
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	transcriber api.Transcriber,
	history repository.HistoryDAO,
	logger *slog.Logger,
	maxFileSize int64,
) TranscriptionService {
	return &TranscriptionServiceImpl{
		transcriber: transcriber,
		history:     history,
		logger:      logger,
		maxFileSize: maxFileSize,
		allowedExts: upload.DefaultAllowedExtensions,
		now:         time.Now,
	}
}

// Transcribe runs the only multi-step flow in the service: validate, call the
// provider, build the record, persist it. An insert failure after a successful
// provider call is logged but does not fail the request, so the caller still
// gets the transcript even when it will not show up in history.
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, r io.Reader, fileName string, sizeBytes int64) (*dto.TranscribeResponse, error) {
	if err := upload.Validate(fileName, sizeBytes, s.maxFileSize, s.allowedExts); err != nil {
		return nil, toAPIError(err)
	}

	result, err := s.transcriber.Transcribe(ctx, r, fileName)
	if err != nil {
		s.logger.Error("Transcription failed",
			"file_name", fileName,
			"provider", s.transcriber.Provider(),
			"error", err.Error(),
		)
		return nil, apierrors.NewProviderError("Error transcribing file")
	}

	now := s.now()
	record := &model.TranscriptionRecord{
		Text:            result.Text,
		FileName:        fileName,
		Duration:        format.Duration(result.DurationSeconds),
		FileSize:        format.Size(sizeBytes),
		Date:            format.Timestamp(now),
		DurationSeconds: result.DurationSeconds,
		FileSizeBytes:   sizeBytes,
		CreatedAt:       now,
		Metadata: model.RecordMetadata{
			Provider: s.transcriber.Provider(),
			Model:    s.transcriber.Model(),
		},
	}

	if _, err := s.history.Insert(ctx, record); err != nil {
		s.logger.Warn("Failed to save transcription to history",
			"file_name", fileName,
			"error", err.Error(),
		)
	}

	return dto.ToTranscribeResponse(record), nil
}

// History returns a window over stored transcriptions, newest first.
func (s *TranscriptionServiceImpl) History(ctx context.Context, query dto.HistoryQuery) (*dto.HistoryResponse, error) {
	records, total, err := s.history.List(ctx, query.Limit, query.Skip)
	if err != nil {
		s.logger.Error("Failed to list history", "error", err.Error())
		return nil, toAPIError(err)
	}

	items := make([]dto.HistoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.ToHistoryItem(rec))
	}

	return &dto.HistoryResponse{
		Transcriptions: items,
		Total:          total,
		Limit:          query.Limit,
		Skip:           query.Skip,
	}, nil
}

// Delete removes one transcription; an unknown id is a not-found, not a
// store failure.
func (s *TranscriptionServiceImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.history.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return apierrors.NewBadRequestError("Invalid transcription ID")
		}
		s.logger.Error("Failed to delete transcription", "id", id, "error", err.Error())
		return toAPIError(err)
	}
	if !deleted {
		return apierrors.NewNotFoundError("Transcription")
	}
	return nil
}

// Health pings the store so the database field reflects live connectivity.
func (s *TranscriptionServiceImpl) Health(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{
		Status:    "healthy",
		Message:   "API is running",
		Database:  "connected",
		Timestamp: s.now().Format(time.RFC3339),
	}

	if err := s.history.Ping(ctx); err != nil {
		s.logger.Warn("Health check store ping failed", "error", err.Error())
		resp.Status = "unhealthy"
		resp.Message = "Database unreachable"
		resp.Database = "disconnected"
	}

	return resp
}

// toAPIError maps domain errors onto the API taxonomy.
func toAPIError(err error) *apierrors.APIError {
	var vErr *upload.ValidationError
	if errors.As(err, &vErr) {
		if vErr.Reason == upload.ReasonFileTooLarge {
			return apierrors.NewPayloadTooLargeError(vErr.Message)
		}
		return apierrors.NewBadRequestError(vErr.Message)
	}

	if errors.Is(err, repository.ErrUnavailable) {
		return apierrors.NewStoreUnavailableError("History store unavailable")
	}

	return apierrors.NewInternalError("Internal server error")
}
