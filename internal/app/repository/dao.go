package repository

import (
	"context"
	"errors"

	"luminatext/internal/app/model"
)

var (
	// ErrUnavailable indicates the document store could not be reached.
	ErrUnavailable = errors.New("history store unavailable")

	// ErrInvalidID indicates a record id that is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid record id")
)

// HistoryDAO persists transcription records in the document store.
type HistoryDAO interface {
	// Insert writes a fully formed record and returns the store-assigned id.
	Insert(ctx context.Context, rec *model.TranscriptionRecord) (string, error)

	// List returns up to limit records ordered by createdAt descending,
	// skipping skip records, plus the total collection size independent of
	// the pagination window. A limit of zero yields an empty window.
	List(ctx context.Context, limit, skip int64) ([]model.TranscriptionRecord, int64, error)

	// DeleteByID removes a record. The bool reports whether a record was
	// found; an unknown id is not an error.
	DeleteByID(ctx context.Context, id string) (bool, error)

	// Ping checks live connectivity for health reporting.
	Ping(ctx context.Context) error

	Close(ctx context.Context) error
}
