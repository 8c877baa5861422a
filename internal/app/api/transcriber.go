package api

import (
	"context"
	"fmt"
	"io"
)

// TranscriptionResult carries what the provider reports for one upload.
type TranscriptionResult struct {
	Text            string
	DurationSeconds float64
}

// Transcriber sends media bytes to a speech-to-text provider. One request per
// call, no retries; retry policy belongs to the caller.
type Transcriber interface {
	Transcribe(ctx context.Context, r io.Reader, fileName string) (*TranscriptionResult, error)

	// Provider and Model identify the backend for record metadata.
	Provider() string
	Model() string
}

// ProviderError wraps any transport, authentication, or non-success response
// from the speech-to-text provider.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
