package services

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "luminatext/internal/api/errors"
	"luminatext/internal/api/v1/dto"
	"luminatext/internal/app/api"
	"luminatext/internal/app/model"
	"luminatext/internal/app/repository"
	"luminatext/internal/app/testutil"
)

func newTestService(t *testing.T) (*TranscriptionServiceImpl, *testutil.MockTranscriber, *testutil.MockHistoryDAO) {
	t.Helper()
	transcriber := new(testutil.MockTranscriber)
	history := new(testutil.MockHistoryDAO)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewTranscriptionService(transcriber, history, logger, 1024).(*TranscriptionServiceImpl)
	return svc, transcriber, history
}

func TestTranscribeSuccess(t *testing.T) {
	svc, transcriber, history := newTestService(t)

	transcriber.On("Transcribe", mock.Anything, mock.Anything, "talk.mp3").
		Return(&api.TranscriptionResult{Text: "hello world", DurationSeconds: 150}, nil)
	history.On("Insert", mock.Anything, mock.Anything).Return("65f0c0ffee", nil)

	resp, err := svc.Transcribe(context.Background(), strings.NewReader("audio"), "talk.mp3", 512)

	require.NoError(t, err)
	assert.Equal(t, "hello world", resp.Text)
	assert.Equal(t, "talk.mp3", resp.FileName)
	assert.Equal(t, "2m 30s", resp.Duration)
	assert.Equal(t, "512.00 B", resp.FileSize)
	assert.NotEmpty(t, resp.Date)

	history.AssertCalled(t, "Insert", mock.Anything, mock.MatchedBy(func(rec *model.TranscriptionRecord) bool {
		return rec.Text == "hello world" &&
			rec.FileSizeBytes == 512 &&
			rec.DurationSeconds == 150 &&
			rec.Metadata.Provider == "openai" &&
			rec.Metadata.Model == "whisper-1"
	}))
}

func TestTranscribeValidationFailures(t *testing.T) {
	testCases := []struct {
		name           string
		fileName       string
		sizeBytes      int64
		expectedKind   apierrors.ErrorKind
		expectedStatus int
	}{
		{name: "unsupported format", fileName: "report.pdf", sizeBytes: 512, expectedKind: apierrors.KindBadRequest, expectedStatus: 400},
		{name: "empty file", fileName: "talk.mp3", sizeBytes: 0, expectedKind: apierrors.KindBadRequest, expectedStatus: 400},
		{name: "oversize", fileName: "talk.mp3", sizeBytes: 4096, expectedKind: apierrors.KindPayloadTooLarge, expectedStatus: 413},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, transcriber, _ := newTestService(t)

			_, err := svc.Transcribe(context.Background(), strings.NewReader("x"), tc.fileName, tc.sizeBytes)

			var apiErr *apierrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.expectedKind, apiErr.Kind)
			assert.Equal(t, tc.expectedStatus, apiErr.HTTPStatus())

			// The provider must never be called for a rejected upload.
			transcriber.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTranscribeProviderFailure(t *testing.T) {
	svc, transcriber, history := newTestService(t)

	transcriber.On("Transcribe", mock.Anything, mock.Anything, "talk.mp3").
		Return(nil, &api.ProviderError{Provider: "openai", Err: assert.AnError})

	_, err := svc.Transcribe(context.Background(), strings.NewReader("audio"), "talk.mp3", 512)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindProvider, apiErr.Kind)
	assert.Equal(t, 500, apiErr.HTTPStatus())
	// The provider message is logged, not surfaced verbatim.
	assert.NotContains(t, apiErr.Message, assert.AnError.Error())

	history.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestTranscribeInsertFailureStillReturnsTranscript(t *testing.T) {
	svc, transcriber, history := newTestService(t)

	transcriber.On("Transcribe", mock.Anything, mock.Anything, "talk.mp3").
		Return(&api.TranscriptionResult{Text: "hello", DurationSeconds: 10}, nil)
	history.On("Insert", mock.Anything, mock.Anything).Return("", repository.ErrUnavailable)

	resp, err := svc.Transcribe(context.Background(), strings.NewReader("audio"), "talk.mp3", 512)

	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)
}

func TestHistoryPagination(t *testing.T) {
	svc, _, history := newTestService(t)

	records := make([]model.TranscriptionRecord, 10)
	for i := range records {
		records[i] = model.TranscriptionRecord{ID: "id", Text: "t"}
	}
	history.On("List", mock.Anything, int64(10), int64(0)).Return(records, int64(42), nil)

	resp, err := svc.History(context.Background(), dto.HistoryQuery{Limit: 10, Skip: 0})

	require.NoError(t, err)
	assert.Len(t, resp.Transcriptions, 10)
	assert.Equal(t, int64(42), resp.Total)
	assert.Equal(t, int64(10), resp.Limit)
	assert.Equal(t, int64(0), resp.Skip)
}

func TestHistoryZeroLimitKeepsTotal(t *testing.T) {
	svc, _, history := newTestService(t)

	history.On("List", mock.Anything, int64(0), int64(0)).
		Return([]model.TranscriptionRecord{}, int64(42), nil)

	resp, err := svc.History(context.Background(), dto.HistoryQuery{Limit: 0, Skip: 0})

	require.NoError(t, err)
	assert.Empty(t, resp.Transcriptions)
	assert.Equal(t, int64(42), resp.Total)
}

func TestHistoryPreviewTruncation(t *testing.T) {
	svc, _, history := newTestService(t)

	long := strings.Repeat("a", 150)
	history.On("List", mock.Anything, int64(10), int64(0)).
		Return([]model.TranscriptionRecord{{ID: "1", Text: long}, {ID: "2", Text: "short"}}, int64(2), nil)

	resp, err := svc.History(context.Background(), dto.HistoryQuery{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 100)+"...", resp.Transcriptions[0].Preview)
	assert.Equal(t, "short", resp.Transcriptions[1].Preview)
}

func TestHistoryStoreUnavailable(t *testing.T) {
	svc, _, history := newTestService(t)

	history.On("List", mock.Anything, int64(10), int64(0)).
		Return(nil, int64(0), repository.ErrUnavailable)

	_, err := svc.History(context.Background(), dto.HistoryQuery{Limit: 10})

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.KindStoreUnavailable, apiErr.Kind)
	assert.Equal(t, 500, apiErr.HTTPStatus())
}

func TestDelete(t *testing.T) {
	testCases := []struct {
		name         string
		daoFound     bool
		daoErr       error
		expectedKind apierrors.ErrorKind
	}{
		{name: "found", daoFound: true},
		{name: "not found", daoFound: false, expectedKind: apierrors.KindNotFound},
		{name: "malformed id", daoErr: repository.ErrInvalidID, expectedKind: apierrors.KindBadRequest},
		{name: "store down", daoErr: repository.ErrUnavailable, expectedKind: apierrors.KindStoreUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, history := newTestService(t)
			history.On("DeleteByID", mock.Anything, "some-id").Return(tc.daoFound, tc.daoErr)

			err := svc.Delete(context.Background(), "some-id")

			if tc.expectedKind == "" {
				assert.NoError(t, err)
				return
			}

			var apiErr *apierrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.expectedKind, apiErr.Kind)
		})
	}
}

func TestHealth(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		svc, _, history := newTestService(t)
		history.On("Ping", mock.Anything).Return(nil)

		resp := svc.Health(context.Background())

		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "connected", resp.Database)
	})

	t.Run("store unreachable", func(t *testing.T) {
		svc, _, history := newTestService(t)
		history.On("Ping", mock.Anything).Return(repository.ErrUnavailable)

		resp := svc.Health(context.Background())

		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "disconnected", resp.Database)
	})
}
