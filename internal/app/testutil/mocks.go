package testutil

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"luminatext/internal/api/v1/dto"
	"luminatext/internal/app/api"
	"luminatext/internal/app/model"
)

// MockTranscriber is a testify mock for the speech-to-text gateway.
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, r io.Reader, fileName string) (*api.TranscriptionResult, error) {
	args := m.Called(ctx, r, fileName)
	if result := args.Get(0); result != nil {
		return result.(*api.TranscriptionResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTranscriber) Provider() string {
	return "openai"
}

func (m *MockTranscriber) Model() string {
	return "whisper-1"
}

// MockHistoryDAO is a testify mock for the document store.
type MockHistoryDAO struct {
	mock.Mock
}

func (m *MockHistoryDAO) Insert(ctx context.Context, rec *model.TranscriptionRecord) (string, error) {
	args := m.Called(ctx, rec)
	return args.String(0), args.Error(1)
}

func (m *MockHistoryDAO) List(ctx context.Context, limit, skip int64) ([]model.TranscriptionRecord, int64, error) {
	args := m.Called(ctx, limit, skip)
	var records []model.TranscriptionRecord
	if result := args.Get(0); result != nil {
		records = result.([]model.TranscriptionRecord)
	}
	return records, args.Get(1).(int64), args.Error(2)
}

func (m *MockHistoryDAO) DeleteByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockHistoryDAO) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHistoryDAO) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTranscriptionService is a testify mock for the orchestration service,
// used by handler tests.
type MockTranscriptionService struct {
	mock.Mock
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, r io.Reader, fileName string, sizeBytes int64) (*dto.TranscribeResponse, error) {
	args := m.Called(ctx, r, fileName, sizeBytes)
	if result := args.Get(0); result != nil {
		return result.(*dto.TranscribeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTranscriptionService) History(ctx context.Context, query dto.HistoryQuery) (*dto.HistoryResponse, error) {
	args := m.Called(ctx, query)
	if result := args.Get(0); result != nil {
		return result.(*dto.HistoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTranscriptionService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTranscriptionService) Health(ctx context.Context) *dto.HealthResponse {
	args := m.Called(ctx)
	return args.Get(0).(*dto.HealthResponse)
}
