package dto

import (
	"luminatext/internal/app/format"
	"luminatext/internal/app/model"
)

// PreviewLength is how many transcript characters history items expose.
const PreviewLength = 100

// TranscribeResponse is the payload returned after a successful transcription.
type TranscribeResponse struct {
	Text     string `json:"text"`
	FileName string `json:"fileName"`
	Duration string `json:"duration"`
	FileSize string `json:"fileSize"`
	Date     string `json:"date"`
}

// HistoryQuery represents the pagination window for listing transcriptions.
// Both values must be non-negative; the window size is otherwise uncapped.
type HistoryQuery struct {
	Limit int64 `form:"limit,default=10" binding:"min=0"`
	Skip  int64 `form:"skip,default=0" binding:"min=0"`
}

// HistoryItem is one transcription in a history listing.
type HistoryItem struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	FileName string `json:"fileName"`
	Duration string `json:"duration"`
	FileSize string `json:"fileSize"`
	Date     string `json:"date"`
	Preview  string `json:"preview"`
}

// HistoryResponse is a paginated history listing.
type HistoryResponse struct {
	Transcriptions []HistoryItem `json:"transcriptions"`
	Total          int64         `json:"total"`
	Limit          int64         `json:"limit"`
	Skip           int64         `json:"skip"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service and store status.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// ToTranscribeResponse converts a record to its response view.
func ToTranscribeResponse(rec *model.TranscriptionRecord) *TranscribeResponse {
	return &TranscribeResponse{
		Text:     rec.Text,
		FileName: rec.FileName,
		Duration: rec.Duration,
		FileSize: rec.FileSize,
		Date:     rec.Date,
	}
}

// ToHistoryItem converts a record to a listing item with its preview.
func ToHistoryItem(rec model.TranscriptionRecord) HistoryItem {
	preview := format.Preview(rec.Text, PreviewLength)
	if preview != rec.Text {
		preview += "..."
	}

	return HistoryItem{
		ID:       rec.ID,
		Text:     rec.Text,
		FileName: rec.FileName,
		Duration: rec.Duration,
		FileSize: rec.FileSize,
		Date:     rec.Date,
		Preview:  preview,
	}
}
