package model

import (
	"time"
)

// TranscriptionRecord is a single persisted transcription result.
// Records are written whole at insertion time and never updated in place.
type TranscriptionRecord struct {
	ID              string         `bson:"_id,omitempty" json:"id"`
	Text            string         `bson:"text" json:"text"`
	FileName        string         `bson:"fileName" json:"fileName"`
	Duration        string         `bson:"duration" json:"duration"`
	FileSize        string         `bson:"fileSize" json:"fileSize"`
	Date            string         `bson:"date" json:"date"`
	DurationSeconds float64        `bson:"durationSeconds" json:"-"`
	FileSizeBytes   int64          `bson:"fileSizeBytes" json:"-"`
	CreatedAt       time.Time      `bson:"createdAt" json:"-"`
	Metadata        RecordMetadata `bson:"metadata" json:"-"`
}

// RecordMetadata identifies the provider and model that produced the transcript.
type RecordMetadata struct {
	Provider string `bson:"provider" json:"provider"`
	Model    string `bson:"model" json:"model"`
}
