package upload

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"luminatext/internal/app/format"
)

// DefaultMaxFileSize is the upload ceiling applied when MAX_FILE_SIZE is unset.
const DefaultMaxFileSize int64 = 104857600 // 100 MB

// DefaultAllowedExtensions lists the media formats accepted for transcription.
var DefaultAllowedExtensions = []string{
	".mp3", ".mp4", ".mpeg", ".mpga", ".m4a", ".wav", ".webm", ".ogg", ".flac", ".opus",
}

// ValidationError reports why an upload was rejected before reaching the provider.
type ValidationError struct {
	Reason  Reason
	Message string
}

// Reason classifies a validation failure.
type Reason string

const (
	ReasonUnsupportedFormat Reason = "unsupported_format"
	ReasonFileTooLarge      Reason = "file_too_large"
	ReasonEmptyFile         Reason = "empty_file"
)

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate gates an upload on extension and size. The extension check is
// case-insensitive. A zero-byte payload is rejected regardless of extension.
func Validate(fileName string, sizeBytes, maxSizeBytes int64, allowed []string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !extensionAllowed(ext, allowed) {
		return &ValidationError{
			Reason:  ReasonUnsupportedFormat,
			Message: fmt.Sprintf("Unsupported file format. Allowed formats: %s", joinSorted(allowed)),
		}
	}

	if sizeBytes > maxSizeBytes {
		return &ValidationError{
			Reason:  ReasonFileTooLarge,
			Message: fmt.Sprintf("File size exceeds %s limit", format.Size(maxSizeBytes)),
		}
	}

	if sizeBytes == 0 {
		return &ValidationError{
			Reason:  ReasonEmptyFile,
			Message: "Empty file uploaded",
		}
	}

	return nil
}

func extensionAllowed(ext string, allowed []string) bool {
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}

func joinSorted(allowed []string) string {
	sorted := make([]string, len(allowed))
	copy(sorted, allowed)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
