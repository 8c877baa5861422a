package whisper

import (
	"context"
	"io"

	"github.com/sashabaranov/go-openai"

	"luminatext/internal/app/api"
)

const providerName = "openai"

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client, model: openai.Whisper1}
}

// Transcribe uploads the media stream and returns the transcript together with
// the provider-reported duration. The verbose JSON response format is required
// because the plain format omits duration.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, r io.Reader, fileName string) (*api.TranscriptionResult, error) {
	req := openai.AudioRequest{
		Model:    rt.model,
		Reader:   r,
		FilePath: fileName,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, &api.ProviderError{Provider: providerName, Err: err}
	}

	return &api.TranscriptionResult{
		Text:            resp.Text,
		DurationSeconds: resp.Duration,
	}, nil
}

func (rt *RemoteTranscriber) Provider() string {
	return providerName
}

func (rt *RemoteTranscriber) Model() string {
	return rt.model
}
