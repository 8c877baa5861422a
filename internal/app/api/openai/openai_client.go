package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds an OpenAI API client for the given key. The key is injected
// by the caller so tests can substitute a stub transcriber instead.
func NewClient(apiKey string) *openai.Client {
	return openai.NewClient(apiKey)
}
