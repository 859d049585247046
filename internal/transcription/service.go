package transcription

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Service turns audio files into plain text with an OpenAI-compatible
// /audio/transcriptions endpoint.
type Service struct {
	client *openai.Client
	model  string
}

func NewService(client *openai.Client, model string) *Service {
	if model == "" {
		model = openai.Whisper1
	}
	return &Service{
		client: client,
		model:  model,
	}
}

// TranscribeAudio uploads the file at filePath and returns the transcript text.
func (s *Service) TranscribeAudio(ctx context.Context, filePath string) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.model,
		FilePath: filePath,
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	return resp.Text, nil
}
