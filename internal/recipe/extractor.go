package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Extractor asks a chat model for a recipe, constraining the reply to a
// JSON object.
type Extractor struct {
	client *openai.Client
	model  string
}

func NewExtractor(client *openai.Client, model string) *Extractor {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Extractor{
		client: client,
		model:  model,
	}
}

// Complete sends prompt as a single user message and returns the raw text
// of the first choice.
func (e *Extractor) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
