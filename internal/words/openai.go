package words

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	// ErrNoCredential is returned when no API key was configured.
	ErrNoCredential = errors.New("words: provider credential is not set")
	// ErrNoChoices is returned when the provider answered without a completion.
	ErrNoChoices = errors.New("words: completion has no choices")
)

// OpenAIConfig configures the OpenAI chat completions client.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // Optional; defaults to the public API
}

// OpenAICompleter implements Completer with the OpenAI chat completions API.
type OpenAICompleter struct {
	client openai.Client
	hasKey bool
}

// NewOpenAICompleter builds a completer. Retries are disabled: a failed call
// is answered with a fallback word instead.
func NewOpenAICompleter(cfg OpenAIConfig) *OpenAICompleter {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	key := strings.TrimSpace(cfg.APIKey)
	if key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}
	return &OpenAICompleter{
		client: openai.NewClient(opts...),
		hasKey: key != "",
	}
}

// Complete sends the system and user messages and returns the first choice.
func (c *OpenAICompleter) Complete(ctx context.Context, req Request) (string, error) {
	if !c.hasKey {
		return "", ErrNoCredential
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.Prompt),
		},
		MaxTokens:   openai.Int(req.MaxTokens),
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("words: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
