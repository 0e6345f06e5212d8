package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	configpkg "github.com/minhyannv/jobsync-ai/pkg/config"
)

// ErrEmptyCompletion is returned when the model answers with no choices.
var ErrEmptyCompletion = errors.New("empty completion choices")

// OpenAISender talks to any OpenAI-compatible chat completions endpoint and
// keeps the conversation history in memory.
type OpenAISender struct {
	client  openai.Client
	model   string
	history []openai.ChatCompletionMessageParamUnion
}

// NewOpenAISender builds a sender whose history starts with systemPrompt.
func NewOpenAISender(cfg configpkg.Config, systemPrompt string, extra ...option.RequestOption) (*OpenAISender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %s environment variable not set", configpkg.ErrMissingAPIKey, configpkg.APIKeyEnv(configpkg.ProviderOpenAI))
	}
	return &OpenAISender{
		client:  newOpenAIClient(cfg, extra...),
		model:   cfg.Model,
		history: []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(systemPrompt)},
	}, nil
}

func newOpenAIClient(cfg configpkg.Config, extra ...option.RequestOption) openai.Client {
	opts := []option.RequestOption{}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	opts = append(opts, extra...)
	return openai.NewClient(opts...)
}

// Send implements Sender. A failed turn leaves the history untouched.
func (s *OpenAISender) Send(ctx context.Context, message string) (string, error) {
	previousLen := len(s.history)
	s.history = append(s.history, openai.UserMessage(message))

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(s.model),
		Messages: s.history,
	})
	if err != nil {
		s.history = s.history[:previousLen]
		return "", fmt.Errorf("openai %s: %w", s.model, err)
	}
	if len(completion.Choices) == 0 {
		s.history = s.history[:previousLen]
		return "", ErrEmptyCompletion
	}

	reply := completion.Choices[0].Message
	s.history = append(s.history, reply.ToParam())
	return reply.Content, nil
}
