package chat

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	configpkg "github.com/minhyannv/jobsync-ai/pkg/config"
)

// GeminiSender talks to the Gemini API through one chat session, so the
// conversation history is held by the session object.
type GeminiSender struct {
	chat  *genai.Chat
	model string
}

// NewGeminiSender opens a chat session with systemPrompt as the system
// instruction.
func NewGeminiSender(ctx context.Context, cfg configpkg.Config, systemPrompt string) (*GeminiSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %s environment variable not set", configpkg.ErrMissingAPIKey, configpkg.APIKeyEnv(configpkg.ProviderGemini))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	session, err := client.Chats.Create(ctx, cfg.Model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create gemini chat: %w", err)
	}

	return &GeminiSender{chat: session, model: cfg.Model}, nil
}

// Send implements Sender.
func (s *GeminiSender) Send(ctx context.Context, message string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", s.model, err)
	}
	return resp.Text(), nil
}
