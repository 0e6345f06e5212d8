package chat

import (
	"context"
	"fmt"

	configpkg "github.com/minhyannv/jobsync-ai/pkg/config"
)

// NewSender builds the Sender for cfg.Provider.
func NewSender(ctx context.Context, cfg configpkg.Config, systemPrompt string) (Sender, error) {
	switch cfg.Provider {
	case configpkg.ProviderGemini:
		s, err := NewGeminiSender(ctx, cfg, systemPrompt)
		if err != nil {
			return nil, err
		}
		return s, nil
	case configpkg.ProviderOpenAI:
		s, err := NewOpenAISender(cfg, systemPrompt)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", configpkg.ErrUnknownProvider, cfg.Provider)
	}
}
