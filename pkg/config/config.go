package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported model providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Default models per provider.
const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

var (
	// ErrMissingAPIKey is returned when the provider credential is absent.
	ErrMissingAPIKey = errors.New("API key is not set")
	// ErrUnknownProvider is returned for a provider other than gemini or openai.
	ErrUnknownProvider = errors.New("unknown provider")
)

// Config holds all runtime configuration for the chat loop.
type Config struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	BaseURL     string `yaml:"base_url"`
	User        string `yaml:"user"`
	PersonaFile string `yaml:"persona"`
	JSON        bool   `yaml:"json"`
	Markdown    bool   `yaml:"markdown"`
	Verbose     bool   `yaml:"verbose"`

	// APIKey is only ever read from the environment.
	APIKey string `yaml:"-"`
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGemini,
	}
}

// LoadFile overlays the YAML file at path onto base.
func LoadFile(path string, base Config) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.APIKey = base.APIKey
	return cfg, nil
}

// APIKeyEnv names the environment variable holding the credential for provider.
func APIKeyEnv(provider string) string {
	if strings.EqualFold(strings.TrimSpace(provider), ProviderOpenAI) {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// FromEnv reads the credential, model and base URL for cfg.Provider from the
// environment. Empty values leave cfg unchanged, except the API key which is
// only ever taken from the environment.
func FromEnv(cfg Config, getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg.APIKey = strings.TrimSpace(getenv(APIKeyEnv(cfg.Provider)))
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderOpenAI:
		if v := strings.TrimSpace(getenv("OPENAI_MODEL")); v != "" {
			cfg.Model = v
		}
		if v := strings.TrimSpace(getenv("OPENAI_BASE_URL")); v != "" {
			cfg.BaseURL = v
		}
	default:
		if v := strings.TrimSpace(getenv("GEMINI_MODEL")); v != "" {
			cfg.Model = v
		}
		if v := strings.TrimSpace(getenv("GEMINI_BASE_URL")); v != "" {
			cfg.BaseURL = v
		}
	}
	return cfg
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.User = strings.TrimSpace(cfg.User)
	cfg.PersonaFile = strings.TrimSpace(cfg.PersonaFile)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)

	if cfg.Provider == "" {
		cfg.Provider = ProviderGemini
	}
	if cfg.Model == "" {
		switch cfg.Provider {
		case ProviderGemini:
			cfg.Model = DefaultGeminiModel
		case ProviderOpenAI:
			cfg.Model = DefaultOpenAIModel
		}
	}
	return cfg
}

// Validate checks the startup preconditions. It must run before any
// interaction with the user.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: %s environment variable not set", ErrMissingAPIKey, APIKeyEnv(c.Provider))
	}
	return nil
}
