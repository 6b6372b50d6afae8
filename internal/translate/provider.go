package translate

import (
	"context"
	"fmt"
)

// Provider is a translation backend. Translate submits one prompt and
// returns the raw model reply.
type Provider interface {
	Translate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Config holds common configuration for translation providers.
type Config struct {
	// Provider selects the backend, "gemini" or "openai".
	Provider string
	// APIKey authenticates against the selected service.
	APIKey string
	// Model overrides the provider's default model.
	Model string
}

// NewProvider creates the configured provider, wrapped in a circuit
// breaker.
func NewProvider(config *Config) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch config.Provider {
	case "gemini", "":
		p, err = NewGeminiProvider(config)
	case "openai":
		p, err = NewOpenAIProvider(config)
	default:
		return nil, fmt.Errorf("unknown translation provider: %s (use 'gemini' or 'openai')", config.Provider)
	}
	if err != nil {
		return nil, err
	}
	return NewBreakerProvider(p), nil
}
