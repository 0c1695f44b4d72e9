package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event logging. Middleware order: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, rec RequestRecorder, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown phrasing provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, rec, log), cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from AULA_* configuration, falling
// back to key discovery when no explicit provider is configured.
func NewProviderFromEnv(ctx context.Context, rec RequestRecorder, log *zap.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, rec, log)
}
