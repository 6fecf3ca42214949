package llm

import (
	"context"
	"fmt"
	"strings"
)

// ProviderConfig selects and configures an LLM provider.
type ProviderConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

// NewClient builds the configured provider client. An empty provider means
// the prompt-interpretation feature is disabled; callers get nil, nil.
func NewClient(ctx context.Context, cfg ProviderConfig) (LLMClient, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "":
		return nil, nil

	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "claude":
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
