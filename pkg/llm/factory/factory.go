package factory

import (
	"fmt"

	"catalog-chat-be/internal/config"
	"catalog-chat-be/pkg/llm"
	"catalog-chat-be/pkg/llm/anthropic"
	"catalog-chat-be/pkg/llm/mock"
	"catalog-chat-be/pkg/llm/openai"
)

func NewLLMProvider(cfg config.LlmConfig) (llm.LLMProvider, error) {
	if cfg.MockMode {
		return mock.NewMockProvider(), nil
	}

	switch cfg.Provider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
		return anthropic.NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.Model, cfg.Timeout), nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		return openai.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model, cfg.Timeout), nil
	case "mock":
		return mock.NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
