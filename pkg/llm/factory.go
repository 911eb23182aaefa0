package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/incident-ops/rcad/pkg/config"
)

// NewProvider creates the LLM provider selected by settings.
func NewProvider(ctx context.Context, settings *config.Settings) (Provider, error) {
	switch settings.LLMProvider {
	case "anthropic":
		if settings.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required when using the anthropic provider")
		}
		slog.Info("Using Anthropic provider", "model", settings.AnthropicModel)
		return NewAnthropicProvider(settings.AnthropicAPIKey, settings.AnthropicModel, settings.AnthropicTimeout), nil

	case "ollama":
		slog.Info("Using Ollama provider",
			"base_url", settings.OllamaBaseURL, "model", settings.OllamaModel)
		return NewOllamaProvider(settings.OllamaBaseURL, settings.OllamaModel, settings.OllamaTimeout)

	case "gemini":
		if settings.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when using the gemini provider")
		}
		slog.Info("Using Gemini provider", "model", settings.GeminiModel)
		return NewGeminiProvider(ctx, settings.GeminiAPIKey, settings.GeminiModel, settings.GeminiTimeout)

	default:
		return nil, fmt.Errorf("unknown LLM provider %q (available: anthropic, ollama, gemini)", settings.LLMProvider)
	}
}
