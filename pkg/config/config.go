// Package config loads application settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Settings holds all runtime configuration for the service.
// Values come from environment variables; a .env file is loaded by main
// before this is read.
type Settings struct {
	// Server
	Host     string
	Port     int
	Debug    bool
	LogLevel string

	// Observability backends
	LokiURL       string
	CortexURL     string
	LokiTimeout   time.Duration
	CortexTimeout time.Duration

	// LLM provider selection: "anthropic", "ollama", or "gemini"
	LLMProvider string

	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicTimeout time.Duration

	OllamaBaseURL string
	OllamaModel   string
	OllamaTimeout time.Duration

	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	// Correlation
	CorrelationWindow          time.Duration
	CorrelationScoreThreshold  int
	SemanticCorrelationEnabled bool

	// RCA agent
	RCAMaxIterations     int
	RCAExpertContext     string
	RCAExpertContextFile string

	// Query cache
	CacheMaxEntries int
	CacheTTL        time.Duration
}

// Load reads settings from the environment, applying defaults.
func Load() (*Settings, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	s := &Settings{
		Host:     getEnvOrDefault("HOST", "0.0.0.0"),
		Port:     port,
		Debug:    getEnvBool("DEBUG", false),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),

		LokiURL:       getEnvOrDefault("LOKI_URL", "http://localhost:3100"),
		CortexURL:     getEnvOrDefault("CORTEX_URL", "http://localhost:9009"),
		LokiTimeout:   getEnvSeconds("LOKI_TIMEOUT_SECONDS", 30),
		CortexTimeout: getEnvSeconds("CORTEX_TIMEOUT_SECONDS", 30),

		LLMProvider: getEnvOrDefault("LLM_PROVIDER", "anthropic"),

		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:   getEnvOrDefault("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		AnthropicTimeout: getEnvSeconds("ANTHROPIC_TIMEOUT_SECONDS", 120),

		OllamaBaseURL: getEnvOrDefault("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   getEnvOrDefault("OLLAMA_MODEL", "llama3.1:8b"),
		// Local models are slower; give them a generous budget.
		OllamaTimeout: getEnvSeconds("OLLAMA_TIMEOUT_SECONDS", 300),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTimeout: getEnvSeconds("GEMINI_TIMEOUT_SECONDS", 120),

		CorrelationWindow:          getEnvSeconds("CORRELATION_WINDOW_SECONDS", 300),
		CorrelationScoreThreshold:  getEnvInt("CORRELATION_SCORE_THRESHOLD", 8),
		SemanticCorrelationEnabled: getEnvBool("SEMANTIC_CORRELATION_ENABLED", true),

		RCAMaxIterations:     getEnvInt("RCA_MAX_ITERATIONS", 10),
		RCAExpertContext:     os.Getenv("RCA_EXPERT_CONTEXT"),
		RCAExpertContextFile: os.Getenv("RCA_EXPERT_CONTEXT_FILE"),

		CacheMaxEntries: getEnvInt("CACHE_MAX_ENTRIES", 1000),
		CacheTTL:        getEnvSeconds("CACHE_TTL_SECONDS", 300),
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	switch s.LLMProvider {
	case "anthropic", "ollama", "gemini":
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q (expected anthropic, ollama, or gemini)", s.LLMProvider)
	}
	if s.RCAMaxIterations < 1 {
		return fmt.Errorf("RCA_MAX_ITERATIONS must be at least 1, got %d", s.RCAMaxIterations)
	}
	if s.CorrelationWindow <= 0 {
		return fmt.Errorf("CORRELATION_WINDOW_SECONDS must be positive")
	}
	return nil
}

// ExpertContext returns the custom expert context for the RCA agent.
// A context file takes precedence over the inline value.
func (s *Settings) ExpertContext() (string, error) {
	if s.RCAExpertContextFile != "" {
		data, err := os.ReadFile(s.RCAExpertContextFile)
		if err != nil {
			return "", fmt.Errorf("reading expert context file: %w", err)
		}
		return string(data), nil
	}
	return s.RCAExpertContext, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds)) * time.Second
}
