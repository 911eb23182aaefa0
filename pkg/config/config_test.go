package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", s.Host)
	assert.Equal(t, 8080, s.Port)
	assert.Equal(t, "http://localhost:3100", s.LokiURL)
	assert.Equal(t, "http://localhost:9009", s.CortexURL)
	assert.Equal(t, "anthropic", s.LLMProvider)
	assert.Equal(t, 10, s.RCAMaxIterations)
	assert.Equal(t, 8, s.CorrelationScoreThreshold)
	assert.True(t, s.SemanticCorrelationEnabled)
	assert.Equal(t, 1000, s.CacheMaxEntries)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("RCA_MAX_ITERATIONS", "5")
	t.Setenv("SEMANTIC_CORRELATION_ENABLED", "false")
	t.Setenv("CORRELATION_WINDOW_SECONDS", "600")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, s.Port)
	assert.Equal(t, "ollama", s.LLMProvider)
	assert.Equal(t, 5, s.RCAMaxIterations)
	assert.False(t, s.SemanticCorrelationEnabled)
	assert.Equal(t, float64(600), s.CorrelationWindow.Seconds())
}

func TestLoad_InvalidProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_PROVIDER")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_MalformedIntFallsBackToDefault(t *testing.T) {
	t.Setenv("RCA_MAX_ITERATIONS", "lots")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, s.RCAMaxIterations)
}

func TestExpertContext_Inline(t *testing.T) {
	s := &Settings{RCAExpertContext: "datacenter layout notes"}

	ctx, err := s.ExpertContext()
	require.NoError(t, err)
	assert.Equal(t, "datacenter layout notes", ctx)
}

func TestExpertContext_FileTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.md")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o600))

	s := &Settings{
		RCAExpertContext:     "inline",
		RCAExpertContextFile: path,
	}

	ctx, err := s.ExpertContext()
	require.NoError(t, err)
	assert.Equal(t, "from file", ctx)
}

func TestExpertContext_MissingFile(t *testing.T) {
	s := &Settings{RCAExpertContextFile: "/nonexistent/context.md"}

	_, err := s.ExpertContext()
	require.Error(t, err)
}
