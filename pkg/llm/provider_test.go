package llm

import (
	"context"
	"testing"

	"github.com/incident-ops/rcad/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseIsComplete(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want bool
	}{
		{"end_turn no tools", Response{StopReason: "end_turn"}, true},
		{"stop no tools", Response{StopReason: "stop"}, true},
		{"length no tools", Response{StopReason: "length"}, true},
		{"tool calls pending", Response{StopReason: "tool_use", ToolCalls: []ToolCall{{Name: "query_loki"}}}, false},
		{"end_turn with tools", Response{StopReason: "end_turn", ToolCalls: []ToolCall{{Name: "query_loki"}}}, false},
		{"unknown stop reason", Response{StopReason: "tool_use"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.IsComplete())
		})
	}
}

func TestMessageBuilders(t *testing.T) {
	user := NewUserMessage("investigate this")
	assert.Equal(t, RoleUser, user.Role)

	resp := &Response{
		Content:   "checking logs",
		ToolCalls: []ToolCall{{ID: "c1", Name: "query_loki", Arguments: map[string]any{"logql_query": "{}"}}},
	}
	assistant := NewAssistantMessage(resp)
	assert.Equal(t, RoleAssistant, assistant.Role)
	assert.Equal(t, "checking logs", assistant.Content)
	require.Len(t, assistant.ToolCalls, 1)

	result := NewToolResultMessage(resp.ToolCalls[0], `{"logs": []}`)
	assert.Equal(t, RoleTool, result.Role)
	assert.Equal(t, "c1", result.ToolCallID)
	assert.Equal(t, "query_loki", result.ToolName)
}

func TestNewProvider_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := NewProvider(ctx, &config.Settings{LLMProvider: "anthropic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")

	_, err = NewProvider(ctx, &config.Settings{LLMProvider: "gemini"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	_, err = NewProvider(ctx, &config.Settings{LLMProvider: "openai"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")

	p, err := NewProvider(ctx, &config.Settings{LLMProvider: "anthropic", AnthropicAPIKey: "key", AnthropicModel: "claude-sonnet-4-20250514"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())
	assert.Equal(t, "claude-sonnet-4-20250514", p.Model())
}
