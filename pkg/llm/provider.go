// Package llm abstracts the chat-completion providers used by the RCA agent
// behind a single tool-calling interface.
package llm

import "context"

// Role identifies the author of a conversation message.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// Message is one entry in the conversation transcript. Assistant messages
// may carry tool calls; tool messages carry the result for one call.
type Message struct {
	Role       Role
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	ToolName   string
}

// Tool describes a tool the model may call. InputSchema is a JSON Schema
// object.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// Response is a normalized provider response.
type Response struct {
	Content    string
	ToolCalls  []ToolCall
	StopReason string
	TokensUsed int
}

// HasToolCalls reports whether the response requests any tool invocations.
func (r *Response) HasToolCalls() bool {
	return len(r.ToolCalls) > 0
}

// IsComplete reports whether the model has finished its turn without
// requesting tools.
func (r *Response) IsComplete() bool {
	if r.HasToolCalls() {
		return false
	}
	switch r.StopReason {
	case "end_turn", "stop", "length", "max_tokens", "STOP":
		return true
	}
	return false
}

// Provider is a chat-completion backend with tool-calling support.
type Provider interface {
	// Name returns the provider identifier ("anthropic", "ollama", "gemini").
	Name() string
	// Model returns the model in use.
	Model() string
	// Chat sends the transcript and returns the next assistant turn.
	Chat(ctx context.Context, messages []Message, tools []Tool, systemPrompt string) (*Response, error)
}

// NewUserMessage builds a user text message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage echoes an assistant response back into the transcript.
func NewAssistantMessage(resp *Response) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   resp.Content,
		ToolCalls: resp.ToolCalls,
	}
}

// NewToolResultMessage builds a tool result message for one tool call.
func NewToolResultMessage(call ToolCall, result string) Message {
	return Message{
		Role:       RoleTool,
		Content:    result,
		ToolCallID: call.ID,
		ToolName:   call.Name,
	}
}
