package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
)

// langchainProvider adapts a langchaingo model (Ollama, Gemini) to the
// Provider interface.
type langchainProvider struct {
	name    string
	model   string
	llm     llms.Model
	timeout time.Duration
}

// NewOllamaProvider creates a provider backed by a local Ollama server.
func NewOllamaProvider(baseURL, model string, timeout time.Duration) (Provider, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(baseURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ollama client: %w", err)
	}
	return &langchainProvider{name: "ollama", model: model, llm: llm, timeout: timeout}, nil
}

// NewGeminiProvider creates a provider backed by the Google AI Gemini API.
func NewGeminiProvider(ctx context.Context, apiKey, model string, timeout time.Duration) (Provider, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &langchainProvider{name: "gemini", model: model, llm: llm, timeout: timeout}, nil
}

func (p *langchainProvider) Name() string  { return p.name }
func (p *langchainProvider) Model() string { return p.model }

// Chat implements Provider.
func (p *langchainProvider) Chat(ctx context.Context, messages []Message, tools []Tool, systemPrompt string) (*Response, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	content := toLangchainMessages(messages, systemPrompt)

	opts := []llms.CallOption{llms.WithTemperature(0)}
	if len(tools) > 0 {
		opts = append(opts, llms.WithTools(toLangchainTools(tools)))
	}

	resp, err := p.llm.GenerateContent(ctx, content, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s returned no choices", p.name)
	}

	choice := resp.Choices[0]
	out := &Response{
		Content:    choice.Content,
		StopReason: choice.StopReason,
		TokensUsed: tokensFromGenerationInfo(choice.GenerationInfo),
	}
	for _, call := range choice.ToolCalls {
		if call.FunctionCall == nil {
			continue
		}
		args := map[string]any{}
		if call.FunctionCall.Arguments != "" {
			// Local models sometimes emit invalid JSON arguments; keep going
			// with empty args and let normalization apply defaults.
			_ = json.Unmarshal([]byte(call.FunctionCall.Arguments), &args)
		}
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:        call.ID,
			Name:      call.FunctionCall.Name,
			Arguments: args,
		})
	}
	return out, nil
}

func toLangchainMessages(messages []Message, systemPrompt string) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(messages)+1)
	if systemPrompt != "" {
		out = append(out, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	}
	for _, m := range messages {
		switch m.Role {
		case RoleAssistant:
			mc := llms.MessageContent{Role: llms.ChatMessageTypeAI}
			if m.Content != "" {
				mc.Parts = append(mc.Parts, llms.TextContent{Text: m.Content})
			}
			for _, call := range m.ToolCalls {
				args, _ := json.Marshal(call.Arguments)
				mc.Parts = append(mc.Parts, llms.ToolCall{
					ID:   call.ID,
					Type: "function",
					FunctionCall: &llms.FunctionCall{
						Name:      call.Name,
						Arguments: string(args),
					},
				})
			}
			out = append(out, mc)
		case RoleTool:
			out = append(out, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: m.ToolCallID,
					Name:       m.ToolName,
					Content:    m.Content,
				}},
			})
		default:
			out = append(out, llms.TextParts(llms.ChatMessageTypeHuman, m.Content))
		}
	}
	return out
}

func toLangchainTools(tools []Tool) []llms.Tool {
	out := make([]llms.Tool, 0, len(tools))
	for _, t := range tools {
		out = append(out, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		})
	}
	return out
}

func tokensFromGenerationInfo(info map[string]any) int {
	total := 0
	for _, key := range []string{"PromptTokens", "CompletionTokens", "input_tokens", "output_tokens"} {
		switch v := info[key].(type) {
		case int:
			total += v
		case float64:
			total += int(v)
		}
	}
	return total
}
