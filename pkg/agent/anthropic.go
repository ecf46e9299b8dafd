package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/sync/semaphore"

	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/fault"
)

// AnthropicClient implements LLMClient over the Anthropic messages API.
// A weighted semaphore caps concurrent streaming calls at the configured
// channel count.
type AnthropicClient struct {
	client    anthropic.Client
	model     string
	maxTokens int
	channels  *semaphore.Weighted
}

// NewAnthropicClient creates a client for the configured model. channels
// caps concurrent streams; non-positive values fall back to 4.
func NewAnthropicClient(apiKey string, cfg config.AgentConfig, channels int) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fault.New(fault.KindUsage, "anthropic API key is required")
	}
	if channels <= 0 {
		channels = 4
	}
	return &AnthropicClient{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     cfg.Model,
		maxTokens: 4096,
		channels:  semaphore.NewWeighted(int64(channels)),
	}, nil
}

// Stream issues one streaming messages call and converts the event
// stream into chunks. The returned channel closes when the call ends.
// Blocks while all LLM channels are in use.
func (c *AnthropicClient) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		Messages:  convertMessages(req.Messages),
		MaxTokens: int64(c.maxTokens),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = int64(req.MaxTokens)
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Type: "text", Text: req.System}}
	}
	if len(req.Tools) > 0 {
		tools, err := convertTools(req.Tools)
		if err != nil {
			return nil, err
		}
		params.Tools = tools
	}

	if err := c.channels.Acquire(ctx, 1); err != nil {
		return nil, fault.Wrap(fault.KindOf(err), "waiting for an LLM channel", err)
	}

	stream := c.client.Messages.NewStreaming(ctx, params)
	chunks := make(chan Chunk)
	go func() {
		defer c.channels.Release(1)
		defer close(chunks)

		var (
			currentCall  *ToolCall
			currentInput strings.Builder
			inputTokens  int
			outputTokens int
		)
		for stream.Next() {
			event := stream.Current()
			switch event.Type {
			case "message_start":
				start := event.AsMessageStart()
				inputTokens = int(start.Message.Usage.InputTokens)

			case "content_block_start":
				block := event.AsContentBlockStart().ContentBlock
				if block.Type == "tool_use" {
					use := block.AsToolUse()
					currentCall = &ToolCall{ID: use.ID, Name: use.Name}
					currentInput.Reset()
				}

			case "content_block_delta":
				delta := event.AsContentBlockDelta().Delta
				switch delta.Type {
				case "text_delta":
					if delta.Text != "" {
						chunks <- TextChunk{Text: delta.Text}
					}
				case "input_json_delta":
					currentInput.WriteString(delta.PartialJSON)
				}

			case "content_block_stop":
				if currentCall != nil {
					input := currentInput.String()
					if input == "" {
						input = "{}"
					}
					currentCall.Input = json.RawMessage(input)
					chunks <- ToolUseChunk{Call: *currentCall}
					currentCall = nil
				}

			case "message_delta":
				delta := event.AsMessageDelta()
				if delta.Usage.OutputTokens > 0 {
					outputTokens = int(delta.Usage.OutputTokens)
				}

			case "message_stop":
				chunks <- UsageChunk{InputTokens: inputTokens, OutputTokens: outputTokens}
				return
			}
		}
		if err := stream.Err(); err != nil {
			chunks <- ErrorChunk{Err: fault.Wrap(fault.KindUnavailable, "LLM stream failed", err)}
		}
	}()
	return chunks, nil
}

func convertMessages(messages []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		var content []anthropic.ContentBlockParamUnion
		if msg.Content != "" {
			content = append(content, anthropic.NewTextBlock(msg.Content))
		}
		for _, res := range msg.ToolResults {
			content = append(content, anthropic.NewToolResultBlock(res.ToolCallID, res.Content, res.IsError))
		}
		for _, call := range msg.ToolCalls {
			var input map[string]any
			if err := json.Unmarshal(call.Input, &input); err != nil {
				input = map[string]any{}
			}
			content = append(content, anthropic.NewToolUseBlock(call.ID, input, call.Name))
		}
		if msg.Role == RoleAssistant {
			out = append(out, anthropic.NewAssistantMessage(content...))
		} else {
			out = append(out, anthropic.NewUserMessage(content...))
		}
	}
	return out
}

func convertTools(tools []ToolDef) ([]anthropic.ToolUnionParam, error) {
	out := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, tool := range tools {
		var schema anthropic.ToolInputSchemaParam
		if err := json.Unmarshal(tool.Schema, &schema); err != nil {
			return nil, fmt.Errorf("invalid schema for tool %s: %w", tool.Name, err)
		}
		param := anthropic.ToolUnionParamOfTool(schema, tool.Name)
		param.OfTool.Description = anthropic.String(tool.Description)
		out = append(out, param)
	}
	return out, nil
}
