// Package agent runs the investigation loop: the LLM plans, catalog
// tools act, observations feed back, and the run checkpoints before
// every transition so it can resume after a crash.
package agent

import (
	"context"
	"encoding/json"
)

// Role of one conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ToolCall is a tool request emitted by the model.
type ToolCall struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// ToolResult feeds a reified tool outcome back to the model.
type ToolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content"`
	IsError    bool   `json:"is_error"`
}

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role        Role         `json:"role"`
	Content     string       `json:"content,omitempty"`
	ToolCalls   []ToolCall   `json:"tool_calls,omitempty"`
	ToolResults []ToolResult `json:"tool_results,omitempty"`
}

// ToolDef declares one catalog tool to the model.
type ToolDef struct {
	Name        string
	Description string
	Schema      json.RawMessage
}

// Request is one streaming LLM call.
type Request struct {
	System    string
	Messages  []Message
	Tools     []ToolDef
	MaxTokens int
}

// Chunk is one unit of a streamed LLM response. Exactly one of the
// concrete types below.
type Chunk interface{ chunk() }

// TextChunk is an assistant text delta.
type TextChunk struct{ Text string }

// ToolUseChunk is a complete tool request.
type ToolUseChunk struct{ Call ToolCall }

// UsageChunk reports token consumption; arrives once per call.
type UsageChunk struct {
	InputTokens  int
	OutputTokens int
}

// ErrorChunk terminates the stream with a failure.
type ErrorChunk struct{ Err error }

func (TextChunk) chunk()    {}
func (ToolUseChunk) chunk() {}
func (UsageChunk) chunk()   {}
func (ErrorChunk) chunk()   {}

// LLMClient streams model responses. The channel closes when the call
// completes; an ErrorChunk is always the last chunk on failure.
type LLMClient interface {
	Stream(ctx context.Context, req Request) (<-chan Chunk, error)
}
