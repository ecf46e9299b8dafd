// Package stream delivers agent run events to HTTP clients over
// server-sent events. Each run gets one bounded channel; sequence
// numbers start at 1 and increase strictly so clients can detect gaps
// after a reconnect.
package stream

import (
	"encoding/json"
	"time"
)

// EventType names one SSE frame type.
type EventType string

const (
	// EventToken carries an assistant text delta.
	EventToken EventType = "token"
	// EventToolCallStart announces a tool call before it runs.
	EventToolCallStart EventType = "tool_call_start"
	// EventToolCallEnd carries a tool call's reified result.
	EventToolCallEnd EventType = "tool_call_end"
	// EventCitation links assistant text to the log rows backing it.
	EventCitation EventType = "citation"
	// EventCheckpoint reports a persisted run checkpoint.
	EventCheckpoint EventType = "checkpoint"
	// EventTokenBudget reports budget consumption at phase boundaries.
	EventTokenBudget EventType = "token_budget"
	// EventError reports a terminal run failure.
	EventError EventType = "error"
	// EventDone closes a successful run.
	EventDone EventType = "done"
	// EventPing is the liveness heartbeat.
	EventPing EventType = "ping"
)

// Event is one frame on a run's stream.
type Event struct {
	Seq       uint64    `json:"seq"`
	Type      EventType `json:"type"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"ts"`
}

// encode renders the frame's data field. Unmarshalable payloads are a
// programming error; the frame degrades to an empty object.
func (e Event) encode() []byte {
	b, err := json.Marshal(e)
	if err != nil {
		b, _ = json.Marshal(Event{Seq: e.Seq, Type: e.Type, Timestamp: e.Timestamp})
	}
	return b
}

// TokenData is the payload of a token frame.
type TokenData struct {
	Text string `json:"text"`
}

// ToolCallStartData announces one tool call.
type ToolCallStartData struct {
	Tool         string `json:"tool"`
	InvocationID string `json:"invocation_id,omitempty"`
	Input        any    `json:"input,omitempty"`
}

// ToolCallEndData carries a finished tool call.
type ToolCallEndData struct {
	Tool       string `json:"tool"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	Rows       int    `json:"rows,omitempty"`
}

// CitationData links assistant output to source rows.
type CitationData struct {
	LogIDs []string `json:"log_ids"`
}

// CheckpointData reports a persisted checkpoint.
type CheckpointData struct {
	RunID          string `json:"run_id"`
	SequenceNumber int    `json:"sequence_number"`
	Node           string `json:"node"`
	Terminal       bool   `json:"terminal"`
}

// TokenBudgetData reports budget consumption.
type TokenBudgetData struct {
	Used   int     `json:"used"`
	Max    int     `json:"max"`
	Ratio  float64 `json:"ratio"`
	Action string  `json:"action,omitempty"`
}

// ErrorData is the payload of a terminal error frame.
type ErrorData struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// DoneData closes a successful run.
type DoneData struct {
	RunID       string `json:"run_id"`
	TokensUsed  int    `json:"tokens_used"`
	ToolCalls   int    `json:"tool_calls"`
	DurationMS  int64  `json:"duration_ms"`
	FinalAnswer bool   `json:"final_answer"`
}
