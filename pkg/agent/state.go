package agent

import (
	"encoding/json"
	"fmt"
)

// Node is one orchestrator state. Terminal nodes never transition.
type Node string

const (
	NodePlan      Node = "plan"
	NodeAct       Node = "act"
	NodeObserve   Node = "observe"
	NodeSummarize Node = "summarize"
	NodeDone      Node = "done"
	NodeFailed    Node = "failed"
	NodeCancelled Node = "cancelled"
)

// Terminal reports whether the node ends the run.
func (n Node) Terminal() bool {
	return n == NodeDone || n == NodeFailed || n == NodeCancelled
}

// runState is everything a run needs to resume: the conversation so
// far, token accounting, and whether the one summarize pass already
// happened. Serialized into the checkpoint state blob.
type runState struct {
	RunID      string    `json:"run_id"`
	SessionID  string    `json:"session_id"`
	Node       Node      `json:"node"`
	Messages   []Message `json:"messages"`
	TokensUsed int       `json:"tokens_used"`
	ToolCalls  int       `json:"tool_calls"`
	Summarized bool      `json:"summarized"`
	FailReason string    `json:"fail_reason,omitempty"`
}

func (s *runState) blob() ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode run state: %w", err)
	}
	return b, nil
}

func stateFromBlob(b []byte) (*runState, error) {
	var s runState
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("failed to decode run state: %w", err)
	}
	return &s, nil
}
