package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cloudsift/cloudsift/ent"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/masking"
	"github.com/cloudsift/cloudsift/pkg/services"
	"github.com/cloudsift/cloudsift/pkg/stream"
	"github.com/cloudsift/cloudsift/pkg/tools"
)

// Nominal per-token prices used for session cost accounting.
const (
	inputTokenCostUSD  = 3.0 / 1_000_000
	outputTokenCostUSD = 15.0 / 1_000_000
)

// systemPrompt frames the investigation loop for the model.
const systemPrompt = `You are a log investigation assistant for a cloud observability platform.
You answer questions about production incidents by querying a canonical log store
through the tools provided. Ground every claim in tool results and cite the log ids
you relied on. Prefer narrow time windows and dry_run before broad scans. When you
have enough evidence, answer directly without further tool calls.`

// ToolExecutor runs one catalog tool. Implemented by the tool runtime.
type ToolExecutor interface {
	Execute(ctx context.Context, sessionID, runID, name string, rawInput []byte) *tools.Result
}

// CheckpointStore persists run checkpoints.
type CheckpointStore interface {
	Append(ctx context.Context, req services.AppendCheckpointRequest) (*ent.Checkpoint, error)
	LatestResumable(ctx context.Context, sessionID string) (*ent.Checkpoint, error)
}

// MessageStore persists conversation turns.
type MessageStore interface {
	AppendMessage(ctx context.Context, req services.AppendMessageRequest) (*ent.Message, error)
}

// SessionStore gates runs on session state and accumulates usage.
type SessionStore interface {
	RequireActive(ctx context.Context, sessionID string) (*ent.Session, error)
	RecordUsage(ctx context.Context, sessionID string, messages int, cost float64) error
}

// Orchestrator drives agent runs through the plan/act/observe loop.
type Orchestrator struct {
	llm         LLMClient
	tools       ToolExecutor
	sessions    SessionStore
	messages    MessageStore
	checkpoints CheckpointStore
	masker      *masking.Service
	cfg         config.AgentConfig
	registry    *runRegistry
	logger      *slog.Logger
}

// NewOrchestrator wires the orchestrator.
func NewOrchestrator(llm LLMClient, executor ToolExecutor, sessions SessionStore,
	messages MessageStore, checkpoints CheckpointStore, masker *masking.Service,
	cfg config.AgentConfig, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		llm:         llm,
		tools:       executor,
		sessions:    sessions,
		messages:    messages,
		checkpoints: checkpoints,
		masker:      masker,
		cfg:         cfg,
		registry:    newRunRegistry(),
		logger:      logger,
	}
}

// Cancel stops the session's live run, if any.
func (o *Orchestrator) Cancel(sessionID string) bool {
	return o.registry.cancel(sessionID)
}

// RunRequest starts or resumes a run. When Resume is set the latest
// non-terminal checkpoint restores the conversation and UserMessage may
// be empty.
type RunRequest struct {
	SessionID   string
	UserMessage string
	Resume      bool
	Channel     *stream.Channel
}

// Run executes one agent run to a terminal node, streaming events to the
// request channel. One run per session at a time; the whole run lives
// under the configured deadline.
func (o *Orchestrator) Run(ctx context.Context, req RunRequest) error {
	if _, err := o.sessions.RequireActive(ctx, req.SessionID); err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(ctx, o.cfg.RunTimeout)
	defer cancel()
	if err := o.registry.acquire(req.SessionID, cancel); err != nil {
		return err
	}
	defer o.registry.release(req.SessionID)

	state, err := o.initialState(runCtx, req)
	if err != nil {
		return err
	}

	started := time.Now()
	err = o.loop(runCtx, state, req.Channel)
	if err != nil {
		o.fail(runCtx, state, req.Channel, err)
	} else {
		o.finish(runCtx, state, req.Channel, started)
	}
	req.Channel.Close("")
	return err
}

// initialState builds a fresh state or restores one from the latest
// resumable checkpoint.
func (o *Orchestrator) initialState(ctx context.Context, req RunRequest) (*runState, error) {
	if req.Resume {
		cp, err := o.checkpoints.LatestResumable(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		state, err := stateFromBlob(cp.StateBlob)
		if err != nil {
			return nil, fault.Wrap(fault.KindDataIntegrity, "checkpoint state blob is corrupt", err)
		}
		// Mid-turn nodes restart their turn from plan.
		state.Node = NodePlan
		if req.UserMessage != "" {
			state.Messages = append(state.Messages, Message{Role: RoleUser, Content: req.UserMessage})
		}
		return state, nil
	}

	if strings.TrimSpace(req.UserMessage) == "" {
		return nil, fault.New(fault.KindUsage, "message must be non-empty")
	}
	state := &runState{
		RunID:     uuid.New().String(),
		SessionID: req.SessionID,
		Node:      NodePlan,
		Messages:  []Message{{Role: RoleUser, Content: req.UserMessage}},
	}
	if _, err := o.messages.AppendMessage(ctx, services.AppendMessageRequest{
		SessionID: req.SessionID,
		Role:      string(RoleUser),
		Content:   req.UserMessage,
	}); err != nil {
		return nil, err
	}
	return state, nil
}

// loop runs plan turns until the model answers without tool calls or a
// budget/deadline/cancellation stops it.
func (o *Orchestrator) loop(ctx context.Context, state *runState, ch *stream.Channel) error {
	for {
		if err := ctx.Err(); err != nil {
			return fault.Wrap(fault.KindCancelled, "run stopped", err)
		}

		state.Node = NodePlan
		if err := o.checkpoint(ctx, state, ch); err != nil {
			return err
		}

		text, calls, err := o.planTurn(ctx, state, ch)
		if err != nil {
			return err
		}

		o.appendAssistant(ctx, state, text, calls)

		stop, err := o.enforceBudget(ctx, state, ch)
		if err != nil {
			return err
		}
		if stop {
			continue
		}

		if len(calls) == 0 {
			return nil
		}

		state.Node = NodeAct
		if err := o.checkpoint(ctx, state, ch); err != nil {
			return err
		}
		results := o.act(ctx, state, calls, ch)

		state.Node = NodeObserve
		if err := o.checkpoint(ctx, state, ch); err != nil {
			return err
		}
		state.Messages = append(state.Messages, Message{Role: RoleUser, ToolResults: results})
	}
}

// planTurn streams one LLM call, forwarding text deltas and collecting
// tool calls.
func (o *Orchestrator) planTurn(ctx context.Context, state *runState, ch *stream.Channel) (string, []ToolCall, error) {
	llmCtx, cancel := context.WithTimeout(ctx, o.cfg.LLMTimeout)
	defer cancel()

	chunks, err := o.llm.Stream(llmCtx, Request{
		System:   systemPrompt,
		Messages: o.redacted(state.Messages),
		Tools:    catalogDefs(),
	})
	if err != nil {
		return "", nil, err
	}

	var (
		text  strings.Builder
		calls []ToolCall
	)
	for chunk := range chunks {
		switch c := chunk.(type) {
		case TextChunk:
			text.WriteString(c.Text)
			if err := ch.Publish(stream.EventToken, stream.TokenData{Text: c.Text}); err != nil {
				return "", nil, err
			}
		case ToolUseChunk:
			calls = append(calls, c.Call)
		case UsageChunk:
			state.TokensUsed += c.InputTokens + c.OutputTokens
		case ErrorChunk:
			return "", nil, c.Err
		}
	}
	return text.String(), calls, nil
}

// act executes the turn's tool calls with bounded fan-out. Calls past
// the per-turn cap are refused with a reified result so the model learns
// the limit instead of the run dying.
func (o *Orchestrator) act(ctx context.Context, state *runState, calls []ToolCall, ch *stream.Channel) []ToolResult {
	results := make([]ToolResult, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.ToolFanoutMax)
	for i, call := range calls {
		if i >= o.cfg.MaxToolCallsPerTurn {
			results[i] = ToolResult{
				ToolCallID: call.ID,
				Content:    fmt.Sprintf("refused: at most %d tool calls per turn", o.cfg.MaxToolCallsPerTurn),
				IsError:    true,
			}
			continue
		}
		g.Go(func() error {
			_ = ch.Publish(stream.EventToolCallStart, stream.ToolCallStartData{
				Tool:  call.Name,
				Input: json.RawMessage(call.Input),
			})
			res := o.tools.Execute(gctx, state.SessionID, state.RunID, call.Name, call.Input)
			_ = ch.Publish(stream.EventToolCallEnd, stream.ToolCallEndData{
				Tool:       call.Name,
				Status:     string(res.Status),
				Reason:     res.Reason,
				DurationMS: res.Metrics.DurationMS,
				Rows:       res.Metrics.Rows,
			})
			if len(res.LogIDs) > 0 {
				_ = ch.Publish(stream.EventCitation, stream.CitationData{LogIDs: res.LogIDs})
			}
			results[i] = toolResultFor(call, res)
			return nil
		})
	}
	_ = g.Wait()

	executed := min(len(calls), o.cfg.MaxToolCallsPerTurn)
	state.ToolCalls += executed
	return results
}

// enforceBudget applies the two-threshold token policy: at 80% the run
// takes its one summarize pass; at 90% after summarizing it fails.
// Returns stop=true when the caller should restart the turn after a
// summarize.
func (o *Orchestrator) enforceBudget(ctx context.Context, state *runState, ch *stream.Channel) (bool, error) {
	ratio := float64(state.TokensUsed) / float64(o.cfg.TokenBudgetMax)
	if ratio < 0.8 {
		return false, nil
	}

	if state.Summarized && ratio >= 0.9 {
		_ = ch.Publish(stream.EventTokenBudget, stream.TokenBudgetData{
			Used: state.TokensUsed, Max: o.cfg.TokenBudgetMax, Ratio: ratio, Action: "exhausted",
		})
		return false, fault.New(fault.KindBudgetExceeded,
			fmt.Sprintf("token budget exhausted: %d of %d", state.TokensUsed, o.cfg.TokenBudgetMax))
	}
	if state.Summarized {
		return false, nil
	}

	_ = ch.Publish(stream.EventTokenBudget, stream.TokenBudgetData{
		Used: state.TokensUsed, Max: o.cfg.TokenBudgetMax, Ratio: ratio, Action: "summarize",
	})
	state.Node = NodeSummarize
	if err := o.checkpoint(ctx, state, ch); err != nil {
		return false, err
	}
	if err := o.summarize(ctx, state); err != nil {
		return false, err
	}
	state.Summarized = true
	return true, nil
}

// summarize compresses the conversation into one assistant message so
// the run can keep going under the budget.
func (o *Orchestrator) summarize(ctx context.Context, state *runState) error {
	llmCtx, cancel := context.WithTimeout(ctx, o.cfg.LLMTimeout)
	defer cancel()

	prompt := append(o.redacted(state.Messages), Message{
		Role:    RoleUser,
		Content: "Summarize the investigation so far: the question, every tool call with its key findings, and what remains open. Be dense; this summary replaces the transcript.",
	})
	chunks, err := o.llm.Stream(llmCtx, Request{System: systemPrompt, Messages: prompt})
	if err != nil {
		return err
	}

	var summary strings.Builder
	for chunk := range chunks {
		switch c := chunk.(type) {
		case TextChunk:
			summary.WriteString(c.Text)
		case UsageChunk:
			state.TokensUsed += c.InputTokens + c.OutputTokens
		case ErrorChunk:
			return c.Err
		}
	}

	first := state.Messages[0]
	state.Messages = []Message{
		first,
		{Role: RoleAssistant, Content: "Investigation summary: " + summary.String()},
	}
	return nil
}

// checkpoint persists the state before a transition and announces it.
func (o *Orchestrator) checkpoint(ctx context.Context, state *runState, ch *stream.Channel) error {
	blob, err := state.blob()
	if err != nil {
		return err
	}
	cp, err := o.checkpoints.Append(ctx, services.AppendCheckpointRequest{
		SessionID: state.SessionID,
		RunID:     state.RunID,
		NodeID:    string(state.Node),
		Terminal:  state.Node.Terminal(),
		StateBlob: blob,
	})
	if err != nil {
		return fmt.Errorf("failed to checkpoint run %s at %s: %w", state.RunID, state.Node, err)
	}
	_ = ch.Publish(stream.EventCheckpoint, stream.CheckpointData{
		RunID:          state.RunID,
		SequenceNumber: cp.SequenceNumber,
		Node:           string(state.Node),
		Terminal:       state.Node.Terminal(),
	})
	return nil
}

// appendAssistant persists the assistant turn and keeps it in state.
func (o *Orchestrator) appendAssistant(ctx context.Context, state *runState, text string, calls []ToolCall) {
	state.Messages = append(state.Messages, Message{
		Role:      RoleAssistant,
		Content:   text,
		ToolCalls: calls,
	})
	if _, err := o.messages.AppendMessage(ctx, services.AppendMessageRequest{
		SessionID: state.SessionID,
		Role:      string(RoleAssistant),
		Content:   text,
		Tokens:    state.TokensUsed,
		ToolCalls: toolCallRecords(calls),
	}); err != nil {
		o.logger.Warn("failed to persist assistant message",
			"session_id", state.SessionID, "run_id", state.RunID, "error", err)
	}
}

// toolCallRecords renders tool calls for transcript storage.
func toolCallRecords(calls []ToolCall) []map[string]interface{} {
	if len(calls) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, len(calls))
	for i, call := range calls {
		out[i] = map[string]interface{}{
			"id":    call.ID,
			"name":  call.Name,
			"input": call.Input,
		}
	}
	return out
}

// finish writes the terminal done checkpoint and closes the stream.
func (o *Orchestrator) finish(ctx context.Context, state *runState, ch *stream.Channel, started time.Time) {
	state.Node = NodeDone
	if err := o.checkpoint(ctx, state, ch); err != nil {
		o.logger.Warn("failed to write done checkpoint", "run_id", state.RunID, "error", err)
	}
	cost := float64(state.TokensUsed) * (inputTokenCostUSD + outputTokenCostUSD) / 2
	if err := o.sessions.RecordUsage(ctx, state.SessionID, len(state.Messages), cost); err != nil {
		o.logger.Warn("failed to record session usage", "session_id", state.SessionID, "error", err)
	}
	_ = ch.Publish(stream.EventDone, stream.DoneData{
		RunID:       state.RunID,
		TokensUsed:  state.TokensUsed,
		ToolCalls:   state.ToolCalls,
		DurationMS:  time.Since(started).Milliseconds(),
		FinalAnswer: true,
	})
}

// fail writes the terminal checkpoint and the error frame. Cancellation
// and deadline both land here; cancelled runs get their own terminal node
// and the checkpoint carries the reason so a resumed session can see why
// the run stopped.
func (o *Orchestrator) fail(ctx context.Context, state *runState, ch *stream.Channel, cause error) {
	kind := fault.KindOf(cause)
	if errors.Is(cause, context.DeadlineExceeded) {
		kind = fault.KindTimeout
	}

	state.Node = NodeFailed
	if kind == fault.KindCancelled {
		state.Node = NodeCancelled
	}
	state.FailReason = cause.Error()

	// The run context may be the thing that failed.
	cpCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := o.checkpoint(cpCtx, state, ch); err != nil {
		o.logger.Warn("failed to write terminal checkpoint", "run_id", state.RunID, "error", err)
	}
	_ = ch.Publish(stream.EventError, stream.ErrorData{
		Kind:    string(kind),
		Message: cause.Error(),
	})
	o.logger.Error("agent run failed",
		"session_id", state.SessionID, "run_id", state.RunID, "kind", kind, "error", cause)
}

// redacted applies PII masking to every LLM-bound message.
func (o *Orchestrator) redacted(messages []Message) []Message {
	out := make([]Message, len(messages))
	for i, msg := range messages {
		redacted, _ := o.masker.Redact(msg.Content)
		msg.Content = redacted
		if len(msg.ToolResults) > 0 {
			results := make([]ToolResult, len(msg.ToolResults))
			for j, res := range msg.ToolResults {
				content, _ := o.masker.Redact(res.Content)
				res.Content = content
				results[j] = res
			}
			msg.ToolResults = results
		}
		out[i] = msg
	}
	return out
}

// catalogDefs declares the closed tool catalog to the model.
func catalogDefs() []ToolDef {
	kinds := tools.Kinds()
	defs := make([]ToolDef, 0, len(kinds))
	for _, k := range kinds {
		defs = append(defs, ToolDef{
			Name:        string(k),
			Description: k.Description(),
			Schema:      json.RawMessage(tools.SchemaJSON(k)),
		})
	}
	return defs
}

// toolResultFor renders a reified tool result for the model.
func toolResultFor(call ToolCall, res *tools.Result) ToolResult {
	if res.Status == tools.StatusError {
		return ToolResult{ToolCallID: call.ID, Content: res.Reason, IsError: true}
	}
	payload, err := json.Marshal(res.Data)
	if err != nil {
		return ToolResult{ToolCallID: call.ID, Content: "tool produced unserializable output", IsError: true}
	}
	return ToolResult{ToolCallID: call.ID, Content: string(payload)}
}
