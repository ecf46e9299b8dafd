package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/ent"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/masking"
	"github.com/cloudsift/cloudsift/pkg/services"
	"github.com/cloudsift/cloudsift/pkg/stream"
	"github.com/cloudsift/cloudsift/pkg/tools"
)

// scriptedLLM replays canned responses and records every request.
type scriptedLLM struct {
	mu        sync.Mutex
	responses [][]Chunk
	requests  []Request
}

func (s *scriptedLLM) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	var resp []Chunk
	if len(s.responses) > 0 {
		resp = s.responses[0]
		s.responses = s.responses[1:]
	}
	s.mu.Unlock()

	out := make(chan Chunk)
	go func() {
		defer close(out)
		for _, c := range resp {
			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// blockingLLM parks until the run context dies.
type blockingLLM struct{}

func (b *blockingLLM) Stream(ctx context.Context, _ Request) (<-chan Chunk, error) {
	out := make(chan Chunk)
	go func() {
		defer close(out)
		<-ctx.Done()
		out <- ErrorChunk{Err: fault.Wrap(fault.KindCancelled, "LLM call stopped", ctx.Err())}
	}()
	return out, nil
}

type fakeExecutor struct {
	mu    sync.Mutex
	calls []string
	res   *tools.Result
}

func (f *fakeExecutor) Execute(_ context.Context, _, _, name string, _ []byte) *tools.Result {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
	if f.res != nil {
		return f.res
	}
	return &tools.Result{
		Tool:   tools.Kind(name),
		Status: tools.StatusCompleted,
		Data:   map[string]any{"rows": []any{}, "count": 0},
	}
}

type memCheckpoints struct {
	mu   sync.Mutex
	list []*ent.Checkpoint
}

func (m *memCheckpoints) Append(_ context.Context, req services.AppendCheckpointRequest) (*ent.Checkpoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := &ent.Checkpoint{
		SessionID:      req.SessionID,
		RunID:          req.RunID,
		NodeID:         req.NodeID,
		Terminal:       req.Terminal,
		StateBlob:      req.StateBlob,
		SequenceNumber: len(m.list) + 1,
	}
	m.list = append(m.list, cp)
	return cp, nil
}

func (m *memCheckpoints) LatestResumable(_ context.Context, _ string) (*ent.Checkpoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.list) == 0 {
		return nil, services.ErrNotFound
	}
	last := m.list[len(m.list)-1]
	if last.Terminal {
		return nil, services.ErrNotFound
	}
	return last, nil
}

func (m *memCheckpoints) nodes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.list))
	for i, cp := range m.list {
		out[i] = cp.NodeID
	}
	return out
}

type memMessages struct {
	mu   sync.Mutex
	list []services.AppendMessageRequest
}

func (m *memMessages) AppendMessage(_ context.Context, req services.AppendMessageRequest) (*ent.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = append(m.list, req)
	return &ent.Message{SessionID: req.SessionID, Content: req.Content}, nil
}

type memSessions struct{}

func (memSessions) RequireActive(_ context.Context, sessionID string) (*ent.Session, error) {
	return &ent.Session{ID: sessionID}, nil
}

func (memSessions) RecordUsage(_ context.Context, _ string, _ int, _ float64) error {
	return nil
}

func testAgentConfig() config.AgentConfig {
	return config.AgentConfig{
		TokenBudgetMax:      10000,
		ToolFanoutMax:       4,
		MaxToolCallsPerTurn: 6,
		ToolTimeout:         30 * time.Second,
		RunTimeout:          300 * time.Second,
		LLMTimeout:          60 * time.Second,
		PIIRedactionEnabled: true,
	}
}

type testHarness struct {
	orch        *Orchestrator
	llm         *scriptedLLM
	executor    *fakeExecutor
	checkpoints *memCheckpoints
	messages    *memMessages
}

func newHarness(t *testing.T, llm LLMClient, cfg config.AgentConfig) *testHarness {
	t.Helper()
	h := &testHarness{
		executor:    &fakeExecutor{},
		checkpoints: &memCheckpoints{},
		messages:    &memMessages{},
	}
	if s, ok := llm.(*scriptedLLM); ok {
		h.llm = s
	}
	h.orch = NewOrchestrator(llm, h.executor, memSessions{}, h.messages,
		h.checkpoints, masking.NewService(cfg.PIIRedactionEnabled), cfg, slog.Default())
	return h
}

// runAndCapture drives a run to completion while an SSE loop drains the
// channel, and returns the run error plus the raw SSE body.
func runAndCapture(t *testing.T, orch *Orchestrator, req RunRequest) (error, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	gc, _ := gin.CreateTestContext(rec)
	httpReq, err := http.NewRequest(http.MethodGet, "/api/chat", nil)
	require.NoError(t, err)
	gc.Request = httpReq

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		req.Channel.Serve(gc)
	}()

	runErr := orch.Run(context.Background(), req)
	wg.Wait()
	return runErr, rec.Body.String()
}

func newRunRequest(session string, msg string) RunRequest {
	return RunRequest{
		SessionID:   session,
		UserMessage: msg,
		Channel: stream.NewChannel(config.StreamConfig{
			HeartbeatInterval:   15 * time.Second,
			SlowConsumerTimeout: 30 * time.Second,
			BufferSize:          64,
		}),
	}
}

func TestOrchestrator_Run(t *testing.T) {
	t.Run("answer without tools reaches done", func(t *testing.T) {
		llm := &scriptedLLM{responses: [][]Chunk{{
			TextChunk{Text: "No errors in the last hour."},
			UsageChunk{InputTokens: 100, OutputTokens: 20},
		}}}
		h := newHarness(t, llm, testAgentConfig())

		err, body := runAndCapture(t, h.orch, newRunRequest("s1", "any checkout errors?"))
		require.NoError(t, err)

		assert.Contains(t, body, "event: token\n")
		assert.Contains(t, body, "No errors in the last hour.")
		assert.Contains(t, body, "event: done\n")
		assert.Equal(t, []string{"plan", "done"}, h.checkpoints.nodes())
		require.Len(t, h.messages.list, 2)
		assert.Equal(t, "user", h.messages.list[0].Role)
		assert.Equal(t, "assistant", h.messages.list[1].Role)
	})

	t.Run("tool call round trip feeds results back", func(t *testing.T) {
		input, _ := json.Marshal(map[string]any{"severity": "ERROR"})
		llm := &scriptedLLM{responses: [][]Chunk{
			{
				ToolUseChunk{Call: ToolCall{ID: "t1", Name: "log_search", Input: input}},
				UsageChunk{InputTokens: 100, OutputTokens: 30},
			},
			{
				TextChunk{Text: "Found nothing."},
				UsageChunk{InputTokens: 200, OutputTokens: 10},
			},
		}}
		h := newHarness(t, llm, testAgentConfig())
		h.executor.res = &tools.Result{
			Tool:   tools.KindLogSearch,
			Status: tools.StatusCompleted,
			Data:   map[string]any{"rows": []any{}, "count": 2},
			LogIDs: []string{"log-a", "log-b"},
		}

		err, body := runAndCapture(t, h.orch, newRunRequest("s1", "search errors"))
		require.NoError(t, err)

		assert.Equal(t, []string{"log_search"}, h.executor.calls)
		assert.Contains(t, body, "event: tool_call_start\n")
		assert.Contains(t, body, "event: tool_call_end\n")
		assert.Contains(t, body, "event: citation\n")
		assert.Contains(t, body, `"log_ids":["log-a","log-b"]`)
		assert.Equal(t, []string{"plan", "act", "observe", "plan", "done"}, h.checkpoints.nodes())

		require.Len(t, llm.requests, 2)
		second := llm.requests[1]
		last := second.Messages[len(second.Messages)-1]
		require.Len(t, last.ToolResults, 1)
		assert.Equal(t, "t1", last.ToolResults[0].ToolCallID)
		assert.False(t, last.ToolResults[0].IsError)

		// The persisted assistant turn carries the structured call record.
		require.Len(t, h.messages.list, 3)
		toolTurn := h.messages.list[1]
		require.Len(t, toolTurn.ToolCalls, 1)
		assert.Equal(t, "t1", toolTurn.ToolCalls[0]["id"])
		assert.Equal(t, "log_search", toolTurn.ToolCalls[0]["name"])
	})

	t.Run("excess tool calls in a turn are refused", func(t *testing.T) {
		cfg := testAgentConfig()
		cfg.MaxToolCallsPerTurn = 1
		llm := &scriptedLLM{responses: [][]Chunk{
			{
				ToolUseChunk{Call: ToolCall{ID: "t1", Name: "log_search", Input: []byte("{}")}},
				ToolUseChunk{Call: ToolCall{ID: "t2", Name: "log_aggregate", Input: []byte("{}")}},
				UsageChunk{InputTokens: 100, OutputTokens: 30},
			},
			{
				TextChunk{Text: "done"},
				UsageChunk{InputTokens: 100, OutputTokens: 5},
			},
		}}
		h := newHarness(t, llm, cfg)

		err, _ := runAndCapture(t, h.orch, newRunRequest("s1", "go"))
		require.NoError(t, err)

		assert.Equal(t, []string{"log_search"}, h.executor.calls)
		second := llm.requests[1]
		last := second.Messages[len(second.Messages)-1]
		require.Len(t, last.ToolResults, 2)
		assert.True(t, last.ToolResults[1].IsError)
		assert.Contains(t, last.ToolResults[1].Content, "at most 1 tool calls")
	})

	t.Run("budget triggers one summarize then exhaustion fails", func(t *testing.T) {
		cfg := testAgentConfig()
		cfg.TokenBudgetMax = 1000
		llm := &scriptedLLM{responses: [][]Chunk{
			{TextChunk{Text: "thinking"}, UsageChunk{InputTokens: 800, OutputTokens: 50}},
			{TextChunk{Text: "summary of findings"}, UsageChunk{InputTokens: 50, OutputTokens: 20}},
			{TextChunk{Text: "more"}, UsageChunk{InputTokens: 80, OutputTokens: 30}},
		}}
		h := newHarness(t, llm, cfg)

		err, body := runAndCapture(t, h.orch, newRunRequest("s1", "deep dive"))
		require.Error(t, err)
		assert.Equal(t, fault.KindBudgetExceeded, fault.KindOf(err))

		assert.Contains(t, body, `"action":"summarize"`)
		assert.Contains(t, body, `"action":"exhausted"`)
		assert.Contains(t, body, "event: error\n")
		nodes := h.checkpoints.nodes()
		assert.Contains(t, nodes, "summarize")
		assert.Equal(t, "failed", nodes[len(nodes)-1])

		// The summarize pass compacted the transcript for the next call.
		third := llm.requests[2]
		assert.LessOrEqual(t, len(third.Messages), 3)
	})

	t.Run("cancel tears the run down with a terminal checkpoint", func(t *testing.T) {
		h := newHarness(t, &blockingLLM{}, testAgentConfig())
		req := newRunRequest("s1", "investigate")

		done := make(chan error, 1)
		go func() {
			err, _ := runAndCapture(t, h.orch, req)
			done <- err
		}()

		require.Eventually(t, func() bool {
			return h.orch.Cancel("s1")
		}, 2*time.Second, 10*time.Millisecond)

		err := <-done
		require.Error(t, err)
		assert.Equal(t, fault.KindCancelled, fault.KindOf(err))
		nodes := h.checkpoints.nodes()
		require.NotEmpty(t, nodes)
		assert.Equal(t, "cancelled", nodes[len(nodes)-1])
	})

	t.Run("second run on the same session is refused", func(t *testing.T) {
		h := newHarness(t, &blockingLLM{}, testAgentConfig())
		req := newRunRequest("s1", "first")

		go func() {
			_, _ = runAndCapture(t, h.orch, req)
		}()
		require.Eventually(t, func() bool {
			h.orch.registry.mu.Lock()
			defer h.orch.registry.mu.Unlock()
			_, ok := h.orch.registry.runs["s1"]
			return ok
		}, 2*time.Second, 10*time.Millisecond)

		second := newRunRequest("s1", "second")
		err := h.orch.Run(context.Background(), second)
		assert.ErrorIs(t, err, ErrRunActive)

		h.orch.Cancel("s1")
	})

	t.Run("empty message is a usage error", func(t *testing.T) {
		h := newHarness(t, &scriptedLLM{}, testAgentConfig())
		err := h.orch.Run(context.Background(), newRunRequest("s1", "   "))
		require.Error(t, err)
		assert.Equal(t, fault.KindUsage, fault.KindOf(err))
	})
}

func TestOrchestrator_Resume(t *testing.T) {
	checkpoints := &memCheckpoints{}
	state := &runState{
		RunID:     "run-1",
		SessionID: "s1",
		Node:      NodeObserve,
		Messages: []Message{
			{Role: RoleUser, Content: "why is checkout failing?"},
			{Role: RoleAssistant, Content: "checking"},
		},
		TokensUsed: 500,
	}
	blob, err := state.blob()
	require.NoError(t, err)
	_, err = checkpoints.Append(context.Background(), services.AppendCheckpointRequest{
		SessionID: "s1", RunID: "run-1", NodeID: string(NodeObserve), StateBlob: blob,
	})
	require.NoError(t, err)

	llm := &scriptedLLM{responses: [][]Chunk{{
		TextChunk{Text: "Resumed and finished."},
		UsageChunk{InputTokens: 100, OutputTokens: 10},
	}}}
	h := newHarness(t, llm, testAgentConfig())
	h.checkpoints = checkpoints
	h.orch.checkpoints = checkpoints

	req := newRunRequest("s1", "")
	req.Resume = true
	err, body := runAndCapture(t, h.orch, req)
	require.NoError(t, err)

	assert.Contains(t, body, "Resumed and finished.")
	require.NotEmpty(t, llm.requests)
	assert.Equal(t, "why is checkout failing?", llm.requests[0].Messages[0].Content)
	// Resumed run keeps its id and token accounting.
	assert.Contains(t, body, `"run_id":"run-1"`)
}

func TestStateBlobRoundTrip(t *testing.T) {
	s := &runState{RunID: "r", SessionID: "s", Node: NodePlan,
		Messages: []Message{{Role: RoleUser, Content: "q"}}, TokensUsed: 42}
	blob, err := s.blob()
	require.NoError(t, err)
	restored, err := stateFromBlob(blob)
	require.NoError(t, err)
	assert.Equal(t, s, restored)

	_, err = stateFromBlob([]byte("not json"))
	require.Error(t, err)
}

func TestCatalogDefs(t *testing.T) {
	defs := catalogDefs()
	require.Len(t, defs, 5)
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
		assert.NotEmpty(t, d.Description)
		assert.True(t, strings.HasPrefix(string(d.Schema), "{"))
	}
	assert.Contains(t, names, "log_search")
	assert.Contains(t, names, "dry_run")
}
