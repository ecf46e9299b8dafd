package agent

import (
	"context"
	"errors"
	"sync"
)

// ErrRunActive is returned when a session already has a live run.
var ErrRunActive = errors.New("session already has an active run")

// runRegistry enforces one live run per session and lets the API cancel
// a run from outside its request context.
type runRegistry struct {
	mu   sync.Mutex
	runs map[string]context.CancelFunc
}

func newRunRegistry() *runRegistry {
	return &runRegistry{runs: make(map[string]context.CancelFunc)}
}

// acquire registers a run for the session. Fails when one is live.
func (r *runRegistry) acquire(sessionID string, cancel context.CancelFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.runs[sessionID]; ok {
		return ErrRunActive
	}
	r.runs[sessionID] = cancel
	return nil
}

// release drops the session's registration.
func (r *runRegistry) release(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.runs, sessionID)
}

// cancel stops the session's live run. Reports whether one was found.
func (r *runRegistry) cancel(sessionID string) bool {
	r.mu.Lock()
	cancel, ok := r.runs[sessionID]
	r.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}
