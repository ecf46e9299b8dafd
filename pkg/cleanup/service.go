// Package cleanup provides data retention services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/services"
)

// Service periodically enforces retention policies:
//   - Archives sessions with no activity past the idle window
//   - Prunes dead letters past their TTL
//
// All operations are idempotent and safe to run from multiple replicas.
// The vector index runs its own TTL reaper; it is not handled here.
type Service struct {
	config      config.RetentionConfig
	sessions    *services.SessionService
	deadLetters *services.DeadLetterService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service.
func NewService(
	cfg config.RetentionConfig,
	sessions *services.SessionService,
	deadLetters *services.DeadLetterService,
) *Service {
	return &Service{
		config:      cfg,
		sessions:    sessions,
		deadLetters: deadLetters,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"session_idle_days", s.config.SessionIdleDays,
		"dead_letter_ttl", s.config.DeadLetterTTL,
		"interval", s.config.Interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single retention pass.
func (s *Service) RunOnce(ctx context.Context) {
	s.archiveIdleSessions(ctx)
	s.pruneDeadLetters(ctx)
}

func (s *Service) archiveIdleSessions(ctx context.Context) {
	count, err := s.sessions.ArchiveIdleSessions(ctx, s.config.SessionIdleDays)
	if err != nil {
		slog.Error("Retention: archive idle sessions failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: archived idle sessions", "count", count)
	}
}

func (s *Service) pruneDeadLetters(ctx context.Context) {
	count, err := s.deadLetters.PruneOld(ctx, s.config.DeadLetterTTL)
	if err != nil {
		slog.Error("Retention: dead letter prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned dead letters", "count", count)
	}
}
