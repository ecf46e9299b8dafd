// Package api exposes the HTTP surface: direct log queries behind the
// cost guard, session management, and the chat SSE endpoint that fronts
// the agent orchestrator.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cloudsift/cloudsift/pkg/agent"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/contract"
	"github.com/cloudsift/cloudsift/pkg/costguard"
	"github.com/cloudsift/cloudsift/pkg/database"
	"github.com/cloudsift/cloudsift/pkg/logstore"
	"github.com/cloudsift/cloudsift/pkg/planner"
	"github.com/cloudsift/cloudsift/pkg/services"
	"github.com/cloudsift/cloudsift/pkg/version"
)

// LogStore reads the canonical fact table.
type LogStore interface {
	List(ctx context.Context, q *planner.Query) ([]contract.CanonicalLogRow, error)
	Aggregate(ctx context.Context, q *planner.Query) ([]logstore.Bucket, error)
}

// Server wires handlers to the domain services.
type Server struct {
	cfg         *config.Config
	db          *database.Client
	planner     *planner.Planner
	guard       *costguard.Guard
	store       LogStore
	sessions    *services.SessionService
	messages    *services.MessageService
	invocations *services.InvocationService
	orch        *agent.Orchestrator
	logger      *slog.Logger
}

// NewServer creates the API server.
func NewServer(cfg *config.Config, db *database.Client, p *planner.Planner,
	guard *costguard.Guard, store LogStore, sessions *services.SessionService,
	messages *services.MessageService, invocations *services.InvocationService,
	orch *agent.Orchestrator, logger *slog.Logger) *Server {
	return &Server{
		cfg:         cfg,
		db:          db,
		planner:     p,
		guard:       guard,
		store:       store,
		sessions:    sessions,
		messages:    messages,
		invocations: invocations,
		orch:        orch,
		logger:      logger,
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(s.logger), securityHeaders())

	r.GET("/health", s.Health)

	api := r.Group("/api")
	{
		api.GET("/logs", s.ListLogs)
		api.GET("/logs/aggregate", s.AggregateLogs)
		api.GET("/traces/:trace_id", s.GetTrace)

		api.POST("/chat", s.Chat)

		api.POST("/sessions", s.CreateSession)
		api.GET("/sessions", s.ListSessions)
		api.GET("/sessions/:id", s.GetSession)
		api.GET("/sessions/:id/messages", s.ListMessages)
		api.GET("/sessions/:id/invocations", s.ListInvocations)
		api.POST("/sessions/:id/cancel", s.CancelRun)
		api.POST("/sessions/:id/archive", s.ArchiveSession)
	}
	return r
}

// Health reports process and database health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth := database.Health(ctx, s.db.DB())
	if !dbHealth.Healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Full(),
			"database": dbHealth,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"version":  version.Full(),
		"database": dbHealth,
	})
}
