package api

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/cloudsift/cloudsift/pkg/agent"
	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/services"
	"github.com/cloudsift/cloudsift/pkg/stream"
)

// ChatRequest starts or resumes an agent run.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Message   string `json:"message"`
	Resume    bool   `json:"resume,omitempty"`
}

// Chat runs the agent and streams its events as SSE. A missing
// session_id creates a fresh session whose id arrives in the first
// checkpoint frame's run metadata and in the X-Session-ID header.
func (s *Server) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fault.Wrap(fault.KindUsage, "invalid chat request body", err))
		return
	}
	if req.Message == "" && !req.Resume {
		writeError(c, fault.New(fault.KindUsage, "message is required"))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		userID := req.UserID
		if userID == "" {
			userID = userIDFrom(c)
		}
		created, err := s.sessions.CreateSession(c.Request.Context(), services.CreateSessionRequest{
			UserID: userID,
			Title:  truncateTitle(req.Message),
		})
		if err != nil {
			writeError(c, err)
			return
		}
		sessionID = created.ID
	}
	c.Header("X-Session-ID", sessionID)

	ch := stream.NewChannel(s.cfg.Stream)
	go func() {
		err := s.orch.Run(c.Request.Context(), agent.RunRequest{
			SessionID:   sessionID,
			UserMessage: req.Message,
			Resume:      req.Resume,
			Channel:     ch,
		})
		if err != nil {
			s.logger.Warn("agent run ended with error",
				"session_id", sessionID, "request_id", requestIDFrom(c), "error", err)
			// Runs refused before the loop starts never publish a frame;
			// surface the refusal and unblock the serving loop.
			_ = ch.Publish(stream.EventError, stream.ErrorData{
				Kind:    string(fault.KindOf(err)),
				Message: err.Error(),
			})
			ch.Close("")
		}
	}()

	ch.Serve(c)
}

// CancelRun stops the session's live run.
func (s *Server) CancelRun(c *gin.Context) {
	if s.orch.Cancel(c.Param("id")) {
		c.JSON(http.StatusAccepted, gin.H{"cancelled": true})
		return
	}
	c.JSON(http.StatusNotFound, errorBody{
		Error:         "no active run for session",
		CorrelationID: requestIDFrom(c),
	})
}

func userIDFrom(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "anonymous"
}

func truncateTitle(message string) string {
	const max = 80
	if len(message) <= max {
		return message
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}
	return message[:cut]
}
