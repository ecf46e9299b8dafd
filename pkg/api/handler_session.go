package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/services"
)

// CreateSessionRequest is the POST /api/sessions body.
type CreateSessionRequest struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`
}

// CreateSession creates an empty session for the caller.
func (s *Server) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fault.Wrap(fault.KindUsage, "invalid session request body", err))
		return
	}
	created, err := s.sessions.CreateSession(c.Request.Context(), services.CreateSessionRequest{
		UserID: userIDFrom(c),
		Title:  req.Title,
		Tags:   req.Tags,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListSessions pages the caller's sessions, most recently active first.
// The user_id query parameter overrides the X-User-ID header.
func (s *Server) ListSessions(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	userID := c.Query("user_id")
	if userID == "" {
		userID = userIDFrom(c)
	}
	sessions, err := s.sessions.ListSessions(c.Request.Context(), userID, c.Query("status"), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

// GetSession returns one session.
func (s *Server) GetSession(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListMessages pages a session's transcript in sequence order.
func (s *Server) ListMessages(c *gin.Context) {
	afterSeq := intQuery(c, "after_seq", 0)
	limit := intQuery(c, "limit", 100)
	messages, err := s.messages.ListMessages(c.Request.Context(), c.Param("id"), afterSeq, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}

// ListInvocations returns a session's tool telemetry in start order.
func (s *Server) ListInvocations(c *gin.Context) {
	invocations, err := s.invocations.ListForSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invocations": invocations, "count": len(invocations)})
}

// ArchiveSession archives a session; archived sessions refuse new runs.
func (s *Server) ArchiveSession(c *gin.Context) {
	session, err := s.sessions.ArchiveSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	return def
}
