package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/ent"
	"github.com/cloudsift/cloudsift/pkg/agent"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/costguard"
	"github.com/cloudsift/cloudsift/pkg/masking"
	"github.com/cloudsift/cloudsift/pkg/planner"
	"github.com/cloudsift/cloudsift/pkg/services"
	testdb "github.com/cloudsift/cloudsift/test/database"
)

func sessionTestServer(t *testing.T) (*Server, *services.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	client := testdb.NewTestClient(t)

	cfg := &config.Config{
		Query: config.QueryConfig{
			MaxBytesScanned:        50 << 30,
			RequirePartitionFilter: true,
			DefaultLimit:           100,
			MaxLimit:               1000,
			DefaultTimeWindowHours: 24,
			MaxTimeWindowHours:     720,
			QueryTimeout:           60 * time.Second,
		},
		Agent: config.AgentConfig{
			TokenBudgetMax:      10000,
			ToolFanoutMax:       4,
			MaxToolCallsPerTurn: 6,
			RunTimeout:          300 * time.Second,
		},
	}
	sessions := services.NewSessionService(client.Client)
	messages := services.NewMessageService(client.Client)
	invocations := services.NewInvocationService(client.Client)
	orch := agent.NewOrchestrator(nil, nil, nil, nil, nil,
		masking.NewService(false), cfg.Agent, slog.Default())

	s := NewServer(cfg, client, planner.New(cfg.Query),
		costguard.New(&fakeEstimator{}, cfg.Query.MaxBytesScanned), &fakeLogStore{},
		sessions, messages, invocations, orch, slog.Default())
	return s, sessions
}

func TestSessionEndpoints(t *testing.T) {
	s, sessions := sessionTestServer(t)
	router := s.Router()

	post := func(t *testing.T, target string, payload any, user string) *httptest.ResponseRecorder {
		t.Helper()
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		if user != "" {
			req.Header.Set("X-User-ID", user)
		}
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("create then fetch", func(t *testing.T) {
		rec := post(t, "/api/sessions", CreateSessionRequest{Title: "checkout incident"}, "alice")
		require.Equal(t, http.StatusCreated, rec.Code)

		var created ent.Session
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		require.NotEmpty(t, created.ID)

		get := doRequest(t, s, http.MethodGet, "/api/sessions/"+created.ID)
		require.Equal(t, http.StatusOK, get.Code)
		assert.Contains(t, get.Body.String(), "checkout incident")
	})

	t.Run("list is scoped to the caller", func(t *testing.T) {
		_ = post(t, "/api/sessions", CreateSessionRequest{Title: "bob session"}, "bob")

		rec := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/api/sessions", nil)
		require.NoError(t, err)
		req.Header.Set("X-User-ID", "bob")
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "bob session")
		assert.NotContains(t, rec.Body.String(), "checkout incident")
	})

	t.Run("unknown session is a 404", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/sessions/nope")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("archive then chat refusal shape", func(t *testing.T) {
		created, err := sessions.CreateSession(t.Context(), services.CreateSessionRequest{
			UserID: "carol", Title: "to archive",
		})
		require.NoError(t, err)

		rec := post(t, "/api/sessions/"+created.ID+"/archive", struct{}{}, "carol")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "archived")
	})

	t.Run("messages list empty session", func(t *testing.T) {
		created, err := sessions.CreateSession(t.Context(), services.CreateSessionRequest{
			UserID: "dave", Title: "empty",
		})
		require.NoError(t, err)

		rec := doRequest(t, s, http.MethodGet, "/api/sessions/"+created.ID+"/messages")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":0`)
	})
}
