package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloudsift/cloudsift/pkg/contract"
	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/planner"
)

// queryContext bounds cost checks and fact-table reads under the
// configured query timeout.
func (s *Server) queryContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), s.cfg.Query.QueryTimeout)
}

// parseLogQuery reads the shared list/aggregate query parameters.
func parseLogQuery(c *gin.Context) (*planner.LogQueryRequest, error) {
	req := &planner.LogQueryRequest{
		Severity: c.Query("severity"),
		Service:  c.Query("service"),
		Search:   c.Query("search"),
		TraceID:  c.Query("trace_id"),
		GroupBy:  contract.GroupByColumn(c.Query("group_by")),
	}
	for param, dst := range map[string]*int{
		"hours": &req.TimeWindowHours,
		"limit": &req.Limit,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fault.Usagef("%s must be an integer, got %q", param, raw)
		}
		*dst = v
	}
	return req, nil
}

// ListLogs serves filtered canonical rows, newest first.
func (s *Server) ListLogs(c *gin.Context) {
	req, err := parseLogQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	q, err := s.planner.BuildList(req)
	if err != nil {
		writeError(c, err)
		return
	}
	ctx, cancel := s.queryContext(c)
	defer cancel()
	estimated, err := s.guard.Check(ctx, q)
	if err != nil {
		writeError(c, err)
		return
	}
	rows, err := s.store.List(ctx, q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"count":           len(rows),
		"data":            rows,
		"estimated_bytes": estimated,
	})
}

// AggregateLogs serves bucket counts over a closed dimension.
func (s *Server) AggregateLogs(c *gin.Context) {
	req, err := parseLogQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	q, err := s.planner.BuildAggregate(req)
	if err != nil {
		writeError(c, err)
		return
	}
	ctx, cancel := s.queryContext(c)
	defer cancel()
	estimated, err := s.guard.Check(ctx, q)
	if err != nil {
		writeError(c, err)
		return
	}
	buckets, err := s.store.Aggregate(ctx, q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group_by":        req.GroupBy,
		"buckets":         buckets,
		"estimated_bytes": estimated,
	})
}

// GetTrace reconstructs one trace's timeline, oldest span first.
func (s *Server) GetTrace(c *gin.Context) {
	windowHours := 0
	if raw := c.Query("hours"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, fault.Usagef("hours must be an integer, got %q", raw))
			return
		}
		windowHours = v
	}

	q, err := s.planner.BuildTrace(c.Param("trace_id"), windowHours, 0)
	if err != nil {
		writeError(c, err)
		return
	}
	ctx, cancel := s.queryContext(c)
	defer cancel()
	if _, err := s.guard.Check(ctx, q); err != nil {
		writeError(c, err)
		return
	}
	rows, err := s.store.List(ctx, q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"trace_id": c.Param("trace_id"),
		"rows":     rows,
		"count":    len(rows),
	})
}
