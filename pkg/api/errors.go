package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudsift/cloudsift/pkg/agent"
	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/services"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error         string `json:"error"`
	Detail        string `json:"detail,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`

	// Set only for cost-guard rejections.
	EstimatedBytes int64 `json:"estimated_bytes,omitempty"`
	Ceiling        int64 `json:"ceiling,omitempty"`
}

// writeError maps service and fault errors to HTTP responses. Internal
// detail is logged with the correlation id, never returned.
func writeError(c *gin.Context, err error) {
	correlationID := requestIDFrom(c)

	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, errorBody{
			Error: "validation failed", Detail: validErr.Error(), CorrelationID: correlationID,
		})
		return
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody{
			Error: "resource not found", CorrelationID: correlationID,
		})
		return
	case errors.Is(err, services.ErrSessionArchived):
		c.JSON(http.StatusConflict, errorBody{
			Error: "session is archived", CorrelationID: correlationID,
		})
		return
	case errors.Is(err, agent.ErrRunActive):
		c.JSON(http.StatusConflict, errorBody{
			Error: "session already has an active run", CorrelationID: correlationID,
		})
		return
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorBody{
			Error: "resource already exists", CorrelationID: correlationID,
		})
		return
	}

	if budget, ok := fault.IsBudgetExceeded(err); ok && budget != nil {
		c.JSON(http.StatusTooManyRequests, errorBody{
			Error:          "query exceeds bytes-scanned ceiling",
			Detail:         budget.Error(),
			CorrelationID:  correlationID,
			EstimatedBytes: budget.EstimatedBytes,
			Ceiling:        budget.Ceiling,
		})
		return
	}

	kind := fault.KindOf(err)
	status := kind.HTTPStatus()
	body := errorBody{Error: string(kind), CorrelationID: correlationID}
	if status < http.StatusInternalServerError {
		body.Detail = err.Error()
	} else {
		slog.Error("Unexpected error", "correlation_id", correlationID, "error", err)
	}
	c.JSON(status, body)
}
