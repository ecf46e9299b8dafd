// Package fault defines the shared error taxonomy for CloudSift.
// Every user-visible or cross-component error is classified into a Kind;
// HTTP and SSE surfaces map kinds to status codes and terminal frames.
package fault

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for surfacing and retry decisions.
type Kind string

const (
	// KindUsage indicates a caller fault (invalid input, missing filter).
	KindUsage Kind = "UsageError"
	// KindBudgetExceeded indicates the cost guard or token budget tripped.
	KindBudgetExceeded Kind = "BudgetExceeded"
	// KindTimeout indicates an external operation exceeded its deadline.
	KindTimeout Kind = "Timeout"
	// KindUnavailable indicates an external store is unreachable after retries.
	KindUnavailable Kind = "Unavailable"
	// KindDataIntegrity indicates a canonical-row invariant was violated at
	// write time. Never surfaced to chat callers — rows go to dead-letter.
	KindDataIntegrity Kind = "DataIntegrityError"
	// KindCancelled indicates cooperative cancellation.
	KindCancelled Kind = "CancelledError"
	// KindInternal indicates an unexpected error. Detail is logged, never returned.
	KindInternal Kind = "InternalError"
)

// HTTPStatus returns the HTTP status code for a kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindUsage:
		return http.StatusBadRequest
	case KindBudgetExceeded:
		return http.StatusTooManyRequests
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindCancelled:
		return 499 // client closed request
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified error with an optional wrapped cause.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap classifies an existing error.
func Wrap(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// Usagef creates a usage error with a formatted detail message.
func Usagef(format string, args ...any) *Error {
	return &Error{Kind: KindUsage, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from an error chain.
// Unclassified errors report KindInternal; context cancellation and
// deadline errors are classified even when unwrapped.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	var be *BudgetExceededError
	if errors.As(err, &be) {
		return KindBudgetExceeded
	}
	if errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled) {
		return KindCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindInternal
}

// Sentinel errors shared across components.
var (
	// ErrCancelled marks cooperative cancellation of a run.
	ErrCancelled = errors.New("operation cancelled")
)

// BudgetExceededError is returned by the cost guard when a query's dry-run
// estimate exceeds the bytes-scanned ceiling. It carries the figures the
// API surface must include in its response body.
type BudgetExceededError struct {
	EstimatedBytes int64 `json:"estimated_bytes"`
	Ceiling        int64 `json:"ceiling"`
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("BudgetExceeded: estimated %d bytes exceeds ceiling %d", e.EstimatedBytes, e.Ceiling)
}

// Kind implements classification without wrapping.
func (e *BudgetExceededError) Kind() Kind { return KindBudgetExceeded }

// IsBudgetExceeded reports whether err is a cost-guard rejection.
func IsBudgetExceeded(err error) (*BudgetExceededError, bool) {
	var be *BudgetExceededError
	if errors.As(err, &be) {
		return be, true
	}
	var fe *Error
	if errors.As(err, &fe) && fe.Kind == KindBudgetExceeded {
		return nil, true
	}
	return nil, false
}
