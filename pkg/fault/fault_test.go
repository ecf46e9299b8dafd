package fault

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("classified errors report their kind", func(t *testing.T) {
		assert.Equal(t, KindUsage, KindOf(New(KindUsage, "bad input")))
		assert.Equal(t, KindTimeout, KindOf(Wrap(KindTimeout, "slow", errors.New("deadline"))))
	})

	t.Run("wrapped classified errors unwrap", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(KindUnavailable, "store down"))
		assert.Equal(t, KindUnavailable, KindOf(err))
	})

	t.Run("budget rejections classify without wrapping", func(t *testing.T) {
		err := &BudgetExceededError{EstimatedBytes: 10, Ceiling: 5}
		assert.Equal(t, KindBudgetExceeded, KindOf(err))
	})

	t.Run("bare context errors classify", func(t *testing.T) {
		assert.Equal(t, KindCancelled, KindOf(context.Canceled))
		assert.Equal(t, KindTimeout, KindOf(context.DeadlineExceeded))
		assert.Equal(t, KindCancelled, KindOf(fmt.Errorf("run stopped: %w", context.Canceled)))
		assert.Equal(t, KindTimeout, KindOf(fmt.Errorf("query: %w", context.DeadlineExceeded)))
	})

	t.Run("cancellation sentinel classifies", func(t *testing.T) {
		assert.Equal(t, KindCancelled, KindOf(ErrCancelled))
	})

	t.Run("unclassified errors are internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("surprise")))
	})
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindUsage.HTTPStatus())
	assert.Equal(t, http.StatusTooManyRequests, KindBudgetExceeded.HTTPStatus())
	assert.Equal(t, http.StatusGatewayTimeout, KindTimeout.HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, KindUnavailable.HTTPStatus())
	assert.Equal(t, 499, KindCancelled.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindDataIntegrity.HTTPStatus())
}
