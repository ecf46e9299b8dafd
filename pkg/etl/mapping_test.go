package etl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/pkg/contract"
)

var testTS = time.Date(2026, 8, 20, 14, 32, 11, 0, time.UTC)

func TestMapSystemLog(t *testing.T) {
	row := &SourceRow{
		InsertID: "sys-1",
		EventTS:  testTS,
		Severity: "warning",
		Resource: map[string]string{"service": "auth", "type": "vm_instance"},
		Payload:  "disk usage at 91%\ndetails follow",
	}
	r, err := mapSystemLog(row)
	require.NoError(t, err)

	assert.Equal(t, contract.SeverityWarning, r.Severity)
	assert.Equal(t, 400, r.SeverityLevel)
	assert.Equal(t, "auth", r.ServiceName)
	assert.Equal(t, "vm_instance", r.ResourceType)
	assert.Equal(t, "disk usage at 91%", r.Message)
	assert.Equal(t, row.Payload, r.TextPayload)
	assert.True(t, r.HasTrace, "trace ids are synthesized when absent")
	assert.Len(t, r.TraceID, 32)
	assert.False(t, r.IsError)
}

func TestMapSystemLog_EmptyPayload(t *testing.T) {
	_, err := mapSystemLog(&SourceRow{InsertID: "x", EventTS: testTS, Payload: "  "})
	assert.Error(t, err)
}

func TestMapApplicationLog(t *testing.T) {
	t.Run("uses native trace context", func(t *testing.T) {
		row := &SourceRow{
			InsertID: "app-1",
			EventTS:  testTS,
			Severity: "ERROR",
			Labels:   map[string]string{"app": "checkout"},
			Payload:  `{"message":"payment declined","trace_id":"0123456789abcdef0123456789abcdef","span_id":"0123456789abcdef"}`,
		}
		r, err := mapApplicationLog(row)
		require.NoError(t, err)
		assert.Equal(t, "payment declined", r.Message)
		assert.Equal(t, "0123456789abcdef0123456789abcdef", r.TraceID)
		assert.Equal(t, "checkout", r.ServiceName)
		assert.True(t, r.IsError)
	})

	t.Run("msg key fallback", func(t *testing.T) {
		r, err := mapApplicationLog(&SourceRow{
			InsertID: "app-2", EventTS: testTS,
			Payload: `{"msg":"cache warmed"}`,
		})
		require.NoError(t, err)
		assert.Equal(t, "cache warmed", r.Message)
	})

	t.Run("rejects non-json payload", func(t *testing.T) {
		_, err := mapApplicationLog(&SourceRow{InsertID: "app-3", EventTS: testTS, Payload: "plain text"})
		assert.Error(t, err)
	})

	t.Run("rejects payload without message", func(t *testing.T) {
		_, err := mapApplicationLog(&SourceRow{InsertID: "app-4", EventTS: testTS, Payload: `{"level":"info"}`})
		assert.Error(t, err)
	})
}

func TestMapRequestLog(t *testing.T) {
	row := &SourceRow{
		InsertID: "req-1",
		EventTS:  testTS,
		Severity: "INFO",
		Resource: map[string]string{"service": "gateway"},
		Payload:  `{"method":"POST","url":"/api/orders","status":502,"latency_ms":1243,"remote_ip":"10.0.0.9","request_id":"r-77"}`,
	}
	r, err := mapRequestLog(row)
	require.NoError(t, err)

	assert.True(t, r.IsRequest)
	assert.Equal(t, "POST", r.HTTPMethod)
	assert.Equal(t, 502, r.HTTPStatus)
	assert.Equal(t, int64(1243), r.HTTPLatencyMS)
	assert.Equal(t, "POST /api/orders 502", r.Message)
	assert.Equal(t, "r-77", r.Envelope.Correlation.RequestID)
	// 5xx promotes severity to ERROR.
	assert.Equal(t, contract.SeverityError, r.Severity)
	assert.True(t, r.IsError)
}

func TestMapVendorAudit(t *testing.T) {
	t.Run("successful admin call", func(t *testing.T) {
		row := &SourceRow{
			InsertID: "aud-1",
			EventTS:  testTS,
			Severity: "NOTICE",
			Payload:  `{"serviceName":"iam","methodName":"SetRolePolicy","authenticationInfo":{"principalEmail":"admin@example.com"},"status":{"code":0}}`,
		}
		r, err := mapVendorAudit(row)
		require.NoError(t, err)
		assert.True(t, r.IsAudit)
		assert.Equal(t, "iam", r.ServiceName)
		assert.Equal(t, "SetRolePolicy", r.Message)
		assert.Equal(t, "admin@example.com", r.Envelope.Actor.UserID)
		assert.Equal(t, contract.SeverityNotice, r.Severity)
	})

	t.Run("failed admin call becomes error", func(t *testing.T) {
		row := &SourceRow{
			InsertID: "aud-2",
			EventTS:  testTS,
			Severity: "INFO",
			Payload:  `{"methodName":"DeleteBucket","status":{"code":7,"message":"permission denied"}}`,
		}
		r, err := mapVendorAudit(row)
		require.NoError(t, err)
		assert.True(t, r.IsError)
		assert.Equal(t, contract.SeverityError, r.Severity)
		assert.Equal(t, "DeleteBucket: permission denied", r.Message)
	})
}

func TestMapping_IdempotentLogID(t *testing.T) {
	row := &SourceRow{InsertID: "sys-1", EventTS: testTS, Payload: "boot complete"}
	a, err := mapSystemLog(row)
	require.NoError(t, err)
	b, err := mapSystemLog(row)
	require.NoError(t, err)
	assert.Equal(t, a.LogID, b.LogID, "replaying the same source row yields the same log_id")
	assert.Equal(t, a.TraceID, b.TraceID)
}

func TestMapping_UnknownSeverityFallsBack(t *testing.T) {
	r, err := mapSystemLog(&SourceRow{InsertID: "s", EventTS: testTS, Severity: "verbose", Payload: "x"})
	require.NoError(t, err)
	assert.Equal(t, contract.SeverityDefault, r.Severity)
	assert.Equal(t, 0, r.SeverityLevel)
}

func TestDeriveEnvironment(t *testing.T) {
	cases := []struct {
		name    string
		row     SourceRow
		service string
		want    string
	}{
		{"label wins", SourceRow{Labels: map[string]string{"env": "stage"}}, "checkout", "staging"},
		{"dev suffix", SourceRow{}, "checkout-dev", "development"},
		{"staging suffix", SourceRow{}, "checkout-staging", "staging"},
		{"default production", SourceRow{}, "checkout", "production"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, deriveEnvironment(&tc.row, tc.service))
		})
	}
}
