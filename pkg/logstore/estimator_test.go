package logstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExplainBytes(t *testing.T) {
	t.Run("single leaf scan", func(t *testing.T) {
		raw := []byte(`[{"Plan": {"Node Type": "Seq Scan", "Plan Rows": 1000, "Plan Width": 512}}]`)
		got, err := parseExplainBytes(raw)
		require.NoError(t, err)
		assert.Equal(t, int64(512000), got)
	})

	t.Run("interior nodes are not double counted", func(t *testing.T) {
		raw := []byte(`[{"Plan": {
			"Node Type": "Limit", "Plan Rows": 100, "Plan Width": 512,
			"Plans": [{
				"Node Type": "Sort", "Plan Rows": 1000, "Plan Width": 512,
				"Plans": [
					{"Node Type": "Seq Scan", "Plan Rows": 600, "Plan Width": 512},
					{"Node Type": "Index Scan", "Plan Rows": 400, "Plan Width": 256}
				]
			}]
		}}]`)
		got, err := parseExplainBytes(raw)
		require.NoError(t, err)
		assert.Equal(t, int64(600*512+400*256), got)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseExplainBytes([]byte(`{"Plan":`))
		assert.Error(t, err)
	})

	t.Run("empty output", func(t *testing.T) {
		_, err := parseExplainBytes([]byte(`[]`))
		assert.Error(t, err)
	})
}
