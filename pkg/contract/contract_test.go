package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityLevels(t *testing.T) {
	t.Run("levels are strictly increasing in enum order", func(t *testing.T) {
		sevs := Severities()
		for i := 1; i < len(sevs); i++ {
			assert.Greater(t, sevs[i].Level(), sevs[i-1].Level(),
				"%s should rank above %s", sevs[i], sevs[i-1])
		}
	})

	t.Run("warning ranks below error", func(t *testing.T) {
		assert.True(t, SeverityError.AtLeast(SeverityWarning))
		assert.False(t, SeverityWarning.AtLeast(SeverityError))
	})

	t.Run("at least ERROR includes the four top severities", func(t *testing.T) {
		var above []Severity
		for _, s := range Severities() {
			if s.AtLeast(SeverityError) {
				above = append(above, s)
			}
		}
		assert.Equal(t, []Severity{SeverityError, SeverityCritical, SeverityAlert, SeverityEmergency}, above)
	})
}

func TestParseSeverity(t *testing.T) {
	t.Run("upper-cases input", func(t *testing.T) {
		s, err := ParseSeverity("error")
		require.NoError(t, err)
		assert.Equal(t, SeverityError, s)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := ParseSeverity("FATAL")
		assert.Error(t, err)
	})

	t.Run("normalize falls back to DEFAULT", func(t *testing.T) {
		assert.Equal(t, SeverityDefault, NormalizeSeverity("FATAL"))
		assert.Equal(t, SeverityWarning, NormalizeSeverity(" warning "))
	})
}

func TestCanonicalLogRowValidate(t *testing.T) {
	valid := func() *CanonicalLogRow {
		return &CanonicalLogRow{
			LogID:         "abc123",
			EventTS:       time.Now(),
			Severity:      SeverityInfo,
			SeverityLevel: SeverityInfo.Level(),
			SourceTable:   "app_logs",
			Envelope:      Envelope{SchemaVersion: EnvelopeSchemaVersion},
		}
	}

	t.Run("valid row passes", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("rejects zero event_ts", func(t *testing.T) {
		r := valid()
		r.EventTS = time.Time{}
		assert.Error(t, r.Validate())
	})

	t.Run("rejects empty source_table", func(t *testing.T) {
		r := valid()
		r.SourceTable = ""
		assert.Error(t, r.Validate())
	})

	t.Run("rejects severity_level drift", func(t *testing.T) {
		r := valid()
		r.SeverityLevel = 999
		assert.Error(t, r.Validate())
	})

	t.Run("rejects wrong envelope version", func(t *testing.T) {
		r := valid()
		r.Envelope.SchemaVersion = "v1"
		assert.Error(t, r.Validate())
	})
}

func TestSynthesizeLogID(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stable across calls", func(t *testing.T) {
		a := SynthesizeLogID(ts, "app_logs", "payload")
		b := SynthesizeLogID(ts, "app_logs", "payload")
		assert.Equal(t, a, b)
		assert.Len(t, a, 32)
	})

	t.Run("distinct content yields distinct ids", func(t *testing.T) {
		a := SynthesizeLogID(ts, "app_logs", "payload-a")
		b := SynthesizeLogID(ts, "app_logs", "payload-b")
		assert.NotEqual(t, a, b)
	})
}

func TestSynthesizeTrace(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 30, 0, time.UTC)

	t.Run("deterministic within the same minute", func(t *testing.T) {
		t1, s1 := SynthesizeTrace("checkout", ts, "ins-1")
		t2, s2 := SynthesizeTrace("checkout", ts.Add(20*time.Second), "ins-1")
		assert.Equal(t, t1, t2)
		assert.Equal(t, s1, s2)
	})

	t.Run("minute boundary changes the trace", func(t *testing.T) {
		t1, _ := SynthesizeTrace("checkout", ts, "ins-1")
		t2, _ := SynthesizeTrace("checkout", ts.Add(time.Minute), "ins-1")
		assert.NotEqual(t, t1, t2)
	})
}
