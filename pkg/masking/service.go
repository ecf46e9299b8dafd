// Package masking provides PII classification and deterministic redaction.
// The ETL normalizer uses Classify to derive privacy.pii_risk for every
// canonical row; the agent orchestrator uses Redact as middleware on every
// message body crossing the LLM boundary.
package masking

import (
	"log/slog"

	"github.com/cloudsift/cloudsift/pkg/contract"
)

// Service applies PII classification and redaction. Created once at
// application startup. Thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	patterns []*CompiledPattern
	enabled  bool
}

// NewService creates a masking service with eagerly compiled patterns.
// When enabled is false, Redact is a pass-through but Classify still
// works (the ETL always classifies).
func NewService(enabled bool) *Service {
	s := &Service{
		patterns: compilePatterns(builtinPatterns()),
		enabled:  enabled,
	}
	slog.Info("Masking service initialized",
		"patterns", len(s.patterns),
		"redaction_enabled", enabled)
	return s
}

// Classify returns the highest PII risk tier matched anywhere in the
// given texts. Empty inputs classify as none.
func (s *Service) Classify(texts ...string) contract.PIIRisk {
	highest := contract.PIIRiskNone
	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, p := range s.patterns {
			if riskRank(p.Risk) <= riskRank(highest) {
				continue
			}
			if p.Regex.MatchString(text) {
				highest = p.Risk
				if highest == contract.PIIRiskHigh {
					return highest
				}
			}
		}
	}
	return highest
}

// Redact replaces high and moderate risk matches with their deterministic
// replacement tokens. Returns the redacted text and the names of patterns
// that fired; every applied redaction is logged.
func (s *Service) Redact(text string) (string, []string) {
	if !s.enabled || text == "" {
		return text, nil
	}
	var applied []string
	for _, p := range s.patterns {
		if p.Risk != contract.PIIRiskHigh && p.Risk != contract.PIIRiskModerate {
			continue
		}
		if !p.Regex.MatchString(text) {
			continue
		}
		text = p.Regex.ReplaceAllString(text, p.Replacement)
		applied = append(applied, p.Name)
	}
	if len(applied) > 0 {
		slog.Info("Applied PII redaction", "patterns", applied)
	}
	return text, applied
}

// Enabled reports whether redaction is active.
func (s *Service) Enabled() bool { return s.enabled }

func riskRank(r contract.PIIRisk) int {
	switch r {
	case contract.PIIRiskHigh:
		return 3
	case contract.PIIRiskModerate:
		return 2
	case contract.PIIRiskLow:
		return 1
	default:
		return 0
	}
}
