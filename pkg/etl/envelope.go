package etl

import (
	"strings"

	"github.com/cloudsift/cloudsift/pkg/contract"
	"github.com/cloudsift/cloudsift/pkg/masking"
)

// finishEnvelope derives the cross-cutting envelope for a mapped row:
// schema version stamp, environment heuristics, PII classification, and
// retention class.
func finishEnvelope(r *contract.CanonicalLogRow, row *SourceRow, masker *masking.Service) {
	r.Envelope.SchemaVersion = contract.EnvelopeSchemaVersion
	r.Envelope.Environment = deriveEnvironment(row, r.ServiceName)

	r.Envelope.Privacy.PIIRisk = masker.Classify(r.Message, r.JSONPayload, r.TextPayload)
	r.Envelope.Privacy.RetentionClass = contract.RetentionStandard
	if r.LogType == "audit" {
		r.Envelope.Privacy.RetentionClass = contract.RetentionAudit
	}

	if len(row.Labels) > 0 {
		for k, v := range row.Labels {
			if k == "env" || k == "environment" {
				continue
			}
			r.Envelope.Labels = append(r.Envelope.Labels, k+"="+v)
		}
	}
}

// deriveEnvironment resolves the environment from labels first, then
// service-name suffix heuristics, defaulting to production.
func deriveEnvironment(row *SourceRow, service string) string {
	for _, key := range []string{"env", "environment"} {
		if env := row.Labels[key]; env != "" {
			return normalizeEnv(env)
		}
	}
	switch {
	case strings.HasSuffix(service, "-dev"):
		return "development"
	case strings.HasSuffix(service, "-staging"), strings.HasSuffix(service, "-stage"):
		return "staging"
	default:
		return "production"
	}
}

func normalizeEnv(env string) string {
	switch strings.ToLower(env) {
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "dev", "development":
		return "development"
	default:
		return strings.ToLower(env)
	}
}
