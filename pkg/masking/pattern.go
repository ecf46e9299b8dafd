package masking

import (
	"log/slog"
	"regexp"

	"github.com/cloudsift/cloudsift/pkg/contract"
)

// Pattern declares a PII detection pattern before compilation.
type Pattern struct {
	Name        string
	Pattern     string
	Replacement string
	Risk        contract.PIIRisk
	Description string
}

// CompiledPattern holds a pre-compiled regex pattern with its replacement
// and risk tier.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Risk        contract.PIIRisk
}

// builtinPatterns is the built-in pattern set. Risk tiers follow the
// privacy classification: high for credential material, moderate for
// direct personal identifiers, low for account references.
func builtinPatterns() []Pattern {
	return []Pattern{
		{
			Name:        "api_key",
			Pattern:     `(?i)(api[_-]?key|apikey)["'\s:=]+[A-Za-z0-9\-_]{16,}`,
			Replacement: "***MASKED_API_KEY***",
			Risk:        contract.PIIRiskHigh,
			Description: "API key assignments",
		},
		{
			Name:        "bearer_token",
			Pattern:     `(?i)bearer\s+[A-Za-z0-9\-_.~+/]{16,}=*`,
			Replacement: "***MASKED_BEARER_TOKEN***",
			Risk:        contract.PIIRiskHigh,
			Description: "Authorization bearer tokens",
		},
		{
			Name:        "password",
			Pattern:     `(?i)(password|passwd|pwd)["'\s:=]+\S{6,}`,
			Replacement: "***MASKED_PASSWORD***",
			Risk:        contract.PIIRiskHigh,
			Description: "Password assignments",
		},
		{
			Name:        "secret",
			Pattern:     `(?i)(secret|token|credential)["'\s:=]+[A-Za-z0-9\-_.~+/]{12,}=*`,
			Replacement: "***MASKED_SECRET***",
			Risk:        contract.PIIRiskHigh,
			Description: "Generic secret/token assignments",
		},
		{
			Name:        "private_key",
			Pattern:     `-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`,
			Replacement: "***MASKED_PRIVATE_KEY***",
			Risk:        contract.PIIRiskHigh,
			Description: "PEM private key blocks",
		},
		{
			Name:        "email",
			Pattern:     `[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`,
			Replacement: "***MASKED_EMAIL***",
			Risk:        contract.PIIRiskModerate,
			Description: "Email addresses",
		},
		{
			Name:        "phone",
			Pattern:     `\+?[0-9][0-9()\-\s]{7,}[0-9]`,
			Replacement: "***MASKED_PHONE***",
			Risk:        contract.PIIRiskModerate,
			Description: "Phone numbers",
		},
		{
			Name:        "ipv4",
			Pattern:     `\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`,
			Replacement: "***MASKED_IP***",
			Risk:        contract.PIIRiskModerate,
			Description: "IPv4 addresses",
		},
		{
			Name:        "user_id",
			Pattern:     `(?i)\b(user|account|customer)[_-]?id["'\s:=]+[A-Za-z0-9\-]{4,}`,
			Replacement: "***MASKED_USER_ID***",
			Risk:        contract.PIIRiskLow,
			Description: "User/account id references",
		},
	}
}

// compilePatterns compiles the built-in pattern set. Invalid patterns are
// logged and skipped, matching startup behavior for custom patterns.
func compilePatterns(patterns []Pattern) []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        p.Name,
			Regex:       re,
			Replacement: p.Replacement,
			Risk:        p.Risk,
		})
	}
	return compiled
}
