package alertbus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Publisher broadcasts error alerts via pg_notify. Alerts are
// notify-only: the canonical row is already durable in the fact table,
// so losing an alert loses freshness, not data.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a publisher over the shared database connection.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Publish broadcasts one error alert. Oversized snippets are trimmed
// until the payload fits the NOTIFY limit.
func (p *Publisher) Publish(ctx context.Context, alert ErrorAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	for len(payload) > notifyLimit && len(alert.Snippet) > 0 {
		alert.Snippet = trimSnippet(alert.Snippet, len(payload)-notifyLimit)
		payload, err = json.Marshal(alert)
		if err != nil {
			return fmt.Errorf("failed to marshal alert: %w", err)
		}
	}

	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", Channel, string(payload)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// trimSnippet removes at least over bytes from the tail, backing up to a
// rune boundary so the payload stays valid UTF-8.
func trimSnippet(s string, over int) string {
	if over >= len(s) {
		return ""
	}
	cut := len(s) - over
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
