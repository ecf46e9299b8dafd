package vectorindex

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cloudsift/cloudsift/pkg/fault"
)

// backfillBatch bounds one embedding request.
const backfillBatch = 64

// Backfill embeds error rows from the fact table that have no embedding
// yet, covering alerts lost while the writer was down. Full ETL runs call
// this after ingest. Returns the number of rows indexed.
func (w *Writer) Backfill(ctx context.Context, since time.Time) (int, error) {
	rows, err := w.pool.Query(ctx, `SELECT c.log_id, c.event_ts, c.service_name, c.severity, c.message
FROM canonical_logs c
LEFT JOIN error_embeddings e
  ON e.log_id = c.log_id AND e.event_day = c.event_day
WHERE c.is_error AND c.event_ts >= @since AND e.log_id IS NULL
ORDER BY c.event_ts`, pgx.NamedArgs{"since": since})
	if err != nil {
		return 0, fault.Wrap(fault.KindUnavailable, "backfill scan failed", err)
	}

	type pending struct {
		member Member
		text   string
	}
	var queue []pending
	for rows.Next() {
		var (
			m        Member
			service  *string
			severity string
			message  *string
		)
		if err := rows.Scan(&m.LogID, &m.EventTS, &service, &severity, &message); err != nil {
			rows.Close()
			return 0, fault.Wrap(fault.KindInternal, "failed to scan backfill row", err)
		}
		if service != nil {
			m.ServiceName = *service
		}
		msg := ""
		if message != nil {
			msg = *message
		}
		text := ClusterText(severity, m.ServiceName, msg)
		m.Snippet = text
		queue = append(queue, pending{member: m, text: text})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fault.Wrap(fault.KindUnavailable, "backfill scan failed", err)
	}

	indexed := 0
	for start := 0; start < len(queue); start += backfillBatch {
		endIdx := min(start+backfillBatch, len(queue))
		batch := queue[start:endIdx]

		texts := make([]string, len(batch))
		for i := range batch {
			texts[i] = batch[i].text
		}
		vectors, err := w.embedder.Embed(ctx, texts)
		if err != nil {
			return indexed, err
		}
		for i := range batch {
			m := batch[i].member
			m.Embedding = vectors[i]
			if err := w.Assign(ctx, m); err != nil {
				w.logger.Warn("backfill assignment failed", "log_id", m.LogID, "error", err)
				continue
			}
			indexed++
		}
	}
	if indexed > 0 {
		w.logger.Info("backfill complete", "indexed", indexed)
	}
	return indexed, nil
}
