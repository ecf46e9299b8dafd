package vectorindex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cloudsift/cloudsift/pkg/alertbus"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/fault"
)

// Writer assigns error rows to similarity clusters. It is the sole
// writer of error_clusters and error_embeddings.
type Writer struct {
	pool     *pgxpool.Pool
	embedder Embedder
	cfg      config.EmbeddingConfig
	locks    *keyedMutex
	logger   *slog.Logger
}

// NewWriter wires a writer from its collaborators.
func NewWriter(pool *pgxpool.Pool, embedder Embedder, cfg config.EmbeddingConfig, logger *slog.Logger) *Writer {
	return &Writer{
		pool:     pool,
		embedder: embedder,
		cfg:      cfg,
		locks:    newKeyedMutex(),
		logger:   logger.With("component", "vectorindex"),
	}
}

// ttl returns the expiry horizon from now.
func (w *Writer) ttl(now time.Time) time.Time {
	return now.Add(time.Duration(w.cfg.TTLDays) * 24 * time.Hour)
}

// window returns the lookback horizon for cluster matching.
func (w *Writer) window(now time.Time) time.Time {
	return now.Add(-time.Duration(w.cfg.TTLDays) * 24 * time.Hour)
}

// HandleAlert embeds one alerted error row and assigns it to a cluster.
// Safe for concurrent use; assignment serializes per service.
func (w *Writer) HandleAlert(ctx context.Context, alert alertbus.ErrorAlert) error {
	text := ClusterText(alert.Severity, alert.ServiceName, alert.Snippet)

	embedCtx, cancel := context.WithTimeout(ctx, w.cfg.Timeout)
	defer cancel()
	vectors, err := w.embedder.Embed(embedCtx, []string{text})
	if err != nil {
		return err
	}

	return w.Assign(ctx, Member{
		LogID:       alert.LogID,
		EventTS:     alert.EventTS,
		ServiceName: alert.ServiceName,
		Snippet:     text,
		Embedding:   vectors[0],
	})
}

// Member is one error row plus its embedding, ready for assignment.
type Member struct {
	LogID       string
	EventTS     time.Time
	ServiceName string
	Snippet     string
	Embedding   []float32
}

// Assign places a member into the nearest cluster of its service within
// the retention window, or creates a new cluster when nothing is within
// the similarity threshold.
func (w *Writer) Assign(ctx context.Context, m Member) error {
	unlock := w.locks.Lock(m.ServiceName)
	defer unlock()

	now := time.Now().UTC()
	vec := encodeVector(m.Embedding)

	var (
		clusterID   string
		centroidStr string
		memberCount int
		similarity  float64
	)
	err := w.pool.QueryRow(ctx, `SELECT cluster_id, centroid::text, member_count,
	1 - (centroid <=> @vec::vector) AS similarity
FROM error_clusters
WHERE service_name = @service AND last_seen >= @horizon
ORDER BY centroid <=> @vec::vector ASC
LIMIT 1`, pgx.NamedArgs{
		"vec":     vec,
		"service": m.ServiceName,
		"horizon": w.window(now),
	}).Scan(&clusterID, &centroidStr, &memberCount, &similarity)

	switch {
	case errors.Is(err, pgx.ErrNoRows) || (err == nil && similarity < w.cfg.SimilarityThreshold):
		return w.createCluster(ctx, m, now)
	case err != nil:
		return fault.Wrap(fault.KindUnavailable, "cluster lookup failed", err)
	}

	centroid, err := decodeVector(centroidStr)
	if err != nil {
		return fault.Wrap(fault.KindDataIntegrity, "stored centroid is malformed", err)
	}
	updated, err := updateCentroid(centroid, m.Embedding, memberCount)
	if err != nil {
		return err
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return fault.Wrap(fault.KindUnavailable, "failed to begin assignment", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `UPDATE error_clusters
SET centroid = @centroid::vector, member_count = member_count + 1,
    last_seen = @now, expires_at = @expires
WHERE cluster_id = @cluster_id`, pgx.NamedArgs{
		"centroid":   encodeVector(updated),
		"now":        now,
		"expires":    w.ttl(now),
		"cluster_id": clusterID,
	})
	if err != nil {
		return fault.Wrap(fault.KindUnavailable, "cluster update failed", err)
	}

	if err := w.insertMember(ctx, tx, m, clusterID, now); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fault.Wrap(fault.KindUnavailable, "failed to commit assignment", err)
	}

	w.logger.Debug("joined cluster", "log_id", m.LogID,
		"cluster_id", clusterID, "similarity", similarity)
	return nil
}

// createCluster starts a new cluster seeded with the member as both
// centroid and representative.
func (w *Writer) createCluster(ctx context.Context, m Member, now time.Time) error {
	clusterID := uuid.New().String()

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return fault.Wrap(fault.KindUnavailable, "failed to begin cluster create", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO error_clusters
(cluster_id, service_name, signature, centroid, member_count, first_seen, last_seen, expires_at)
VALUES (@cluster_id, @service, @signature, @centroid::vector, 1, @now, @now, @expires)`,
		pgx.NamedArgs{
			"cluster_id": clusterID,
			"service":    m.ServiceName,
			"signature":  m.Snippet,
			"centroid":   encodeVector(m.Embedding),
			"now":        now,
			"expires":    w.ttl(now),
		})
	if err != nil {
		return fault.Wrap(fault.KindUnavailable, "cluster create failed", err)
	}

	if err := w.insertMember(ctx, tx, m, clusterID, now); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fault.Wrap(fault.KindUnavailable, "failed to commit cluster create", err)
	}

	w.logger.Debug("created cluster", "log_id", m.LogID, "cluster_id", clusterID)
	return nil
}

func (w *Writer) insertMember(ctx context.Context, tx pgx.Tx, m Member, clusterID string, now time.Time) error {
	_, err := tx.Exec(ctx, `INSERT INTO error_embeddings
(log_id, event_day, cluster_id, embedding, snippet, created_at, expires_at)
VALUES (@log_id, @event_day, @cluster_id, @embedding::vector, @snippet, @now, @expires)
ON CONFLICT (log_id, event_day) DO NOTHING`,
		pgx.NamedArgs{
			"log_id":     m.LogID,
			"event_day":  m.EventTS.UTC().Truncate(24 * time.Hour),
			"cluster_id": clusterID,
			"embedding":  encodeVector(m.Embedding),
			"snippet":    m.Snippet,
			"now":        now,
			"expires":    w.ttl(now),
		})
	if err != nil {
		return fault.Wrap(fault.KindUnavailable, "member insert failed", err)
	}
	return nil
}

// updateCentroid returns the incremental mean after adding one vector to
// a cluster of count members. A dimension mismatch means the stored
// centroid and the new embedding came from different models.
func updateCentroid(centroid, added []float32, count int) ([]float32, error) {
	if len(added) != len(centroid) {
		return nil, fault.New(fault.KindDataIntegrity,
			fmt.Sprintf("embedding dimension %d does not match centroid dimension %d", len(added), len(centroid)))
	}
	out := make([]float32, len(centroid))
	n := float32(count)
	for i := range centroid {
		out[i] = (centroid[i]*n + added[i]) / (n + 1)
	}
	return out, nil
}

// ClusterText builds the canonical embedding input for an error row.
// Long snippets are cut at 240 bytes, backing up to a rune boundary.
func ClusterText(severity, service, snippet string) string {
	if len(snippet) > 240 {
		cut := 240
		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}
		snippet = snippet[:cut]
	}
	return fmt.Sprintf("%s | %s | %s", severity, service, snippet)
}
