package vectorindex

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cloudsift/cloudsift/pkg/fault"
)

// ClusterMatch is one similar-error cluster returned to the tool runtime.
type ClusterMatch struct {
	ClusterID   string    `json:"cluster_id"`
	ServiceName string    `json:"service_name"`
	Signature   string    `json:"signature"`
	MemberCount int       `json:"member_count"`
	FirstSeen   time.Time `json:"first_seen"`
	LastSeen    time.Time `json:"last_seen"`
	Similarity  float64   `json:"similarity"`
}

// SimilarErrors embeds the query text and returns the nearest clusters
// within the retention window, ordered by similarity. An empty service
// searches across all services.
func (w *Writer) SimilarErrors(ctx context.Context, queryText, service string, limit int) ([]ClusterMatch, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	embedCtx, cancel := context.WithTimeout(ctx, w.cfg.Timeout)
	defer cancel()
	vectors, err := w.embedder.Embed(embedCtx, []string{queryText})
	if err != nil {
		return nil, err
	}

	sql := `SELECT cluster_id, service_name, signature, member_count,
	first_seen, last_seen, 1 - (centroid <=> @vec::vector) AS similarity
FROM error_clusters
WHERE last_seen >= @horizon`
	args := pgx.NamedArgs{
		"vec":     encodeVector(vectors[0]),
		"horizon": w.window(time.Now().UTC()),
		"lim":     limit,
	}
	if service != "" {
		sql += "\n  AND service_name = @service"
		args["service"] = service
	}
	sql += "\nORDER BY centroid <=> @vec::vector ASC\nLIMIT @lim"

	rows, err := w.pool.Query(ctx, sql, args)
	if err != nil {
		return nil, fault.Wrap(fault.KindUnavailable, "similar-errors query failed", err)
	}
	defer rows.Close()

	var out []ClusterMatch
	for rows.Next() {
		var m ClusterMatch
		if err := rows.Scan(&m.ClusterID, &m.ServiceName, &m.Signature,
			&m.MemberCount, &m.FirstSeen, &m.LastSeen, &m.Similarity); err != nil {
			return nil, fault.Wrap(fault.KindInternal, "failed to scan cluster match", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Wrap(fault.KindUnavailable, "similar-errors query failed", err)
	}
	return out, nil
}
