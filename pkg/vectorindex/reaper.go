package vectorindex

import (
	"context"
	"time"

	"github.com/cloudsift/cloudsift/pkg/fault"
)

// ReapExpired deletes embeddings and clusters past their expiry. Returns
// the number of members and clusters removed. Member deletion cascades
// from cluster deletion; expired members of live clusters go separately.
func (w *Writer) ReapExpired(ctx context.Context, now time.Time) (members int64, clusters int64, err error) {
	memberTag, err := w.pool.Exec(ctx,
		"DELETE FROM error_embeddings WHERE expires_at < $1", now)
	if err != nil {
		return 0, 0, fault.Wrap(fault.KindUnavailable, "member reap failed", err)
	}
	clusterTag, err := w.pool.Exec(ctx,
		"DELETE FROM error_clusters WHERE expires_at < $1", now)
	if err != nil {
		return memberTag.RowsAffected(), 0, fault.Wrap(fault.KindUnavailable, "cluster reap failed", err)
	}
	return memberTag.RowsAffected(), clusterTag.RowsAffected(), nil
}

// RunReaper reaps hourly until the context is cancelled. Intended to run
// as a goroutine owned by the server process.
func (w *Writer) RunReaper(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			members, clusters, err := w.ReapExpired(ctx, time.Now().UTC())
			if err != nil {
				w.logger.Error("reap failed", "error", err)
				continue
			}
			if members > 0 || clusters > 0 {
				w.logger.Info("reaped expired embeddings",
					"members", members, "clusters", clusters)
			}
		}
	}
}
