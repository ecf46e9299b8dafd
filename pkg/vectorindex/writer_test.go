package vectorindex

import (
	"context"
	"hash/fnv"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/logstore"
	testdb "github.com/cloudsift/cloudsift/test/database"
)

// fakeEmbedder maps texts to deterministic unit vectors: identical texts
// embed identically; a small set of base directions keeps similar/
// dissimilar relationships predictable.
type fakeEmbedder struct {
	dim int
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, f.dim)
		h := fnv.New32a()
		_, _ = h.Write([]byte(text))
		vec[h.Sum32()%uint32(f.dim)] = 1
		out[i] = vec
	}
	return out, nil
}

func testWriter(t *testing.T) *Writer {
	t.Helper()
	shared := testdb.NewSharedTestDB(t)
	pool, err := logstore.Connect(context.Background(), shared.ConnString(), 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	cfg := config.EmbeddingConfig{
		TTLDays:             7,
		Dimension:           8,
		SimilarityThreshold: 0.85,
		Timeout:             5 * time.Second,
	}
	return NewWriter(pool, &fakeEmbedder{dim: 8}, cfg, slog.Default())
}

func TestWriter_Assign(t *testing.T) {
	w := testWriter(t)
	ctx := context.Background()
	now := time.Now().UTC()

	embed := func(text string) []float32 {
		vecs, err := w.embedder.Embed(ctx, []string{text})
		require.NoError(t, err)
		return vecs[0]
	}

	t.Run("identical errors share a cluster", func(t *testing.T) {
		for i, id := range []string{"log-1", "log-2"} {
			err := w.Assign(ctx, Member{
				LogID:       id,
				EventTS:     now.Add(time.Duration(i) * time.Minute),
				ServiceName: "checkout",
				Snippet:     "ERROR | checkout | payment timeout",
				Embedding:   embed("payment timeout"),
			})
			require.NoError(t, err)
		}

		matches, err := w.SimilarErrors(ctx, "payment timeout", "checkout", 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 2, matches[0].MemberCount)
		assert.InDelta(t, 1.0, matches[0].Similarity, 1e-6)
	})

	t.Run("dissimilar error starts a new cluster", func(t *testing.T) {
		err := w.Assign(ctx, Member{
			LogID:       "log-3",
			EventTS:     now,
			ServiceName: "checkout",
			Snippet:     "ERROR | checkout | database connection refused",
			Embedding:   embed("database connection refused"),
		})
		require.NoError(t, err)

		matches, err := w.SimilarErrors(ctx, "database connection refused", "checkout", 10)
		require.NoError(t, err)
		require.NotEmpty(t, matches)
		assert.Equal(t, 1, matches[0].MemberCount)
	})

	t.Run("duplicate member is idempotent", func(t *testing.T) {
		err := w.Assign(ctx, Member{
			LogID:       "log-1",
			EventTS:     now,
			ServiceName: "checkout",
			Snippet:     "ERROR | checkout | payment timeout",
			Embedding:   embed("payment timeout"),
		})
		require.NoError(t, err)

		matches, err := w.SimilarErrors(ctx, "payment timeout", "checkout", 10)
		require.NoError(t, err)
		require.NotEmpty(t, matches)
	})
}

func TestWriter_ReapExpired(t *testing.T) {
	w := testWriter(t)
	ctx := context.Background()
	now := time.Now().UTC()

	vec := make([]float32, 8)
	vec[0] = 1
	require.NoError(t, w.Assign(ctx, Member{
		LogID: "log-old", EventTS: now, ServiceName: "auth",
		Snippet: "ERROR | auth | token expired", Embedding: vec,
	}))

	// Nothing expires yet.
	members, clusters, err := w.ReapExpired(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, members)
	assert.Zero(t, clusters)

	// Past the TTL horizon everything goes.
	members, clusters, err = w.ReapExpired(ctx, now.Add(8*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), members)
	assert.Equal(t, int64(1), clusters)
}

func TestUpdateCentroid(t *testing.T) {
	centroid := []float32{1, 0}
	updated, err := updateCentroid(centroid, []float32{0, 1}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, updated[0], 1e-6)
	assert.InDelta(t, 0.5, updated[1], 1e-6)

	t.Run("dimension mismatch is an error not a panic", func(t *testing.T) {
		_, err := updateCentroid([]float32{1, 0}, []float32{1, 0, 0}, 1)
		require.Error(t, err)
		assert.Equal(t, fault.KindDataIntegrity, fault.KindOf(err))
	})
}

func TestClusterText(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'a'
	}
	text := ClusterText("ERROR", "checkout", string(long))
	assert.Contains(t, text, "ERROR | checkout | ")
	assert.LessOrEqual(t, len(text), len("ERROR | checkout | ")+240)

	t.Run("multi-byte runes survive the cut", func(t *testing.T) {
		wide := strings.Repeat("界", 100)
		text := ClusterText("ERROR", "checkout", wide)
		assert.True(t, utf8.ValidString(text))
		assert.LessOrEqual(t, len(text), len("ERROR | checkout | ")+240)
	})
}

func TestVectorCodec(t *testing.T) {
	vec := []float32{0.25, -1.5, 0}
	decoded, err := decodeVector(encodeVector(vec))
	require.NoError(t, err)
	assert.Equal(t, vec, decoded)
}
