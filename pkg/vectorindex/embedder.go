// Package vectorindex maintains the error-embedding collection: every
// ERROR-and-above row is embedded and clustered with similar errors from
// the last seven days. The similar_errors tool reads the clusters.
package vectorindex

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/fault"
)

// Embedder turns error snippets into dense vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// OpenAIEmbedder calls the embeddings API with a fixed model and
// dimension from config.
type OpenAIEmbedder struct {
	client    openai.Client
	model     string
	dimension int
}

// NewOpenAIEmbedder creates an embedder from config. The API key comes
// from the environment (EMBEDDING_API_KEY / OPENAI_API_KEY).
func NewOpenAIEmbedder(apiKey string, cfg config.EmbeddingConfig) *OpenAIEmbedder {
	return &OpenAIEmbedder{
		client:    openai.NewClient(option.WithAPIKey(apiKey)),
		model:     cfg.Model,
		dimension: cfg.Dimension,
	}
}

// Embed embeds a batch of texts, preserving order.
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Dimensions: openai.Int(int64(e.dimension)),
	})
	if err != nil {
		return nil, fault.Wrap(fault.KindUnavailable, "embedding request failed", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fault.New(fault.KindUnavailable,
			fmt.Sprintf("embedding response has %d vectors for %d inputs", len(resp.Data), len(texts)))
	}
	out := make([][]float32, len(resp.Data))
	for _, d := range resp.Data {
		vec := make([]float32, len(d.Embedding))
		for i, f := range d.Embedding {
			vec[i] = float32(f)
		}
		out[d.Index] = vec
	}
	return out, nil
}

// encodeVector converts a vector to the pgvector literal format:
// [0.1,0.2,...].
func encodeVector(vec []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range vec {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}

// decodeVector parses the pgvector literal format back into a vector.
func decodeVector(s string) ([]float32, error) {
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	vec := make([]float32, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("malformed vector literal at %d: %w", i, err)
		}
		vec[i] = float32(f)
	}
	return vec, nil
}
