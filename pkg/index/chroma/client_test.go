package chroma_test

import (
	"context"
	"testing"

	"github.com/papyra/papyra/pkg/index"
	"github.com/papyra/papyra/pkg/index/chroma"

	"github.com/amikos-tech/chroma-go/pkg/embeddings"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

// fixedEmbedder maps known texts to fixed vectors so ranking is deterministic.
type fixedEmbedder struct {
	vectors map[string][]float32
}

func (e *fixedEmbedder) embed(text string) embeddings.Embedding {
	v, ok := e.vectors[text]

	if !ok {
		v = []float32{0, 0, 1}
	}

	return embeddings.NewEmbeddingFromFloat32(v)
}

func (e *fixedEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([]embeddings.Embedding, error) {
	result := make([]embeddings.Embedding, 0, len(texts))

	for _, text := range texts {
		result = append(result, e.embed(text))
	}

	return result, nil
}

func (e *fixedEmbedder) EmbedQuery(ctx context.Context, text string) (embeddings.Embedding, error) {
	return e.embed(text), nil
}

func TestIndex(t *testing.T) {
	ctx := context.Background()

	server, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,

		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "chromadb/chroma:1.0.0",
			ExposedPorts: []string{"8000/tcp"},
		},
	})

	require.NoError(t, err)

	url, err := server.Endpoint(ctx, "")
	require.NoError(t, err)

	embedder := &fixedEmbedder{
		vectors: map[string][]float32{
			"Bananas are berries, but strawberries are not.": {1, 0, 0},
			"A day on Venus is longer than its year.":        {0, 1, 0},

			"berries": {0.9, 0.1, 0},
		},
	}

	c, err := chroma.New("http://"+url, "documents", chroma.WithEmbeddingFunction(embedder))
	require.NoError(t, err)

	err = c.Index(ctx,
		index.Document{ID: "c1", Source: "facts.pdf", Content: "Bananas are berries, but strawberries are not."},
		index.Document{ID: "c2", Source: "space.pdf", Content: "A day on Venus is longer than its year."},
	)

	require.NoError(t, err)

	page, err := c.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	results, err := c.Query(ctx, "berries", nil)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	require.Equal(t, "facts.pdf", results[0].Source)

	require.NoError(t, c.Delete(ctx, "c1"))

	page, err = c.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
}
