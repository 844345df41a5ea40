package memory_test

import (
	"context"
	"testing"

	"github.com/papyra/papyra/pkg/index"
	"github.com/papyra/papyra/pkg/index/memory"
	"github.com/papyra/papyra/pkg/provider"

	"github.com/stretchr/testify/require"
)

// fakeEmbedder maps known texts to fixed vectors so ranking is deterministic.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (e *fakeEmbedder) Embed(ctx context.Context, texts []string) (*provider.Embedding, error) {
	result := &provider.Embedding{
		Model: "fake",
	}

	for _, text := range texts {
		v, ok := e.vectors[text]

		if !ok {
			v = []float32{0, 0, 1}
		}

		result.Embeddings = append(result.Embeddings, v)
	}

	return result, nil
}

func newTestIndex(t *testing.T) *memory.Client {
	t.Helper()

	embedder := &fakeEmbedder{
		vectors: map[string][]float32{
			"apples":  {1, 0, 0},
			"oranges": {0.9, 0.1, 0},
			"bridges": {0, 1, 0},

			"fruit": {1, 0.05, 0},
		},
	}

	c, err := memory.New(memory.WithEmbedder(embedder))
	require.NoError(t, err)

	return c
}

func TestNew(t *testing.T) {
	_, err := memory.New()
	require.Error(t, err)
}

func TestQuery(t *testing.T) {
	ctx := context.Background()

	c := newTestIndex(t)

	err := c.Index(ctx,
		index.Document{ID: "a", Source: "food.pdf", Content: "apples"},
		index.Document{ID: "o", Source: "food.pdf", Content: "oranges"},
		index.Document{ID: "b", Source: "engineering.pdf", Content: "bridges"},
	)

	require.NoError(t, err)

	t.Run("ranks by similarity", func(t *testing.T) {
		results, err := c.Query(ctx, "fruit", nil)

		require.NoError(t, err)
		require.Len(t, results, 3)

		require.Equal(t, "a", results[0].ID)
		require.Equal(t, "o", results[1].ID)
		require.Equal(t, "b", results[2].ID)
	})

	t.Run("applies limit", func(t *testing.T) {
		limit := 1

		results, err := c.Query(ctx, "fruit", &index.QueryOptions{Limit: &limit})

		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, "a", results[0].ID)
	})

	t.Run("metadata filters match exact", func(t *testing.T) {
		err := c.Index(ctx, index.Document{
			ID:       "m",
			Source:   "food.pdf",
			Content:  "apples",
			Metadata: map[string]string{"lang": "en"},
		})

		require.NoError(t, err)

		results, err := c.Query(ctx, "fruit", &index.QueryOptions{
			Filters: map[string]string{"lang": "en"},
		})

		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, "m", results[0].ID)

		results, err = c.Query(ctx, "fruit", &index.QueryOptions{
			Filters: map[string]string{"lang": "EN"},
		})

		require.NoError(t, err)
		require.Empty(t, results)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	c := newTestIndex(t)

	require.NoError(t, c.Index(ctx, index.Document{ID: "a", Source: "food.pdf", Content: "apples"}))
	require.NoError(t, c.Delete(ctx, "a"))

	results, err := c.Query(ctx, "fruit", nil)

	require.NoError(t, err)
	require.Empty(t, results)
}

func TestList(t *testing.T) {
	ctx := context.Background()

	c := newTestIndex(t)

	err := c.Index(ctx,
		index.Document{ID: "b", Source: "engineering.pdf", Content: "bridges"},
		index.Document{ID: "a", Source: "food.pdf", Content: "apples"},
		index.Document{ID: "o", Source: "food.pdf", Content: "oranges"},
	)

	require.NoError(t, err)

	page, err := c.List(ctx, nil)

	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	// ordered by source, then id
	require.Equal(t, "b", page.Items[0].ID)
	require.Equal(t, "a", page.Items[1].ID)
	require.Equal(t, "o", page.Items[2].ID)
}

func TestIndexAssignsIDs(t *testing.T) {
	ctx := context.Background()

	c := newTestIndex(t)

	require.NoError(t, c.Index(ctx, index.Document{Source: "food.pdf", Content: "apples"}))

	page, err := c.List(ctx, nil)

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.NotEmpty(t, page.Items[0].ID)
}
