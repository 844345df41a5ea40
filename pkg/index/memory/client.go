package memory

import (
	"cmp"
	"context"
	"errors"
	"math"
	"slices"
	"sync"

	"github.com/papyra/papyra/pkg/index"

	"github.com/google/uuid"
)

var _ index.Provider = (*Client)(nil)

type Client struct {
	embedder index.Embedder

	mu        sync.RWMutex
	documents map[string]index.Document
}

type Option func(*Client)

func WithEmbedder(embedder index.Embedder) Option {
	return func(c *Client) {
		c.embedder = embedder
	}
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		documents: make(map[string]index.Document),
	}

	for _, option := range options {
		option(c)
	}

	if c.embedder == nil {
		return nil, errors.New("embedder is required")
	}

	return c, nil
}

func (c *Client) List(ctx context.Context, options *index.ListOptions) (*index.Page[index.Document], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]index.Document, 0, len(c.documents))

	for _, d := range c.documents {
		items = append(items, d)
	}

	slices.SortFunc(items, func(a, b index.Document) int {
		return cmp.Or(cmp.Compare(a.Source, b.Source), cmp.Compare(a.ID, b.ID))
	})

	page := index.Page[index.Document]{
		Items: items,
	}

	return &page, nil
}

func (c *Client) Index(ctx context.Context, documents ...index.Document) error {
	for _, d := range documents {
		if d.ID == "" {
			d.ID = uuid.NewString()
		}

		if len(d.Embedding) == 0 {
			embedding, err := c.embedder.Embed(ctx, []string{d.Content})

			if err != nil {
				return err
			}

			d.Embedding = embedding.Embeddings[0]
		}

		if len(d.Embedding) == 0 {
			continue
		}

		c.mu.Lock()
		c.documents[d.ID] = d
		c.mu.Unlock()
	}

	return nil
}

func (c *Client) Delete(ctx context.Context, ids ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range ids {
		delete(c.documents, id)
	}

	return nil
}

func (c *Client) Query(ctx context.Context, query string, options *index.QueryOptions) ([]index.Result, error) {
	if options == nil {
		options = &index.QueryOptions{}
	}

	embedding, err := c.embedder.Embed(ctx, []string{query})

	if err != nil {
		return nil, err
	}

	c.mu.RLock()

	results := make([]index.Result, 0)

DOCUMENTS:
	for _, d := range c.documents {
		for k, v := range options.Filters {
			val, ok := d.Metadata[k]

			if !ok {
				continue DOCUMENTS
			}

			if v != val {
				continue DOCUMENTS
			}
		}

		score := cosineSimilarity(embedding.Embeddings[0], d.Embedding)

		r := index.Result{
			Score:    score,
			Document: d,
		}

		results = append(results, r)
	}

	c.mu.RUnlock()

	slices.SortFunc(results, func(a, b index.Result) int {
		return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(a.ID, b.ID))
	})

	if options.Limit != nil {
		limit := min(*options.Limit, len(results))
		results = results[:limit]
	}

	return results, nil
}

func cosineSimilarity(vals1, vals2 []float32) float32 {
	if len(vals1) == 0 || len(vals1) != len(vals2) {
		return 0
	}

	var dot, norm1, norm2 float64

	for i, v1f := range vals1 {
		v1 := float64(v1f)
		v2 := float64(vals2[i])

		dot += v1 * v2

		norm1 += v1 * v1
		norm2 += v2 * v2
	}

	if norm1 == 0 || norm2 == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(norm1) * math.Sqrt(norm2)))
}
