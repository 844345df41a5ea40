package vector

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/papyra/papyra/pkg/index"
	"github.com/papyra/papyra/pkg/retriever"
)

var _ retriever.Provider = (*Client)(nil)

// Client retrieves content chunks from a vector index and filters them down
// to a selection of source documents. Filtering never re-ranks: the index
// ranking is kept, dropped chunks are not substituted, and the result limit
// applies after the filter.
type Client struct {
	index index.Provider

	limit *int

	logger *slog.Logger
}

type Option func(*Client)

func WithLimit(limit int) Option {
	return func(c *Client) {
		c.limit = &limit
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(index index.Provider, options ...Option) (*Client, error) {
	if index == nil {
		return nil, errors.New("index is required")
	}

	c := &Client{
		index: index,

		logger: slog.Default(),
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Retrieve(ctx context.Context, query string, options *retriever.RetrieveOptions) ([]retriever.Result, error) {
	if options == nil {
		options = new(retriever.RetrieveOptions)
	}

	if strings.TrimSpace(query) == "" {
		return nil, retriever.ErrInvalidQuery
	}

	limit := c.limit

	if options.Limit != nil {
		limit = options.Limit
	}

	if limit != nil && *limit <= 0 {
		return nil, retriever.ErrInvalidLimit
	}

	sources := options.Sources

	// the index query runs unbounded so the limit cuts after filtering
	candidates, err := c.index.Query(ctx, query, &index.QueryOptions{})

	if err != nil {
		return nil, err
	}

	result := make([]retriever.Result, 0, len(candidates))

	for _, candidate := range candidates {
		if sources.Restricts() && !sources.Contains(candidate.Source) {
			c.logger.DebugContext(ctx, "chunk dropped",
				"source", candidate.Source,
				"reason", "source not selected")

			continue
		}

		result = append(result, retriever.Result{
			ID: candidate.ID,

			Source: candidate.Source,

			Score:   candidate.Score,
			Title:   candidate.Title,
			Content: candidate.Content,

			Metadata: candidate.Metadata,
		})
	}

	if limit != nil && len(result) > *limit {
		result = result[:*limit]
	}

	return result, nil
}
