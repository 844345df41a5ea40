package index

import (
	"context"

	"github.com/papyra/papyra/pkg/provider"
)

type Provider interface {
	List(ctx context.Context, options *ListOptions) (*Page[Document], error)

	Index(ctx context.Context, documents ...Document) error
	Delete(ctx context.Context, ids ...string) error

	Query(ctx context.Context, query string, options *QueryOptions) ([]Result, error)
}

type Embedder interface {
	Embed(ctx context.Context, texts []string) (*provider.Embedding, error)
}

// Document is one indexed content chunk. Source identifies the document the
// chunk was taken from and is the key retrieval filters match against.
type Document struct {
	ID string

	Source string

	Title   string
	Content string

	Metadata map[string]string

	Embedding []float32
}

type Result struct {
	Score float32

	Document
}

type ListOptions struct {
	Limit  *int
	Cursor string
}

type QueryOptions struct {
	Limit *int

	Filters map[string]string
}

type Page[T any] struct {
	Items []T

	Cursor string
}
