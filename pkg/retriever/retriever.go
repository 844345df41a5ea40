package retriever

import (
	"context"
	"errors"

	"github.com/papyra/papyra/pkg/selection"
)

var (
	ErrInvalidQuery = errors.New("invalid query")
	ErrInvalidLimit = errors.New("invalid limit")
)

type Provider interface {
	Retrieve(ctx context.Context, query string, options *RetrieveOptions) ([]Result, error)
}

type RetrieveOptions struct {
	Limit *int

	Sources selection.Selection
}

type Result struct {
	ID string

	Source string

	Score   float32
	Title   string
	Content string

	Metadata map[string]string
}
