package otel

import (
	"context"
	"strings"

	"github.com/papyra/papyra/pkg/retriever"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type Retriever interface {
	Observable
	retriever.Provider
}

type observableRetriever struct {
	name    string
	library string

	provider string

	retriever retriever.Provider
}

func NewRetriever(provider, index string, p retriever.Provider) Retriever {
	library := strings.ToLower(provider)

	return &observableRetriever{
		retriever: p,

		name:    strings.TrimSuffix(strings.ToLower(provider), "-retriever") + "-retriever",
		library: library,

		provider: provider,
	}
}

func (p *observableRetriever) otelSetup() {
}

func (p *observableRetriever) Retrieve(ctx context.Context, query string, options *retriever.RetrieveOptions) ([]retriever.Result, error) {
	ctx, span := otel.Tracer(p.library).Start(ctx, p.name)
	defer span.End()

	result, err := p.retriever.Retrieve(ctx, query, options)

	if result != nil {
		span.SetAttributes(attribute.Int("results", len(result)))

		if options != nil && options.Sources.Restricts() {
			span.SetAttributes(attribute.Int("sources", options.Sources.Len()))
		}
	}

	if EnableDebug {
		span.SetAttributes(attribute.String("query", query))

		if options != nil && options.Sources.Restricts() {
			span.SetAttributes(attribute.StringSlice("selection", options.Sources.IDs()))
		}

		if result != nil {
			var outputs []string

			for _, r := range result {
				outputs = append(outputs, r.Source)
			}

			if len(outputs) > 0 {
				span.SetAttributes(attribute.StringSlice("result_sources", outputs))
			}
		}
	}

	return result, err
}
