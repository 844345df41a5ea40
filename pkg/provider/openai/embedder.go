package openai

import (
	"context"

	"github.com/papyra/papyra/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var _ provider.Embedder = (*Embedder)(nil)

type Embedder struct {
	*Config

	client openai.Client
}

func NewEmbedder(url, model string, options ...Option) (*Embedder, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Embedder{
		Config: cfg,

		client: openai.NewClient(cfg.Options()...),
	}, nil
}

func (e *Embedder) Embed(ctx context.Context, texts []string) (*provider.Embedding, error) {
	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.model),

		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
	})

	if err != nil {
		return nil, err
	}

	result := &provider.Embedding{
		Model: e.model,
	}

	if resp.Model != "" {
		result.Model = resp.Model
	}

	for _, e := range resp.Data {
		var embedding []float32

		for _, v := range e.Embedding {
			embedding = append(embedding, float32(v))
		}

		result.Embeddings = append(result.Embeddings, embedding)
	}

	result.Usage = &provider.Usage{
		InputTokens: int(resp.Usage.PromptTokens),
	}

	return result, nil
}
