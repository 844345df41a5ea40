package chroma

import (
	"context"
	"errors"
	"sync"

	"github.com/papyra/papyra/pkg/index"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/amikos-tech/chroma-go/pkg/embeddings"
	"github.com/google/uuid"
)

var _ index.Provider = (*Client)(nil)

const (
	attrSource = "source"
	attrTitle  = "title"
)

type Client struct {
	url  string
	name string

	embedder embeddings.EmbeddingFunction

	mu     sync.Mutex
	client chroma.APIClient
	col    chroma.Collection
}

type Option func(*Client)

func WithEmbeddingFunction(embedder embeddings.EmbeddingFunction) Option {
	return func(c *Client) {
		c.embedder = embedder
	}
}

func New(url, collection string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	if collection == "" {
		collection = "documents"
	}

	c := &Client{
		url:  url,
		name: collection,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) collection(ctx context.Context) (chroma.Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.col != nil {
		return c.col, nil
	}

	if c.client == nil {
		client, err := chroma.NewHTTPClient(chroma.WithBaseURL(c.url))

		if err != nil {
			return nil, err
		}

		c.client = client
	}

	var options []chroma.CreateCollectionOption

	if c.embedder != nil {
		options = append(options, chroma.WithEmbeddingFunctionCreate(c.embedder))
	}

	col, err := c.client.GetOrCreateCollection(ctx, c.name, options...)

	if err != nil {
		return nil, err
	}

	c.col = col

	return col, nil
}

func (c *Client) List(ctx context.Context, options *index.ListOptions) (*index.Page[index.Document], error) {
	col, err := c.collection(ctx)

	if err != nil {
		return nil, err
	}

	result, err := col.Get(ctx)

	if err != nil {
		return nil, err
	}

	ids := result.GetIDs()
	docs := result.GetDocuments()
	metadatas := result.GetMetadatas()

	items := make([]index.Document, 0, len(ids))

	for i, id := range ids {
		d := index.Document{
			ID: string(id),
		}

		if i < len(docs) {
			d.Content = docs[i].ContentString()
		}

		if i < len(metadatas) {
			d.Source, _ = metadatas[i].GetString(attrSource)
			d.Title, _ = metadatas[i].GetString(attrTitle)
		}

		items = append(items, d)
	}

	page := index.Page[index.Document]{
		Items: items,
	}

	return &page, nil
}

func (c *Client) Index(ctx context.Context, documents ...index.Document) error {
	col, err := c.collection(ctx)

	if err != nil {
		return err
	}

	var ids []chroma.DocumentID
	var texts []string
	var metadatas []chroma.DocumentMetadata

	for _, d := range documents {
		if d.ID == "" {
			d.ID = uuid.NewString()
		}

		ids = append(ids, chroma.DocumentID(d.ID))
		texts = append(texts, d.Content)

		metadatas = append(metadatas, chroma.NewDocumentMetadata(
			chroma.NewStringAttribute(attrSource, d.Source),
			chroma.NewStringAttribute(attrTitle, d.Title),
		))
	}

	return col.Add(ctx,
		chroma.WithIDs(ids...),
		chroma.WithTexts(texts...),
		chroma.WithMetadatas(metadatas...),
	)
}

func (c *Client) Delete(ctx context.Context, ids ...string) error {
	col, err := c.collection(ctx)

	if err != nil {
		return err
	}

	var documentIDs []chroma.DocumentID

	for _, id := range ids {
		documentIDs = append(documentIDs, chroma.DocumentID(id))
	}

	return col.Delete(ctx, chroma.WithIDsDelete(documentIDs...))
}

func (c *Client) Query(ctx context.Context, query string, options *index.QueryOptions) ([]index.Result, error) {
	if options == nil {
		options = &index.QueryOptions{}
	}

	col, err := c.collection(ctx)

	if err != nil {
		return nil, err
	}

	limit := 100

	if options.Limit != nil {
		limit = *options.Limit
	}

	result, err := col.Query(ctx,
		chroma.WithQueryTexts(query),
		chroma.WithNResults(limit),
	)

	if err != nil {
		return nil, err
	}

	ids := result.GetIDGroups()[0]
	docs := result.GetDocumentsGroups()[0]
	metadatas := result.GetMetadatasGroups()[0]
	distances := result.GetDistancesGroups()[0]

	results := make([]index.Result, 0, len(docs))

	for i := range docs {
		d := index.Document{
			Content: docs[i].ContentString(),
		}

		if i < len(ids) {
			d.ID = string(ids[i])
		}

		if i < len(metadatas) {
			d.Source, _ = metadatas[i].GetString(attrSource)
			d.Title, _ = metadatas[i].GetString(attrTitle)
		}

		r := index.Result{
			Document: d,
		}

		if i < len(distances) {
			r.Score = 1 - float32(distances[i])
		}

		results = append(results, r)
	}

	return results, nil
}
