package config

import (
	"errors"
	"strings"

	"github.com/papyra/papyra/pkg/otel"
	"github.com/papyra/papyra/pkg/retriever"
	"github.com/papyra/papyra/pkg/retriever/vector"
)

func (cfg *Config) RegisterRetriever(id string, p retriever.Provider) {
	if cfg.retrievers == nil {
		cfg.retrievers = make(map[string]retriever.Provider)
	}

	if _, ok := cfg.retrievers[""]; !ok {
		cfg.retrievers[""] = p
	}

	cfg.retrievers[id] = p
}

func (cfg *Config) Retriever(id string) (retriever.Provider, error) {
	if cfg.retrievers != nil {
		if r, ok := cfg.retrievers[id]; ok {
			return r, nil
		}
	}

	return nil, errors.New("retriever not found: " + id)
}

type retrieverConfig struct {
	Type string `yaml:"type"`

	Index string `yaml:"index"`
	Limit *int   `yaml:"limit"`
}

func (cfg *Config) registerRetrievers(f *configFile) error {
	if f.Retrievers.IsZero() {
		return nil
	}

	var configs map[string]retrieverConfig

	if err := f.Retrievers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Retrievers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		r, err := cfg.createRetriever(config)

		if err != nil {
			return err
		}

		if _, ok := r.(otel.Retriever); !ok {
			r = otel.NewRetriever(config.Type, id, r)
		}

		cfg.RegisterRetriever(id, r)
	}

	return nil
}

func (cfg *Config) createRetriever(config retrieverConfig) (retriever.Provider, error) {
	switch strings.ToLower(config.Type) {

	case "", "vector":
		return cfg.vectorRetriever(config)

	default:
		return nil, errors.New("invalid retriever type: " + config.Type)
	}
}

func (cfg *Config) vectorRetriever(config retrieverConfig) (retriever.Provider, error) {
	index, err := cfg.Index(config.Index)

	if err != nil {
		return nil, err
	}

	var options []vector.Option

	if config.Limit != nil {
		options = append(options, vector.WithLimit(*config.Limit))
	}

	return vector.New(index, options...)
}
