package config

import (
	"errors"
	"strings"

	"github.com/papyra/papyra/pkg/index"
	"github.com/papyra/papyra/pkg/index/chroma"
	"github.com/papyra/papyra/pkg/index/memory"
)

func (cfg *Config) RegisterIndex(id string, p index.Provider) {
	if cfg.indexes == nil {
		cfg.indexes = make(map[string]index.Provider)
	}

	if _, ok := cfg.indexes[""]; !ok {
		cfg.indexes[""] = p
	}

	cfg.indexes[id] = p
}

func (cfg *Config) Index(id string) (index.Provider, error) {
	if cfg.indexes != nil {
		if i, ok := cfg.indexes[id]; ok {
			return i, nil
		}
	}

	return nil, errors.New("index not found: " + id)
}

type indexConfig struct {
	Type string `yaml:"type"`

	URL        string `yaml:"url"`
	Collection string `yaml:"collection"`

	Embedder string `yaml:"embedder"`
}

func (cfg *Config) registerIndexes(f *configFile) error {
	if f.Indexes.IsZero() {
		return nil
	}

	var configs map[string]indexConfig

	if err := f.Indexes.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Indexes.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		index, err := cfg.createIndex(config)

		if err != nil {
			return err
		}

		cfg.RegisterIndex(id, index)
	}

	return nil
}

func (cfg *Config) createIndex(config indexConfig) (index.Provider, error) {
	switch strings.ToLower(config.Type) {

	case "memory":
		return cfg.memoryIndex(config)

	case "chroma":
		return chromaIndex(config)

	default:
		return nil, errors.New("invalid index type: " + config.Type)
	}
}

func (cfg *Config) memoryIndex(config indexConfig) (index.Provider, error) {
	embedder, err := cfg.Embedder(config.Embedder)

	if err != nil {
		return nil, err
	}

	return memory.New(memory.WithEmbedder(embedder))
}

func chromaIndex(config indexConfig) (index.Provider, error) {
	var options []chroma.Option

	return chroma.New(config.URL, config.Collection, options...)
}
