package config

import (
	"errors"
	"strings"

	"github.com/papyra/papyra/pkg/limiter"
	"github.com/papyra/papyra/pkg/otel"
	"github.com/papyra/papyra/pkg/provider"
	"github.com/papyra/papyra/pkg/provider/google"
	"github.com/papyra/papyra/pkg/provider/openai"
)

func (cfg *Config) RegisterEmbedder(id string, p provider.Embedder) {
	if cfg.embedder == nil {
		cfg.embedder = make(map[string]provider.Embedder)
	}

	if _, ok := cfg.embedder[""]; !ok {
		cfg.embedder[""] = p
	}

	cfg.embedder[id] = p
}

func (cfg *Config) Embedder(id string) (provider.Embedder, error) {
	if cfg.embedder != nil {
		if e, ok := cfg.embedder[id]; ok {
			return e, nil
		}
	}

	return nil, errors.New("embedder not found: " + id)
}

type embedderConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerEmbedders(f *configFile) error {
	if f.Embedders.IsZero() {
		return nil
	}

	var configs map[string]embedderConfig

	if err := f.Embedders.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Embedders.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		embedder, err := createEmbedder(config)

		if err != nil {
			return err
		}

		if _, ok := embedder.(limiter.Embedder); !ok {
			embedder = limiter.NewEmbedder(createLimiter(config.Limit), embedder)
		}

		if _, ok := embedder.(otel.Embedder); !ok {
			embedder = otel.NewEmbedder(config.Type, config.Model, embedder)
		}

		cfg.RegisterEmbedder(id, embedder)
	}

	return nil
}

func createEmbedder(cfg embedderConfig) (provider.Embedder, error) {
	switch strings.ToLower(cfg.Type) {

	case "google", "gemini":
		return googleEmbedder(cfg)

	case "openai":
		return openaiEmbedder(cfg)

	default:
		return nil, errors.New("invalid embedder type: " + cfg.Type)
	}
}

func googleEmbedder(cfg embedderConfig) (provider.Embedder, error) {
	var options []google.Option

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	return google.NewEmbedder(cfg.Model, options...)
}

func openaiEmbedder(cfg embedderConfig) (provider.Embedder, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	return openai.NewEmbedder(cfg.URL, cfg.Model, options...)
}
