package config

import (
	"bytes"
	"os"

	"github.com/papyra/papyra/pkg/index"
	"github.com/papyra/papyra/pkg/provider"
	"github.com/papyra/papyra/pkg/retriever"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	embedder   map[string]provider.Embedder
	indexes    map[string]index.Provider
	retrievers map[string]retriever.Provider
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if err := c.registerEmbedders(file); err != nil {
		return nil, err
	}

	if err := c.registerIndexes(file); err != nil {
		return nil, err
	}

	if err := c.registerRetrievers(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Embedders  yaml.Node `yaml:"embedders"`
	Indexes    yaml.Node `yaml:"indexes"`
	Retrievers yaml.Node `yaml:"retrievers"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
