// Package config loads application configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
}

// LexiconConfig points at the positive and negative word lists.
type LexiconConfig struct {
	PositiveWords   string `yaml:"positive_words"   env:"DUYGU_POSITIVE_WORDS"   env-default:"data/positive_words.txt"`
	NegativeWords   string `yaml:"negative_words"   env:"DUYGU_NEGATIVE_WORDS"   env-default:"data/negative_words.txt"`
	FilterStopwords bool   `yaml:"filter_stopwords" env:"DUYGU_FILTER_STOPWORDS" env-default:"false"`
}

// DatasetConfig locates the labeled evaluation dataset.
type DatasetConfig struct {
	Path string `yaml:"path" env:"DUYGU_DATASET" env-default:"data/labeled_sentences.csv"`
}

// AnalyzerConfig selects the morphology backend. An empty URL falls back to
// the in-process static analyzer.
type AnalyzerConfig struct {
	URL     string        `yaml:"url"     env:"DUYGU_ANALYZER_URL"`
	Timeout time.Duration `yaml:"timeout" env:"DUYGU_ANALYZER_TIMEOUT" env-default:"10s"`
}

// StoreConfig holds evaluation-run persistence settings.
type StoreConfig struct {
	Path string `yaml:"path" env:"DUYGU_DB"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"DUYGU_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"DUYGU_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from path, falling back to environment variables
// and defaults when path is empty or missing.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		err := cleanenv.ReadConfig(path, &cfg)
		if err == nil {
			return &cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return &cfg, nil
}
