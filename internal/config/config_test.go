package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/positive_words.txt", cfg.Lexicon.PositiveWords)
	assert.Equal(t, "data/labeled_sentences.csv", cfg.Dataset.Path)
	assert.Equal(t, 10*time.Second, cfg.Analyzer.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Analyzer.URL)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
lexicon:
  positive_words: /tmp/pos.txt
  filter_stopwords: true
analyzer:
  url: http://localhost:4567
  timeout: 3s
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pos.txt", cfg.Lexicon.PositiveWords)
	assert.True(t, cfg.Lexicon.FilterStopwords)
	assert.Equal(t, "http://localhost:4567", cfg.Analyzer.URL)
	assert.Equal(t, 3*time.Second, cfg.Analyzer.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("DUYGU_DATASET", "/tmp/other.csv")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.csv", cfg.Dataset.Path)
}
