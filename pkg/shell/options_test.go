package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"prompt: \"shelf> \"\nhistory_size: 100\nquotes: \"'\"\n",
	), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "shelf> ", cfg.Prompt)
	assert.Equal(t, 100, cfg.HistorySize)
	assert.Equal(t, []rune{'\''}, cfg.QuoteChars())
	// Untouched keys keep their defaults.
	assert.Equal(t, "> ", cfg.ContinuationPrompt)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestQuoteCharsFallsBackToDefaults(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, []rune{'\'', '"'}, cfg.QuoteChars())
}
