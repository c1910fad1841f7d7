package shell

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/shelf-sh/shelf/internal/history"
	"github.com/shelf-sh/shelf/pkg/tokenizer"
)

// Config holds the user-tunable shell settings, loadable from a YAML file.
type Config struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	HistoryFile        string `yaml:"history_file"`
	HistorySize        int    `yaml:"history_size"`
	Quotes             string `yaml:"quotes"`
}

// DefaultConfig returns the settings used when no config file overrides
// them.
func DefaultConfig() Config {
	return Config{
		Prompt:             "| ",
		ContinuationPrompt: "> ",
		HistorySize:        500,
		Quotes:             `'"`,
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error; the defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// QuoteChars returns the configured quote characters, falling back to the
// tokenizer defaults when the setting is empty.
func (c Config) QuoteChars() []rune {
	if c.Quotes == "" {
		return tokenizer.DefaultQuotes
	}
	return []rune(c.Quotes)
}

// Option configures a Shell at construction time.
type Option[S any] func(*Shell[S])

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger[S any](logger *zap.Logger) Option[S] {
	return func(s *Shell[S]) {
		s.logger = logger
	}
}

// WithHistory attaches a persistent history manager. Without one the shell
// keeps history in memory for the session only.
func WithHistory[S any](mgr *history.Manager) Option[S] {
	return func(s *Shell[S]) {
		s.hist = mgr
	}
}

// WithQuotes overrides the quote characters the tokenizer pairs up.
func WithQuotes[S any](quotes ...rune) Option[S] {
	return func(s *Shell[S]) {
		s.quotes = quotes
	}
}

// WithContinuationPrompt overrides the prompt shown while a multi-line
// input is still open.
func WithContinuationPrompt[S any](prompt string) Option[S] {
	return func(s *Shell[S]) {
		s.contPrompt = prompt
	}
}

// WithHistorySize caps how many entries the history builtin lists.
func WithHistorySize[S any](size int) Option[S] {
	return func(s *Shell[S]) {
		s.histSize = size
	}
}

// WithOutput redirects the run loop's output. Defaults to stdout.
func WithOutput[S any](w io.Writer) Option[S] {
	return func(s *Shell[S]) {
		s.out = w
	}
}
