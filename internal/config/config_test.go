package config

import (
	"errors"
	"io/fs"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/patterns/internal/logging"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func env(vars ...string) func() []string {
	return func() []string { return vars }
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.History.Capacity)
	assert.Equal(t, "GFG.txt", cfg.Memento.Identifier)
	assert.Equal(t, 1, cfg.Chain.From)
	assert.Equal(t, 99, cfg.Chain.To)
	assert.Len(t, cfg.Observer.Watchers, 4)
}

func TestLoadTOML(t *testing.T) {
	mem := NewMemFS()
	mem.AddFile("patterns.toml", `
[history]
capacity = 6

[logging]
level = "debug"
format = "json"

[[chain.handlers]]
name = "Fives"
expression = "n % 5 == 0"
`)

	cfg, err := NewLoaderWithFS(mem, nil).Load("patterns.toml", "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 6, cfg.History.Capacity)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	require.Len(t, cfg.Chain.Handlers, 1)
	assert.Equal(t, "Fives", cfg.Chain.Handlers[0].Name)
	// Untouched sections keep their defaults
	assert.Equal(t, "GFG.txt", cfg.Memento.Identifier)
	assert.Equal(t, 99, cfg.Chain.To)
}

func TestLoadYAML(t *testing.T) {
	mem := NewMemFS()
	mem.AddFile("patterns.yaml", `
memento:
  identifier: notes.txt
iterator:
  items: [alpha, beta]
observer:
  rounds: 3
  seed: 42
  watchers:
    - name: Solo
      id: ABCD
`)

	cfg, err := NewLoaderWithFS(mem, nil).Load("patterns.yaml", "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "notes.txt", cfg.Memento.Identifier)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.Iterator.Items)
	assert.Equal(t, 3, cfg.Observer.Rounds)
	assert.Equal(t, int64(42), cfg.Observer.Seed)
	assert.Equal(t, []WatcherConfig{{Name: "Solo", ID: "ABCD"}}, cfg.Observer.Watchers)
}

func TestLoadEmptyYAML(t *testing.T) {
	mem := NewMemFS()
	mem.AddFile("empty.yml", "")

	cfg, err := NewLoaderWithFS(mem, nil).Load("empty.yml", "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoaderWithFS(NewMemFS(), nil).Load("missing.toml", "missing.env")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"bad toml", "bad.toml", "[history\ncapacity = 4"},
		{"bad yaml", "bad.yaml", "history: [unclosed"},
		{"unknown toml key", "extra.toml", "[history]\nsize = 4"},
		{"unknown yaml key", "extra.yaml", "history:\n  size: 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemFS()
			mem.AddFile(tt.path, tt.content)

			_, err := NewLoaderWithFS(mem, nil).Load(tt.path, "")
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.path, parseErr.Path)
		})
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	mem := NewMemFS()
	mem.AddFile("patterns.ini", "capacity=4")

	_, err := NewLoaderWithFS(mem, nil).Load("patterns.ini", "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadEnvironment(t *testing.T) {
	loader := NewLoaderWithFS(NewMemFS(), env(
		"PATTERNS_HISTORY_CAPACITY=2",
		"PATTERNS_LOG_LEVEL=error",
		"PATTERNS_CHAIN_FROM=10",
		"PATTERNS_CHAIN_TO=20",
		"PATTERNS_ITERATOR_ITEMS=a, b,,c",
		"PATTERNS_OBSERVER_SEED=7",
		"PATTERNS_UNKNOWN=ignored",
		"HOME=/root",
	))

	cfg, err := loader.Load("", "")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.History.Capacity)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.Chain.From)
	assert.Equal(t, 20, cfg.Chain.To)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Iterator.Items)
	assert.Equal(t, int64(7), cfg.Observer.Seed)
}

func TestLoadEnvironmentBadNumber(t *testing.T) {
	loader := NewLoaderWithFS(NewMemFS(), env("PATTERNS_HISTORY_CAPACITY=four"))

	_, err := loader.Load("", "")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "PATTERNS_HISTORY_CAPACITY", parseErr.Path)
}

func TestLayerPrecedence(t *testing.T) {
	mem := NewMemFS()
	mem.AddFile("patterns.toml", "[history]\ncapacity = 5\n[memento]\nidentifier = \"file.txt\"\n")
	mem.AddFile(".env", "PATTERNS_HISTORY_CAPACITY=6\nPATTERNS_MEMENTO_IDENTIFIER=dotenv.txt\nOTHER=skip\n")

	loader := NewLoaderWithFS(mem, env("PATTERNS_HISTORY_CAPACITY=7"))
	cfg, err := loader.Load("patterns.toml", ".env")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.History.Capacity, "process environment wins over .env")
	assert.Equal(t, "dotenv.txt", cfg.Memento.Identifier, ".env wins over file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"capacity", func(c *Config) { c.History.Capacity = 0 }, "history.capacity"},
		{"level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"identifier", func(c *Config) { c.Memento.Identifier = "" }, "memento.identifier"},
		{"range", func(c *Config) { c.Chain.From, c.Chain.To = 10, 5 }, "chain.to"},
		{"range too wide", func(c *Config) { c.Chain.From, c.Chain.To = 1, MaxChainNumbers+1 }, "chain.to"},
		{"range to max int", func(c *Config) { c.Chain.To = math.MaxInt }, "chain.to"},
		{"range wraps", func(c *Config) { c.Chain.From, c.Chain.To = math.MinInt, math.MaxInt }, "chain.to"},
		{"handler name", func(c *Config) {
			c.Chain.Handlers = []ExprHandlerConfig{{Expression: "n > 1"}}
		}, "chain.handlers[0].name"},
		{"handler expression", func(c *Config) {
			c.Chain.Handlers = []ExprHandlerConfig{{Name: "Bad", Expression: "n +"}}
		}, "chain.handlers[0].expression"},
		{"rounds", func(c *Config) { c.Observer.Rounds = 0 }, "observer.rounds"},
		{"watcher id", func(c *Config) {
			c.Observer.Watchers = []WatcherConfig{{Name: "X", ID: "abcd"}}
		}, "observer.watchers[0].id"},
		{"watcher name", func(c *Config) {
			c.Observer.Watchers = []WatcherConfig{{ID: "ABCD"}}
		}, "observer.watchers[0].name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrValidationFailed)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestValidateRangeBound(t *testing.T) {
	cfg := Default()
	cfg.Chain.From, cfg.Chain.To = 1, MaxChainNumbers
	assert.NoError(t, cfg.Validate())

	cfg.Chain.From, cfg.Chain.To = math.MaxInt-1, math.MaxInt
	assert.NoError(t, cfg.Validate())
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.History.Capacity = -1
	cfg.Observer.Rounds = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.capacity")
	assert.Contains(t, err.Error(), "observer.rounds")
}

func TestExprHandlers(t *testing.T) {
	cfg := Default()
	cfg.Chain.Handlers = []ExprHandlerConfig{
		{Name: "Fives", Expression: "n % 5 == 0"},
		{Name: "Big", Expression: "n > 90"},
	}

	handlers, err := cfg.ExprHandlers()
	require.NoError(t, err)
	require.Len(t, handlers, 2)
	assert.Equal(t, "Big", handlers[1].Name())
}

func TestLoggerConfig(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	lc := cfg.LoggerConfig()
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.Equal(t, logging.FormatJSON, lc.Format)
}
