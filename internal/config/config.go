package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dshills/patterns/internal/chain"
	"github.com/dshills/patterns/internal/engine/history"
	"github.com/dshills/patterns/internal/logging"
)

// Config holds all settings.
type Config struct {
	History  HistoryConfig  `toml:"history" yaml:"history" json:"history"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging" json:"logging"`
	Memento  MementoConfig  `toml:"memento" yaml:"memento" json:"memento"`
	Chain    ChainConfig    `toml:"chain" yaml:"chain" json:"chain"`
	Iterator IteratorConfig `toml:"iterator" yaml:"iterator" json:"iterator"`
	Observer ObserverConfig `toml:"observer" yaml:"observer" json:"observer"`
}

// HistoryConfig configures checkpoint history.
type HistoryConfig struct {
	// Capacity is the number of checkpoints a buffer keeps.
	Capacity int `toml:"capacity" yaml:"capacity" json:"capacity"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" json:"level"`
	Format string `toml:"format" yaml:"format" json:"format"`
}

// MementoConfig configures the buffer demonstration.
type MementoConfig struct {
	// Identifier names the demonstration buffer.
	Identifier string `toml:"identifier" yaml:"identifier" json:"identifier"`
}

// ChainConfig configures the chain of responsibility demonstration.
type ChainConfig struct {
	From     int                 `toml:"from" yaml:"from" json:"from"`
	To       int                 `toml:"to" yaml:"to" json:"to"`
	Handlers []ExprHandlerConfig `toml:"handlers" yaml:"handlers" json:"handlers,omitempty"`
}

// ExprHandlerConfig defines a handler by an expr-lang predicate over n.
type ExprHandlerConfig struct {
	Name       string `toml:"name" yaml:"name" json:"name"`
	Expression string `toml:"expression" yaml:"expression" json:"expression"`
}

// IteratorConfig configures the iterator demonstration.
type IteratorConfig struct {
	Items []string `toml:"items" yaml:"items" json:"items"`
}

// ObserverConfig configures the observer demonstration.
type ObserverConfig struct {
	// Rounds is the number of IDs the subject emits.
	Rounds int `toml:"rounds" yaml:"rounds" json:"rounds"`
	// Seed seeds the ID generator. Zero picks a random seed.
	Seed int64 `toml:"seed" yaml:"seed" json:"seed"`
	// Watchers lists the observers and the ID each one waits for.
	Watchers []WatcherConfig `toml:"watchers" yaml:"watchers" json:"watchers"`
}

// WatcherConfig is an observer waiting for one ID.
type WatcherConfig struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	ID   string `toml:"id" yaml:"id" json:"id"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		History: HistoryConfig{Capacity: history.DefaultCapacity},
		Logging: LoggingConfig{Level: "warn", Format: string(logging.FormatText)},
		Memento: MementoConfig{Identifier: "GFG.txt"},
		Chain:   ChainConfig{From: 1, To: 99},
		Iterator: IteratorConfig{
			Items: []string{"First", "Second", "Third"},
		},
		Observer: ObserverConfig{
			Rounds: 8,
			Watchers: []WatcherConfig{
				{Name: "ObserverA", ID: "UDTC"},
				{Name: "ObserverB", ID: "CSSO"},
				{Name: "ObserverC", ID: "NDOD"},
				{Name: "ObserverD", ID: "TCQD"},
			},
		},
	}
}

// MaxChainNumbers bounds how many numbers one chain run may process.
const MaxChainNumbers = 1_000_000

var watcherID = regexp.MustCompile(`^[A-Z]{4}$`)

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.History.Capacity < 1 {
		add("history.capacity", "must be at least 1, got %d", c.History.Capacity)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		add("logging.level", "unknown level %q (must be debug, info, warn, or error)", c.Logging.Level)
	}
	if !logging.ValidFormat(c.Logging.Format) {
		add("logging.format", "unknown format %q (must be text or json)", c.Logging.Format)
	}
	if c.Memento.Identifier == "" {
		add("memento.identifier", "must not be empty")
	}
	if c.Chain.To < c.Chain.From {
		add("chain.to", "range %d..%d is empty", c.Chain.From, c.Chain.To)
	} else if span := c.Chain.To - c.Chain.From; span < 0 || span >= MaxChainNumbers {
		// span wraps negative when the range is wider than MaxInt
		add("chain.to", "range %d..%d holds more than %d numbers", c.Chain.From, c.Chain.To, MaxChainNumbers)
	}
	for i, h := range c.Chain.Handlers {
		field := fmt.Sprintf("chain.handlers[%d]", i)
		if h.Name == "" {
			add(field+".name", "must not be empty")
		}
		if _, err := chain.NewExprHandler(h.Name, h.Expression); err != nil {
			add(field+".expression", "%v", err)
		}
	}
	if c.Observer.Rounds < 1 {
		add("observer.rounds", "must be at least 1, got %d", c.Observer.Rounds)
	}
	for i, w := range c.Observer.Watchers {
		field := fmt.Sprintf("observer.watchers[%d]", i)
		if w.Name == "" {
			add(field+".name", "must not be empty")
		}
		if !watcherID.MatchString(w.ID) {
			add(field+".id", "must be 4 uppercase letters, got %q", w.ID)
		}
	}

	return errors.Join(errs...)
}

// ExprHandlers compiles the configured chain handlers.
func (c *Config) ExprHandlers() ([]*chain.ExprHandler, error) {
	handlers := make([]*chain.ExprHandler, 0, len(c.Chain.Handlers))
	for _, h := range c.Chain.Handlers {
		eh, err := chain.NewExprHandler(h.Name, h.Expression)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, eh)
	}
	return handlers, nil
}

// LoggerConfig returns the logging configuration described by the settings.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Logging.Level)
	cfg.Format = logging.ParseFormat(c.Logging.Format)
	return cfg
}
