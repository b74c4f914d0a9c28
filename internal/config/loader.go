package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "PATTERNS_"

// FileSystem is an abstraction for reading configuration files.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader resolves a Config from its sources.
type Loader struct {
	fs      FileSystem
	environ func() []string
}

// NewLoader creates a loader reading from the OS file system and environment.
func NewLoader() *Loader {
	return &Loader{
		fs:      OSFS{},
		environ: os.Environ,
	}
}

// NewLoaderWithFS creates a loader with a custom file system and environment.
// A nil environ reads no environment variables.
func NewLoaderWithFS(fsys FileSystem, environ func() []string) *Loader {
	if environ == nil {
		environ = func() []string { return nil }
	}
	return &Loader{fs: fsys, environ: environ}
}

// Load resolves defaults, the config file at path, the .env file at
// envFile and the process environment, in that order. Empty paths are
// skipped. The result is not validated.
func Load(path, envFile string) (*Config, error) {
	return NewLoader().Load(path, envFile)
}

// Load resolves the configuration. See the package-level Load.
func (l *Loader) Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := l.loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	env, err := l.loadDotEnv(envFile)
	if err != nil {
		return nil, err
	}
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(name, EnvPrefix) {
			env[name] = value
		}
	}

	if err := applyEnv(cfg, env); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile decodes path over cfg. A missing file leaves cfg unchanged.
func (l *Loader) loadFile(cfg *Config, path string) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}

// loadDotEnv reads PATTERNS_* variables from a .env file.
func (l *Loader) loadDotEnv(path string) (map[string]string, error) {
	env := make(map[string]string)
	if path == "" {
		return env, nil
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return env, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	for name, value := range vars {
		if strings.HasPrefix(name, EnvPrefix) {
			env[name] = value
		}
	}
	return env, nil
}

// envSetters maps environment variables to config fields.
var envSetters = map[string]func(c *Config, v string) error{
	"PATTERNS_HISTORY_CAPACITY": func(c *Config, v string) error {
		return setInt(&c.History.Capacity, v)
	},
	"PATTERNS_LOG_LEVEL": func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	},
	"PATTERNS_LOG_FORMAT": func(c *Config, v string) error {
		c.Logging.Format = v
		return nil
	},
	"PATTERNS_MEMENTO_IDENTIFIER": func(c *Config, v string) error {
		c.Memento.Identifier = v
		return nil
	},
	"PATTERNS_CHAIN_FROM": func(c *Config, v string) error {
		return setInt(&c.Chain.From, v)
	},
	"PATTERNS_CHAIN_TO": func(c *Config, v string) error {
		return setInt(&c.Chain.To, v)
	},
	"PATTERNS_ITERATOR_ITEMS": func(c *Config, v string) error {
		c.Iterator.Items = splitList(v)
		return nil
	},
	"PATTERNS_OBSERVER_ROUNDS": func(c *Config, v string) error {
		return setInt(&c.Observer.Rounds, v)
	},
	"PATTERNS_OBSERVER_SEED": func(c *Config, v string) error {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return err
		}
		c.Observer.Seed = n
		return nil
	},
}

// applyEnv sets fields from known variables. Unknown PATTERNS_ variables
// are ignored.
func applyEnv(cfg *Config, env map[string]string) error {
	for name, value := range env {
		set, ok := envSetters[name]
		if !ok {
			continue
		}
		if err := set(cfg, value); err != nil {
			return &ParseError{Path: name, Message: err.Error(), Err: err}
		}
	}
	return nil
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
