package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/patterns/internal/config"
	"github.com/dshills/patterns/internal/logging"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
	jsonOutput bool
}

// runContext is what a subcommand needs after flags and config are resolved.
type runContext struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	json   bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "patterns",
		Short: "patterns demonstrates classic object-oriented design patterns",
		Long: `patterns runs small demonstrations of the Memento, Chain of Responsibility,
Iterator and Observer patterns.

Configuration can be provided via flags, PATTERNS_* environment variables, a .env
file, or a TOML/YAML configuration file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (.toml, .yaml, .yml)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "Path to a .env file with PATTERNS_* variables")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output results in JSON format")

	root.AddCommand(
		newMementoCmd(opts),
		newChainCmd(opts),
		newIteratorCmd(opts),
		newObserverCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

// Execute runs the root command.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// resolve loads configuration, applies persistent flag overrides and the
// subcommand's own overrides, validates the result and builds the logger.
func (o *rootOptions) resolve(cmd *cobra.Command, override func(*config.Config)) (*runContext, error) {
	cfg, err := config.Load(o.configPath, o.envFile)
	if err != nil {
		return nil, err
	}

	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}
	if override != nil {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logger := logging.New(logCfg).With("command", cmd.Name())

	logger.Debug("configuration resolved",
		"config", o.configPath,
		"capacity", cfg.History.Capacity)

	return &runContext{
		cfg:    cfg,
		logger: logger,
		out:    cmd.OutOrStdout(),
		json:   o.jsonOutput,
	}, nil
}

// narration returns where demonstrations narrate their steps. In JSON
// mode only the report is written to stdout.
func (rc *runContext) narration() io.Writer {
	if rc.json {
		return io.Discard
	}
	return rc.out
}

// printResult writes data as JSON in JSON mode, otherwise calls textFn.
func (rc *runContext) printResult(data any, textFn func()) error {
	if rc.json {
		enc := json.NewEncoder(rc.out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	if textFn != nil {
		textFn()
	}
	return nil
}
