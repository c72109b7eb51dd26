// Package cli provides CLI commands for hostgen.
package cli

import (
	gocontext "context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/hostgen/internal/config"
	"github.com/example/hostgen/internal/logging"
	"github.com/example/hostgen/internal/wire"
)

// configFile is the --config flag value.
var configFile string

// Global flag name -> configuration key.
var globalFlagKeys = map[string]string{
	"data":       config.KeyData,
	"backend":    config.KeyBackend,
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
	"no-color":   config.KeyNoColor,
}

// AddGlobalFlags registers the flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("data", "", "catalog store path (default base.json, or base.db with --backend sqlite)")
	pf.String("backend", "", "storage backend: json or sqlite")
	pf.StringVar(&configFile, "config", "", "config file (default .hostgen.yaml in the working directory or home)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: auto, json, console")
	pf.Bool("no-color", false, "disable colored output")
}

// Bootstrap resolves configuration, sets up logging and configures the
// service wiring. It runs before every command via PersistentPreRunE.
func Bootstrap(cmd *cobra.Command, args []string) error {
	v := config.New()
	for flag, key := range globalFlagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}

	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logCfg.NoColor = logCfg.NoColor || cfg.NoColor
	logging.Configure(logCfg)

	if cfg.NoColor {
		color.NoColor = true
	}

	wire.Configure(cfg)

	logging.Default().Debug().
		Str("backend", cfg.Backend).
		Str("data", cfg.DataPath).
		Str("config", cfg.ConfigFile).
		Msg("Configuration loaded")
	return nil
}

// NewContext creates a context.Background() carrying the configured logger.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	return logging.WithLogger(gocontext.Background(), logging.Default())
}
