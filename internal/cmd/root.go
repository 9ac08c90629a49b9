// Package cmd provides the commands of the siteswap tool.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/siteswap/internal/config"
	"github.com/katalvlaran/siteswap/internal/logging"
)

// Version is set by build flags.
var Version = "dev"

// app carries what every subcommand needs once the root pre-run finished.
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	configPath string
	logLevel   string
	format     string
}

// exitError signals a non-zero exit code for a failure already reported on
// the command output.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewRootCmd builds the siteswap command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "siteswap",
		Short:   "Validate and decompose juggling throw schedules",
		Version: Version,
		Long: `siteswap checks throw schedule documents for consistency and splits
valid patterns into their orbits.

A schedule document is YAML (or JSON) with a version, an optional notation,
and throws nested as beats → hands → releases → tosses:

  version: 1
  notation: "531"
  throws: [[[{value: 5, from: 0, to: 0}]], [[{value: 3, from: 0, to: 0}]], [[{value: 1, from: 0, to: 0}]]]`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML config file (default $SITESWAP_CONFIG)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.format, "format", "", "output format: text or yaml")

	root.AddCommand(newValidateCmd(a), newOrbitsCmd(a))

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)
	a.logger.Debug("configuration loaded",
		zap.String("config_file", cfg.ConfigFile),
		zap.String("format", cfg.Format),
		zap.Bool("strict", cfg.Strict))

	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			return exit.code
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}
