// Command bfsviz generates random connected graph layouts and animates a
// breadth-first traversal over them in the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsviz/config"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("bfsviz version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("bfsviz version %s-dev", version)
}

// app carries the state resolved by the root command for its subcommands.
type app struct {
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	cfg     config.Config
	seeded  bool
	log     *logrus.Logger
	closeFn func() error
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "bfsviz",
		Short:        "Step-by-step breadth-first search on random graph layouts",
		Version:      versionString(),
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&a.flagConfig, "config", "", "YAML config file (defaults apply when empty)")
	root.PersistentFlags().Int64Var(&a.flagSeed, "seed", 0, "Seed for reproducible layouts (random when unset)")
	root.PersistentFlags().StringVar(&a.flagLogLevel, "log-level", "", "Log level: trace|debug|info|warn|error (overrides log.level)")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newTraceCmd(a))

	return root
}

// setup loads the configuration and builds the logger. fallback receives
// log output when log.file is empty.
func (a *app) setup(cmd *cobra.Command, fallback io.Writer) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.flagLogLevel != "" {
		cfg.Log.Level = a.flagLogLevel
	}
	a.cfg = cfg
	a.seeded = cmd.Flags().Changed("seed")

	log, closeFn, err := newLogger(cfg.Log, fallback)
	if err != nil {
		return err
	}
	a.log, a.closeFn = log, closeFn
	a.log.WithFields(logrus.Fields{
		"config": a.flagConfig,
		"seeded": a.seeded,
		"seed":   a.flagSeed,
	}).Debug("bfsviz: configuration loaded")

	return nil
}

func (a *app) close() {
	if a.closeFn != nil {
		_ = a.closeFn()
	}
}
