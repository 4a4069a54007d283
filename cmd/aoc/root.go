package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/config"
	"github.com/katalvlaran/aoc2021/logger"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg       *config.Config
	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2021 solutions",
		Long: `Run the Advent of Code 2021 solutions against puzzle inputs.

Configuration is read from .env, an optional YAML file (--config) and
AOC_* environment variables; flags override all of them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(newRunCmd(a), newListCmd())
	return root
}

// setup loads configuration and initialises logging before any subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	closer, err := logger.Init(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.logCloser = cfg, closer
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
