// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"

	"github.com/ik5/streamfmt/internal/config"
	"github.com/ik5/streamfmt/internal/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand once the persistent
// flags are parsed.
type app struct {
	configPath string
	verbose    bool
	pretty     bool

	cfg *config.Config
	log zerolog.Logger

	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr, log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:           "streamfmt",
		Short:         "Audio stream format descriptor tool",
		Long:          "Decode compact stream format descriptors such as BEI16@44100,2, rank them by quality and probe audio files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.pretty, "pretty", false, "Human readable log output")

	rootCmd.AddCommand(decodeCmd(a))
	rootCmd.AddCommand(compareCmd(a))
	rootCmd.AddCommand(rankCmd(a))
	rootCmd.AddCommand(probeCmd(a))
	rootCmd.AddCommand(resolveCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(config.Path(a.configPath))
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}

	pretty := cfg.Log.Pretty
	if cmd.Flags().Changed("pretty") {
		pretty = a.pretty
	}

	a.log = logging.New(level, pretty, a.stderr)
	a.log.Debug().Str("config", config.Path(a.configPath)).Msg("configuration loaded")

	return nil
}
