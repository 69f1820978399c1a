// SPDX-License-Identifier: MIT

// Command xmath is a terminal front end for the xmath packages: symbolic
// complex matrices, complex arithmetic, quadratic equations and function
// analysis.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/xmath/internal/config"
)

// app carries the state shared by all subcommands.
type app struct {
	configFile string
	verbose    bool
	useFloat   bool

	cfg *config.Config
	log *slog.Logger
}

// main builds the command tree and exits 1 when the command fails.
// An interrupt cancels the context seen by the sampler workers.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "xmath",
		Short:         "symbolic complex numbers, matrices and function analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (yaml or toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(a.matrixCommands()...)
	rootCmd.AddCommand(a.calcCmd(), a.quadraticCmd(), a.rootsCmd(), a.extremaCmd())

	return rootCmd
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "path", a.configFile, "sampler", cfg.Sampler, "plot", cfg.Plot)

	return nil
}
