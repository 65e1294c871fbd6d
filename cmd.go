package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const usageLine = "Usage: go-life rpentomino 50"

type rootOptions struct {
	configFile   string
	patternsFile string
	logLevel     string
	metricsFile  string
	parallel     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "go-life <pattern> <iterations>",
		Short:         "Run Conway's Game of Life from a named pattern",
		Long:          `go-life steps a named starting pattern through the given number of generations and prints every generation as a grid of glyphs.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			game, err := initializeGame(cmd, opts, stderr, reg)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}

			initial, iterations, err := parseRunArgs(args, game.patterns)
			if err != nil {
				game.logger.Debug("rejected arguments", "args", args, "error", err)
				fmt.Fprintln(stdout, usageLine)
				return err
			}

			if err = runSimulation(stdout, game, args[0], initial, iterations); err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}

			if opts.metricsFile != "" {
				if err = prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
					err = errors.Wrapf(err, "[metrics] failed to write %s", opts.metricsFile)
					fmt.Fprintln(stderr, err)
					return err
				}
				game.logger.Debug("wrote metrics", "file", opts.metricsFile)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		fmt.Fprintln(stdout, usageLine)
		return errors.Wrapf(errUsage, "[flags] %v", err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML or JSON config file")
	flags.StringVar(&opts.patternsFile, "patterns", "", "YAML file with extra named patterns")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: info, debug or trace")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics", "", "write run metrics in Prometheus text format to this file")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "compute each generation with parallel workers")
	// flags go before the pattern so a negative count reaches parseRunArgs
	cmd.Flags().SetInterspersed(false)

	cmd.AddCommand(newPatternsCmd(stdout, stderr, opts))
	return cmd
}

func newPatternsCmd(stdout, stderr io.Writer, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the available starting patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// listing is silent; load errors still reach stderr
			game, err := initializeGame(cmd, opts, nil, nil)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}
			for _, name := range game.patterns.Names() {
				initial, _ := game.patterns.Get(name)
				fmt.Fprintf(stdout, "%s\t%d cells\n", name, initial.Len())
			}
			return nil
		},
	}
}
