package main

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	errUsage          = errors.New("usage")
	errUnknownPattern = errors.New("unknown pattern")
	errBadIterations  = errors.New("iteration count must be a non-negative integer")
)

// game bundles everything a run needs, loaded once at startup
type game struct {
	config   utils.Config
	patterns model.PatternTable
	renderer model.Renderer
	logger   *slog.Logger
	stats    *utils.Stats
}

// initializeGame loads config and patterns and applies flag overrides.
// A nil logOut discards log output.
func initializeGame(cmd *cobra.Command, opts *rootOptions, logOut io.Writer, reg prometheus.Registerer) (*game, error) {
	config := utils.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if config, err = utils.LoadConfig(opts.configFile); err != nil {
			return nil, errors.Wrap(err, "[initializeGame] config")
		}
	}
	if opts.logLevel != "" {
		config.LogLevel = opts.logLevel
	}
	if opts.patternsFile != "" {
		config.PatternsFile = opts.patternsFile
	}
	if f := cmd.Flags().Lookup("parallel"); f != nil && f.Changed {
		config.UseParallel = opts.parallel
	}

	logger := utils.NewNopLogger()
	if logOut != nil {
		logger = utils.NewLogger(config.LogLevel, logOut)
	}

	patterns := model.DefaultPatterns()
	if config.PatternsFile != "" {
		extra, err := model.LoadPatternFile(config.PatternsFile)
		if err != nil {
			return nil, errors.Wrap(err, "[initializeGame] patterns")
		}
		logger.Debug("loaded pattern file", "file", config.PatternsFile, "patterns", extra.Len())
		patterns = patterns.Merge(extra)
	}

	return &game{
		config:   config,
		patterns: patterns,
		renderer: model.NewRenderer(config),
		logger:   logger,
		stats:    utils.NewStats(reg),
	}, nil
}

// parseRunArgs resolves the pattern name and iteration count
func parseRunArgs(args []string, patterns model.PatternTable) (model.State, int, error) {
	if len(args) != 2 {
		return model.State{}, 0, errors.Wrapf(errUsage, "[parseRunArgs] want 2 arguments, got %d", len(args))
	}

	initial, ok := patterns.Get(args[0])
	if !ok {
		return model.State{}, 0, errors.Wrapf(errUnknownPattern, "[parseRunArgs] %q", args[0])
	}

	iterations, err := strconv.Atoi(args[1])
	if err != nil || iterations < 0 {
		return model.State{}, 0, errors.Wrapf(errBadIterations, "[parseRunArgs] %q", args[1])
	}

	return initial, iterations, nil
}

// runSimulation computes every generation and writes each frame to w in order
func runSimulation(w io.Writer, g *game, name string, initial model.State, iterations int) error {
	g.logger.Info("starting run",
		"pattern", name,
		"iterations", iterations,
		"cells", initial.Len(),
		"parallel", g.config.UseParallel)

	start := time.Now()
	states, err := model.IterateWith(initial, iterations, g.config)
	if err != nil {
		return errors.Wrap(err, "[runSimulation] iterate")
	}

	var perStep time.Duration
	if iterations > 0 {
		perStep = time.Since(start) / time.Duration(iterations)
	}

	for generation, state := range states {
		box := model.Corners(state)
		g.stats.Update(generation, state.Len(), box.Area(), perStep)
		g.logger.Log(context.Background(), utils.LevelTrace, "generation",
			"generation", generation,
			"living", state.Len(),
			"bounding_box", box.Area())

		if err = g.renderer.Display(w, state); err != nil {
			return errors.Wrapf(err, "[runSimulation] generation %d", generation)
		}
	}

	if g.config.DetectCycles {
		if cycle, ok := model.DetectCycle(states); ok {
			g.logger.Info("pattern settled",
				"cycle_start", cycle.Start,
				"period", cycle.Period)
		}
	}

	g.logger.Info("run finished",
		"generations", g.stats.TotalGenerations,
		"living", g.stats.ActiveCells,
		"avg_population", g.stats.AveragePopulation,
		"gen_per_sec", g.stats.GenerationsPerSecond,
		"runtime", g.stats.Runtime())
	return nil
}
