package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexshd/timsort"
)

type runOptions struct {
	configFile string
	sizes      []int
	patterns   []string
	rounds     int
	workers    int
	seed       int64
	logLevel   string
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "runs the benchmark cases",
		Long: `
	Runs one case per (pattern, size) pair and prints comparisons per element,
	the ratio to n·log2 n, and timing percentiles for each.
	`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), opts)
			if err != nil {
				return err
			}
			return runBench(cmd, cfg)
		},
	}
	addRunFlags(cmd.Flags(), &opts)
	return cmd
}

func addRunFlags(fs *pflag.FlagSet, opts *runOptions) {
	def := defaultFileConfig()

	fs.StringVarP(&opts.configFile, "config", "c", "", "Path to a YAML configuration file")
	fs.IntSliceVar(&opts.sizes, "sizes", def.Sizes, "Input lengths to sort")
	fs.StringSliceVar(&opts.patterns, "patterns", patternNames(def.Patterns), "Input patterns to sort")
	fs.IntVar(&opts.rounds, "rounds", def.Rounds, "Sorts per case")
	fs.IntVar(&opts.workers, "workers", def.Workers, "Cases measured at once")
	fs.Int64Var(&opts.seed, "seed", def.Seed, "Base random seed")
	fs.StringVar(&opts.logLevel, "log-level", def.LogLevel, "Log level: debug, info, warn or error")
}

// resolveConfig starts from the defaults, applies the config file if one
// was given, then applies every flag set on the command line.
func resolveConfig(fs *pflag.FlagSet, opts runOptions) (fileConfig, error) {
	cfg := defaultFileConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = loadConfig(opts.configFile); err != nil {
			return cfg, err
		}
	}

	if fs.Changed("sizes") {
		cfg.Sizes = opts.sizes
	}
	if fs.Changed("patterns") {
		ps := make([]timsort.Pattern, 0, len(opts.patterns))
		for _, name := range opts.patterns {
			p, err := timsort.ParsePattern(name)
			if err != nil {
				return cfg, err
			}
			ps = append(ps, p)
		}
		cfg.Patterns = ps
	}
	if fs.Changed("rounds") {
		cfg.Rounds = opts.rounds
	}
	if fs.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if fs.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runBench(cmd *cobra.Command, cfg fileConfig) error {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	logger.Info("Starting benchmark",
		"sizes", cfg.Sizes,
		"patterns", len(cfg.Patterns),
		"rounds", cfg.Rounds,
		"workers", cfg.Workers,
		"seed", cfg.Seed)

	start := time.Now()
	results, err := timsort.RunBench(cmd.Context(), cfg.BenchConfig)
	if err != nil {
		return errors.Wrap(err, "benchmark")
	}
	logger.Info("Benchmark finished", "cases", len(results), "elapsed", time.Since(start).Round(time.Millisecond))

	for _, r := range results {
		logger.Debug("Case",
			"pattern", r.Pattern,
			"n", r.N,
			"comparisons", r.Comparisons,
			"ratio", r.Ratio())
	}

	return writeReport(cmd.OutOrStdout(), results)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func patternNames(ps []timsort.Pattern) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	return names
}
