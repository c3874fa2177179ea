package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/timsort"
)

// fileConfig is the on-disk layout of a benchmark configuration.
type fileConfig struct {
	timsort.BenchConfig `yaml:",inline"`

	LogLevel string `yaml:"log_level"`
}

// defaultFileConfig is what a run uses when no file is given.
func defaultFileConfig() fileConfig {
	return fileConfig{
		BenchConfig: timsort.DefaultBenchConfig(),
		LogLevel:    "info",
	}
}

// loadConfig reads a YAML configuration. Keys missing from the file keep
// their default values. The extension must be .yml or .yaml, in any case.
func loadConfig(file string) (fileConfig, error) {
	cfg := defaultFileConfig()

	switch filepath.Ext(strings.ToLower(file)) {
	case ".yaml", ".yml":
	default:
		return cfg, errors.WithHint(
			errors.Newf("%q: incompatible format", file),
			"config files must end in .yml or .yaml")
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return cfg, errors.Wrapf(err, "%q", file)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "%q", file)
	}
	return cfg, nil
}

// parseLevel accepts the slog level names (debug, info, warn, error),
// optionally with an offset such as "info+2".
func parseLevel(s string) (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.Wrapf(err, "log level %q", s)
	}
	return lv, nil
}
