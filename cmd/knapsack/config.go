package main

import (
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/tdw75/knapsack-problem/knapsack"
)

// envPrefix namespaces every environment variable, e.g. KNAPSACK_ALGO.
const envPrefix = "KNAPSACK"

// Config validation errors
var (
	ErrInvalidAlgo          = errors.New("algo must be bb, dp, greedy, pb or all")
	ErrInvalidLogFormat     = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel      = errors.New("log_level must be debug, info, warn, or error")
	ErrInvalidMaxTableCells = errors.New("max_table_cells must be positive")
)

// Config is the command-line configuration. Values come from defaults,
// then the environment (optionally seeded from a .env file), then flags.
type Config struct {
	Algo          string `envconfig:"ALGO" default:"bb"`
	LogFormat     string `envconfig:"LOG_FORMAT" default:"console"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"warn"`
	MetricsFile   string `envconfig:"METRICS_FILE"`
	MaxTableCells int    `envconfig:"MAX_TABLE_CELLS" default:"268435456"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Algo:          "bb",
		LogFormat:     "console",
		LogLevel:      "warn",
		MaxTableCells: knapsack.DefaultMaxTableCells,
	}
}

// LoadConfig loads envFile when it exists and then processes the
// KNAPSACK_* environment.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// BindFlags registers flags on fs that override the fields of cfg.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, "solver: bb, dp, greedy, pb, or all to compare every solver")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: json or console")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this file after solving")
	fs.IntVar(&cfg.MaxTableCells, "max-table-cells", cfg.MaxTableCells, "cell limit of the dynamic-programming table")
}

// ValidateConfig validates the configuration and returns an error if invalid.
func ValidateConfig(cfg *Config) error {
	if cfg.Algo != "all" {
		if _, err := knapsack.ParseAlgorithm(cfg.Algo); err != nil {
			return ErrInvalidAlgo
		}
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	if cfg.MaxTableCells <= 0 {
		return ErrInvalidMaxTableCells
	}

	return nil
}

// Algorithms returns the strategies selected by cfg.Algo.
func (cfg Config) Algorithms() []knapsack.Algorithm {
	if cfg.Algo == "all" {
		return knapsack.Algorithms()
	}
	a, err := knapsack.ParseAlgorithm(cfg.Algo)
	if err != nil {
		return nil
	}

	return []knapsack.Algorithm{a}
}
