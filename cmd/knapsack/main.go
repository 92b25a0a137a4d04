// Command knapsack solves a 0/1 knapsack instance read from a file.
//
//	knapsack [flags] <input-file>
//
// The report goes to stdout; logs go to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tdw75/knapsack-problem/knapsack"
	"github.com/tdw75/knapsack-problem/logging"
	"github.com/tdw75/knapsack-problem/metrics"
	"github.com/tdw75/knapsack-problem/textio"
)

const usage = "This command requires an input file. Please select one from the data directory. (i.e. knapsack ./data/ks_4_0)"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// A broken environment is reported only once there is work to do; the
	// usage hint always exits 0.
	cfg, cfgErr := LoadConfig(".env")
	if cfgErr != nil {
		cfg = DefaultConfig()
	}

	fs := flag.NewFlagSet("knapsack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	BindFlags(fs, &cfg)
	err := fs.Parse(args)
	if err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stdout, usage)
		return 0
	}
	if cfgErr != nil {
		fmt.Fprintf(stderr, "could not load configuration: %v\n", cfgErr)
		return 1
	}
	if err = ValidateConfig(&cfg); err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 1
	}

	logger, err := logging.NewLogger(logging.Config{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		Output: zapcore.AddSync(stderr),
	})
	if err != nil {
		fmt.Fprintf(stderr, "could not build logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		logger.Error("could not register metrics", zap.Error(err))
		return 1
	}

	path := fs.Arg(0)
	inst, err := textio.ParseFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	logger.Debug("instance loaded", zap.String("path", path), zap.Int("items", len(inst.Items)), zap.Int("capacity", inst.Capacity))

	opts := knapsack.NewOptions(
		knapsack.WithMaxTableCells(cfg.MaxTableCells),
		knapsack.WithLogger(logger),
		knapsack.WithObserver(recorder),
	)
	if code := report(stdout, stderr, inst, cfg, opts); code != 0 {
		return code
	}

	if cfg.MetricsFile != "" {
		if err = prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			logger.Error("could not write metrics", zap.String("path", cfg.MetricsFile), zap.Error(err))
			return 1
		}
	}

	return 0
}

// report solves with the configured strategies and prints one report each.
func report(stdout, stderr io.Writer, inst knapsack.Instance, cfg Config, opts knapsack.Options) int {
	algos := cfg.Algorithms()
	if len(algos) == 1 {
		opts.Algo = algos[0]
		sol, err := knapsack.Solve(inst, opts)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		if err = textio.Format(stdout, sol); err != nil {
			return 1
		}

		return 0
	}

	sols, err := knapsack.Compare(context.Background(), inst, algos, opts)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	for _, sol := range sols {
		fmt.Fprintf(stdout, "# %s\n", sol.Algo)
		if err = textio.Format(stdout, sol); err != nil {
			return 1
		}
	}

	return 0
}
