// Command ltisim simulates the second-order discrete-time LTI system and
// compares the recursive output with the closed-form solution.
//
// Usage:
//
//	ltisim [flags]
//
// Parameters come from flags, or from a YAML scenario file with -config.
// With a scenario file and no -scenario flag every scenario is run and a
// summary table is printed.
//
// Examples:
//
//	ltisim
//	ltisim -d -0.3 -k 0.1 -n 64 -rows 64
//	ltisim -csv > run.csv
//	ltisim -config scenarios.yaml
//	ltisim -config scenarios.yaml -scenario lab -spectrum
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/cwbudde/algo-lti/dsp/lti"
	"github.com/cwbudde/algo-lti/internal/config"
	"github.com/cwbudde/algo-lti/simulate"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	params   lti.Params
	config   string
	scenario string
	force    bool
	csv      bool
	rows     int
	spectrum bool
	workers  int
	verbose  bool
	noColor  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	preset := lti.LabPreset()
	var o options

	fs := flag.NewFlagSet("ltisim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&o.params.A, "a", preset.A, "input gain")
	fs.Float64Var(&o.params.B, "b", preset.B, "input exponent rate")
	fs.Float64Var(&o.params.C, "c", preset.C, "output gain")
	fs.Float64Var(&o.params.D, "d", preset.D, "output exponent rate")
	fs.Float64Var(&o.params.K, "k", preset.K, "cosh factor")
	fs.IntVar(&o.params.NPoints, "n", preset.NPoints, "number of samples")
	fs.StringVar(&o.config, "config", "", "YAML scenario file")
	fs.StringVar(&o.scenario, "scenario", "", "run only the named scenario from -config")
	fs.BoolVar(&o.force, "force", false, "run even if the system is unstable")
	fs.BoolVar(&o.csv, "csv", false, "write all samples as CSV instead of the report")
	fs.IntVar(&o.rows, "rows", 10, "number of sample rows in the report")
	fs.BoolVar(&o.spectrum, "spectrum", false, "report the spectrum peak of the processed output")
	fs.IntVar(&o.workers, "workers", 0, "concurrent scenarios (0 = GOMAXPROCS)")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored log output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ltisim [flags]\n\n")
		fmt.Fprintf(stderr, "Simulates y(n) = c e^{dn} cosh(kn) driven by x(n) = a e^{bn}.\n")
		fmt.Fprintf(stderr, "Stability condition: d + |k| < 0.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.scenario != "" && o.config == "" {
		return o, errors.New("-scenario requires -config")
	}
	return o, nil
}

func newLogger(w io.Writer, o options) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    o.noColor,
	}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	log := newLogger(stderr, o)

	scenarios := []simulate.Scenario{{Name: "flags", Params: o.params}}
	if o.config != "" {
		f, err := config.Load(o.config)
		if err != nil {
			log.Error("invalid input", "err", err)
			return 1
		}
		scenarios = f.Scenarios
		if o.scenario != "" {
			s, ok := f.Scenario(o.scenario)
			if !ok {
				log.Error("unknown scenario", "name", o.scenario, "file", o.config)
				return 1
			}
			scenarios = []simulate.Scenario{s}
		}
		log.Debug("loaded scenarios", "file", o.config, "count", len(scenarios))
	}

	var simOpts []simulate.Option
	if o.force {
		simOpts = append(simOpts, simulate.WithForce())
	}
	if o.spectrum {
		simOpts = append(simOpts, simulate.WithSpectrum())
	}
	if o.workers > 0 {
		simOpts = append(simOpts, simulate.WithWorkers(o.workers))
	}

	if len(scenarios) == 1 {
		return runSingle(scenarios[0], o, simOpts, log, stdout)
	}
	return runBatch(ctx, scenarios, simOpts, log, stdout)
}

func runSingle(s simulate.Scenario, o options, simOpts []simulate.Option, log *slog.Logger, stdout io.Writer) int {
	log.Debug("running scenario", "name", s.Name, "params", s.Params.String())

	res, err := simulate.Run(s.Params, simOpts...)
	if err != nil {
		logRunError(log, s, err)
		return 1
	}
	if !res.Stable {
		log.Warn("running unstable system, output may diverge", "d", s.Params.D, "k", s.Params.K)
	}
	if !res.Agreement.Agrees() {
		log.Warn("processed output departs from theory",
			"first_divergence", res.Agreement.FirstDivergence,
			"max_abs_error", res.Agreement.MaxAbsError,
			"finite", res.Agreement.Finite)
	}

	if o.csv {
		err = writeCSV(stdout, res)
	} else {
		err = writeReport(stdout, s.Name, res, o.rows)
	}
	if err != nil {
		log.Error("failed to write output", "err", err)
		return 1
	}
	return 0
}

func runBatch(ctx context.Context, scenarios []simulate.Scenario, simOpts []simulate.Option, log *slog.Logger, stdout io.Writer) int {
	start := time.Now()
	outcomes := simulate.RunBatch(ctx, scenarios, simOpts...)
	log.Debug("batch complete", "scenarios", len(scenarios), "elapsed", time.Since(start))

	failed := 0
	for _, out := range outcomes {
		if out.Err != nil {
			failed++
			logRunError(log, out.Scenario, out.Err)
		}
	}
	if err := writeSummary(stdout, outcomes); err != nil {
		log.Error("failed to write output", "err", err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func logRunError(log *slog.Logger, s simulate.Scenario, err error) {
	var instab *simulate.InstabilityError
	if errors.As(err, &instab) {
		log.Warn("stability warning: system is UNSTABLE, ensure that d + |k| < 0 (use -force to run anyway)",
			"scenario", s.Name, "d", instab.D, "k", instab.K)
		return
	}
	log.Error("simulation failed", "scenario", s.Name, "err", err)
}
