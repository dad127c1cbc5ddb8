// Command pressure reads a valve report and prints the maximum releasable
// value for each configured scenario.
//
// Usage:
//
//	pressure -input report.txt [-config run.yaml] [-start AA] [-workers N]
//	         [-log-level info] [-log-format text|json] [-metrics-file out.prom]
//
// Without -config the two reference scenarios run: one actor with 30 time
// units and two actors with 26. Results go to stdout as "name: value" lines;
// logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/katalvlaran/pressure/config"
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/metrics"
	"github.com/katalvlaran/pressure/parse"
	"github.com/katalvlaran/pressure/search"
)

// errUsage reports a command line that cannot be executed.
var errUsage = errors.New("pressure: usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command for tests: flags, config, input, solve, report.
func run(ctx context.Context, stdin io.Reader, outW, errW io.Writer, args []string) error {
	fs := flag.NewFlagSet("pressure", flag.ContinueOnError)
	fs.SetOutput(errW)
	var (
		input       = fs.String("input", "", "valve report file, - for stdin (required)")
		cfgPath     = fs.String("config", "", "YAML run configuration")
		start       = fs.String("start", "", "start valve (overrides config)")
		workers     = fs.Int("workers", -1, "fan-out width (overrides config)")
		logLevel    = fs.String("log-level", "", "debug|info|warn|error (overrides config)")
		logFormat   = fs.String("log-format", "", "text|json (overrides config)")
		metricsFile = fs.String("metrics-file", "", "Prometheus textfile output (overrides config)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("%w: -input is required", errUsage)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *start != "" {
		cfg.Start = *start
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Log.Level, cfg.Log.Format, errW).With("run", uuid.NewString())

	r := stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			return fmt.Errorf("pressure: %w", err)
		}
		defer f.Close()
		r = f
	}

	var gopts []core.GraphOption
	if cfg.Undirected {
		gopts = append(gopts, core.WithUndirected())
	}
	g, err := parse.Graph(r, cfg.Start, gopts...)
	if err != nil {
		return err
	}
	logger.Info("graph loaded",
		"valves", g.Len(), "flow_valves", g.FlowCount(), "tunnels", g.EdgeCount(), "start", g.StartID())

	var popts []search.ProblemOption
	if cfg.AllowUnreachable {
		popts = append(popts, search.AllowUnreachable())
	}
	p, err := search.NewProblem(g, popts...)
	if err != nil {
		return err
	}

	sopts := []search.Option{
		search.WithContext(ctx),
		search.WithWorkers(cfg.Workers),
		search.WithLogger(logger),
	}
	if cfg.SymmetryReduction {
		sopts = append(sopts, search.WithSymmetryReduction())
	}

	rec := metrics.NewRecorder()
	for _, sc := range cfg.Scenarios {
		mode, err := search.ModeForActors(sc.Actors)
		if err != nil {
			return err
		}
		began := time.Now()
		res, err := p.Run(mode, sc.Budget, sopts...)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		took := time.Since(began)
		rec.Observe(sc.Name, mode, res, took)
		logger.Info("scenario solved",
			"scenario", sc.Name,
			"mode", mode.String(),
			"budget", sc.Budget,
			"value", res.Value,
			"states", humanize.Comma(int64(res.Stats.States)),
			"memo_hits", humanize.Comma(int64(res.Stats.Hits)),
			"took", took,
		)
		fmt.Fprintf(outW, "%s: %d\n", sc.Name, res.Value)
	}

	if cfg.MetricsFile != "" {
		if err = rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Info("metrics written", "path", cfg.MetricsFile)
	}

	return nil
}
