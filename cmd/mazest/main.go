// Command mazest animates maze generation and solving in the
// terminal.
//
// Usage:
//
//	mazest [-width N] [-height N] [-gen NAME] [-solver NAME]
//	       [-seed N] [-loop] [-log FILE] [-log-json]
//	       [-metrics-addr HOST:PORT]
//
// Omitting -width/-height sizes the maze to the terminal. Keys: Enter
// or Space pauses and resumes, arrows scrub history and change speed,
// Esc cancels the run, l toggles loop mode, q quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hunglongtrangithub/mazest/engine"
	"github.com/hunglongtrangithub/mazest/engine/emit"
	"github.com/hunglongtrangithub/mazest/internal/term"
	"github.com/hunglongtrangithub/mazest/maze/gen"
	"github.com/hunglongtrangithub/mazest/maze/solve"
)

func main() {
	var (
		width       = flag.Int("width", 0, "maze width in cells (0 = fit terminal)")
		height      = flag.Int("height", 0, "maze height in cells (0 = fit terminal)")
		genName     = flag.String("gen", "backtracker", "generator: "+strings.Join(gen.Names(), ", "))
		solverName  = flag.String("solver", "bfs", "solver: "+strings.Join(solve.Names(), ", "))
		seed        = flag.Int64("seed", 0, "master RNG seed (0 = time-based)")
		loop        = flag.Bool("loop", false, "keep running random generator/solver pairs")
		logPath     = flag.String("log", "", "write run events to this file")
		logJSON     = flag.Bool("log-json", false, "write the event log as JSONL")
		metricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on this address")
	)
	flag.Parse()

	if err := run(*width, *height, *genName, *solverName, *seed, *loop, *logPath, *logJSON, *metricsAddr); err != nil {
		fmt.Fprintf(os.Stderr, "mazest: %v\n", err)
		os.Exit(1)
	}
}

func run(width, height int, genName, solverName string, seed int64, loop bool, logPath string, logJSON bool, metricsAddr string) error {
	opts := engine.Options{
		Generator: genName,
		Solver:    solverName,
		Seed:      seed,
		Loop:      loop,
	}

	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		opts.Emitter = emit.NewLogEmitter(f, logJSON)
	}

	if metricsAddr != "" {
		registry := prometheus.NewRegistry()
		opts.Metrics = engine.NewMetrics(registry)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(os.Stderr, "mazest: metrics server: %v\n", err)
			}
		}()
		defer server.Close()
	}

	screen, err := term.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fin()

	maxW, maxH := screen.MaxGridSize()
	if maxW < 1 || maxH < 1 {
		return errors.New("terminal too small")
	}
	opts.Width, opts.Height = width, height
	if opts.Width == 0 {
		opts.Width = maxW
	}
	if opts.Height == 0 {
		opts.Height = maxH
	}
	if opts.Width > maxW || opts.Height > maxH {
		return fmt.Errorf("maze %dx%d does not fit the terminal (max %dx%d)",
			opts.Width, opts.Height, maxW, maxH)
	}

	orch, err := engine.New(screen, screen, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return orch.Run(ctx)
}
