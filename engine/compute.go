package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/hunglongtrangithub/mazest/maze"
	"github.com/hunglongtrangithub/mazest/maze/gen"
	"github.com/hunglongtrangithub/mazest/maze/solve"
)

// Run describes one generate-then-solve execution.
type Run struct {
	ID        string
	Gen       uint64
	Width     int
	Height    int
	Generator gen.Generator
	Solver    solve.Solver
	Seed      int64
}

// computeRun owns the grid for the run's duration and streams every
// mutation into out. The channel send blocks when the render side
// falls behind; that blocking is the backpressure bound on memory.
//
// Returns nil on natural completion and on stale/cancelled teardown,
// an AlgorithmError when the generator or solver produced an invalid
// mutation. The out channel is closed on every return path.
func computeRun(ctx context.Context, run Run, coord *Coordinator, metrics *Metrics, out chan<- maze.Event) error {
	defer close(out)

	grid, err := maze.New(run.Width, run.Height)
	if err != nil {
		return fmt.Errorf("%s: %w", run.ID, err)
	}
	rng := rand.New(rand.NewSource(run.Seed))

	sink := func(ev maze.Event) error {
		if coord.Interrupted() || coord.Stale(run.Gen) {
			return ErrRunStale
		}
		select {
		case out <- ev:
			metrics.SetChannelDepth(len(out))
			return nil
		default:
		}
		// Channel full: block until the render worker drains or the
		// run is torn down.
		metrics.RecordBackpressureWait()
		select {
		case out <- ev:
			metrics.SetChannelDepth(len(out))
			return nil
		case <-ctx.Done():
			return ErrRunStale
		}
	}
	rec := maze.NewRecorder(grid, sink)

	start := maze.Cell{X: 0, Y: 0}
	goal := maze.Cell{X: run.Width - 1, Y: run.Height - 1}

	if err := run.Generator.Generate(rec, rng); err != nil {
		return computeErr(run, "generate", err)
	}
	if err := rec.SetCell(start, maze.Start); err != nil {
		return computeErr(run, "generate", err)
	}
	if err := rec.SetCell(goal, maze.End); err != nil {
		return computeErr(run, "generate", err)
	}

	_, found, err := run.Solver.Solve(rec, start, goal, rng)
	if err != nil {
		return computeErr(run, "solve", err)
	}
	if !found {
		if err := rec.Unreachable(); err != nil {
			return computeErr(run, "solve", err)
		}
		return nil
	}
	return computeErr(run, "solve", rec.Complete())
}

// computeErr classifies a compute failure: stale teardown is a clean
// exit, anything else is an algorithm bug for this run.
func computeErr(run Run, stage string, err error) error {
	if err == nil || errors.Is(err, ErrRunStale) {
		return nil
	}
	return &AlgorithmError{RunID: run.ID, Stage: stage, Err: err}
}
