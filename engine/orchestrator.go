package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/hunglongtrangithub/mazest/engine/emit"
	"github.com/hunglongtrangithub/mazest/engine/history"
	"github.com/hunglongtrangithub/mazest/maze"
	"github.com/hunglongtrangithub/mazest/maze/gen"
	"github.com/hunglongtrangithub/mazest/maze/solve"
)

// Orchestrator owns the session: it starts runs, wires the compute and
// render workers to each other and to the input stream, and decides
// what happens when a run ends.
type Orchestrator struct {
	opts    Options
	painter Painter
	src     EventSource
	coord   *Coordinator
	rng     *rand.Rand // master RNG; hands each run its own seed
}

// New creates an orchestrator for the given terminal. Options zero
// values get their documented defaults.
func New(painter Painter, src EventSource, opts Options) (*Orchestrator, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if _, err := gen.ByName(opts.Generator); err != nil {
		return nil, err
	}
	if _, err := solve.ByName(opts.Solver); err != nil {
		return nil, err
	}
	coord := NewCoordinator()
	coord.SetLoop(opts.Loop)
	return &Orchestrator{
		opts:    opts,
		painter: painter,
		src:     src,
		coord:   coord,
		rng:     rand.New(rand.NewSource(opts.Seed)),
	}, nil
}

// Run drives the session until the user quits or the context is
// cancelled. Returns nil on a clean exit; a TerminalIOError means the
// terminal itself failed.
func (o *Orchestrator) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	actions := make(chan Action, 8)
	input := &inputWorker{
		src:      o.src,
		keys:     o.opts.Keys,
		timeout:  o.opts.PollTimeout,
		debounce: o.opts.ResizeDebounce,
		actions:  actions,
	}
	inputErr := make(chan error, 1)
	go func() { inputErr <- input.run(ctx) }()

	for {
		quit, err := o.runOnce(ctx, actions)
		if err != nil || quit || ctx.Err() != nil {
			cancel()
			<-inputErr
			return err
		}
		if !o.coord.Loop() {
			cancel()
			<-inputErr
			return nil
		}
		select {
		case ierr := <-inputErr:
			// Input worker died; without input the session is over.
			return ierr
		default:
		}
	}
}

// pickAlgorithms chooses the run's generator/solver pair: the
// configured ones in single-run mode, a random pair in loop mode.
func (o *Orchestrator) pickAlgorithms() (gen.Generator, solve.Solver) {
	if !o.coord.Loop() {
		g, _ := gen.ByName(o.opts.Generator)
		s, _ := solve.ByName(o.opts.Solver)
		return g, s
	}
	gens := gen.All()
	solvers := solve.All()
	return gens[o.rng.Intn(len(gens))], solvers[o.rng.Intn(len(solvers))]
}

type renderResult struct {
	outcome Outcome
	err     error
}

// runOnce executes one complete run. quit reports that the user asked
// to exit the program rather than just this run.
func (o *Orchestrator) runOnce(ctx context.Context, actions <-chan Action) (quit bool, err error) {
	generator, solver := o.pickAlgorithms()
	genNum := o.coord.NextGeneration()
	run := Run{
		ID:        fmt.Sprintf("run-%d", genNum),
		Gen:       genNum,
		Width:     o.opts.Width,
		Height:    o.opts.Height,
		Generator: generator,
		Solver:    solver,
		Seed:      o.rng.Int63(),
	}
	o.opts.Emitter.Emit(emit.Event{
		RunID: run.ID,
		Gen:   run.Gen,
		Msg:   "run_start",
		Meta: map[string]interface{}{
			"generator": generator.Name(),
			"solver":    solver.Name(),
			"seed":      run.Seed,
		},
	})

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	if err := o.painter.Clear(); err != nil {
		return false, &TerminalIOError{Op: "clear", Err: err}
	}

	events := make(chan maze.Event, o.opts.ChannelCapacity)
	renderActions := make(chan Action, 8)

	computeErr := make(chan error, 1)
	go func() {
		computeErr <- computeRun(runCtx, run, o.coord, o.opts.Metrics, events)
	}()

	r := &renderer{
		run:     run,
		coord:   o.coord,
		speed:   NewSpeed(run.Width, run.Height, maze.MaxDim),
		painter: o.painter,
		hist:    history.New(maze.InitialFrame(run.Width, run.Height), o.opts.HistoryStride, o.opts.HistoryFrames),
		events:  events,
		actions: renderActions,
		emitter: o.opts.Emitter,
		metrics: o.opts.Metrics,
		opts:    o.opts,
	}
	renderDone := make(chan renderResult, 1)
	go func() {
		outcome, rerr := r.renderRun(runCtx)
		renderDone <- renderResult{outcome: outcome, err: rerr}
	}()

	var algErr error
	pendingCompute := computeErr
	for {
		select {
		case act := <-actions:
			switch act {
			case ActionQuit:
				quit = true
				o.coord.Interrupt()
				cancelRun()
			case ActionCancel:
				o.coord.Interrupt()
				cancelRun()
			default:
				if act == ActionToggleLoop {
					// Forwarded as well, so a renderer parked on a
					// finished run wakes and re-checks loop mode.
					o.coord.ToggleLoop()
				}
				select {
				case renderActions <- act:
				case res := <-renderDone:
					// Renderer already returned; nobody will drain
					// renderActions, so finish instead of wedging.
					cancelRun()
					if pendingCompute != nil {
						<-pendingCompute
					}
					return o.finishRun(run, res, algErr, quit)
				case <-runCtx.Done():
				}
			}

		case cerr := <-pendingCompute:
			pendingCompute = nil // fires once per run
			if cerr != nil {
				algErr = cerr
				o.opts.Emitter.Emit(emit.Event{
					RunID: run.ID,
					Gen:   run.Gen,
					Msg:   "run_error",
					Meta:  map[string]interface{}{"error": cerr.Error()},
				})
				// Abort the broken run: next run in loop mode,
				// session over otherwise.
				o.coord.Interrupt()
				cancelRun()
			}

		case res := <-renderDone:
			cancelRun()
			if pendingCompute != nil {
				<-pendingCompute
			}
			return o.finishRun(run, res, algErr, quit)

		case <-ctx.Done():
			o.coord.Interrupt()
			cancelRun()
			res := <-renderDone
			if pendingCompute != nil {
				<-pendingCompute
			}
			return o.finishRun(run, res, algErr, true)
		}
	}
}

// finishRun records the run's outcome and surfaces any algorithm
// error on the status row.
func (o *Orchestrator) finishRun(run Run, res renderResult, algErr error, quit bool) (bool, error) {
	outcome := res.outcome
	if algErr != nil {
		outcome = OutcomeFailed
	}
	if outcome == OutcomeCompleted || outcome == OutcomeUnreachable {
		o.coord.SetState(StateCompleted)
	} else {
		o.coord.SetState(StateCancelled)
	}
	o.opts.Metrics.RecordRun(outcome.String())
	o.opts.Emitter.Emit(emit.Event{
		RunID: run.ID,
		Gen:   run.Gen,
		Msg:   "run_end",
		Meta:  map[string]interface{}{"outcome": outcome.String()},
	})

	if res.err != nil {
		return quit, res.err
	}
	if algErr != nil && !o.coord.Loop() {
		// Surface after the terminal is restored; loop mode just
		// moves on to the next run.
		return quit, algErr
	}
	return quit, nil
}
