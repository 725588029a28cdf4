package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hunglongtrangithub/mazest/engine/emit"
	"github.com/hunglongtrangithub/mazest/engine/history"
	"github.com/hunglongtrangithub/mazest/maze"
)

// Outcome is how a run ended.
type Outcome uint8

const (
	// OutcomeCancelled means the user aborted the run.
	OutcomeCancelled Outcome = iota
	// OutcomeCompleted means the run finished and a route was found.
	OutcomeCompleted
	// OutcomeUnreachable means the run finished with no route to the
	// goal.
	OutcomeUnreachable
	// OutcomeFailed means the run aborted on an algorithm error.
	OutcomeFailed
)

// String returns the outcome's metric label.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeUnreachable:
		return "unreachable"
	case OutcomeFailed:
		return "failed"
	default:
		return "cancelled"
	}
}

// renderer is the render worker's state for one run. It is the sole
// consumer of the event channel, the sole writer of the history
// buffer, and the sole caller of the painter.
type renderer struct {
	run     Run
	coord   *Coordinator
	speed   *Speed
	painter Painter
	hist    *history.Buffer
	events  <-chan maze.Event
	actions <-chan Action
	emitter emit.Emitter
	metrics *Metrics
	opts    Options

	cursor    uint64 // sequence number currently on screen
	outcome   Outcome
	done      bool // event channel closed and drained
	statusMsg string
}

// run drives playback until the run is torn down: the context is
// cancelled, an interrupt is flagged, or (in loop mode) the event
// stream ends. Non-loop runs keep serving history navigation after the
// stream ends so the user can scrub the finished maze.
func (r *renderer) renderRun(ctx context.Context) (Outcome, error) {
	if err := r.repaintAll(); err != nil {
		return r.outcome, err
	}

	for {
		if r.coord.Interrupted() {
			if !r.done {
				r.outcome = OutcomeCancelled
			}
			return r.outcome, nil
		}
		if r.coord.TakeResize() {
			if err := r.recoverResize(ctx); err != nil {
				return r.outcome, err
			}
			continue
		}
		if r.coord.Paused() {
			if err := r.pausedLoop(ctx); err != nil {
				return r.outcome, err
			}
			continue
		}
		if r.done {
			if r.coord.Loop() {
				return r.outcome, nil
			}
			// Finished single run: block on actions only. A forwarded
			// loop toggle lands here too and re-enters the check above.
			select {
			case act, ok := <-r.actions:
				if !ok {
					return r.outcome, nil
				}
				if err := r.handle(act); err != nil {
					return r.outcome, err
				}
			case <-ctx.Done():
				return r.outcome, nil
			}
			continue
		}

		select {
		case act, ok := <-r.actions:
			if !ok {
				return r.outcome, nil
			}
			if err := r.handle(act); err != nil {
				return r.outcome, err
			}
		case ev, ok := <-r.events:
			if !ok {
				r.finishStream()
				continue
			}
			if err := r.consume(ev); err != nil {
				return r.outcome, err
			}
		case <-ctx.Done():
			r.outcome = OutcomeCancelled
			return r.outcome, nil
		}
	}
}

// consume commits one live event plus as many more as the current
// batch size allows, then repaints once and sleeps the speed delay.
func (r *renderer) consume(first maze.Event) error {
	batch := []maze.Event{first}
	for len(batch) < r.speed.Batch() {
		select {
		case ev, ok := <-r.events:
			if !ok {
				r.finishStream()
				return r.paintBatch(batch)
			}
			batch = append(batch, ev)
		default:
			return r.paintAndSleep(batch)
		}
	}
	return r.paintAndSleep(batch)
}

func (r *renderer) paintAndSleep(batch []maze.Event) error {
	if err := r.paintBatch(batch); err != nil {
		return err
	}
	time.Sleep(r.speed.Delay())
	return nil
}

func (r *renderer) paintBatch(batch []maze.Event) error {
	paints := make([]CellPaint, 0, len(batch))
	for _, ev := range batch {
		if err := r.commit(ev); err != nil {
			return err
		}
		if ev.Kind == maze.KindCell {
			paints = append(paints, CellPaint{Row: ev.Row, Col: ev.Col, State: ev.New})
		}
	}
	r.cursor = r.hist.Head()
	started := time.Now()
	if err := r.painter.Paint(paints); err != nil {
		return &TerminalIOError{Op: "paint", Err: err}
	}
	r.metrics.ObservePaint(time.Since(started))
	return r.paintStatus()
}

// commit appends one event to history and tracks run outcome markers.
func (r *renderer) commit(ev maze.Event) error {
	evictionsBefore := r.hist.Evictions()
	if err := r.hist.Commit(ev); err != nil {
		return err
	}
	r.metrics.RecordEvent(kindLabel(ev.Kind))
	if r.hist.Evictions() > evictionsBefore {
		r.metrics.RecordEviction()
	}
	if ev.Seq%uint64(r.opts.HistoryStride) == 0 {
		r.metrics.RecordFrame()
	}
	switch ev.Kind {
	case maze.KindComplete:
		r.outcome = OutcomeCompleted
		r.statusMsg = "solved"
	case maze.KindUnreachable:
		r.outcome = OutcomeUnreachable
		r.statusMsg = "goal unreachable"
	}
	return nil
}

func (r *renderer) finishStream() {
	r.done = true
	r.emitter.Emit(emit.Event{
		RunID: r.run.ID,
		Gen:   r.run.Gen,
		Seq:   r.hist.Head(),
		Msg:   "stream_end",
		Meta:  map[string]interface{}{"outcome": r.outcome.String()},
	})
}

// handle applies one user action while live.
func (r *renderer) handle(act Action) error {
	switch act {
	case ActionPauseResume:
		if r.coord.Paused() {
			return nil // pausedLoop owns resuming
		}
		r.coord.SetPaused(true)
		r.coord.SetState(StatePaused)
		r.emitState(StatePaused)
		return r.paintStatus()
	case ActionSpeedUp:
		r.speed.Up()
		return r.paintStatus()
	case ActionSpeedDown:
		r.speed.Down()
		return r.paintStatus()
	case actionResize:
		r.coord.FlagResize()
		return nil
	case ActionBack, ActionForward:
		// History navigation requires pausing first.
		return nil
	}
	return nil
}

// pausedLoop serves history navigation until the user resumes or the
// run is torn down. Live events stay queued in the channel the whole
// time; the compute worker blocks once it fills, which is exactly the
// pause semantics for the producer.
func (r *renderer) pausedLoop(ctx context.Context) error {
	if err := r.paintStatus(); err != nil {
		return err
	}
	for r.coord.Paused() {
		if r.coord.Interrupted() {
			return nil
		}
		if r.coord.TakeResize() {
			if err := r.recoverResize(ctx); err != nil {
				return err
			}
			continue
		}
		select {
		case act, ok := <-r.actions:
			if !ok {
				return nil
			}
			if err := r.handlePaused(act); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
	return r.resume()
}

func (r *renderer) handlePaused(act Action) error {
	switch act {
	case ActionPauseResume:
		r.coord.SetPaused(false)
		return nil
	case ActionBack:
		r.coord.SetState(StateNavigating)
		return r.stepBack()
	case ActionForward:
		r.coord.SetState(StateNavigating)
		return r.stepForward()
	case ActionSpeedUp:
		r.speed.Up()
		return r.paintStatus()
	case ActionSpeedDown:
		r.speed.Down()
		return r.paintStatus()
	case actionResize:
		r.coord.FlagResize()
	}
	return nil
}

// stepBack moves the cursor one event into the past by restoring the
// event's previous cell state.
func (r *renderer) stepBack() error {
	ev, ok := r.hist.EventAt(r.cursor)
	if !ok {
		r.statusMsg = "start of history"
		return r.paintStatus()
	}
	r.cursor--
	r.statusMsg = ""
	if ev.Kind == maze.KindCell {
		if err := r.painter.Paint([]CellPaint{{Row: ev.Row, Col: ev.Col, State: ev.Prev}}); err != nil {
			return &TerminalIOError{Op: "paint", Err: err}
		}
	}
	return r.paintStatus()
}

// stepForward moves the cursor one event toward the present. At the
// head it pulls the next live event, if one is already queued.
func (r *renderer) stepForward() error {
	if r.cursor == r.hist.Head() {
		select {
		case ev, ok := <-r.events:
			if !ok {
				r.finishStream()
				r.statusMsg = "end of run"
				return r.paintStatus()
			}
			return r.paintBatch([]maze.Event{ev})
		default:
			r.statusMsg = "caught up"
			return r.paintStatus()
		}
	}
	ev, ok := r.hist.EventAt(r.cursor + 1)
	if !ok {
		r.statusMsg = "caught up"
		return r.paintStatus()
	}
	r.cursor++
	r.statusMsg = ""
	if ev.Kind == maze.KindCell {
		if err := r.painter.Paint([]CellPaint{{Row: ev.Row, Col: ev.Col, State: ev.New}}); err != nil {
			return &TerminalIOError{Op: "paint", Err: err}
		}
	}
	return r.paintStatus()
}

// resume jumps the display back to the head after history navigation.
func (r *renderer) resume() error {
	r.coord.SetState(StateRunning)
	r.emitState(StateRunning)
	r.statusMsg = ""
	if r.cursor != r.hist.Head() {
		r.cursor = r.hist.Head()
		return r.repaintAll()
	}
	return r.paintStatus()
}

// recoverResize repaints the whole display at the cursor position,
// waiting out a too-small viewport first.
func (r *renderer) recoverResize(ctx context.Context) error {
	frame, truncated, err := r.hist.Seek(r.cursor)
	if err != nil {
		return err
	}
	if truncated {
		r.cursor = frame.Seq
		r.statusMsg = "history truncated"
	}
	previous := r.coord.State()
	for !r.painter.Fits(frame.Rows(), frame.Cols()) {
		r.coord.SetState(StateAwaitingResize)
		if err := r.painter.Clear(); err != nil {
			return &TerminalIOError{Op: "clear", Err: err}
		}
		if err := r.painter.Status("terminal too small, enlarge to continue"); err != nil {
			return &TerminalIOError{Op: "status", Err: err}
		}
		select {
		case act, ok := <-r.actions:
			if !ok {
				return nil
			}
			// Only resizes matter while the viewport is unusable.
			_ = act
		case <-ctx.Done():
			return nil
		}
		if r.coord.Interrupted() {
			return nil
		}
		r.coord.TakeResize()
	}
	r.coord.SetState(previous)
	if err := r.painter.Clear(); err != nil {
		return &TerminalIOError{Op: "clear", Err: err}
	}
	if err := r.painter.PaintFrame(frame); err != nil {
		return &TerminalIOError{Op: "paint", Err: err}
	}
	return r.paintStatus()
}

// repaintAll redraws the full display at the cursor position.
func (r *renderer) repaintAll() error {
	frame, _, err := r.hist.Seek(r.cursor)
	if err != nil {
		return err
	}
	if err := r.painter.PaintFrame(frame); err != nil {
		return &TerminalIOError{Op: "paint", Err: err}
	}
	return r.paintStatus()
}

func (r *renderer) paintStatus() error {
	if err := r.painter.Status(r.statusLine()); err != nil {
		return &TerminalIOError{Op: "status", Err: err}
	}
	return nil
}

// statusLine renders the status row: algorithms, speed scale, state,
// and any transient message.
func (r *renderer) statusLine() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s", r.run.Generator.Name(), r.run.Solver.Name())

	level := r.speed.Level()
	b.WriteString("  [")
	b.WriteString(strings.Repeat("#", level))
	b.WriteString(strings.Repeat("-", SpeedLevels-level))
	fmt.Fprintf(&b, "] %d/%d", level, SpeedLevels)

	switch st := r.coord.State(); {
	case r.coord.Paused() || st == StateNavigating:
		fmt.Fprintf(&b, "  paused @%d/%d", r.cursor, r.hist.Head())
	case r.done:
		b.WriteString("  finished")
	default:
		b.WriteString("  " + st.String())
	}
	if r.statusMsg != "" {
		b.WriteString("  ")
		b.WriteString(r.statusMsg)
	}
	return b.String()
}

func (r *renderer) emitState(state State) {
	r.emitter.Emit(emit.Event{
		RunID: r.run.ID,
		Gen:   r.run.Gen,
		Seq:   r.hist.Head(),
		Msg:   "state_change",
		Meta:  map[string]interface{}{"state": state.String()},
	})
}

func kindLabel(k maze.EventKind) string {
	switch k {
	case maze.KindUnreachable:
		return "unreachable"
	case maze.KindComplete:
		return "complete"
	default:
		return "cell"
	}
}
