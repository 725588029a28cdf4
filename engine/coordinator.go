package engine

import "sync/atomic"

// State is the playback lifecycle state, published by the workers so
// the status row and observability events can name what the session is
// doing.
type State int32

const (
	// StateIdle is before the first run and between runs.
	StateIdle State = iota
	// StateRunning is live playback.
	StateRunning
	// StatePaused is playback suspended at the head.
	StatePaused
	// StateNavigating is paused with the cursor moved into history.
	StateNavigating
	// StateAwaitingResize is waiting for a viewport large enough to
	// display the grid.
	StateAwaitingResize
	// StateCancelled is a run ended by the user.
	StateCancelled
	// StateCompleted is a run that finished naturally.
	StateCompleted
)

// String returns the state name used in status and emit events.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateNavigating:
		return "navigating"
	case StateAwaitingResize:
		return "awaiting_resize"
	case StateCancelled:
		return "cancelled"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Coordinator is the lock-free control surface shared by all workers.
// Each flag is an independent atomic, so workers poll at their
// checkpoints without contending on a lock, and the input worker flips
// flags without ever blocking on a busy render loop.
type Coordinator struct {
	generation atomic.Uint64
	interrupt  atomic.Bool
	pause      atomic.Bool
	resize     atomic.Bool
	loop       atomic.Bool
	state      atomic.Int32
}

// NewCoordinator returns a coordinator at generation zero with all
// flags clear.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// NextGeneration advances and returns the run generation. Every new
// run gets a fresh generation; events tagged with an older one are
// discarded instead of corrupting the new run's state.
func (c *Coordinator) NextGeneration() uint64 {
	c.interrupt.Store(false)
	c.pause.Store(false)
	c.state.Store(int32(StateRunning))
	return c.generation.Add(1)
}

// Generation returns the current run generation.
func (c *Coordinator) Generation() uint64 {
	return c.generation.Load()
}

// Stale reports whether gen belongs to a superseded run.
func (c *Coordinator) Stale(gen uint64) bool {
	return gen != c.generation.Load()
}

// Interrupt asks the current run's workers to stop at their next
// checkpoint.
func (c *Coordinator) Interrupt() {
	c.interrupt.Store(true)
}

// Interrupted reports whether an interrupt has been requested.
func (c *Coordinator) Interrupted() bool {
	return c.interrupt.Load()
}

// SetPaused sets the pause flag observed by the render worker.
func (c *Coordinator) SetPaused(v bool) {
	c.pause.Store(v)
}

// Paused reports whether playback is paused.
func (c *Coordinator) Paused() bool {
	return c.pause.Load()
}

// FlagResize records that the terminal dimensions changed.
func (c *Coordinator) FlagResize() {
	c.resize.Store(true)
}

// TakeResize consumes a pending resize flag, reporting whether one was
// set. Only one worker observes each resize.
func (c *Coordinator) TakeResize() bool {
	return c.resize.CompareAndSwap(true, false)
}

// SetLoop sets loop mode. Unlike the per-run flags it survives
// NextGeneration: loop mode is a session setting, not run state.
func (c *Coordinator) SetLoop(v bool) {
	c.loop.Store(v)
}

// ToggleLoop flips loop mode and returns the new value.
func (c *Coordinator) ToggleLoop() bool {
	for {
		old := c.loop.Load()
		if c.loop.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Loop reports whether loop mode is on. A run that has already
// finished advances as soon as this turns true.
func (c *Coordinator) Loop() bool {
	return c.loop.Load()
}

// SetState publishes the playback lifecycle state.
func (c *Coordinator) SetState(s State) {
	c.state.Store(int32(s))
}

// State returns the last published playback state.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}
