package engine

import (
	"time"

	"github.com/hunglongtrangithub/mazest/engine/emit"
	"github.com/hunglongtrangithub/mazest/maze"
)

// Options configures an Orchestrator. The zero value is usable: every
// field has a documented default applied by withDefaults.
type Options struct {
	// Width and Height are the logical maze dimensions in cells.
	// Default: 20x20. Must fit within maze.MaxDim per axis.
	Width  int
	Height int

	// Generator and Solver name the algorithms for single-run mode.
	// Defaults: "backtracker" and "bfs". Ignored when Loop is true.
	Generator string
	Solver    string

	// Loop keeps starting new runs with randomly chosen algorithm
	// pairs until the user quits. Default: false (one run, wait for
	// exit). This is the initial setting; the loop-toggle key flips it
	// at runtime.
	Loop bool

	// Seed seeds the master RNG that hands each run its own seed.
	// Default: 0, meaning seed from the current time.
	Seed int64

	// ChannelCapacity bounds the compute-to-render event channel. A
	// full channel blocks the compute worker, which is the
	// backpressure that keeps memory flat. Default: 64.
	ChannelCapacity int

	// HistoryStride is the number of events committed between history
	// snapshots. Default: 64.
	HistoryStride int

	// HistoryFrames is the number of history snapshots retained before
	// the oldest is evicted. Default: 64.
	HistoryFrames int

	// PollTimeout bounds each input poll so the input worker can check
	// for shutdown. Default: 100ms.
	PollTimeout time.Duration

	// ResizeDebounce coalesces the resize event bursts terminals send
	// while the user drags. Default: 50ms.
	ResizeDebounce time.Duration

	// Emitter receives observability events. Default: NullEmitter.
	Emitter emit.Emitter

	// Metrics records run metrics. Default: disabled collector.
	Metrics *Metrics

	// Keys maps keypresses to actions. Default: DefaultKeyMap().
	Keys KeyMap
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 20
	}
	if o.Height == 0 {
		o.Height = 20
	}
	if o.Generator == "" {
		o.Generator = "backtracker"
	}
	if o.Solver == "" {
		o.Solver = "bfs"
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.ChannelCapacity == 0 {
		o.ChannelCapacity = 64
	}
	if o.HistoryStride == 0 {
		o.HistoryStride = 64
	}
	if o.HistoryFrames == 0 {
		o.HistoryFrames = 64
	}
	if o.PollTimeout == 0 {
		o.PollTimeout = 100 * time.Millisecond
	}
	if o.ResizeDebounce == 0 {
		o.ResizeDebounce = 50 * time.Millisecond
	}
	if o.Emitter == nil {
		o.Emitter = emit.NewNullEmitter()
	}
	if o.Metrics == nil {
		o.Metrics = NewDisabledMetrics()
	}
	if o.Keys == nil {
		o.Keys = DefaultKeyMap()
	}
	return o
}

// validate rejects configurations the grid model cannot represent.
func (o Options) validate() error {
	_, err := maze.New(o.Width, o.Height)
	return err
}
