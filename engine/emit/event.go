package emit

// Event represents an observability event emitted during a maze run.
//
// Events cover the run lifecycle (start, complete, cancel), state
// transitions, backpressure waits, and terminal repaints. They are
// distinct from grid mutation events, which flow through the compute
// channel; an emit.Event is metadata about the run, not part of it.
type Event struct {
	// RunID identifies the run that emitted this event.
	RunID string

	// Gen is the run's generation number. Events from stale runs can
	// be filtered by comparing generations.
	Gen uint64

	// Seq is the grid event sequence number current when this event
	// was emitted. Zero for events before the first mutation.
	Seq uint64

	// Msg is a short machine-friendly description, e.g. "run_start",
	// "run_complete", "state_change", "backpressure_wait".
	Msg string

	// Meta contains additional structured data specific to this event.
	// Common keys:
	//   - "generator", "solver": algorithm names for the run
	//   - "state": lifecycle state after a transition
	//   - "outcome": terminal outcome of a finished run
	//   - "error": error details
	Meta map[string]interface{}
}
