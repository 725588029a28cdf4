// Package engine provides the concurrent run machinery for the maze
// visualizer: the lifecycle coordinator, the compute and render
// workers, input handling, and the orchestrator that ties them to a
// terminal.
package engine

import (
	"errors"
	"fmt"
)

// ErrRunStale indicates that the run an algorithm was producing events
// for has been superseded or cancelled. It is the normal teardown
// signal for the compute worker, never surfaced to the user.
var ErrRunStale = errors.New("run is stale")

// TerminalIOError wraps a terminal backend failure. Terminal errors
// are fatal to the process: once the screen is gone there is nothing
// left to degrade to.
type TerminalIOError struct {
	Op  string
	Err error
}

func (e *TerminalIOError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalIOError) Unwrap() error { return e.Err }

// AlgorithmError wraps an invalid mutation produced by a generator or
// solver. It aborts the run that produced it and is shown to the user
// as a status message; the process keeps running.
type AlgorithmError struct {
	RunID string
	Stage string // "generate" or "solve"
	Err   error
}

func (e *AlgorithmError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.RunID, e.Stage, e.Err)
}

func (e *AlgorithmError) Unwrap() error { return e.Err }
