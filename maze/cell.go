// Package maze provides the grid model for maze generation and solving:
// cell states, the doubled wall/passage grid, the event log format that
// describes grid mutations over time, and materialized frames.
package maze

import "fmt"

// CellState is the state of a single internal grid cell.
//
// The internal grid doubles each logical axis so walls occupy their own
// rows and columns; both logical cells and the gaps between them carry a
// CellState.
type CellState uint8

const (
	// Wall is a solid cell. The initial state of every gap cell.
	Wall CellState = iota
	// Passage is an open cell that can be traversed.
	Passage
	// Frontier marks a wall cell queued for carving (Prim's).
	Frontier
	// Visited marks a passage explored by a solver.
	Visited
	// Path marks a cell on the reconstructed solution route.
	Path
	// Start is the solve origin cell.
	Start
	// End is the solve target cell.
	End
)

// String returns the lowercase name of the state.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	case Frontier:
		return "frontier"
	case Visited:
		return "visited"
	case Path:
		return "path"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("cellstate(%d)", uint8(s))
	}
}

// legalTransitions encodes which state changes a cell may undergo.
// Anything not listed is an algorithm bug and is rejected by Grid.Apply
// with an InvalidTransitionError. In particular a Wall can never become
// Path directly: it must be carved to Passage first.
var legalTransitions = map[CellState]map[CellState]bool{
	Wall:     {Passage: true, Frontier: true},
	Frontier: {Wall: true, Passage: true},
	Passage:  {Wall: true, Frontier: true, Visited: true, Path: true, Start: true, End: true},
	Visited:  {Passage: true, Path: true},
	Path:     {Passage: true},
	Start:    {},
	End:      {},
}

// canTransition reports whether a cell may change from one state to
// another. A no-op transition is always allowed.
func canTransition(from, to CellState) bool {
	if from == to {
		return true
	}
	return legalTransitions[from][to]
}
