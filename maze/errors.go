package maze

import "fmt"

// BoundsError reports an event coordinate outside the grid dimensions.
// It is fatal to the run that produced it but never to the process.
type BoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("coordinate (%d,%d) outside grid %dx%d", e.Row, e.Col, e.Rows, e.Cols)
}

// InvalidTransitionError reports an illegal cell-state change. It is
// treated as an algorithm-implementation bug: the run aborts and the
// error is surfaced to the user as an algorithm error.
type InvalidTransitionError struct {
	Row, Col int
	From, To CellState
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s at (%d,%d)", e.From, e.To, e.Row, e.Col)
}
