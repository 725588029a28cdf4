package maze

import "fmt"

// EventKind distinguishes cell mutations from the terminal markers a
// run emits when it finishes.
type EventKind uint8

const (
	// KindCell is an atomic single-cell mutation.
	KindCell EventKind = iota
	// KindUnreachable marks that the solver found no route to the end
	// cell. A valid terminal outcome, not an error.
	KindUnreachable
	// KindComplete marks natural completion of a run.
	KindComplete
)

// Event is one atomic grid mutation, totally ordered by Seq within a
// run. Prev carries the cell's state before the mutation so history
// navigation can step backward one event at a time.
type Event struct {
	Kind EventKind
	Row  int
	Col  int
	Prev CellState
	New  CellState
	Seq  uint64
}

// String renders the event for status lines and logs.
func (e Event) String() string {
	switch e.Kind {
	case KindUnreachable:
		return fmt.Sprintf("#%d unreachable", e.Seq)
	case KindComplete:
		return fmt.Sprintf("#%d complete", e.Seq)
	default:
		return fmt.Sprintf("#%d (%d,%d) %s -> %s", e.Seq, e.Row, e.Col, e.Prev, e.New)
	}
}

// Frame is a fully materialized internal grid state plus the sequence
// number of the last event applied to it.
type Frame struct {
	Width  int // logical cells per row
	Height int // logical cells per column
	Cells  []CellState
	Seq    uint64
}

// InitialFrame builds the frame every run starts from: all walls with
// every logical cell opened to Passage, at sequence number zero.
func InitialFrame(width, height int) Frame {
	rows, cols := internalDims(width, height)
	cells := make([]CellState, rows*cols)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[(2*y+1)*cols+(2*x+1)] = Passage
		}
	}
	return Frame{Width: width, Height: height, Cells: cells}
}

// Rows returns the internal row count (2*Height+1).
func (f Frame) Rows() int { return 2*f.Height + 1 }

// Cols returns the internal column count (2*Width+1).
func (f Frame) Cols() int { return 2*f.Width + 1 }

// At returns the state at an internal coordinate.
func (f Frame) At(row, col int) CellState {
	return f.Cells[row*f.Cols()+col]
}

// Apply replays one committed event onto the frame. Marker events only
// advance the sequence number. Transition legality is not re-checked
// here: events reaching a frame were validated by the grid that
// produced them.
func (f *Frame) Apply(ev Event) error {
	if ev.Kind == KindCell {
		if ev.Row < 0 || ev.Row >= f.Rows() || ev.Col < 0 || ev.Col >= f.Cols() {
			return &BoundsError{Row: ev.Row, Col: ev.Col, Rows: f.Rows(), Cols: f.Cols()}
		}
		f.Cells[ev.Row*f.Cols()+ev.Col] = ev.New
	}
	f.Seq = ev.Seq
	return nil
}

// ToGrid materializes the frame as a fresh grid holding the same
// cells. The frame's backing array is copied, not shared.
func (f Frame) ToGrid() *Grid {
	rows, cols := internalDims(f.Width, f.Height)
	cells := make([]CellState, len(f.Cells))
	copy(cells, f.Cells)
	return &Grid{width: f.Width, height: f.Height, rows: rows, cols: cols, cells: cells}
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	cells := make([]CellState, len(f.Cells))
	copy(cells, f.Cells)
	f.Cells = cells
	return f
}

// Equal reports cell-for-cell equality of two frames, ignoring Seq.
func (f Frame) Equal(other Frame) bool {
	if f.Width != other.Width || f.Height != other.Height {
		return false
	}
	for i := range f.Cells {
		if f.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}
