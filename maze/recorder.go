package maze

// Sink receives every event a recorder produces, in sequence order.
// Returning an error aborts the emitting algorithm; the sink call is
// the per-event cancellation checkpoint, so cancellation latency is
// bounded by one unit of work.
type Sink func(Event) error

// Recorder is the single mutation path algorithms use against a grid.
// It validates each change, assigns strictly increasing sequence
// numbers, and pushes the resulting event into the sink. Mutations
// that leave a cell unchanged emit nothing.
type Recorder struct {
	grid *Grid
	sink Sink
	seq  uint64
}

// NewRecorder wraps a grid with an event sink. A nil sink records
// mutations without emitting, which the tests use to build grids
// directly.
func NewRecorder(g *Grid, sink Sink) *Recorder {
	return &Recorder{grid: g, sink: sink}
}

// Grid returns the underlying grid for read access.
func (r *Recorder) Grid() *Grid { return r.grid }

// Seq returns the sequence number of the last emitted event.
func (r *Recorder) Seq() uint64 { return r.seq }

func (r *Recorder) set(row, col int, s CellState) error {
	prev := r.grid.At(row, col)
	if prev == s {
		return nil
	}
	r.seq++
	ev := Event{Kind: KindCell, Row: row, Col: col, Prev: prev, New: s, Seq: r.seq}
	if err := r.grid.Apply(ev); err != nil {
		r.seq--
		return err
	}
	if r.sink != nil {
		return r.sink(ev)
	}
	return nil
}

// SetCell sets the state of a logical cell.
func (r *Recorder) SetCell(c Cell, s CellState) error {
	return r.set(2*c.Y+1, 2*c.X+1, s)
}

// SetGap sets the state of the wall gap between two adjacent cells.
func (r *Recorder) SetGap(a, b Cell, s CellState) error {
	row, col, err := r.grid.gapBetween(a, b)
	if err != nil {
		return err
	}
	return r.set(row, col, s)
}

// CarveBetween opens the wall between two adjacent cells.
func (r *Recorder) CarveBetween(a, b Cell) error {
	return r.SetGap(a, b, Passage)
}

// MarkPathBetween marks the gap between two adjacent cells as part of
// the solution route.
func (r *Recorder) MarkPathBetween(a, b Cell) error {
	return r.SetGap(a, b, Path)
}

// FillWalls turns every interior cell, logical cells included, into a
// wall. Boundary walls are untouched (they already are walls).
func (r *Recorder) FillWalls() error {
	for row := 1; row < r.grid.rows-1; row++ {
		for col := 1; col < r.grid.cols-1; col++ {
			if err := r.set(row, col, Wall); err != nil {
				return err
			}
		}
	}
	return nil
}

// ClearWalls opens every interior cell. Boundary walls are preserved.
func (r *Recorder) ClearWalls() error {
	for row := 1; row < r.grid.rows-1; row++ {
		for col := 1; col < r.grid.cols-1; col++ {
			if err := r.set(row, col, Passage); err != nil {
				return err
			}
		}
	}
	return nil
}

// Orientation distinguishes horizontal wall lines (separating rows)
// from vertical ones (separating columns).
type Orientation uint8

const (
	// Horizontal lines run left-right, separating row `after` from
	// `after+1`.
	Horizontal Orientation = iota
	// Vertical lines run top-bottom, separating column `after` from
	// `after+1`.
	Vertical
)

// InsertWallLine builds a wall line after logical row/column `after`,
// spanning logical indices start..end inclusive in the perpendicular
// direction. Used by recursive division.
func (r *Recorder) InsertWallLine(after, start, end int, o Orientation) error {
	switch o {
	case Horizontal:
		row := 2*after + 2
		for x := 2*start + 1; x <= 2*end+1; x++ {
			if err := r.set(row, x, Wall); err != nil {
				return err
			}
		}
	case Vertical:
		col := 2*after + 2
		for y := 2*start + 1; y <= 2*end+1; y++ {
			if err := r.set(y, col, Wall); err != nil {
				return err
			}
		}
	}
	return nil
}

// OpenGapAfter removes one wall cell from a line previously inserted by
// InsertWallLine: for Horizontal the gap below cell c, for Vertical the
// gap to the right of cell c.
func (r *Recorder) OpenGapAfter(c Cell, o Orientation) error {
	switch o {
	case Horizontal:
		return r.set(2*c.Y+2, 2*c.X+1, Passage)
	default:
		return r.set(2*c.Y+1, 2*c.X+2, Passage)
	}
}

func (r *Recorder) marker(kind EventKind) error {
	r.seq++
	ev := Event{Kind: kind, Seq: r.seq}
	if r.sink != nil {
		return r.sink(ev)
	}
	return nil
}

// Unreachable emits the terminal marker for a solve that found no
// route to the end cell.
func (r *Recorder) Unreachable() error { return r.marker(KindUnreachable) }

// Complete emits the terminal marker for natural run completion.
func (r *Recorder) Complete() error { return r.marker(KindComplete) }
