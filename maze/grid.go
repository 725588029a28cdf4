package maze

import "fmt"

// MaxDim is the largest supported logical dimension per axis. The
// internal grid doubles each axis (walls on their own rows/columns), so
// the internal representation is at most 511x511.
const MaxDim = 255

// Cell is a logical cell coordinate: X is the column, Y is the row.
type Cell struct {
	X, Y int
}

// Grid is the maze's mutable cell/wall data. Dimensions are immutable
// after construction. A Grid has exactly one writer at a time: it is
// exclusively owned by the compute worker while a run is active, and
// state leaves it only as deep-copied frames.
type Grid struct {
	width  int
	height int
	rows   int
	cols   int
	cells  []CellState
}

func internalDims(width, height int) (rows, cols int) {
	return 2*height + 1, 2*width + 1
}

// New creates a grid of width x height logical cells, all walls with
// every logical cell opened to Passage.
func New(width, height int) (*Grid, error) {
	if width < 1 || width > MaxDim || height < 1 || height > MaxDim {
		return nil, fmt.Errorf("grid dimensions %dx%d out of range 1..%d", width, height, MaxDim)
	}
	rows, cols := internalDims(width, height)
	g := &Grid{
		width:  width,
		height: height,
		rows:   rows,
		cols:   cols,
		cells:  make([]CellState, rows*cols),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[(2*y+1)*cols+(2*x+1)] = Passage
		}
	}
	return g, nil
}

// Width returns the logical cell count per row.
func (g *Grid) Width() int { return g.width }

// Height returns the logical cell count per column.
func (g *Grid) Height() int { return g.height }

// Rows returns the internal row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the internal column count.
func (g *Grid) Cols() int { return g.cols }

// At returns the state at an internal coordinate.
func (g *Grid) At(row, col int) CellState {
	return g.cells[row*g.cols+col]
}

// CellAt returns the state of a logical cell.
func (g *Grid) CellAt(c Cell) CellState {
	return g.At(2*c.Y+1, 2*c.X+1)
}

// InBounds reports whether a logical cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Neighbors returns the in-bounds cardinal neighbors of a cell in the
// fixed order left, right, up, down. The fixed order keeps runs
// reproducible under a seeded RNG.
func (g *Grid) Neighbors(c Cell) []Cell {
	candidates := [4]Cell{
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
	}
	out := make([]Cell, 0, 4)
	for _, n := range candidates {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// gapBetween returns the internal coordinate of the wall gap separating
// two adjacent logical cells.
func (g *Grid) gapBetween(a, b Cell) (row, col int, err error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return 0, 0, fmt.Errorf("cells (%d,%d) and (%d,%d) not both in bounds", a.X, a.Y, b.X, b.Y)
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx*dx+dy*dy != 1 {
		return 0, 0, fmt.Errorf("cells (%d,%d) and (%d,%d) are not adjacent", a.X, a.Y, b.X, b.Y)
	}
	return (2*a.Y + 1) + dy, (2*a.X + 1) + dx, nil
}

// WallBetween reports whether the gap separating two adjacent cells is
// still a wall.
func (g *Grid) WallBetween(a, b Cell) (bool, error) {
	row, col, err := g.gapBetween(a, b)
	if err != nil {
		return false, err
	}
	return g.At(row, col) == Wall, nil
}

// Apply performs one validated cell mutation. It fails with a
// BoundsError if the coordinate is outside the internal grid and with
// an InvalidTransitionError if the state change is not legal for the
// cell's current state.
func (g *Grid) Apply(ev Event) error {
	if ev.Kind != KindCell {
		return nil
	}
	if ev.Row < 0 || ev.Row >= g.rows || ev.Col < 0 || ev.Col >= g.cols {
		return &BoundsError{Row: ev.Row, Col: ev.Col, Rows: g.rows, Cols: g.cols}
	}
	cur := g.At(ev.Row, ev.Col)
	if !canTransition(cur, ev.New) {
		return &InvalidTransitionError{Row: ev.Row, Col: ev.Col, From: cur, To: ev.New}
	}
	g.cells[ev.Row*g.cols+ev.Col] = ev.New
	return nil
}

// Snapshot returns a deep copy of the grid state as a frame stamped
// with the given sequence number, decoupling further grid mutation
// from the stored frame.
func (g *Grid) Snapshot(seq uint64) Frame {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return Frame{Width: g.width, Height: g.height, Cells: cells, Seq: seq}
}
