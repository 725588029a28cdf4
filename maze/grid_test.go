package maze

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	t.Run("DimensionsDoubled", func(t *testing.T) {
		g, err := New(4, 3)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if g.Rows() != 7 || g.Cols() != 9 {
			t.Errorf("expected internal 7x9, got %dx%d", g.Rows(), g.Cols())
		}
	})

	t.Run("LogicalCellsOpen", func(t *testing.T) {
		g, err := New(3, 3)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if got := g.CellAt(Cell{x, y}); got != Passage {
					t.Errorf("cell (%d,%d) = %s, want passage", x, y, got)
				}
			}
		}
	})

	t.Run("GapsAreWalls", func(t *testing.T) {
		g, _ := New(3, 3)
		walled, err := g.WallBetween(Cell{0, 0}, Cell{1, 0})
		if err != nil {
			t.Fatalf("WallBetween failed: %v", err)
		}
		if !walled {
			t.Error("expected wall between fresh adjacent cells")
		}
	})

	t.Run("RejectsOutOfRange", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {256, 5}, {5, 256}, {-1, 5}} {
			if _, err := New(dims[0], dims[1]); err == nil {
				t.Errorf("expected error for %dx%d", dims[0], dims[1])
			}
		}
	})

	t.Run("AcceptsBoundaryDims", func(t *testing.T) {
		if _, err := New(1, 1); err != nil {
			t.Errorf("1x1 should be valid: %v", err)
		}
		if _, err := New(MaxDim, MaxDim); err != nil {
			t.Errorf("%dx%d should be valid: %v", MaxDim, MaxDim, err)
		}
	})
}

func TestNeighbors(t *testing.T) {
	g, _ := New(3, 3)

	t.Run("Corner", func(t *testing.T) {
		n := g.Neighbors(Cell{0, 0})
		if len(n) != 2 {
			t.Fatalf("corner should have 2 neighbors, got %d", len(n))
		}
	})

	t.Run("Center", func(t *testing.T) {
		n := g.Neighbors(Cell{1, 1})
		want := []Cell{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
		if len(n) != len(want) {
			t.Fatalf("center should have 4 neighbors, got %d", len(n))
		}
		for i := range want {
			if n[i] != want[i] {
				t.Errorf("neighbor %d = %v, want %v (order must be stable)", i, n[i], want[i])
			}
		}
	})
}

func TestGridApply(t *testing.T) {
	t.Run("RejectsOutOfBounds", func(t *testing.T) {
		g, _ := New(2, 2)
		err := g.Apply(Event{Kind: KindCell, Row: 99, Col: 0, New: Passage, Seq: 1})
		var be *BoundsError
		if !errors.As(err, &be) {
			t.Fatalf("expected BoundsError, got %v", err)
		}
	})

	t.Run("RejectsIllegalTransition", func(t *testing.T) {
		g, _ := New(2, 2)
		// Gap cells start as walls; a wall cannot become Path directly.
		err := g.Apply(Event{Kind: KindCell, Row: 1, Col: 2, New: Path, Seq: 1})
		var te *InvalidTransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if te.From != Wall || te.To != Path {
			t.Errorf("error carries %s -> %s, want wall -> path", te.From, te.To)
		}
	})

	t.Run("StartAndEndAreTerminal", func(t *testing.T) {
		g, _ := New(2, 2)
		if err := g.Apply(Event{Kind: KindCell, Row: 1, Col: 1, New: Start, Seq: 1}); err != nil {
			t.Fatalf("passage -> start should be legal: %v", err)
		}
		err := g.Apply(Event{Kind: KindCell, Row: 1, Col: 1, New: Visited, Seq: 2})
		var te *InvalidTransitionError
		if !errors.As(err, &te) {
			t.Fatalf("start -> visited should be illegal, got %v", err)
		}
	})
}

func TestRecorder(t *testing.T) {
	t.Run("SkipsNoOpMutations", func(t *testing.T) {
		g, _ := New(3, 3)
		var got []Event
		rec := NewRecorder(g, func(ev Event) error {
			got = append(got, ev)
			return nil
		})
		if err := rec.SetCell(Cell{0, 0}, Passage); err != nil {
			t.Fatalf("SetCell failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("no-op mutation emitted %d events, want 0", len(got))
		}
	})

	t.Run("SequenceStrictlyIncreasing", func(t *testing.T) {
		g, _ := New(3, 3)
		var seqs []uint64
		rec := NewRecorder(g, func(ev Event) error {
			seqs = append(seqs, ev.Seq)
			return nil
		})
		rec.CarveBetween(Cell{0, 0}, Cell{1, 0})
		rec.CarveBetween(Cell{1, 0}, Cell{2, 0})
		rec.SetCell(Cell{0, 0}, Visited)
		for i := 1; i < len(seqs); i++ {
			if seqs[i] != seqs[i-1]+1 {
				t.Fatalf("sequence gap: %v", seqs)
			}
		}
		if len(seqs) != 3 || seqs[0] != 1 {
			t.Errorf("expected seqs 1..3, got %v", seqs)
		}
	})

	t.Run("EventsCarryPrevState", func(t *testing.T) {
		g, _ := New(3, 3)
		var last Event
		rec := NewRecorder(g, func(ev Event) error {
			last = ev
			return nil
		})
		rec.SetCell(Cell{1, 1}, Visited)
		if last.Prev != Passage || last.New != Visited {
			t.Errorf("event = %s, want passage -> visited", last)
		}
	})

	t.Run("SinkErrorAborts", func(t *testing.T) {
		g, _ := New(3, 3)
		boom := errors.New("stop")
		rec := NewRecorder(g, func(Event) error { return boom })
		if err := rec.CarveBetween(Cell{0, 0}, Cell{1, 0}); !errors.Is(err, boom) {
			t.Errorf("expected sink error to propagate, got %v", err)
		}
	})

	t.Run("FillAndClearWalls", func(t *testing.T) {
		g, _ := New(3, 3)
		rec := NewRecorder(g, nil)
		if err := rec.FillWalls(); err != nil {
			t.Fatalf("FillWalls failed: %v", err)
		}
		if g.CellAt(Cell{1, 1}) != Wall {
			t.Error("FillWalls left an open logical cell")
		}
		if err := rec.ClearWalls(); err != nil {
			t.Fatalf("ClearWalls failed: %v", err)
		}
		if w, _ := g.WallBetween(Cell{0, 0}, Cell{1, 0}); w {
			t.Error("ClearWalls left an interior wall")
		}
		// Boundary stays walled.
		if g.At(0, 0) != Wall || g.At(g.Rows()-1, g.Cols()-1) != Wall {
			t.Error("ClearWalls touched the boundary")
		}
	})

	t.Run("InsertWallLine", func(t *testing.T) {
		g, _ := New(4, 4)
		rec := NewRecorder(g, nil)
		rec.ClearWalls()
		if err := rec.InsertWallLine(1, 0, 3, Horizontal); err != nil {
			t.Fatalf("InsertWallLine failed: %v", err)
		}
		for _, x := range []int{0, 1, 2, 3} {
			w, err := g.WallBetween(Cell{x, 1}, Cell{x, 2})
			if err != nil || !w {
				t.Errorf("expected wall between (%d,1) and (%d,2)", x, x)
			}
		}
		if err := rec.OpenGapAfter(Cell{2, 1}, Horizontal); err != nil {
			t.Fatalf("OpenGapAfter failed: %v", err)
		}
		if w, _ := g.WallBetween(Cell{2, 1}, Cell{2, 2}); w {
			t.Error("doorway not opened")
		}
	})
}

func TestFrameReplay(t *testing.T) {
	t.Run("ReplayMatchesSnapshot", func(t *testing.T) {
		g, _ := New(5, 5)
		frame := InitialFrame(5, 5)
		rec := NewRecorder(g, func(ev Event) error {
			return frame.Apply(ev)
		})
		rec.FillWalls()
		rec.SetCell(Cell{0, 0}, Passage)
		rec.CarveBetween(Cell{0, 0}, Cell{1, 0})
		rec.SetCell(Cell{1, 0}, Passage)

		snap := g.Snapshot(rec.Seq())
		if !frame.Equal(snap) {
			t.Error("replayed frame diverged from grid snapshot")
		}
		if frame.Seq != rec.Seq() {
			t.Errorf("frame seq %d, want %d", frame.Seq, rec.Seq())
		}
	})

	t.Run("MarkerAdvancesSeqOnly", func(t *testing.T) {
		f := InitialFrame(2, 2)
		before := f.Clone()
		if err := f.Apply(Event{Kind: KindComplete, Seq: 7}); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if !f.Equal(before) {
			t.Error("marker event mutated cells")
		}
		if f.Seq != 7 {
			t.Errorf("seq = %d, want 7", f.Seq)
		}
	})

	t.Run("CloneIsDeep", func(t *testing.T) {
		f := InitialFrame(2, 2)
		c := f.Clone()
		c.Cells[0] = Path
		if f.Cells[0] == Path {
			t.Error("clone shares backing array")
		}
	})
}
