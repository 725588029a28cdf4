package history

import (
	"testing"

	"github.com/hunglongtrangithub/mazest/maze"
)

// carveEvents produces a deterministic event stream by carving a long
// corridor one gap at a time.
func carveEvents(t *testing.T, width int) (maze.Frame, []maze.Event) {
	t.Helper()
	grid, err := maze.New(width, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var events []maze.Event
	rec := maze.NewRecorder(grid, func(ev maze.Event) error {
		events = append(events, ev)
		return nil
	})
	for x := 0; x+1 < width; x++ {
		if err := rec.CarveBetween(maze.Cell{X: x}, maze.Cell{X: x + 1}); err != nil {
			t.Fatalf("CarveBetween failed: %v", err)
		}
	}
	return maze.InitialFrame(width, 1), events
}

func TestCommit(t *testing.T) {
	t.Run("AdvancesHead", func(t *testing.T) {
		initial, events := carveEvents(t, 10)
		buf := New(initial, 4, 8)
		for _, ev := range events {
			if err := buf.Commit(ev); err != nil {
				t.Fatalf("Commit failed: %v", err)
			}
		}
		if buf.Head() != uint64(len(events)) {
			t.Errorf("head = %d, want %d", buf.Head(), len(events))
		}
	})

	t.Run("RejectsOutOfOrder", func(t *testing.T) {
		initial, events := carveEvents(t, 4)
		buf := New(initial, 4, 8)
		if err := buf.Commit(events[1]); err == nil {
			t.Error("expected error for out-of-order commit")
		}
	})
}

func TestSeek(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		// The frame produced by Seek(n) must equal replaying the first
		// n events onto the initial frame, for every n.
		initial, events := carveEvents(t, 20)
		buf := New(initial, 4, 100)
		for _, ev := range events {
			if err := buf.Commit(ev); err != nil {
				t.Fatalf("Commit failed: %v", err)
			}
		}
		want := initial.Clone()
		for n := uint64(0); n <= uint64(len(events)); n++ {
			if n > 0 {
				if err := want.Apply(events[n-1]); err != nil {
					t.Fatalf("Apply failed: %v", err)
				}
			}
			got, truncated, err := buf.Seek(n)
			if err != nil {
				t.Fatalf("Seek(%d) failed: %v", n, err)
			}
			if truncated {
				t.Fatalf("Seek(%d) reported truncated with full retention", n)
			}
			if !got.Equal(want) {
				t.Fatalf("Seek(%d) diverged from replay", n)
			}
			if got.Seq != n {
				t.Fatalf("Seek(%d) frame seq = %d", n, got.Seq)
			}
		}
	})

	t.Run("BeyondHeadFails", func(t *testing.T) {
		initial, events := carveEvents(t, 4)
		buf := New(initial, 4, 8)
		for _, ev := range events {
			buf.Commit(ev)
		}
		if _, _, err := buf.Seek(uint64(len(events)) + 1); err == nil {
			t.Error("expected error seeking beyond head")
		}
	})

	t.Run("BelowFloorClamps", func(t *testing.T) {
		// Small retention forces eviction; seeking to 0 afterwards must
		// clamp to the floor and report truncation.
		initial, events := carveEvents(t, 30)
		buf := New(initial, 2, 3)
		for _, ev := range events {
			if err := buf.Commit(ev); err != nil {
				t.Fatalf("Commit failed: %v", err)
			}
		}
		if buf.Evictions() == 0 {
			t.Fatal("expected evictions with retention 3")
		}
		floor := buf.Floor()
		if floor == 0 {
			t.Fatal("floor should have risen above 0")
		}
		got, truncated, err := buf.Seek(0)
		if err != nil {
			t.Fatalf("Seek(0) failed: %v", err)
		}
		if !truncated {
			t.Error("expected truncated seek below floor")
		}
		if got.Seq != floor {
			t.Errorf("clamped frame seq = %d, want floor %d", got.Seq, floor)
		}
	})
}

func TestEventAt(t *testing.T) {
	t.Run("ReturnsRetainedEvents", func(t *testing.T) {
		initial, events := carveEvents(t, 10)
		buf := New(initial, 4, 100)
		for _, ev := range events {
			buf.Commit(ev)
		}
		for _, ev := range events {
			got, ok := buf.EventAt(ev.Seq)
			if !ok {
				t.Fatalf("EventAt(%d) not found", ev.Seq)
			}
			if got != ev {
				t.Fatalf("EventAt(%d) = %s, want %s", ev.Seq, got, ev)
			}
		}
	})

	t.Run("MissesOutsideWindow", func(t *testing.T) {
		initial, events := carveEvents(t, 30)
		buf := New(initial, 2, 3)
		for _, ev := range events {
			buf.Commit(ev)
		}
		if _, ok := buf.EventAt(buf.Floor()); ok {
			t.Error("event at floor should be evicted")
		}
		if _, ok := buf.EventAt(buf.Head() + 1); ok {
			t.Error("event beyond head should not exist")
		}
		if _, ok := buf.EventAt(buf.Head()); !ok {
			t.Error("event at head must be retained")
		}
	})
}

func TestBackwardStepping(t *testing.T) {
	// Walking the cursor backward by applying each event's Prev state
	// must land exactly on the Seek result for the same position.
	initial, events := carveEvents(t, 12)
	buf := New(initial, 4, 100)
	for _, ev := range events {
		buf.Commit(ev)
	}

	frame := buf.Latest()
	for cursor := buf.Head(); cursor > 0; cursor-- {
		ev, ok := buf.EventAt(cursor)
		if !ok {
			t.Fatalf("EventAt(%d) not found", cursor)
		}
		// Undo by writing the previous state back.
		undo := maze.Event{Kind: maze.KindCell, Row: ev.Row, Col: ev.Col, New: ev.Prev, Seq: cursor - 1}
		if err := frame.Apply(undo); err != nil {
			t.Fatalf("undo failed: %v", err)
		}
		want, _, err := buf.Seek(cursor - 1)
		if err != nil {
			t.Fatalf("Seek(%d) failed: %v", cursor-1, err)
		}
		if !frame.Equal(want) {
			t.Fatalf("backward step to %d diverged from Seek", cursor-1)
		}
	}
}
