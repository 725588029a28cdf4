// Package history provides the bounded navigation buffer the render
// worker commits grid events into. The buffer stores periodic frame
// snapshots plus the event runs between them, so any retained sequence
// number can be rematerialized by replaying at most one stride of
// events onto a snapshot.
package history

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hunglongtrangithub/mazest/maze"
)

// segment is one snapshot plus the events committed after it. The
// frame's Seq is the segment's base; events carry Seq base+1..base+n.
type segment struct {
	frame  maze.Frame
	events []maze.Event
}

// Buffer is the bounded history store for one run. Exactly one
// goroutine commits (the render worker); any goroutine may read.
// Memory is bounded by snapshot count: when the retained snapshot
// count exceeds the frame budget the oldest segment is evicted and the
// navigation floor rises.
type Buffer struct {
	mu        sync.RWMutex
	segments  []segment
	current   maze.Frame // materialized head state
	stride    int        // events committed between snapshots
	maxFrames int        // retained snapshot budget
	sinceSnap int
	evictions uint64
}

// New creates a buffer seeded with the run's initial frame. stride is
// the number of events between snapshots, maxFrames the snapshot
// retention budget; both must be at least 1.
func New(initial maze.Frame, stride, maxFrames int) *Buffer {
	if stride < 1 {
		stride = 1
	}
	if maxFrames < 1 {
		maxFrames = 1
	}
	return &Buffer{
		segments:  []segment{{frame: initial.Clone()}},
		current:   initial.Clone(),
		stride:    stride,
		maxFrames: maxFrames,
	}
}

// Commit appends one event, applying it to the materialized head.
// Events must arrive in sequence order.
func (b *Buffer) Commit(ev maze.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ev.Seq != b.current.Seq+1 {
		return fmt.Errorf("commit out of order: got seq %d, head is %d", ev.Seq, b.current.Seq)
	}
	if err := b.current.Apply(ev); err != nil {
		return err
	}
	last := len(b.segments) - 1
	b.segments[last].events = append(b.segments[last].events, ev)
	b.sinceSnap++

	if b.sinceSnap >= b.stride {
		b.segments = append(b.segments, segment{frame: b.current.Clone()})
		b.sinceSnap = 0
		for len(b.segments) > b.maxFrames {
			b.segments = b.segments[1:]
			b.evictions++
		}
	}
	return nil
}

// Head returns the sequence number of the newest committed event.
func (b *Buffer) Head() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current.Seq
}

// Floor returns the oldest sequence number still retrievable. Seeks
// below the floor clamp to it.
func (b *Buffer) Floor() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.segments[0].frame.Seq
}

// Evictions returns how many segments have been dropped to stay within
// the retention budget.
func (b *Buffer) Evictions() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.evictions
}

// Latest returns a copy of the materialized head frame.
func (b *Buffer) Latest() maze.Frame {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current.Clone()
}

// Seek rematerializes the grid as of seq: the nearest retained
// snapshot at or before seq plus the residual events up to it.
// Requests below the floor clamp to the floor and report truncated;
// requests beyond the head are an error.
func (b *Buffer) Seek(seq uint64) (frame maze.Frame, truncated bool, err error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if seq > b.current.Seq {
		return maze.Frame{}, false, fmt.Errorf("seek %d beyond head %d", seq, b.current.Seq)
	}
	if floor := b.segments[0].frame.Seq; seq < floor {
		seq = floor
		truncated = true
	}

	// Last segment whose base is <= seq.
	i := sort.Search(len(b.segments), func(i int) bool {
		return b.segments[i].frame.Seq > seq
	}) - 1
	seg := b.segments[i]
	frame = seg.frame.Clone()
	for _, ev := range seg.events {
		if ev.Seq > seq {
			break
		}
		if err := frame.Apply(ev); err != nil {
			return maze.Frame{}, truncated, err
		}
	}
	return frame, truncated, nil
}

// EventAt returns the retained event with the given sequence number.
// ok is false when the event is below the floor or beyond the head.
func (b *Buffer) EventAt(seq uint64) (maze.Event, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if seq == 0 || seq > b.current.Seq || seq <= b.segments[0].frame.Seq {
		return maze.Event{}, false
	}
	i := sort.Search(len(b.segments), func(i int) bool {
		return b.segments[i].frame.Seq >= seq
	}) - 1
	seg := b.segments[i]
	idx := int(seq - seg.frame.Seq - 1)
	if idx < 0 || idx >= len(seg.events) {
		return maze.Event{}, false
	}
	return seg.events[idx], true
}
