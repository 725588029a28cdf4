package engine

import (
	"sync"
	"time"

	"github.com/hunglongtrangithub/mazest/maze"
)

// fakePainter records paint calls for assertions. Thread-safe because
// the orchestrator tests paint from worker goroutines.
type fakePainter struct {
	mu          sync.Mutex
	cellPaints  [][]CellPaint
	framePaints int
	statuses    []string
	clears      int
	fits        bool
}

func newFakePainter() *fakePainter {
	return &fakePainter{fits: true}
}

func (p *fakePainter) Paint(cells []CellPaint) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	paint := make([]CellPaint, len(cells))
	copy(paint, cells)
	p.cellPaints = append(p.cellPaints, paint)
	return nil
}

func (p *fakePainter) PaintFrame(frame maze.Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.framePaints++
	return nil
}

func (p *fakePainter) Status(text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, text)
	return nil
}

func (p *fakePainter) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clears++
	return nil
}

func (p *fakePainter) Fits(rows, cols int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fits
}

func (p *fakePainter) setFits(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fits = v
}

func (p *fakePainter) lastCellPaint() ([]CellPaint, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.cellPaints) == 0 {
		return nil, false
	}
	return p.cellPaints[len(p.cellPaints)-1], true
}

func (p *fakePainter) lastStatus() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.statuses) == 0 {
		return ""
	}
	return p.statuses[len(p.statuses)-1]
}

// fakeSource feeds scripted input events through a channel, behaving
// like a terminal that is otherwise idle.
type fakeSource struct {
	ch chan InputEvent
}

func newFakeSource() *fakeSource {
	return &fakeSource{ch: make(chan InputEvent, 16)}
}

func (s *fakeSource) Poll(timeout time.Duration) (InputEvent, bool, error) {
	select {
	case ev := <-s.ch:
		return ev, true, nil
	case <-time.After(timeout):
		return InputEvent{}, false, nil
	}
}

func (s *fakeSource) press(k Key) {
	s.ch <- InputEvent{Key: k}
}

func (s *fakeSource) resize() {
	s.ch <- InputEvent{Resize: true}
}
