// Package term adapts a tcell terminal screen to the engine's Painter
// and EventSource interfaces.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hunglongtrangithub/mazest/engine"
	"github.com/hunglongtrangithub/mazest/maze"
)

// cellWidth is how many terminal columns one grid cell occupies.
// Terminal character cells are roughly twice as tall as wide; doubling
// the columns keeps the maze visually square.
const cellWidth = 2

// statusRows is the screen rows reserved below the grid.
const statusRows = 1

// Screen wraps a tcell screen. It implements engine.Painter and
// engine.EventSource; the render worker paints, the input worker
// polls, and the two never touch the same tcell call concurrently
// because tcell serializes internally.
type Screen struct {
	tc     tcell.Screen
	events chan tcell.Event
}

// New initializes the terminal: raw mode, alternate screen, hidden
// cursor. Call Fin before the process exits or the shell is left in
// raw mode.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.SetStyle(tcell.StyleDefault)
	tc.HideCursor()
	tc.Clear()

	s := &Screen{
		tc:     tc,
		events: make(chan tcell.Event, 32),
	}
	go s.pump()
	return s, nil
}

// pump forwards tcell's blocking event stream into a channel so Poll
// can time out. PollEvent returns nil after Fini, which ends the pump.
func (s *Screen) pump() {
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		s.events <- ev
	}
}

// Fin restores the terminal. Safe to call exactly once.
func (s *Screen) Fin() {
	s.tc.Fini()
}

// MaxGridSize returns the largest logical maze dimensions the current
// terminal can display, leaving room for the status row. Either value
// may be zero when the terminal is too small for any maze.
func (s *Screen) MaxGridSize() (width, height int) {
	cols, rows := s.tc.Size()
	// Internal dims are 2n+1 per axis; invert for the largest n.
	width = (cols/cellWidth - 1) / 2
	height = (rows - statusRows - 1) / 2
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width > maze.MaxDim {
		width = maze.MaxDim
	}
	if height > maze.MaxDim {
		height = maze.MaxDim
	}
	return width, height
}

// Fits reports whether an internal grid plus the status row fits.
func (s *Screen) Fits(rows, cols int) bool {
	w, h := s.tc.Size()
	return cols*cellWidth <= w && rows+statusRows <= h
}

var styles = map[maze.CellState]tcell.Style{
	maze.Wall:     tcell.StyleDefault.Background(tcell.ColorWhite),
	maze.Passage:  tcell.StyleDefault.Background(tcell.ColorBlack),
	maze.Frontier: tcell.StyleDefault.Background(tcell.ColorDarkMagenta),
	maze.Visited:  tcell.StyleDefault.Background(tcell.ColorNavy),
	maze.Path:     tcell.StyleDefault.Background(tcell.ColorYellow),
	maze.Start:    tcell.StyleDefault.Background(tcell.ColorGreen),
	maze.End:      tcell.StyleDefault.Background(tcell.ColorRed),
}

func (s *Screen) drawCell(row, col int, state maze.CellState) {
	style, ok := styles[state]
	if !ok {
		style = tcell.StyleDefault
	}
	for i := 0; i < cellWidth; i++ {
		s.tc.SetContent(col*cellWidth+i, row, ' ', nil, style)
	}
}

// Paint draws individual cell updates and flushes.
func (s *Screen) Paint(cells []engine.CellPaint) error {
	for _, c := range cells {
		s.drawCell(c.Row, c.Col, c.State)
	}
	s.tc.Show()
	return nil
}

// PaintFrame redraws the whole grid from a materialized frame.
func (s *Screen) PaintFrame(frame maze.Frame) error {
	for row := 0; row < frame.Rows(); row++ {
		for col := 0; col < frame.Cols(); col++ {
			s.drawCell(row, col, frame.At(row, col))
		}
	}
	s.tc.Show()
	return nil
}

// Status draws the status row on the bottom screen line.
func (s *Screen) Status(text string) error {
	w, h := s.tc.Size()
	row := h - 1
	runes := []rune(text)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		s.tc.SetContent(x, row, r, nil, tcell.StyleDefault)
	}
	s.tc.Show()
	return nil
}

// Clear wipes the screen.
func (s *Screen) Clear() error {
	s.tc.Clear()
	s.tc.Show()
	return nil
}

// Poll waits up to timeout for the next input event.
func (s *Screen) Poll(timeout time.Duration) (engine.InputEvent, bool, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return engine.InputEvent{}, false, nil
		}
		return translate(ev)
	case <-time.After(timeout):
		return engine.InputEvent{}, false, nil
	}
}

// translate maps a tcell event onto the engine's input model. Events
// with no mapping report ok=false and are dropped.
func translate(ev tcell.Event) (engine.InputEvent, bool, error) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		return engine.InputEvent{Resize: true}, true, nil
	case *tcell.EventKey:
		switch tev.Key() {
		case tcell.KeyRune:
			return engine.InputEvent{Key: engine.Key{Code: engine.KeyRune, Rune: tev.Rune()}}, true, nil
		case tcell.KeyEscape:
			return engine.InputEvent{Key: engine.Key{Code: engine.KeyEsc}}, true, nil
		case tcell.KeyEnter:
			return engine.InputEvent{Key: engine.Key{Code: engine.KeyEnter}}, true, nil
		case tcell.KeyLeft:
			return engine.InputEvent{Key: engine.Key{Code: engine.KeyLeft}}, true, nil
		case tcell.KeyRight:
			return engine.InputEvent{Key: engine.Key{Code: engine.KeyRight}}, true, nil
		case tcell.KeyUp:
			return engine.InputEvent{Key: engine.Key{Code: engine.KeyUp}}, true, nil
		case tcell.KeyDown:
			return engine.InputEvent{Key: engine.Key{Code: engine.KeyDown}}, true, nil
		case tcell.KeyCtrlC:
			// Conventional terminal exit maps to the quit binding.
			return engine.InputEvent{Key: engine.Key{Code: engine.KeyRune, Rune: 'q'}}, true, nil
		}
	}
	return engine.InputEvent{}, false, nil
}
