package engine

import (
	"time"

	"github.com/hunglongtrangithub/mazest/maze"
)

// CellPaint is one terminal cell update: an internal grid coordinate
// and the state to draw there.
type CellPaint struct {
	Row, Col int
	State    maze.CellState
}

// Painter is the engine's view of the output side of a terminal. The
// render worker is the only caller; implementations need not be
// thread-safe. Errors from any method are terminal I/O errors and end
// the session.
type Painter interface {
	// Paint draws a set of individual cell updates.
	Paint(cells []CellPaint) error
	// PaintFrame redraws the entire grid from a materialized frame,
	// used after resize recovery and history seeks.
	PaintFrame(frame maze.Frame) error
	// Status draws the status row: run info, speed scale, messages.
	Status(text string) error
	// Clear wipes the screen.
	Clear() error
	// Fits reports whether an internal grid of the given dimensions
	// plus the status row fits the current terminal size.
	Fits(rows, cols int) bool
}

// KeyCode identifies a non-rune key.
type KeyCode uint8

const (
	// KeyRune is a printable key; the rune field carries it.
	KeyRune KeyCode = iota
	KeyEsc
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Key is one decoded keypress.
type Key struct {
	Code KeyCode
	Rune rune
}

// InputEvent is one event from the terminal input stream: either a
// keypress or a resize notification.
type InputEvent struct {
	Resize bool
	Key    Key
}

// EventSource is the engine's view of the input side of a terminal.
type EventSource interface {
	// Poll waits up to timeout for the next input event. ok is false
	// on timeout, which is how the input worker reaches its
	// cancellation checkpoint.
	Poll(timeout time.Duration) (ev InputEvent, ok bool, err error)
}

// Action is a semantic user command, produced by mapping keys through
// a KeyMap.
type Action uint8

const (
	// ActionNone is an unmapped key.
	ActionNone Action = iota
	// ActionCancel aborts the current run; in loop mode the next run
	// starts immediately.
	ActionCancel
	// ActionQuit exits the program.
	ActionQuit
	// ActionPauseResume toggles between live playback and paused.
	ActionPauseResume
	// ActionBack steps one event backward through history while
	// paused.
	ActionBack
	// ActionForward steps one event forward while paused.
	ActionForward
	// ActionSpeedUp raises the playback speed one level.
	ActionSpeedUp
	// ActionSpeedDown lowers the playback speed one level.
	ActionSpeedDown
	// ActionToggleLoop flips loop mode. Turning it on while a run sits
	// finished starts the next run immediately.
	ActionToggleLoop
	// actionResize is the internal action the input worker forwards
	// when the terminal reports new dimensions.
	actionResize
)

// KeyMap maps decoded keys to actions.
type KeyMap map[Key]Action

// DefaultKeyMap returns the stock bindings: Esc cancels (twice exits,
// handled by the orchestrator), Enter pauses and resumes, arrows
// navigate history and adjust speed, q quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		{Code: KeyEsc}:             ActionCancel,
		{Code: KeyEnter}:           ActionPauseResume,
		{Code: KeyLeft}:            ActionBack,
		{Code: KeyRight}:           ActionForward,
		{Code: KeyUp}:              ActionSpeedUp,
		{Code: KeyDown}:            ActionSpeedDown,
		{Code: KeyRune, Rune: 'q'}: ActionQuit,
		{Code: KeyRune, Rune: ' '}: ActionPauseResume,
		{Code: KeyRune, Rune: 'l'}: ActionToggleLoop,
	}
}
