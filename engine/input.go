package engine

import (
	"context"
	"time"
)

// inputWorker translates raw terminal events into actions for the
// whole session. Polls are bounded so shutdown is noticed within one
// timeout; resize bursts are debounced into a single action.
type inputWorker struct {
	src      EventSource
	keys     KeyMap
	timeout  time.Duration
	debounce time.Duration
	actions  chan<- Action
}

func (w *inputWorker) run(ctx context.Context) error {
	var resizeAt time.Time // zero when no resize is pending

	for {
		if ctx.Err() != nil {
			return nil
		}

		timeout := w.timeout
		if !resizeAt.IsZero() {
			if wait := time.Until(resizeAt); wait < timeout {
				timeout = wait
			}
		}
		if timeout < 0 {
			timeout = 0
		}

		ev, ok, err := w.src.Poll(timeout)
		if err != nil {
			return &TerminalIOError{Op: "poll", Err: err}
		}

		if !resizeAt.IsZero() && time.Now().After(resizeAt) {
			resizeAt = time.Time{}
			if err := w.send(ctx, actionResize); err != nil {
				return err
			}
		}
		if !ok {
			continue
		}
		if ev.Resize {
			// Terminals send a burst of these while the user drags;
			// only the settled size matters.
			resizeAt = time.Now().Add(w.debounce)
			continue
		}
		act, mapped := w.keys[ev.Key]
		if !mapped {
			continue
		}
		if err := w.send(ctx, act); err != nil {
			return err
		}
	}
}

func (w *inputWorker) send(ctx context.Context, act Action) error {
	select {
	case w.actions <- act:
		return nil
	case <-ctx.Done():
		return nil
	}
}
