package engine

import (
	"context"
	"testing"
	"time"
)

func startInput(t *testing.T) (*fakeSource, <-chan Action, context.CancelFunc) {
	t.Helper()
	src := newFakeSource()
	actions := make(chan Action, 16)
	ctx, cancel := context.WithCancel(context.Background())
	w := &inputWorker{
		src:      src,
		keys:     DefaultKeyMap(),
		timeout:  10 * time.Millisecond,
		debounce: 20 * time.Millisecond,
		actions:  actions,
	}
	done := make(chan error, 1)
	go func() { done <- w.run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("input worker failed: %v", err)
		}
	})
	return src, actions, cancel
}

func expectAction(t *testing.T, actions <-chan Action, want Action) {
	t.Helper()
	select {
	case got := <-actions:
		if got != want {
			t.Fatalf("action = %d, want %d", got, want)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for action %d", want)
	}
}

func TestInputWorkerMapsKeys(t *testing.T) {
	src, actions, _ := startInput(t)

	src.press(Key{Code: KeyEsc})
	expectAction(t, actions, ActionCancel)

	src.press(Key{Code: KeyEnter})
	expectAction(t, actions, ActionPauseResume)

	src.press(Key{Code: KeyLeft})
	expectAction(t, actions, ActionBack)

	src.press(Key{Code: KeyUp})
	expectAction(t, actions, ActionSpeedUp)

	src.press(Key{Code: KeyRune, Rune: 'q'})
	expectAction(t, actions, ActionQuit)
}

func TestInputWorkerIgnoresUnmappedKeys(t *testing.T) {
	src, actions, _ := startInput(t)

	src.press(Key{Code: KeyRune, Rune: 'x'})
	src.press(Key{Code: KeyEsc})

	// Only the mapped key comes through.
	expectAction(t, actions, ActionCancel)
	select {
	case got := <-actions:
		t.Fatalf("unexpected extra action %d", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestInputWorkerDebouncesResize(t *testing.T) {
	src, actions, _ := startInput(t)

	// A drag burst: several resizes in quick succession.
	for i := 0; i < 5; i++ {
		src.resize()
	}

	expectAction(t, actions, actionResize)
	select {
	case got := <-actions:
		t.Fatalf("resize burst produced extra action %d", got)
	case <-time.After(100 * time.Millisecond):
	}
}
