package emit

import "sync"

// BufferedEmitter implements Emitter by storing events in memory.
//
// Events are organized by runID for retrieval and filtering. The tests
// use it to assert on run lifecycles; it is also useful for debugging.
//
// Warning: all events stay in memory until cleared. Long loop-mode
// sessions should prefer LogEmitter.
type BufferedEmitter struct {
	mu     sync.RWMutex
	events map[string][]Event // runID -> events
}

// HistoryFilter specifies criteria for filtering captured events. All
// fields are optional; set fields combine with AND logic.
type HistoryFilter struct {
	Msg    string  // filter by message (empty = no filter)
	MinSeq *uint64 // minimum grid sequence number (nil = no filter)
	MaxSeq *uint64 // maximum grid sequence number (nil = no filter)
}

// NewBufferedEmitter creates an empty in-memory emitter.
func NewBufferedEmitter() *BufferedEmitter {
	return &BufferedEmitter{events: make(map[string][]Event)}
}

// Emit stores the event, keyed by its runID.
func (b *BufferedEmitter) Emit(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[event.RunID] = append(b.events[event.RunID], event)
}

// GetHistory returns all captured events for a run, in emission order.
func (b *BufferedEmitter) GetHistory(runID string) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	events := b.events[runID]
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// GetHistoryWithFilter returns the captured events for a run that
// match the filter, in emission order.
func (b *BufferedEmitter) GetHistoryWithFilter(runID string, filter HistoryFilter) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []Event
	for _, ev := range b.events[runID] {
		if filter.Msg != "" && ev.Msg != filter.Msg {
			continue
		}
		if filter.MinSeq != nil && ev.Seq < *filter.MinSeq {
			continue
		}
		if filter.MaxSeq != nil && ev.Seq > *filter.MaxSeq {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// RunIDs returns the runIDs that have captured events.
func (b *BufferedEmitter) RunIDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ids := make([]string, 0, len(b.events))
	for id := range b.events {
		ids = append(ids, id)
	}
	return ids
}

// Clear drops all captured events for a run.
func (b *BufferedEmitter) Clear(runID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.events, runID)
}

// ClearAll drops every captured event.
func (b *BufferedEmitter) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = make(map[string][]Event)
}
