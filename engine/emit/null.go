package emit

// NullEmitter implements Emitter by discarding all events.
//
// This is the default when no -log flag is given: the visualizer runs
// with zero observability overhead.
type NullEmitter struct{}

// NewNullEmitter returns an emitter that discards all events. Safe for
// concurrent use.
func NewNullEmitter() *NullEmitter {
	return &NullEmitter{}
}

// Emit discards the event.
func (n *NullEmitter) Emit(event Event) {}
