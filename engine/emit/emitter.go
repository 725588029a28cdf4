// Package emit provides event emission and observability for maze runs.
package emit

// Emitter receives and processes observability events from run
// execution.
//
// Emitters enable pluggable observability backends:
//   - Logging: stdout, files
//   - Distributed tracing: OpenTelemetry
//   - In-memory capture for tests and debugging
//
// Implementations should be:
//   - Non-blocking: the render loop emits on its hot path
//   - Thread-safe: the orchestrator and workers emit concurrently
//   - Resilient: an emitter failure must never crash a run
type Emitter interface {
	// Emit sends an observability event to the configured backend.
	//
	// Emit should not panic and should not block the caller. Errors
	// are handled internally.
	Emit(event Event)
}
