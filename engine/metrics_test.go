package engine

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsRecord(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	m.RecordEvent("cell")
	m.RecordEvent("complete")
	m.RecordFrame()
	m.RecordEviction()
	m.RecordBackpressureWait()
	m.RecordRun("completed")
	m.SetChannelDepth(12)
	m.ObservePaint(2 * time.Millisecond)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"mazest_events_total",
		"mazest_frames_committed_total",
		"mazest_history_evictions_total",
		"mazest_backpressure_waits_total",
		"mazest_runs_total",
		"mazest_channel_depth",
		"mazest_paint_latency_ms",
	} {
		if !names[want] {
			t.Errorf("metric %s not registered", want)
		}
	}
}

func TestDisabledMetricsAreNoOps(t *testing.T) {
	// Must not panic, including on a nil receiver.
	m := NewDisabledMetrics()
	m.RecordEvent("cell")
	m.RecordRun("cancelled")
	m.SetChannelDepth(1)

	var nilMetrics *Metrics
	nilMetrics.RecordEvent("cell")
	nilMetrics.ObservePaint(time.Millisecond)
}
