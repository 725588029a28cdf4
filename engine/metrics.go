package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus metrics for run monitoring.
//
// Metrics exposed (all namespaced with "mazest_"):
//
//  1. events_total (counter): grid events committed, labeled by kind.
//  2. frames_committed_total (counter): history snapshots taken.
//  3. history_evictions_total (counter): snapshots dropped to stay
//     within the retention budget.
//  4. backpressure_waits_total (counter): compute-side blocking sends
//     that had to wait on a full channel.
//  5. runs_total (counter): finished runs, labeled by outcome.
//  6. channel_depth (gauge): current compute-to-render queue depth.
//  7. paint_latency_ms (histogram): terminal repaint duration.
//
// All record methods are nil-safe and no-ops when the collector is
// disabled, so callers never guard call sites.
type Metrics struct {
	events       *prometheus.CounterVec
	frames       prometheus.Counter
	evictions    prometheus.Counter
	backpressure prometheus.Counter
	runs         *prometheus.CounterVec
	channelDepth prometheus.Gauge
	paintLatency prometheus.Histogram

	enabled bool
}

// NewMetrics creates and registers the collector with the given
// registry. A nil registry uses the Prometheus default registerer.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		enabled: true,
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mazest",
			Name:      "events_total",
			Help:      "Grid events committed to history, by event kind.",
		}, []string{"kind"}),
		frames: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mazest",
			Name:      "frames_committed_total",
			Help:      "History snapshots taken.",
		}),
		evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mazest",
			Name:      "history_evictions_total",
			Help:      "History snapshots evicted to stay within retention.",
		}),
		backpressure: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mazest",
			Name:      "backpressure_waits_total",
			Help:      "Compute-side sends that blocked on a full channel.",
		}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mazest",
			Name:      "runs_total",
			Help:      "Finished runs, by terminal outcome.",
		}, []string{"outcome"}),
		channelDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "mazest",
			Name:      "channel_depth",
			Help:      "Current compute-to-render event channel depth.",
		}),
		paintLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mazest",
			Name:      "paint_latency_ms",
			Help:      "Terminal repaint duration in milliseconds.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 50, 100},
		}),
	}
}

// NewDisabledMetrics returns a collector whose record methods are all
// no-ops. Used when no metrics endpoint is configured.
func NewDisabledMetrics() *Metrics {
	return &Metrics{}
}

// Enabled reports whether the collector records anything.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// RecordEvent counts one committed grid event.
func (m *Metrics) RecordEvent(kind string) {
	if !m.Enabled() {
		return
	}
	m.events.WithLabelValues(kind).Inc()
}

// RecordFrame counts one history snapshot.
func (m *Metrics) RecordFrame() {
	if !m.Enabled() {
		return
	}
	m.frames.Inc()
}

// RecordEviction counts one history eviction.
func (m *Metrics) RecordEviction() {
	if !m.Enabled() {
		return
	}
	m.evictions.Inc()
}

// RecordBackpressureWait counts one blocked send.
func (m *Metrics) RecordBackpressureWait() {
	if !m.Enabled() {
		return
	}
	m.backpressure.Inc()
}

// RecordRun counts one finished run by outcome.
func (m *Metrics) RecordRun(outcome string) {
	if !m.Enabled() {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
}

// SetChannelDepth records the current event channel depth.
func (m *Metrics) SetChannelDepth(depth int) {
	if !m.Enabled() {
		return
	}
	m.channelDepth.Set(float64(depth))
}

// ObservePaint records one repaint duration.
func (m *Metrics) ObservePaint(d time.Duration) {
	if !m.Enabled() {
		return
	}
	m.paintLatency.Observe(float64(d) / float64(time.Millisecond))
}
