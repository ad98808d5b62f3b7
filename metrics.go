package sticky

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks registry traffic for sticky header providers.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	FramesReported    prometheus.Counter
	HeadersEvicted    prometheus.Counter
	Broadcasts        prometheus.Counter
	RegisteredHeaders prometheus.Gauge
	MissingProvider   prometheus.Counter
}

// NewMetrics creates the metric set and registers it with reg.
// A nil reg leaves the metrics unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FramesReported: factory.NewCounter(prometheus.CounterOpts{
			Name: "sticky_frames_reported_total",
			Help: "Total number of header frames folded into a registry",
		}),
		HeadersEvicted: factory.NewCounter(prometheus.CounterOpts{
			Name: "sticky_headers_evicted_total",
			Help: "Total number of header entries removed on teardown",
		}),
		Broadcasts: factory.NewCounter(prometheus.CounterOpts{
			Name: "sticky_registry_broadcasts_total",
			Help: "Total number of registry snapshots delivered to subscribers",
		}),
		RegisteredHeaders: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sticky_registered_headers",
			Help: "Number of headers currently present in the registry",
		}),
		MissingProvider: factory.NewCounter(prometheus.CounterOpts{
			Name: "sticky_missing_provider_total",
			Help: "Offset computations made by headers that have no provider",
		}),
	}
}

func (m *Metrics) observeReport(frames, registered int) {
	if m == nil {
		return
	}
	m.FramesReported.Add(float64(frames))
	m.RegisteredHeaders.Set(float64(registered))
}

func (m *Metrics) observeEviction(removed, registered int) {
	if m == nil {
		return
	}
	m.HeadersEvicted.Add(float64(removed))
	m.RegisteredHeaders.Set(float64(registered))
}

func (m *Metrics) observeBroadcast() {
	if m == nil {
		return
	}
	m.Broadcasts.Inc()
}

func (m *Metrics) observeMissingProvider() {
	if m == nil {
		return
	}
	m.MissingProvider.Inc()
}
