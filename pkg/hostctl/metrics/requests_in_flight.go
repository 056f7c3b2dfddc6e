package metrics

import (
	"sync"

	"github.com/RogerRabbitTH/raiko/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsInFlight reflects the number of requests currently being
	// processed by the host. The value is not clamped; callers must
	// pair each Inc with exactly one Dec.
	RequestsInFlight InFlightMetric = &requestsInFlight{}
)

func init() {
	RequestsInFlight.(*requestsInFlight).init()
}

type requestsInFlight struct {
	initOnlyOnce sync.Once
	metric       prometheus.Gauge
}

func (m *requestsInFlight) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "concurrent_requests",
			Help: "The number of requests currently being processed.",
		})
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *requestsInFlight) Inc() {
	m.metric.Inc()
}

func (m *requestsInFlight) Dec() {
	m.metric.Dec()
}
