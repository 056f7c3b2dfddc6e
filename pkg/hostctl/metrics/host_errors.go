package metrics

import (
	"sync"

	"github.com/RogerRabbitTH/raiko/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HostErrors counts the requests that failed at the host level.
	HostErrors BlockCounterMetric = &hostErrors{}
)

func init() {
	HostErrors.(*hostErrors).init()
}

type hostErrors struct {
	initOnlyOnce sync.Once
	metric       *prometheus.CounterVec
}

func (m *hostErrors) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "host_error_count",
				Help: "The number of failed requests produced by the host, partitioned by block.",
			},
			[]string{
				labelBlockID,
			},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *hostErrors) Inc(blockID uint64) {
	m.metric.WithLabelValues(formatBlockID(blockID)).Inc()
}
