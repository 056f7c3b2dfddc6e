package metrics

import (
	"sync"

	"github.com/RogerRabbitTH/raiko/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HostRequests counts the requests accepted by the host.
	HostRequests BlockCounterMetric = &hostRequests{}
)

func init() {
	HostRequests.(*hostRequests).init()
}

type hostRequests struct {
	initOnlyOnce sync.Once
	metric       *prometheus.CounterVec
}

func (m *hostRequests) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "host_request_count",
				Help: "The number of requests sent to the host, partitioned by block.",
			},
			[]string{
				labelBlockID,
			},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *hostRequests) Inc(blockID uint64) {
	m.metric.WithLabelValues(formatBlockID(blockID)).Inc()
}
