package metrics

import (
	"sync"

	raikoapi "github.com/RogerRabbitTH/raiko/pkg/apis/raiko"
	"github.com/RogerRabbitTH/raiko/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// GuestRequests counts the proof requests dispatched to a guest.
	GuestRequests GuestCounterMetric = &guestRequests{}
)

func init() {
	GuestRequests.(*guestRequests).init()
}

type guestRequests struct {
	initOnlyOnce sync.Once
	metric       *prometheus.CounterVec
}

func (m *guestRequests) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guest_proof_request_count",
				Help: "The number of proof requests sent to a guest, partitioned by guest and block.",
			},
			[]string{
				labelGuest,
				labelBlockID,
			},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *guestRequests) Inc(guest raikoapi.ProofType, blockID uint64) {
	labels := prometheus.Labels{
		labelGuest:   guest.String(),
		labelBlockID: formatBlockID(blockID),
	}
	m.metric.With(labels).Inc()
}
