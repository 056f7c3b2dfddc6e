package metrics

import (
	"sync"

	raikoapi "github.com/RogerRabbitTH/raiko/pkg/apis/raiko"
	"github.com/RogerRabbitTH/raiko/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// GuestErrors counts the proofs a guest failed to produce.
	GuestErrors GuestCounterMetric = &guestErrors{}
)

func init() {
	GuestErrors.(*guestErrors).init()
}

type guestErrors struct {
	initOnlyOnce sync.Once
	metric       *prometheus.CounterVec
}

func (m *guestErrors) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guest_proof_error_count",
				Help: "The number of failed proofs generated by a guest, partitioned by guest and block.",
			},
			[]string{
				labelGuest,
				labelBlockID,
			},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *guestErrors) Inc(guest raikoapi.ProofType, blockID uint64) {
	labels := prometheus.Labels{
		labelGuest:   guest.String(),
		labelBlockID: formatBlockID(blockID),
	}
	m.metric.With(labels).Inc()
}
