package metrics

import (
	"sync"

	raikoapi "github.com/RogerRabbitTH/raiko/pkg/apis/raiko"
	"github.com/RogerRabbitTH/raiko/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// GuestSuccesses counts the proofs a guest completed successfully.
	GuestSuccesses GuestCounterMetric = &guestSuccesses{}
)

func init() {
	GuestSuccesses.(*guestSuccesses).init()
}

type guestSuccesses struct {
	initOnlyOnce sync.Once
	metric       *prometheus.CounterVec
}

func (m *guestSuccesses) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guest_proof_success_count",
				Help: "The number of successful proofs generated by a guest, partitioned by guest and block.",
			},
			[]string{
				labelGuest,
				labelBlockID,
			},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *guestSuccesses) Inc(guest raikoapi.ProofType, blockID uint64) {
	labels := prometheus.Labels{
		labelGuest:   guest.String(),
		labelBlockID: formatBlockID(blockID),
	}
	m.metric.With(labels).Inc()
}
