package metrics

import (
	"sync"

	raikoapi "github.com/RogerRabbitTH/raiko/pkg/apis/raiko"
	"github.com/RogerRabbitTH/raiko/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// GuestProofTime observes the wall-clock duration of guest proof
	// attempts, partitioned by guest, block and outcome.
	GuestProofTime GuestDurationMetric = &guestProofTime{}
)

func init() {
	GuestProofTime.(*guestProofTime).init()
}

type guestProofTime struct {
	initOnlyOnce sync.Once
	metric       *prometheus.HistogramVec
}

func (m *guestProofTime) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "guest_proof_time_histogram",
				Help: "The time taken for proof generation by a guest, partitioned by guest, block and outcome.",
			},
			[]string{
				labelGuest,
				labelBlockID,
				labelSuccess,
			},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *guestProofTime) Observe(guest raikoapi.ProofType, blockID uint64, value float64, success bool) {
	labels := prometheus.Labels{
		labelGuest:   guest.String(),
		labelBlockID: formatBlockID(blockID),
		labelSuccess: formatSuccess(success),
	}
	m.metric.With(labels).Observe(value)
}
