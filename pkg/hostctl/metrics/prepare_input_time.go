package metrics

import (
	"sync"

	"github.com/RogerRabbitTH/raiko/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PrepareInputTime observes the wall-clock duration of the input
	// preparation phase, partitioned by block and outcome.
	PrepareInputTime PhaseDurationMetric = &prepareInputTime{}
)

func init() {
	PrepareInputTime.(*prepareInputTime).init()
}

type prepareInputTime struct {
	initOnlyOnce sync.Once
	metric       *prometheus.HistogramVec
}

func (m *prepareInputTime) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "prepare_input_time_histogram",
				Help: "The time taken for preparing the proof input, partitioned by block and outcome.",
			},
			[]string{
				labelBlockID,
				labelSuccess,
			},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *prepareInputTime) Observe(blockID uint64, value float64, success bool) {
	labels := prometheus.Labels{
		labelBlockID: formatBlockID(blockID),
		labelSuccess: formatSuccess(success),
	}
	m.metric.With(labels).Observe(value)
}
