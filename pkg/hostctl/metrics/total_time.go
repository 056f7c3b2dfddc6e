package metrics

import (
	"sync"

	"github.com/RogerRabbitTH/raiko/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// TotalTime observes the wall-clock duration of the entire request
	// lifecycle, partitioned by block and outcome.
	TotalTime PhaseDurationMetric = &totalTime{}
)

func init() {
	TotalTime.(*totalTime).init()
}

type totalTime struct {
	initOnlyOnce sync.Once
	metric       *prometheus.HistogramVec
}

func (m *totalTime) init() {
	m.initOnlyOnce.Do(func() {
		m.metric = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "total_time_histogram",
				Help: "The time taken for the whole request, partitioned by block and outcome.",
			},
			[]string{
				labelBlockID,
				labelSuccess,
			},
		)
		metrics.Registerer().MustRegister(m.metric)
	})
}

func (m *totalTime) Observe(blockID uint64, value float64, success bool) {
	labels := prometheus.Labels{
		labelBlockID: formatBlockID(blockID),
		labelSuccess: formatSuccess(success),
	}
	m.metric.With(labels).Observe(value)
}
