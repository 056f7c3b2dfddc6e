package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"gotest.tools/v3/assert"
)

// counterValueByLabels gathers the given registry and returns the value
// of the counter series of the named metric family that carries exactly
// the given label values. The second return value tells whether such a
// series exists.
func counterValueByLabels(
	t *testing.T,
	reg *prometheus.Registry,
	metricName string,
	labels map[string]string,
) (float64, bool) {
	t.Helper()

	metricFamilies, err := reg.Gather()
	assert.NilError(t, err)

	for _, family := range metricFamilies {
		if family.GetName() != metricName {
			continue
		}
		for _, metric := range family.GetMetric() {
			if len(metric.GetLabel()) != len(labels) {
				continue
			}
			matches := true
			for _, labelPair := range metric.GetLabel() {
				if labels[labelPair.GetName()] != labelPair.GetValue() {
					matches = false
					break
				}
			}
			if matches {
				return metric.GetCounter().GetValue(), true
			}
		}
	}
	return 0, false
}

// gaugeValue gathers the given registry and returns the value of the
// single unlabeled gauge series of the named metric family.
func gaugeValue(
	t *testing.T,
	reg *prometheus.Registry,
	metricName string,
) float64 {
	t.Helper()

	metricFamilies, err := reg.Gather()
	assert.NilError(t, err)

	for _, family := range metricFamilies {
		if family.GetName() == metricName {
			assert.Equal(t, len(family.GetMetric()), 1)
			return family.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("metric family %q not found", metricName)
	return 0
}
