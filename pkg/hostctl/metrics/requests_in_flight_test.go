package metrics

import (
	"sync"
	"testing"

	"github.com/RogerRabbitTH/raiko/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"gotest.tools/v3/assert"
)

func Test_RequestsInFlight_isInitialized(t *testing.T) {
	t.Parallel()

	// VERIFY
	assert.Assert(t, *(RequestsInFlight.(*requestsInFlight)) != requestsInFlight{})
}

func Test_requestsInFlight_Inc(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	reg := prometheus.NewPedanticRegistry()
	t.Cleanup(metrics.Testing{}.PatchRegistry(reg))

	examinee := &requestsInFlight{}
	examinee.init()

	const count = 5

	// EXERCISE
	for i := 0; i < count; i++ {
		examinee.Inc()
	}

	// VERIFY
	assert.Equal(t, gaugeValue(t, reg, "concurrent_requests"), float64(count))
}

func Test_requestsInFlight_pairedIncDecIsNetZero(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	reg := prometheus.NewPedanticRegistry()
	t.Cleanup(metrics.Testing{}.PatchRegistry(reg))

	examinee := &requestsInFlight{}
	examinee.init()

	// EXERCISE
	examinee.Inc()
	examinee.Inc()
	examinee.Dec()
	examinee.Inc()
	examinee.Dec()
	examinee.Dec()

	// VERIFY
	assert.Equal(t, gaugeValue(t, reg, "concurrent_requests"), float64(0))
}

func Test_requestsInFlight_concurrentPairedIncDec(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	reg := prometheus.NewPedanticRegistry()
	t.Cleanup(metrics.Testing{}.PatchRegistry(reg))

	examinee := &requestsInFlight{}
	examinee.init()

	const goroutineCount = 20
	const pairsPerGoroutine = 500

	// EXERCISE
	var waitGroup sync.WaitGroup
	waitGroup.Add(goroutineCount)
	for i := 0; i < goroutineCount; i++ {
		go func() {
			defer waitGroup.Done()
			for j := 0; j < pairsPerGoroutine; j++ {
				examinee.Inc()
				examinee.Dec()
			}
		}()
	}
	waitGroup.Wait()

	// VERIFY
	assert.Equal(t, gaugeValue(t, reg, "concurrent_requests"), float64(0))
}
