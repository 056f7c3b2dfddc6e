package metrics

import raikoapi "github.com/RogerRabbitTH/raiko/pkg/apis/raiko"

// BlockCounterMetric is a monotonic counter partitioned by block.
type BlockCounterMetric interface {
	Inc(blockID uint64)
}

// GuestCounterMetric is a monotonic counter partitioned by guest and block.
type GuestCounterMetric interface {
	Inc(guest raikoapi.ProofType, blockID uint64)
}

// GuestDurationMetric observes durations of guest proof attempts
// partitioned by guest, block and outcome.
type GuestDurationMetric interface {
	// Observe performs a single observation. The value is recorded
	// as-is, without unit conversion. All call sites of one process
	// must use the same time unit.
	Observe(guest raikoapi.ProofType, blockID uint64, value float64, success bool)
}

// PhaseDurationMetric observes durations of a request processing phase
// partitioned by block and outcome.
type PhaseDurationMetric interface {
	// Observe performs a single observation. The value is recorded
	// as-is, without unit conversion. All call sites of one process
	// must use the same time unit.
	Observe(blockID uint64, value float64, success bool)
}

// InFlightMetric reflects the number of requests currently being
// processed. Callers must pair each Inc with exactly one Dec.
type InFlightMetric interface {
	Inc()
	Dec()
}
