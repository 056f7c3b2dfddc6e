package testing

import "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics"

// PatchHostRequests patches
// "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics".HostRequests with
// the given replacement and returns a function that reverts the patch.
// Multiple nested replacements must be reverted in exactly the opposite
// order (revert last replacement first).
func PatchHostRequests(replacement metrics.BlockCounterMetric) func() {
	origValue := metrics.HostRequests
	metrics.HostRequests = replacement
	return func() {
		if metrics.HostRequests != replacement {
			panic("reverting not possible because current value is not the former replacement")
		}
		metrics.HostRequests = origValue
	}
}

// PatchHostErrors patches
// "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics".HostErrors with
// the given replacement and returns a function that reverts the patch.
// Multiple nested replacements must be reverted in exactly the opposite
// order (revert last replacement first).
func PatchHostErrors(replacement metrics.BlockCounterMetric) func() {
	origValue := metrics.HostErrors
	metrics.HostErrors = replacement
	return func() {
		if metrics.HostErrors != replacement {
			panic("reverting not possible because current value is not the former replacement")
		}
		metrics.HostErrors = origValue
	}
}

// PatchGuestRequests patches
// "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics".GuestRequests with
// the given replacement and returns a function that reverts the patch.
// Multiple nested replacements must be reverted in exactly the opposite
// order (revert last replacement first).
func PatchGuestRequests(replacement metrics.GuestCounterMetric) func() {
	origValue := metrics.GuestRequests
	metrics.GuestRequests = replacement
	return func() {
		if metrics.GuestRequests != replacement {
			panic("reverting not possible because current value is not the former replacement")
		}
		metrics.GuestRequests = origValue
	}
}

// PatchGuestSuccesses patches
// "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics".GuestSuccesses with
// the given replacement and returns a function that reverts the patch.
// Multiple nested replacements must be reverted in exactly the opposite
// order (revert last replacement first).
func PatchGuestSuccesses(replacement metrics.GuestCounterMetric) func() {
	origValue := metrics.GuestSuccesses
	metrics.GuestSuccesses = replacement
	return func() {
		if metrics.GuestSuccesses != replacement {
			panic("reverting not possible because current value is not the former replacement")
		}
		metrics.GuestSuccesses = origValue
	}
}

// PatchGuestErrors patches
// "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics".GuestErrors with
// the given replacement and returns a function that reverts the patch.
// Multiple nested replacements must be reverted in exactly the opposite
// order (revert last replacement first).
func PatchGuestErrors(replacement metrics.GuestCounterMetric) func() {
	origValue := metrics.GuestErrors
	metrics.GuestErrors = replacement
	return func() {
		if metrics.GuestErrors != replacement {
			panic("reverting not possible because current value is not the former replacement")
		}
		metrics.GuestErrors = origValue
	}
}

// PatchGuestProofTime patches
// "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics".GuestProofTime with
// the given replacement and returns a function that reverts the patch.
// Multiple nested replacements must be reverted in exactly the opposite
// order (revert last replacement first).
func PatchGuestProofTime(replacement metrics.GuestDurationMetric) func() {
	origValue := metrics.GuestProofTime
	metrics.GuestProofTime = replacement
	return func() {
		if metrics.GuestProofTime != replacement {
			panic("reverting not possible because current value is not the former replacement")
		}
		metrics.GuestProofTime = origValue
	}
}

// PatchPrepareInputTime patches
// "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics".PrepareInputTime with
// the given replacement and returns a function that reverts the patch.
// Multiple nested replacements must be reverted in exactly the opposite
// order (revert last replacement first).
func PatchPrepareInputTime(replacement metrics.PhaseDurationMetric) func() {
	origValue := metrics.PrepareInputTime
	metrics.PrepareInputTime = replacement
	return func() {
		if metrics.PrepareInputTime != replacement {
			panic("reverting not possible because current value is not the former replacement")
		}
		metrics.PrepareInputTime = origValue
	}
}

// PatchTotalTime patches
// "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics".TotalTime with
// the given replacement and returns a function that reverts the patch.
// Multiple nested replacements must be reverted in exactly the opposite
// order (revert last replacement first).
func PatchTotalTime(replacement metrics.PhaseDurationMetric) func() {
	origValue := metrics.TotalTime
	metrics.TotalTime = replacement
	return func() {
		if metrics.TotalTime != replacement {
			panic("reverting not possible because current value is not the former replacement")
		}
		metrics.TotalTime = origValue
	}
}

// PatchRequestsInFlight patches
// "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics".RequestsInFlight with
// the given replacement and returns a function that reverts the patch.
// Multiple nested replacements must be reverted in exactly the opposite
// order (revert last replacement first).
func PatchRequestsInFlight(replacement metrics.InFlightMetric) func() {
	origValue := metrics.RequestsInFlight
	metrics.RequestsInFlight = replacement
	return func() {
		if metrics.RequestsInFlight != replacement {
			panic("reverting not possible because current value is not the former replacement")
		}
		metrics.RequestsInFlight = origValue
	}
}
