package metrics

import (
	"time"

	raikoapi "github.com/RogerRabbitTH/raiko/pkg/apis/raiko"
	"github.com/benbjohnson/clock"
)

// The timers below record elapsed wall-clock time in seconds
// (Duration.Seconds()). All duration histograms of this package are
// fed through these timers so that the unit is consistent across the
// whole process.

// RequestTimer tracks a single host request from acceptance to
// completion.
type RequestTimer struct {
	clock   clock.Clock
	blockID uint64
	start   time.Time
}

// NewRequestTimer marks the acceptance of a request for the given
// block: the host request counter and the in-flight gauge are
// incremented. Call Stop exactly once when the request has finished.
func NewRequestTimer(blockID uint64) *RequestTimer {
	return newRequestTimer(clock.New(), blockID)
}

func newRequestTimer(clk clock.Clock, blockID uint64) *RequestTimer {
	HostRequests.Inc(blockID)
	RequestsInFlight.Inc()
	return &RequestTimer{
		clock:   clk,
		blockID: blockID,
		start:   clk.Now(),
	}
}

// Stop marks the completion of the request: the in-flight gauge is
// decremented, the total request duration is observed and, if the
// request failed, the host error counter is incremented.
func (t *RequestTimer) Stop(success bool) {
	elapsed := t.clock.Since(t.start)
	RequestsInFlight.Dec()
	if !success {
		HostErrors.Inc(t.blockID)
	}
	TotalTime.Observe(t.blockID, elapsed.Seconds(), success)
}

// GuestTimer tracks a single proof attempt by a guest.
type GuestTimer struct {
	clock   clock.Clock
	guest   raikoapi.ProofType
	blockID uint64
	start   time.Time
}

// NewGuestTimer marks the dispatch of a proof request to the given
// guest: the guest request counter is incremented. Call Stop exactly
// once when the proof attempt has concluded.
func NewGuestTimer(guest raikoapi.ProofType, blockID uint64) *GuestTimer {
	return newGuestTimer(clock.New(), guest, blockID)
}

func newGuestTimer(clk clock.Clock, guest raikoapi.ProofType, blockID uint64) *GuestTimer {
	GuestRequests.Inc(guest, blockID)
	return &GuestTimer{
		clock:   clk,
		guest:   guest,
		blockID: blockID,
		start:   clk.Now(),
	}
}

// Stop marks the conclusion of the proof attempt: the guest success or
// error counter is incremented depending on the outcome and the proof
// duration is observed.
func (t *GuestTimer) Stop(success bool) {
	elapsed := t.clock.Since(t.start)
	if success {
		GuestSuccesses.Inc(t.guest, t.blockID)
	} else {
		GuestErrors.Inc(t.guest, t.blockID)
	}
	GuestProofTime.Observe(t.guest, t.blockID, elapsed.Seconds(), success)
}

// PrepareInputTimer tracks the input preparation phase of a request.
type PrepareInputTimer struct {
	clock   clock.Clock
	blockID uint64
	start   time.Time
}

// NewPrepareInputTimer marks the begin of the input preparation phase.
// Call Stop exactly once when the phase has finished.
func NewPrepareInputTimer(blockID uint64) *PrepareInputTimer {
	return newPrepareInputTimer(clock.New(), blockID)
}

func newPrepareInputTimer(clk clock.Clock, blockID uint64) *PrepareInputTimer {
	return &PrepareInputTimer{
		clock:   clk,
		blockID: blockID,
		start:   clk.Now(),
	}
}

// Stop marks the end of the input preparation phase and observes its
// duration.
func (t *PrepareInputTimer) Stop(success bool) {
	elapsed := t.clock.Since(t.start)
	PrepareInputTime.Observe(t.blockID, elapsed.Seconds(), success)
}
