package metrics_test

import (
	"testing"

	raikoapi "github.com/RogerRabbitTH/raiko/pkg/apis/raiko"
	"github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics"
	"github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics/mocks"
	metricstesting "github.com/RogerRabbitTH/raiko/pkg/hostctl/metrics/testing"
	gomock "github.com/golang/mock/gomock"
)

func Test_RequestTimer_metricCalls(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hostRequestsMock := mocks.NewMockBlockCounterMetric(mockCtrl)
	t.Cleanup(metricstesting.PatchHostRequests(hostRequestsMock))
	hostErrorsMock := mocks.NewMockBlockCounterMetric(mockCtrl)
	t.Cleanup(metricstesting.PatchHostErrors(hostErrorsMock))
	totalTimeMock := mocks.NewMockPhaseDurationMetric(mockCtrl)
	t.Cleanup(metricstesting.PatchTotalTime(totalTimeMock))
	inFlightMock := mocks.NewMockInFlightMetric(mockCtrl)
	t.Cleanup(metricstesting.PatchRequestsInFlight(inFlightMock))

	gomock.InOrder(
		hostRequestsMock.EXPECT().Inc(uint64(42)),
		inFlightMock.EXPECT().Inc(),
		inFlightMock.EXPECT().Dec(),
		hostErrorsMock.EXPECT().Inc(uint64(42)),
		totalTimeMock.EXPECT().Observe(uint64(42), gomock.Any(), false),
	)

	// EXERCISE
	timer := metrics.NewRequestTimer(42)
	timer.Stop(false)
}

func Test_GuestTimer_metricCalls(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	guestRequestsMock := mocks.NewMockGuestCounterMetric(mockCtrl)
	t.Cleanup(metricstesting.PatchGuestRequests(guestRequestsMock))
	guestSuccessesMock := mocks.NewMockGuestCounterMetric(mockCtrl)
	t.Cleanup(metricstesting.PatchGuestSuccesses(guestSuccessesMock))
	guestErrorsMock := mocks.NewMockGuestCounterMetric(mockCtrl)
	t.Cleanup(metricstesting.PatchGuestErrors(guestErrorsMock))
	guestProofTimeMock := mocks.NewMockGuestDurationMetric(mockCtrl)
	t.Cleanup(metricstesting.PatchGuestProofTime(guestProofTimeMock))

	gomock.InOrder(
		guestRequestsMock.EXPECT().Inc(raikoapi.ProofTypeSp1, uint64(7)),
		guestSuccessesMock.EXPECT().Inc(raikoapi.ProofTypeSp1, uint64(7)),
		guestProofTimeMock.EXPECT().Observe(raikoapi.ProofTypeSp1, uint64(7), gomock.Any(), true),
	)

	// EXERCISE
	timer := metrics.NewGuestTimer(raikoapi.ProofTypeSp1, 7)
	timer.Stop(true)
}

func Test_PrepareInputTimer_metricCalls(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	prepareInputTimeMock := mocks.NewMockPhaseDurationMetric(mockCtrl)
	t.Cleanup(metricstesting.PatchPrepareInputTime(prepareInputTimeMock))

	prepareInputTimeMock.EXPECT().Observe(uint64(42), gomock.Any(), true)

	// EXERCISE
	timer := metrics.NewPrepareInputTimer(42)
	timer.Stop(true)
}
