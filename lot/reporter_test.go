package lot

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/parkinglot/device"
)

var _ = Describe("StatusReporter", func() {
	var (
		mockCtrl *gomock.Controller
		display  *MockDisplay
		state    *State
		reporter *StatusReporter
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		display = NewMockDisplay(mockCtrl)
		state = NewState()
		reporter = NewStatusReporter("Lot.Reporter", state, display)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should render the status without changing it", func() {
		state.Spot2Occupied = true
		state.AvailableCount = 1
		display.EXPECT().Render(1, 2, device.Free, device.Full)

		Expect(reporter.Update(1000)).To(BeFalse())
		Expect(state.AvailableCount).To(Equal(1))
	})
})
