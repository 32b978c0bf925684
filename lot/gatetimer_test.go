package lot

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/parkinglot/device"
)

var _ = Describe("GateTimer", func() {
	var (
		mockCtrl  *gomock.Controller
		gate      *MockGateActuator
		state     *State
		recorder  *transitionRecorder
		gateTimer *GateTimer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		gate = NewMockGateActuator(mockCtrl)
		state = NewState()
		recorder = &transitionRecorder{}
		gateTimer = NewGateTimer("Lot.GateTimer", state, gate, 3000)
		gateTimer.AcceptHook(recorder)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should panic on a zero dwell time", func() {
		Expect(func() { NewGateTimer("Lot.GateTimer", state, gate, 0) }).
			To(PanicWith("dwell time cannot be 0"))
	})

	It("should do nothing while the gate is closed", func() {
		Expect(gateTimer.Update(100000)).To(BeFalse())
	})

	It("should close the gate exactly once after the dwell time", func() {
		state.GateOpen = true
		state.GateOpenedAt = 1000
		gate.EXPECT().SetPosition(device.GateClosed).Times(1)

		Expect(gateTimer.Update(3999)).To(BeFalse())
		Expect(state.GateOpen).To(BeTrue())

		Expect(gateTimer.Update(4000)).To(BeTrue())
		Expect(state.GateOpen).To(BeFalse())

		Expect(gateTimer.Update(4001)).To(BeFalse())
		Expect(gateTimer.Update(9000)).To(BeFalse())

		Expect(recorder.messages()).To(Equal(
			[]string{"Closing gate (timeout)"}))
	})

	It("should close a gate that was overdue", func() {
		state.GateOpen = true
		state.GateOpenedAt = 1000
		gate.EXPECT().SetPosition(device.GateClosed)

		Expect(gateTimer.Update(60000)).To(BeTrue())
	})
})
