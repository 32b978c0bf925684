package lot

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/parkinglot/device"
	"github.com/sarchlab/parkinglot/hooking"
)

var _ = Describe("Arbiter", func() {
	var (
		mockCtrl *gomock.Controller
		presence *MockPresenceSensor
		gate     *MockGateActuator
		state    *State
		recorder *transitionRecorder
		cfg      Config
		arbiter  *Arbiter
	)

	build := func() {
		arbiter = NewArbiter("Lot.Arbiter", state, presence, gate, cfg)
		arbiter.AcceptHook(recorder)
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		presence = NewMockPresenceSensor(mockCtrl)
		gate = NewMockGateActuator(mockCtrl)
		state = NewState()
		recorder = &transitionRecorder{}
		cfg = DefaultConfig()
		build()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should panic without a presence sensor", func() {
		Expect(func() { NewArbiter("Lot.Arbiter", state, nil, gate, cfg) }).
			To(PanicWith("presence sensor is not set"))
	})

	It("should panic without a gate", func() {
		Expect(func() { NewArbiter("Lot.Arbiter", state, presence, nil, cfg) }).
			To(PanicWith("gate actuator is not set"))
	})

	It("should do nothing while the sensor is inactive", func() {
		presence.EXPECT().Read().Return(device.Inactive)

		Expect(arbiter.Update(1000)).To(BeFalse())
		Expect(state.LastPresenceEdgeAt).To(BeZero())
	})

	It("should ignore edges during the startup holdoff", func() {
		presence.EXPECT().Read().Return(device.Active)

		Expect(arbiter.Update(499)).To(BeFalse())
		Expect(state.GateOpen).To(BeFalse())
	})

	It("should admit a vehicle into spot 1 first", func() {
		presence.EXPECT().Read().Return(device.Active)
		gate.EXPECT().SetPosition(device.GateOpen)

		Expect(arbiter.Update(1000)).To(BeTrue())

		Expect(state.GateOpen).To(BeTrue())
		Expect(state.GateOpenedAt).To(BeEquivalentTo(1000))
		Expect(state.LastPresenceEdgeAt).To(BeEquivalentTo(1000))
		Expect(state.Spot1Occupied).To(BeTrue())
		Expect(state.AvailableCount).To(Equal(1))
		Expect(recorder.positions).To(Equal([]*hooking.HookPos{
			HookPosGateOpened,
			HookPosSpotOccupied,
		}))
		Expect(recorder.messages()).To(Equal([]string{
			"Vehicle detected - Opening gate",
			"Spot 1 assigned to arriving vehicle",
		}))
	})

	It("should admit a vehicle into spot 2 when spot 1 is taken", func() {
		state.Spot1Occupied = true
		state.AvailableCount = 1
		presence.EXPECT().Read().Return(device.Active)
		gate.EXPECT().SetPosition(device.GateOpen)

		Expect(arbiter.Update(1000)).To(BeTrue())

		Expect(state.Spot2Occupied).To(BeTrue())
		Expect(state.AvailableCount).To(Equal(0))
		Expect(state.GateOpen).To(BeTrue())
	})

	It("should release spot 2 when the lot is full", func() {
		state.Spot1Occupied = true
		state.Spot2Occupied = true
		state.AvailableCount = 0
		presence.EXPECT().Read().Return(device.Active)
		gate.EXPECT().SetPosition(device.GateOpen)

		Expect(arbiter.Update(1000)).To(BeTrue())

		Expect(state.Spot2Occupied).To(BeFalse())
		Expect(state.Spot1Occupied).To(BeTrue())
		Expect(state.AvailableCount).To(Equal(1))
		Expect(state.GateOpen).To(BeTrue())
		Expect(recorder.messages()).To(Equal([]string{
			"Vehicle leaving Spot 2 - Opening gate",
			"Spot 2 is now vacant",
		}))
	})

	It("should debounce a second edge within the window", func() {
		presence.EXPECT().Read().Return(device.Active).Times(3)
		gate.EXPECT().SetPosition(device.GateOpen).Times(2)

		Expect(arbiter.Update(1000)).To(BeTrue())
		state.GateOpen = false

		Expect(arbiter.Update(1499)).To(BeFalse())
		Expect(state.LastPresenceEdgeAt).To(BeEquivalentTo(1000))

		Expect(arbiter.Update(1500)).To(BeTrue())
		Expect(state.LastPresenceEdgeAt).To(BeEquivalentTo(1500))
		Expect(state.AvailableCount).To(Equal(0))
	})

	It("should consume edges while the gate is open", func() {
		state.GateOpen = true
		state.GateOpenedAt = 900
		presence.EXPECT().Read().Return(device.Active)

		Expect(arbiter.Update(1000)).To(BeFalse())

		Expect(state.LastPresenceEdgeAt).To(BeEquivalentTo(1000))
		Expect(state.GateOpenedAt).To(BeEquivalentTo(900))
		Expect(state.AvailableCount).To(Equal(2))
	})

	It("should not release spot 1 through the gate by default", func() {
		state.Spot1Occupied = true
		state.AvailableCount = 0
		presence.EXPECT().Read().Return(device.Active)

		Expect(arbiter.Update(1000)).To(BeFalse())

		Expect(state.Spot1Occupied).To(BeTrue())
		Expect(state.GateOpen).To(BeFalse())
		Expect(state.LastPresenceEdgeAt).To(BeEquivalentTo(1000))
	})

	It("should release spot 1 through the gate when configured", func() {
		cfg.RecognizeSpot1Departure = true
		build()

		state.Spot1Occupied = true
		state.AvailableCount = 0
		presence.EXPECT().Read().Return(device.Active)
		gate.EXPECT().SetPosition(device.GateOpen)

		Expect(arbiter.Update(1000)).To(BeTrue())

		Expect(state.Spot1Occupied).To(BeFalse())
		Expect(state.AvailableCount).To(Equal(1))
		Expect(recorder.messages()).To(ContainElement("Spot 1 is now vacant"))
	})

	Context("when no spot flag is free but the count says otherwise", func() {
		BeforeEach(func() {
			state.Spot1Occupied = true
			state.Spot2Occupied = true
			state.AvailableCount = 1
		})

		It("should still take a space by default", func() {
			presence.EXPECT().Read().Return(device.Active)
			gate.EXPECT().SetPosition(device.GateOpen)

			Expect(arbiter.Update(1000)).To(BeTrue())

			Expect(state.AvailableCount).To(Equal(0))
			Expect(state.GateOpen).To(BeTrue())
			Expect(recorder.positions).To(Equal([]*hooking.HookPos{
				HookPosGateOpened,
				HookPosCountDesynced,
			}))
		})

		It("should keep the count with strict accounting", func() {
			cfg.StrictArrivalAccounting = true
			build()

			presence.EXPECT().Read().Return(device.Active)
			gate.EXPECT().SetPosition(device.GateOpen)

			Expect(arbiter.Update(1000)).To(BeTrue())

			Expect(state.AvailableCount).To(Equal(1))
			Expect(state.GateOpen).To(BeTrue())
			Expect(recorder.positions).To(Equal([]*hooking.HookPos{
				HookPosGateOpened,
			}))
		})
	})

	It("should honor a shorter debounce window", func() {
		cfg.DebounceWindow = 100 * time.Millisecond
		build()

		presence.EXPECT().Read().Return(device.Active)
		gate.EXPECT().SetPosition(device.GateOpen)

		Expect(arbiter.Update(100)).To(BeTrue())
	})
})
