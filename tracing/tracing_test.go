package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/parkinglot/hooking"
	"github.com/sarchlab/parkinglot/timing"
)

type namedDomain struct {
	*hooking.HookableBase
	name string
}

func (d *namedDomain) Name() string {
	return d.name
}

func newDomain(name string) *namedDomain {
	return &namedDomain{HookableBase: hooking.NewHookableBase(), name: name}
}

var _ = Describe("Task API", func() {
	It("should not invoke anything when nobody listens", func() {
		domain := newDomain("")

		Expect(func() { StartTask("", "", domain, "", "", nil) }).
			NotTo(Panic())
	})

	It("should validate started tasks", func() {
		domain := newDomain("Lot.Arbiter")
		domain.AcceptHook(hooking.HookFunc(func(hooking.HookCtx) {}))

		Expect(func() { StartTask("", "", domain, "gate", "arrival", nil) }).
			To(PanicWith("id must not be empty"))
		Expect(func() { StartTask("1", "", domain, "", "arrival", nil) }).
			To(PanicWith("kind must not be empty"))
		Expect(func() { StartTask("1", "", domain, "gate", "", nil) }).
			To(PanicWith("what must not be empty"))
	})

	It("should reject collecting the same tracer twice", func() {
		domain := newDomain("Lot.Arbiter")
		tracer := NewDwellTracer(timing.NewManualClock(0), KindIs("gate"))

		CollectTrace(domain, tracer)

		Expect(func() { CollectTrace(domain, tracer) }).To(Panic())
	})
})

var _ = Describe("DwellTracer", func() {
	var (
		clock  *timing.ManualClock
		opener *namedDomain
		closer *namedDomain
		tracer *DwellTracer
	)

	BeforeEach(func() {
		clock = timing.NewManualClock(1000)
		opener = newDomain("Lot.Arbiter")
		closer = newDomain("Lot.GateTimer")
		tracer = NewDwellTracer(clock, KindIs("gate_cycle"))

		CollectTrace(opener, tracer)
		CollectTrace(closer, tracer)
	})

	It("should follow a task across two domains", func() {
		StartTask("c1", "", opener, "gate_cycle", "arrival", nil)
		clock.Advance(3000)
		EndTask("c1", closer)

		Expect(tracer.TotalCount()).To(Equal(uint64(1)))
		Expect(tracer.AverageTime()).To(Equal(timing.VTimeInMs(3000)))
	})

	It("should average several tasks and keep the longest", func() {
		StartTask("c1", "", opener, "gate_cycle", "arrival", nil)
		clock.Advance(3000)
		EndTask("c1", closer)

		StartTask("c2", "", opener, "gate_cycle", "departure", nil)
		clock.Advance(3100)
		EndTask("c2", closer)

		Expect(tracer.TotalCount()).To(Equal(uint64(2)))
		Expect(tracer.AverageTime()).To(Equal(timing.VTimeInMs(3050)))
		Expect(tracer.LongestTime()).To(Equal(timing.VTimeInMs(3100)))
	})

	It("should ignore filtered tasks", func() {
		StartTask("s1", "", opener, "stay", "Spot 1", nil)
		clock.Advance(100)
		EndTask("s1", closer)

		Expect(tracer.TotalCount()).To(BeZero())
		Expect(tracer.AverageTime()).To(BeZero())
	})
})

var _ = Describe("DBTracer", func() {
	var (
		mockCtrl *gomock.Controller
		backend  *MockDataRecorder
		clock    *timing.ManualClock
		domain   *namedDomain
		tracer   *DBTracer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		backend = NewMockDataRecorder(mockCtrl)
		clock = timing.NewManualClock(500)
		domain = newDomain("Lot.Tracker")

		backend.EXPECT().CreateTable(TraceTableName, TaskTableEntry{})
		tracer = NewDBTracer(clock, backend)
		CollectTrace(domain, tracer)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should write a task when it ends", func() {
		StartTask("s1", "", domain, "stay", "Spot 1", nil)
		clock.Advance(1200)

		backend.EXPECT().InsertData(TraceTableName, TaskTableEntry{
			ID:        "s1",
			Kind:      "stay",
			What:      "Spot 1",
			Location:  "Lot.Tracker",
			StartTime: 500,
			EndTime:   1700,
		})
		EndTask("s1", domain)

		Expect(tracer.InflightCount()).To(BeZero())
	})

	It("should not write unfinished tasks", func() {
		StartTask("s1", "", domain, "stay", "Spot 1", nil)

		Expect(tracer.InflightCount()).To(Equal(1))
	})

	It("should ignore ends of unknown tasks", func() {
		EndTask("nope", domain)
	})

	It("should flush on terminate", func() {
		backend.EXPECT().Flush()

		tracer.Terminate()
	})
})
