package timing

import (
	"context"
	"sync"
	"time"

	"github.com/sarchlab/parkinglot/hooking"
)

// HookPosBeforeTick is a hook position that triggers before each tick.
var HookPosBeforeTick = &hooking.HookPos{Name: "BeforeTick"}

// HookPosAfterTick is a hook position that triggers after each tick. The hook
// detail is the bool returned by the ticker.
var HookPosAfterTick = &hooking.HookPos{Name: "AfterTick"}

// A Loop keeps ticking one Ticker, one tick after another, on a single
// goroutine.
type Loop struct {
	*hooking.HookableBase

	ticker Ticker
	pacing time.Duration
	ticks  uint64

	singleRunLock sync.Mutex
}

// NewLoop creates a Loop that ticks ticker as fast as it can.
func NewLoop(ticker Ticker) *Loop {
	if ticker == nil {
		panic("loop needs a ticker")
	}

	return &Loop{
		HookableBase: hooking.NewHookableBase(),
		ticker:       ticker,
	}
}

// WithPacing makes Run yield for at most d between two ticks. Pacing keeps the
// loop from spinning a core; it must stay well below the shortest cadence of
// the ticker.
func (l *Loop) WithPacing(d time.Duration) *Loop {
	if d < 0 {
		panic("pacing cannot be negative")
	}

	l.pacing = d

	return l
}

// Ticks returns the number of ticks run so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Run ticks until ctx is cancelled. The loop has no failure path, so Run only
// returns once it is told to stop.
func (l *Loop) Run(ctx context.Context) error {
	l.singleRunLock.Lock()
	defer l.singleRunLock.Unlock()

	var pace <-chan time.Time
	if l.pacing > 0 {
		ticker := time.NewTicker(l.pacing)
		defer ticker.Stop()
		pace = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		l.tickOnce()

		if pace == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-pace:
		}
	}
}

// RunTicks runs exactly n ticks without pacing.
func (l *Loop) RunTicks(n int) {
	l.singleRunLock.Lock()
	defer l.singleRunLock.Unlock()

	for i := 0; i < n; i++ {
		l.tickOnce()
	}
}

func (l *Loop) tickOnce() {
	l.ticks++

	hookCtx := hooking.HookCtx{
		Domain: l,
		Pos:    HookPosBeforeTick,
		Item:   l.ticks,
	}
	l.InvokeHook(hookCtx)

	madeProgress := l.ticker.Tick()

	hookCtx.Pos = HookPosAfterTick
	hookCtx.Detail = madeProgress
	l.InvokeHook(hookCtx)
}
