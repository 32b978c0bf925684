package timing

import (
	"log"

	"github.com/sarchlab/parkinglot/hooking"
)

// TickLogger is a hook that prints the ticks in which the ticker changed some
// state.
type TickLogger struct {
	hooking.LogHookBase

	timeTeller TimeTeller
}

// NewTickLogger returns a new TickLogger which writes into the logger.
func NewTickLogger(logger *log.Logger, timeTeller TimeTeller) *TickLogger {
	h := new(TickLogger)
	h.Logger = logger
	h.timeTeller = timeTeller

	return h
}

// Func writes the tick information into the logger.
func (h *TickLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosAfterTick {
		return
	}

	madeProgress, ok := ctx.Detail.(bool)
	if !ok || !madeProgress {
		return
	}

	h.Printf("%s, tick %d changed state", h.timeTeller.Now(), ctx.Item)
}
