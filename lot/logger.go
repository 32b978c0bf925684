package lot

import (
	"log"

	"github.com/sarchlab/parkinglot/hooking"
)

// TransitionLogger is a hook that prints the transitions of the lot.
type TransitionLogger struct {
	hooking.LogHookBase

	withSnapshot bool
}

// NewTransitionLogger returns a TransitionLogger which writes into the
// logger.
func NewTransitionLogger(logger *log.Logger) *TransitionLogger {
	h := new(TransitionLogger)
	h.Logger = logger

	return h
}

// WithSnapshot makes the logger append the lot status to each line.
func (h *TransitionLogger) WithSnapshot() *TransitionLogger {
	h.withSnapshot = true
	return h
}

// Func writes the transition into the logger.
func (h *TransitionLogger) Func(ctx hooking.HookCtx) {
	t, ok := ctx.Item.(Transition)
	if !ok {
		return
	}

	if h.withSnapshot {
		h.Printf("%s %s: %s (%s)", t.Time, t.Where, t.Message, t.Snapshot)
		return
	}

	h.Printf("%s %s: %s", t.Time, t.Where, t.Message)
}
