package importer

import (
	"errors"
)

// ErrSubmitInFlight is returned when a submission is already running.
// The import flow is non-reentrant: one batch, one submission at a time.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// submitGate is a one-slot semaphore with non-blocking acquisition.
// Submit attempts that lose the race fail fast instead of queueing.
type submitGate struct {
	slot chan struct{}
}

func newSubmitGate() *submitGate {
	return &submitGate{slot: make(chan struct{}, 1)}
}

// tryAcquire claims the slot without blocking. Returns false when a
// submission already holds it.
func (g *submitGate) tryAcquire() bool {
	select {
	case g.slot <- struct{}{}:
		return true
	default:
		return false
	}
}

// release frees the slot. Calling release without a matching acquire
// is a no-op rather than a deadlock.
func (g *submitGate) release() {
	select {
	case <-g.slot:
	default:
	}
}

// inFlight reports whether a submission currently holds the slot.
func (g *submitGate) inFlight() bool {
	return len(g.slot) > 0
}
