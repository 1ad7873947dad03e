package importer

import (
	"sync"
	"testing"
)

// ============================================================================
// Submit Gate Tests
// ============================================================================

func TestSubmitGate_SingleSlot(t *testing.T) {
	g := newSubmitGate()

	if !g.tryAcquire() {
		t.Fatal("first tryAcquire() = false")
	}
	if g.tryAcquire() {
		t.Error("second tryAcquire() = true while slot held")
	}
	if !g.inFlight() {
		t.Error("inFlight() = false while slot held")
	}

	g.release()
	if g.inFlight() {
		t.Error("inFlight() = true after release")
	}
	if !g.tryAcquire() {
		t.Error("tryAcquire() = false after release")
	}
}

func TestSubmitGate_ReleaseWithoutAcquire(t *testing.T) {
	g := newSubmitGate()

	// Must not block or panic.
	g.release()
	g.release()

	if !g.tryAcquire() {
		t.Error("tryAcquire() = false after spurious releases")
	}
}

func TestSubmitGate_ConcurrentAcquire(t *testing.T) {
	g := newSubmitGate()

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- g.tryAcquire()
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	if wins != 1 {
		t.Errorf("%d goroutines acquired the slot, want exactly 1", wins)
	}
}
