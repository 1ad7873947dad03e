package importer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/auditdesk/auditdesk/internal/roster"
)

// StagedBatch is a parsed batch waiting for operator review. It lives
// in memory only; nothing is persisted until the batch is submitted.
type StagedBatch struct {
	ID       uuid.UUID
	Batch    *roster.ImportBatch
	StagedAt time.Time
}

// stagingArea holds at most one batch. Staging a new file replaces the
// previous batch without ceremony, matching the upload form where each
// file selection restarts the flow.
type stagingArea struct {
	mu      sync.Mutex
	current *StagedBatch
}

// put stages a batch, replacing whatever was staged before. Returns
// the new entry.
func (a *stagingArea) put(b *roster.ImportBatch) *StagedBatch {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = &StagedBatch{
		ID:       uuid.New(),
		Batch:    b,
		StagedAt: time.Now(),
	}
	return a.current
}

// get returns the staged batch, or nil when nothing is staged.
func (a *stagingArea) get() *StagedBatch {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// clear removes and returns the staged batch, or nil when the area was
// already empty.
func (a *stagingArea) clear() *StagedBatch {
	a.mu.Lock()
	defer a.mu.Unlock()
	prev := a.current
	a.current = nil
	return prev
}

// clearIf removes the staged batch only if it is still s. A batch
// staged while a submission was running is left alone.
func (a *stagingArea) clearIf(s *StagedBatch) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current != s {
		return false
	}
	a.current = nil
	return true
}
