// Package importer coordinates the staged import flow. An uploaded
// roster file is parsed into a batch, held in memory for operator
// review, and submitted to the backend in a single call. At most one
// batch is staged and at most one submission runs at a time.
package importer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/auditdesk/auditdesk/internal/roster"
)

// ErrNothingStaged is returned by Submit when no batch is staged.
var ErrNothingStaged = errors.New("no import batch is staged")

// Backend is the single operation the import flow needs from the API
// client.
type Backend interface {
	ImportEmployees(ctx context.Context, records []roster.CandidateRecord) (roster.ImportResult, error)
}

// Service owns the staged batch lifecycle.
type Service struct {
	backend  Backend
	area     stagingArea
	gate     *submitGate
	activity *ActivityLog
	log      *slog.Logger
}

// NewService wires the import flow to a backend client. activityCapacity
// bounds the in-memory activity log.
func NewService(b Backend, activityCapacity int) *Service {
	return &Service{
		backend:  b,
		gate:     newSubmitGate(),
		activity: NewActivityLog(activityCapacity),
		log:      slog.Default().With("component", "importer"),
	}
}

// Stage parses an uploaded file and stages the resulting batch,
// replacing any batch staged earlier. Parse failures leave the
// previous batch untouched.
func (s *Service) Stage(ctx context.Context, fileName string, content []byte) (*StagedBatch, error) {
	batch, err := roster.Parse(fileName, content)
	if err != nil {
		s.log.Warn("staging rejected",
			"file", fileName,
			"size", len(content),
			"error", err)
		return nil, err
	}

	staged := s.area.put(batch)
	s.record(EventStaged, batch, roster.ImportResult{}, "")
	s.log.Info("batch staged",
		"batch_id", staged.ID,
		"file", batch.SourceFileName,
		"dialect", batch.DetectedDialect,
		"records", batch.Len())
	return staged, nil
}

// Current returns the staged batch, or nil when nothing is staged.
func (s *Service) Current() *StagedBatch {
	return s.area.get()
}

// Discard drops the staged batch without submitting it. Returns the
// discarded batch, or nil when nothing was staged.
func (s *Service) Discard() *StagedBatch {
	prev := s.area.clear()
	if prev != nil {
		s.record(EventDiscarded, prev.Batch, roster.ImportResult{}, "")
		s.log.Info("batch discarded",
			"batch_id", prev.ID,
			"file", prev.Batch.SourceFileName)
	}
	return prev
}

// SubmitInFlight reports whether a submission is currently running.
func (s *Service) SubmitInFlight() bool {
	return s.gate.inFlight()
}

// Activity exposes the import activity log.
func (s *Service) Activity() *ActivityLog {
	return s.activity
}

// SubmitOutcome couples a submission result with the batch it covered.
type SubmitOutcome struct {
	Staged   *StagedBatch
	Result   roster.ImportResult
	Retained bool // batch kept for retry after a failed submission
}

// Submit sends the staged batch to the backend. On success the batch
// is cleared and the backend's per-batch result is returned.
//
// When the backend call fails, Submit returns a non-nil outcome whose
// result reports every record as skipped with a single synthetic error
// line, together with a *SubmissionError. The staged batch is retained
// so the operator can retry.
//
// A second Submit while one is running fails fast with
// ErrSubmitInFlight.
func (s *Service) Submit(ctx context.Context) (*SubmitOutcome, error) {
	if !s.gate.tryAcquire() {
		return nil, ErrSubmitInFlight
	}
	defer s.gate.release()

	staged := s.area.get()
	if staged == nil {
		return nil, ErrNothingStaged
	}

	result, err := s.backend.ImportEmployees(ctx, staged.Batch.Records)
	if err != nil {
		subErr := &SubmissionError{Err: err}
		outcome := &SubmitOutcome{
			Staged: staged,
			Result: roster.ImportResult{
				Skipped: staged.Batch.Len(),
				Errors:  []string{submissionFailedMessage},
			},
			Retained: true,
		}
		s.record(EventFailed, staged.Batch, outcome.Result, err.Error())
		s.log.Error("submission failed",
			"batch_id", staged.ID,
			"file", staged.Batch.SourceFileName,
			"records", staged.Batch.Len(),
			"error", err)
		return outcome, subErr
	}

	s.area.clearIf(staged)
	s.record(EventSubmitted, staged.Batch, result, "")
	s.log.Info("batch submitted",
		"batch_id", staged.ID,
		"file", staged.Batch.SourceFileName,
		"imported", result.Imported,
		"skipped", result.Skipped)
	return &SubmitOutcome{Staged: staged, Result: result}, nil
}

// record appends an activity event for a batch.
func (s *Service) record(kind EventKind, b *roster.ImportBatch, res roster.ImportResult, detail string) {
	s.activity.Record(Event{
		ID:       uuid.New(),
		Kind:     kind,
		Severity: severityFor(kind, res.Skipped),
		FileName: b.SourceFileName,
		Dialect:  b.DetectedDialect,
		Records:  b.Len(),
		Imported: res.Imported,
		Skipped:  res.Skipped,
		Detail:   detail,
		At:       time.Now(),
	})
}
