package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/auditdesk/auditdesk/internal/roster"
)

// stubBackend records what it was asked to import and returns a canned
// result or error. Setting block makes ImportEmployees wait until
// release is closed, which lets tests hold a submission in flight.
type stubBackend struct {
	result  roster.ImportResult
	err     error
	calls   int
	got     []roster.CandidateRecord
	started chan struct{}
	release chan struct{}
}

func (s *stubBackend) ImportEmployees(ctx context.Context, records []roster.CandidateRecord) (roster.ImportResult, error) {
	s.calls++
	s.got = records
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.result, s.err
}

const rosterCSV = "name,phone,email\nJohn Doe,+14255551234,john@example.com\nJane Roe,+14255555678,jane@example.com\n"

func stagedService(t *testing.T, backend *stubBackend) *Service {
	t.Helper()
	svc := NewService(backend, 50)
	if _, err := svc.Stage(context.Background(), "roster.csv", []byte(rosterCSV)); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}
	return svc
}

// ============================================================================
// Stage Tests
// ============================================================================

func TestStage_ParsesAndStages(t *testing.T) {
	svc := NewService(&stubBackend{}, 50)

	staged, err := svc.Stage(context.Background(), "roster.csv", []byte(rosterCSV))
	if err != nil {
		t.Fatalf("Stage() error = %v", err)
	}
	if staged.Batch.Len() != 2 {
		t.Errorf("staged %d records, want 2", staged.Batch.Len())
	}
	if staged.ID == uuid.Nil {
		t.Error("staged batch has zero ID")
	}
	if cur := svc.Current(); cur != staged {
		t.Errorf("Current() = %v, want the staged batch", cur)
	}

	events := svc.Activity().Recent(1)
	if len(events) != 1 || events[0].Kind != EventStaged {
		t.Errorf("activity = %+v, want one staged event", events)
	}
	if events[0].Records != 2 {
		t.Errorf("event records = %d, want 2", events[0].Records)
	}
}

func TestStage_ReplacesPreviousBatch(t *testing.T) {
	svc := stagedService(t, &stubBackend{})

	second := "name,phone\nAlice Smith,+14255550000\n"
	staged, err := svc.Stage(context.Background(), "second.csv", []byte(second))
	if err != nil {
		t.Fatalf("Stage() error = %v", err)
	}

	cur := svc.Current()
	if cur != staged {
		t.Fatal("Current() does not point at the replacement batch")
	}
	if cur.Batch.SourceFileName != "second.csv" {
		t.Errorf("current file = %q, want %q", cur.Batch.SourceFileName, "second.csv")
	}
	if cur.Batch.Len() != 1 {
		t.Errorf("current batch has %d records, want 1", cur.Batch.Len())
	}
}

func TestStage_ParseFailureKeepsPreviousBatch(t *testing.T) {
	svc := stagedService(t, &stubBackend{})
	before := svc.Current()

	_, err := svc.Stage(context.Background(), "roster.xlsx", []byte("whatever"))
	if !errors.Is(err, roster.ErrUnsupportedFormat) {
		t.Fatalf("Stage() error = %v, want ErrUnsupportedFormat", err)
	}

	if svc.Current() != before {
		t.Error("failed staging replaced the previous batch")
	}
}

// ============================================================================
// Submit Tests
// ============================================================================

func TestSubmit_Success(t *testing.T) {
	backend := &stubBackend{
		result: roster.ImportResult{Imported: 2, Skipped: 0},
	}
	svc := stagedService(t, backend)

	outcome, err := svc.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if outcome.Result.Imported != 2 {
		t.Errorf("imported = %d, want 2", outcome.Result.Imported)
	}
	if outcome.Retained {
		t.Error("outcome marked retained after success")
	}
	if len(backend.got) != 2 {
		t.Errorf("backend received %d records, want 2", len(backend.got))
	}
	if backend.got[0].Name != "John Doe" {
		t.Errorf("first record name = %q, want %q", backend.got[0].Name, "John Doe")
	}

	// Success consumes the batch.
	if svc.Current() != nil {
		t.Error("batch still staged after successful submission")
	}

	events := svc.Activity().Recent(1)
	if len(events) != 1 || events[0].Kind != EventSubmitted {
		t.Fatalf("activity = %+v, want one submitted event", events)
	}
	if events[0].Severity != SeverityInfo {
		t.Errorf("severity = %q, want info for a clean import", events[0].Severity)
	}
}

func TestSubmit_PartialImportRecordsNotice(t *testing.T) {
	backend := &stubBackend{
		result: roster.ImportResult{Imported: 1, Skipped: 1, Errors: []string{"duplicate phone number"}},
	}
	svc := stagedService(t, backend)

	outcome, err := svc.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if outcome.Result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", outcome.Result.Skipped)
	}

	events := svc.Activity().Recent(1)
	if events[0].Severity != SeverityNotice {
		t.Errorf("severity = %q, want notice when records were skipped", events[0].Severity)
	}
}

func TestSubmit_BackendFailureRetainsBatch(t *testing.T) {
	backend := &stubBackend{err: errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")}
	svc := stagedService(t, backend)

	outcome, err := svc.Submit(context.Background())

	var subErr *SubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("Submit() error = %v, want *SubmissionError", err)
	}
	if outcome == nil {
		t.Fatal("Submit() outcome is nil on failure, want synthetic result")
	}
	if !outcome.Retained {
		t.Error("outcome not marked retained")
	}
	if outcome.Result.Imported != 0 {
		t.Errorf("imported = %d, want 0", outcome.Result.Imported)
	}
	if outcome.Result.Skipped != 2 {
		t.Errorf("skipped = %d, want the whole batch (2)", outcome.Result.Skipped)
	}
	if len(outcome.Result.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one synthetic message", outcome.Result.Errors)
	}

	// The batch survives for retry.
	if svc.Current() == nil {
		t.Fatal("batch was dropped after a failed submission")
	}

	events := svc.Activity().Recent(1)
	if len(events) != 1 || events[0].Kind != EventFailed {
		t.Fatalf("activity = %+v, want one failed event", events)
	}
	if events[0].Severity != SeverityWarning {
		t.Errorf("severity = %q, want warning", events[0].Severity)
	}
	if !strings.Contains(events[0].Detail, "connection refused") {
		t.Errorf("event detail = %q, want the technical error", events[0].Detail)
	}
}

func TestSubmit_RetryAfterFailureSucceeds(t *testing.T) {
	backend := &stubBackend{err: errors.New("connection refused")}
	svc := stagedService(t, backend)

	if _, err := svc.Submit(context.Background()); err == nil {
		t.Fatal("first Submit() succeeded, want failure")
	}

	backend.err = nil
	backend.result = roster.ImportResult{Imported: 2}

	outcome, err := svc.Submit(context.Background())
	if err != nil {
		t.Fatalf("retry Submit() error = %v", err)
	}
	if outcome.Result.Imported != 2 {
		t.Errorf("imported = %d, want 2", outcome.Result.Imported)
	}
	if svc.Current() != nil {
		t.Error("batch still staged after successful retry")
	}
}

func TestSubmit_NothingStaged(t *testing.T) {
	svc := NewService(&stubBackend{}, 50)

	_, err := svc.Submit(context.Background())
	if !errors.Is(err, ErrNothingStaged) {
		t.Errorf("Submit() error = %v, want ErrNothingStaged", err)
	}
}

func TestSubmit_SecondCallFailsFast(t *testing.T) {
	backend := &stubBackend{
		result:  roster.ImportResult{Imported: 2},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := stagedService(t, backend)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background())
		done <- err
	}()

	<-backend.started
	if !svc.SubmitInFlight() {
		t.Error("SubmitInFlight() = false while a submission is running")
	}

	_, err := svc.Submit(context.Background())
	if !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("second Submit() error = %v, want ErrSubmitInFlight", err)
	}

	close(backend.release)
	if err := <-done; err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	if svc.SubmitInFlight() {
		t.Error("SubmitInFlight() = true after submission finished")
	}
	if backend.calls != 1 {
		t.Errorf("backend called %d times, want 1", backend.calls)
	}
}

func TestSubmit_BatchStagedMidSubmitSurvives(t *testing.T) {
	backend := &stubBackend{
		result:  roster.ImportResult{Imported: 2},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := stagedService(t, backend)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background())
		done <- err
	}()
	<-backend.started

	replacement := "name,phone\nAlice Smith,+14255550000\n"
	if _, err := svc.Stage(context.Background(), "late.csv", []byte(replacement)); err != nil {
		t.Fatalf("Stage() during submit error = %v", err)
	}

	close(backend.release)
	if err := <-done; err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	// Success clears only the batch it sent, not the replacement.
	cur := svc.Current()
	if cur == nil {
		t.Fatal("replacement batch was cleared by the earlier submission")
	}
	if cur.Batch.SourceFileName != "late.csv" {
		t.Errorf("current file = %q, want %q", cur.Batch.SourceFileName, "late.csv")
	}
}

// ============================================================================
// Discard Tests
// ============================================================================

func TestDiscard(t *testing.T) {
	svc := stagedService(t, &stubBackend{})

	prev := svc.Discard()
	if prev == nil {
		t.Fatal("Discard() = nil, want the staged batch")
	}
	if svc.Current() != nil {
		t.Error("batch still staged after discard")
	}

	events := svc.Activity().Recent(1)
	if len(events) != 1 || events[0].Kind != EventDiscarded {
		t.Errorf("activity = %+v, want one discarded event", events)
	}

	if svc.Discard() != nil {
		t.Error("second Discard() returned a batch, want nil")
	}
}
