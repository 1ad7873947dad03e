package importer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/auditdesk/auditdesk/internal/roster"
)

// ============================================================================
// MapError Tests
// ============================================================================

func TestMapError_PipelineErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"unsupported format", roster.ErrUnsupportedFormat, "IMP001"},
		{"wrapped unsupported format", fmt.Errorf("%w: %q", roster.ErrUnsupportedFormat, "a.xlsx"), "IMP001"},
		{"no valid records", roster.ErrNoValidRecords, "IMP002"},
		{"malformed input", &roster.MalformedInputError{Reason: "invalid JSON syntax"}, "IMP003"},
		{"submission failure", &SubmissionError{Err: errors.New("boom")}, "IMP004"},
		{"submit in flight", ErrSubmitInFlight, "IMP005"},
		{"nothing staged", ErrNothingStaged, "IMP006"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %s, want %s", tt.err, got.Code, tt.wantCode)
			}
			if got.Message == "" || got.Action == "" {
				t.Errorf("MapError(%v) missing message or action: %+v", tt.err, got)
			}
		})
	}
}

func TestMapError_MalformedMessageIsStable(t *testing.T) {
	// This exact wording is what the upload form shows for broken files;
	// changing it breaks operator documentation.
	got := MapError(&roster.MalformedInputError{Reason: "content is not valid UTF-8 text"})
	want := "Failed to parse file. Please check the file format."
	if got.Message != want {
		t.Errorf("message = %q, want %q", got.Message, want)
	}
}

func TestMapError_TransportErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"connection refused", errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"), "BE001"},
		{"unknown host", errors.New("dial tcp: lookup api.internal: no such host"), "BE001"},
		{"connection reset", errors.New("read tcp: connection reset by peer"), "BE001"},
		{"deadline exceeded", fmt.Errorf("POST /employees/import: %w", context.DeadlineExceeded), "BE002"},
		{"generic timeout", errors.New("net/http: timeout awaiting response headers"), "BE002"},
		{"backend status error", errors.New("backend returned status 502: bad gateway"), "BE003"},
		{"request cancelled", fmt.Errorf("GET /employees: %w", context.Canceled), "REQ001"},
		{"body too large", errors.New("http: request body too large"), "FILE001"},
		{"no file provided", errors.New("no file provided"), "FILE002"},
		{"rate limited", errors.New("rate limit exceeded"), "RATE001"},
		{"unknown error", errors.New("something nobody anticipated"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapError(tt.err); got.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %s, want %s", tt.err, got.Code, tt.wantCode)
			}
		})
	}
}

func TestMapError_SubmissionBeatsTransportPattern(t *testing.T) {
	// A SubmissionError wrapping a transport failure still reports the
	// submission outcome; the batch-was-kept hint matters more than the
	// socket detail.
	err := &SubmissionError{Err: errors.New("connection refused")}
	if got := MapError(err); got.Code != "IMP004" {
		t.Errorf("MapError().Code = %s, want IMP004", got.Code)
	}
}

func TestMapError_Nil(t *testing.T) {
	if got := MapError(nil); got != (UserMessage{}) {
		t.Errorf("MapError(nil) = %+v, want zero value", got)
	}
}

// ============================================================================
// FormatUserError Tests
// ============================================================================

func TestFormatUserError(t *testing.T) {
	got := FormatUserError(roster.ErrUnsupportedFormat)
	want := "File type is not supported (Code: IMP001). Upload a .csv, .tsv, .txt, or .json file"
	if got != want {
		t.Errorf("FormatUserError() = %q, want %q", got, want)
	}
}

// ============================================================================
// SubmissionError Tests
// ============================================================================

func TestSubmissionError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &SubmissionError{Err: inner}

	if !errors.Is(err, inner) {
		t.Error("errors.Is() cannot see through SubmissionError")
	}
	if msg := err.Error(); msg != "import submission failed: boom" {
		t.Errorf("Error() = %q", msg)
	}
}
