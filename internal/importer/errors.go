package importer

// Error translation for the import flow.
//
// Every error surfaced to the operator carries a short message, a
// remediation hint, and a stable code for support tickets:
//
//	IMP001-IMP006: import pipeline errors
//	FILE001-FILE002: upload handling errors
//	BE001-BE003: backend service errors
//	REQ001: cancelled requests
//	RATE001: rate limiting
//	ERR000: fallback for anything unrecognized
//
// Errors produced inside this module are classified by type first;
// the substring table below only catches transport-level errors whose
// types we do not control.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/auditdesk/auditdesk/internal/roster"
)

// SubmissionError wraps the backend failure behind a rejected batch
// submission. The staged batch survives it and can be retried.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("import submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// submissionFailedMessage is the single error line reported for a
// batch whose submission never completed. Individual record errors are
// unknown at that point, so the whole batch is reported as skipped.
const submissionFailedMessage = "Submission failed, no records were imported. The batch was kept for retry."

// UserMessage pairs a friendly message with a remediation hint.
type UserMessage struct {
	Message string // What happened
	Action  string // What the user can do
	Code    string // Error code for support
}

// errorPattern maps a substring of a technical error to a user message.
type errorPattern struct {
	substring string
	message   UserMessage
}

// Ordered: first match wins. Specific phrases go before generic ones
// so "context deadline exceeded" is not swallowed by "timeout".
var errorPatterns = []errorPattern{
	{"context deadline exceeded", UserMessage{
		Message: "The backend took too long to respond",
		Action:  "Please try again in a few moments",
		Code:    "BE002",
	}},
	{"context canceled", UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "REQ001",
	}},
	{"backend returned status", UserMessage{
		Message: "The backend rejected the request",
		Action:  "Check the submitted data and try again",
		Code:    "BE003",
	}},
	{"connection refused", UserMessage{
		Message: "Unable to reach the backend service",
		Action:  "Please try again in a few moments",
		Code:    "BE001",
	}},
	{"no such host", UserMessage{
		Message: "Unable to reach the backend service",
		Action:  "Please try again in a few moments",
		Code:    "BE001",
	}},
	{"connection reset", UserMessage{
		Message: "The connection to the backend was interrupted",
		Action:  "Please try again",
		Code:    "BE001",
	}},
	{"request body too large", UserMessage{
		Message: "File exceeds the maximum upload size",
		Action:  "Split the roster into smaller files and retry",
		Code:    "FILE001",
	}},
	{"file too large", UserMessage{
		Message: "File exceeds the maximum upload size",
		Action:  "Split the roster into smaller files and retry",
		Code:    "FILE001",
	}},
	{"no file provided", UserMessage{
		Message: "No file was selected",
		Action:  "Choose a roster file to upload",
		Code:    "FILE002",
	}},
	{"rate limit", UserMessage{
		Message: "Too many requests",
		Action:  "Please wait a moment before trying again",
		Code:    "RATE001",
	}},
	{"timeout", UserMessage{
		Message: "The backend took too long to respond",
		Action:  "Please try again in a few moments",
		Code:    "BE002",
	}},
}

// MapError translates a technical error into a user-facing message.
// Unrecognized errors fall back to a generic message so internals
// never leak to the operator.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	switch {
	case errors.Is(err, roster.ErrUnsupportedFormat):
		return UserMessage{
			Message: "File type is not supported",
			Action:  "Upload a .csv, .tsv, .txt, or .json file",
			Code:    "IMP001",
		}
	case errors.Is(err, roster.ErrNoValidRecords):
		return UserMessage{
			Message: "No valid records found in file",
			Action:  "Make sure each row has both a name and a phone number",
			Code:    "IMP002",
		}
	case roster.IsMalformed(err):
		return UserMessage{
			Message: "Failed to parse file. Please check the file format.",
			Action:  "Verify the file is UTF-8 text or valid JSON",
			Code:    "IMP003",
		}
	case errors.Is(err, ErrSubmitInFlight):
		return UserMessage{
			Message: "A submission is already in progress",
			Action:  "Wait for the current submission to finish",
			Code:    "IMP005",
		}
	case errors.Is(err, ErrNothingStaged):
		return UserMessage{
			Message: "No import batch is staged",
			Action:  "Upload a roster file before submitting",
			Code:    "IMP006",
		}
	}

	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return UserMessage{
			Message: "Import submission failed",
			Action:  "The staged batch was kept, try submitting again",
			Code:    "IMP004",
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(errStr, p.substring) {
			return p.message
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
}

// FormatUserError renders a UserMessage as a single line, suitable for
// plain-text responses and log-adjacent surfaces.
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Action != "" {
		return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
	}
	return fmt.Sprintf("%s (Code: %s)", msg.Message, msg.Code)
}
