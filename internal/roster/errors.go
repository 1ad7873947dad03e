package roster

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat means the file extension is not one the
// pipeline reads. Detection happens before any content is touched.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoValidRecords means the file was readable but produced zero
// candidate records: missing required columns, or every row failed the
// name/phone invariant. Distinct from MalformedInputError so the UI
// can tell "wrong columns" apart from "not a readable file".
var ErrNoValidRecords = errors.New("no valid records found in file")

// MalformedInputError is a hard parse failure: invalid JSON syntax or
// content that is not UTF-8 text. Reason and the wrapped error are for
// logs only; users get a generic parse message without the detail.
type MalformedInputError struct {
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is a parse-time failure.
func IsMalformed(err error) bool {
	var m *MalformedInputError
	return errors.As(err, &m)
}
