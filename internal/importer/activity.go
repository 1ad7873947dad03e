package importer

import (
	"encoding/csv"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/auditdesk/auditdesk/internal/roster"
)

// EventKind identifies what happened to a batch.
type EventKind string

const (
	EventStaged    EventKind = "staged"
	EventSubmitted EventKind = "submitted"
	EventFailed    EventKind = "failed"
	EventDiscarded EventKind = "discarded"
)

// EventSeverity classifies events for display filtering.
type EventSeverity string

const (
	SeverityInfo    EventSeverity = "info"
	SeverityNotice  EventSeverity = "notice"
	SeverityWarning EventSeverity = "warning"
)

// severityFor derives the severity from the event kind and outcome. A
// submission that skipped records is worth noticing even when it
// partially succeeded.
func severityFor(kind EventKind, skipped int) EventSeverity {
	switch {
	case kind == EventFailed:
		return SeverityWarning
	case kind == EventSubmitted && skipped > 0:
		return SeverityNotice
	default:
		return SeverityInfo
	}
}

// Event is a single entry in the import activity log.
type Event struct {
	ID       uuid.UUID      `json:"id"`
	Kind     EventKind      `json:"kind"`
	Severity EventSeverity  `json:"severity"`
	FileName string         `json:"file_name"`
	Dialect  roster.Dialect `json:"dialect"`
	Records  int            `json:"records"`
	Imported int            `json:"imported"`
	Skipped  int            `json:"skipped"`
	Detail   string         `json:"detail,omitempty"`
	At       time.Time      `json:"at"`
}

// DefaultActivityCapacity bounds the log when no explicit capacity is
// configured.
const DefaultActivityCapacity = 200

// ActivityLog is a bounded in-memory record of import events. Once
// capacity is reached the oldest entries are evicted. Entries survive
// only for the lifetime of the process.
type ActivityLog struct {
	mu       sync.RWMutex
	capacity int
	events   []Event
}

// NewActivityLog creates a log holding up to capacity entries. A
// non-positive capacity falls back to DefaultActivityCapacity.
func NewActivityLog(capacity int) *ActivityLog {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &ActivityLog{capacity: capacity}
}

// Record appends an event, evicting the oldest once capacity is hit.
func (l *ActivityLog) Record(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
	if len(l.events) > l.capacity {
		l.events = l.events[len(l.events)-l.capacity:]
	}
}

// Recent returns up to limit events, newest first. A non-positive
// limit returns everything retained.
func (l *ActivityLog) Recent(limit int) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := len(l.events)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Event, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, l.events[i])
	}
	return out
}

// Len reports how many events are currently retained.
func (l *ActivityLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// WriteCSV writes every retained event to w as CSV, newest first. The
// caller owns the response headers; this only produces the body.
func (l *ActivityLog) WriteCSV(w io.Writer) error {
	events := l.Recent(0)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Timestamp", "Kind", "Severity", "File", "Dialect",
		"Records", "Imported", "Skipped", "Detail",
	}); err != nil {
		return err
	}

	for _, e := range events {
		if err := cw.Write([]string{
			e.At.Format("2006-01-02 15:04:05"),
			string(e.Kind),
			string(e.Severity),
			e.FileName,
			e.Dialect.String(),
			strconv.Itoa(e.Records),
			strconv.Itoa(e.Imported),
			strconv.Itoa(e.Skipped),
			e.Detail,
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
