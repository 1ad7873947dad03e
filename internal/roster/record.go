package roster

// CandidateRecord is one parsed contact ready for operator review.
// Field names match the backend import payload. Name and PhoneNumber
// are always non-empty on records produced by Parse; the remaining
// fields are optional and omitted from JSON when blank.
type CandidateRecord struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
	Company     string `json:"company,omitempty"`
	Department  string `json:"department,omitempty"`
	Role        string `json:"role,omitempty"`
}

// viable reports whether the record satisfies the minimum contact
// invariant. Rows failing it are dropped during assembly, never kept
// as partial records.
func (r CandidateRecord) viable() bool {
	return r.Name != "" && r.PhoneNumber != ""
}

// ImportBatch is the complete ordered set of candidate records parsed
// from one uploaded file, plus the metadata the UI shows alongside it.
type ImportBatch struct {
	SourceFileName  string            `json:"sourceFileName"`
	DetectedDialect Dialect           `json:"detectedDialect"`
	Records         []CandidateRecord `json:"records"`
}

// Len returns the number of records in the batch.
func (b *ImportBatch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Records)
}

// ImportResult is the backend's per-batch outcome for a submission.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}
