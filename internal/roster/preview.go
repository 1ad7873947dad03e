package roster

// PreviewLimit caps how many records the preview table shows. The
// batch held for submission is never truncated; the cap is display
// only.
const PreviewLimit = 10

// Preview is the operator-facing slice of a staged batch.
type Preview struct {
	Records   []CandidateRecord `json:"records"`
	Remainder int               `json:"remainder"`
	Total     int               `json:"total"`
}

// Preview returns the first PreviewLimit records plus the count of
// those not shown.
func (b *ImportBatch) Preview() Preview {
	if b == nil {
		return Preview{}
	}
	total := b.Len()
	shown := total
	if shown > PreviewLimit {
		shown = PreviewLimit
	}
	return Preview{
		Records:   b.Records[:shown],
		Remainder: total - shown,
		Total:     total,
	}
}
