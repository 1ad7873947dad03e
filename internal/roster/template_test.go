package roster

import (
	"strings"
	"testing"
)

// ============================================================================
// Template Tests
// ============================================================================

// TestTemplate_RoundTripsThroughParse feeds the downloadable sample
// back into the pipeline: every row must survive, including the name
// carrying an embedded comma.
func TestTemplate_RoundTripsThroughParse(t *testing.T) {
	batch, err := Parse(TemplateFileName, Template())
	if err != nil {
		t.Fatalf("Parse(template) error = %v", err)
	}

	if len(batch.Records) != len(templateRows)-1 {
		t.Fatalf("record count = %d, want %d", len(batch.Records), len(templateRows)-1)
	}
	if got := batch.Records[1].Name; got != "Smith, John" {
		t.Errorf("quoted name = %q, want %q", got, "Smith, John")
	}
	for i, rec := range batch.Records {
		if rec.Email == "" || rec.Company == "" || rec.Department == "" || rec.Role == "" {
			t.Errorf("record %d has empty optional fields: %+v", i, rec)
		}
	}
}

func TestTemplate_DocumentsRecognizedHeaders(t *testing.T) {
	header := strings.Split(strings.SplitN(string(Template()), "\n", 2)[0], ",")
	for _, cell := range header {
		if _, ok := headerAliases[CleanHeader(cell)]; !ok {
			t.Errorf("template header %q is not a recognized alias", cell)
		}
	}
}
