package roster

import "testing"

// ============================================================================
// DetectDialect Tests
// ============================================================================

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     Dialect
	}{
		// Recognized extensions
		{
			name:     "csv extension",
			fileName: "contacts.csv",
			want:     DialectCSV,
		},
		{
			name:     "tsv extension",
			fileName: "contacts.tsv",
			want:     DialectTSV,
		},
		{
			name:     "txt treated as tab separated",
			fileName: "contacts.txt",
			want:     DialectTSV,
		},
		{
			name:     "json extension",
			fileName: "contacts.json",
			want:     DialectJSON,
		},

		// Case insensitivity
		{
			name:     "uppercase extension",
			fileName: "CONTACTS.CSV",
			want:     DialectCSV,
		},
		{
			name:     "mixed case extension",
			fileName: "export.Json",
			want:     DialectJSON,
		},

		// Extension position
		{
			name:     "multiple dots uses last extension",
			fileName: "backup.2024.csv",
			want:     DialectCSV,
		},
		{
			name:     "path components ignored",
			fileName: "exports/q3/roster.tsv",
			want:     DialectTSV,
		},

		// Unsupported
		{
			name:     "xlsx rejected",
			fileName: "contacts.xlsx",
			want:     DialectUnsupported,
		},
		{
			name:     "pdf rejected",
			fileName: "contacts.pdf",
			want:     DialectUnsupported,
		},
		{
			name:     "no extension rejected",
			fileName: "contacts",
			want:     DialectUnsupported,
		},
		{
			name:     "empty name rejected",
			fileName: "",
			want:     DialectUnsupported,
		},
		{
			name:     "bare dot rejected",
			fileName: "contacts.",
			want:     DialectUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectDialect(tt.fileName)
			if got != tt.want {
				t.Errorf("DetectDialect(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestDialectDelimited(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    bool
	}{
		{DialectCSV, true},
		{DialectTSV, true},
		{DialectJSON, false},
		{DialectUnsupported, false},
	}

	for _, tt := range tests {
		if got := tt.dialect.Delimited(); got != tt.want {
			t.Errorf("Dialect(%q).Delimited() = %v, want %v", tt.dialect, got, tt.want)
		}
	}
}
