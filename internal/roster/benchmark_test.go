package roster

import (
	"bytes"
	"fmt"
	"testing"
)

// ============================================================================
// Tokenizer Benchmarks
// ============================================================================

// BenchmarkSplitLine benchmarks line tokenizing.
// Called once per row during import, so this is the hot path.
func BenchmarkSplitLine(b *testing.B) {
	testCases := []string{
		"John Doe,+14255551234,john@example.com",
		`"Smith, John",+15550001,smith@example.com`,
		"a,b,c,d,e,f",
		"  spaced , fields , here ",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			SplitLine(tc)
		}
	}
}

// BenchmarkSplitLine_Plain benchmarks the common case: no quoting.
func BenchmarkSplitLine_Plain(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SplitLine("John Doe,+14255551234,john@example.com,Acme,Sales,Rep")
	}
}

// BenchmarkSplitLine_Quoted benchmarks rows with quoted fields.
func BenchmarkSplitLine_Quoted(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SplitLine(`"Smith, John",+15550001,"Acme, Inc",Sales`)
	}
}

// ============================================================================
// Header Benchmarks
// ============================================================================

// BenchmarkBuildHeaderMap benchmarks header mapping.
// Called once per file upload.
func BenchmarkBuildHeaderMap(b *testing.B) {
	header := []string{"Full Name", "Phone Number", "Email Address", "Company Name", "Dept", "Job Title"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildHeaderMap(header)
	}
}

// BenchmarkProbeKeys benchmarks JSON key probing.
// Called once per canonical field per JSON item.
func BenchmarkProbeKeys(b *testing.B) {
	obj := map[string]any{
		"fullName": "John Doe",
		"phone":    "+15550001",
		"email":    "john@example.com",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		probeKeys(obj, jsonKeyAliases[fieldName])
	}
}

// ============================================================================
// Parse Benchmarks
// ============================================================================

// BenchmarkParse_CSV benchmarks the full delimited pipeline.
func BenchmarkParse_CSV(b *testing.B) {
	data := generateRosterCSV(100)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Parse("list.csv", data)
	}
}

// BenchmarkParse_CSV_Large benchmarks a larger contact list.
func BenchmarkParse_CSV_Large(b *testing.B) {
	data := generateRosterCSV(1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Parse("list.csv", data)
	}
}

// BenchmarkParse_JSON benchmarks the JSON pipeline.
func BenchmarkParse_JSON(b *testing.B) {
	data := generateRosterJSON(100)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Parse("list.json", data)
	}
}

// ============================================================================
// Parallel Benchmarks
// ============================================================================

// BenchmarkSplitLineParallel benchmarks parallel tokenizing.
func BenchmarkSplitLineParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			SplitLine(`"Smith, John",+15550001,smith@example.com`)
		}
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

// generateRosterCSV generates contact CSV data with the specified
// number of rows.
func generateRosterCSV(rows int) []byte {
	var buf bytes.Buffer
	buf.WriteString("Name,Phone,Email,Company,Department,Role\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&buf, "Person %d,+1206555%04d,p%d@example.com,Acme,Sales,Rep\n", i, i, i)
	}
	return buf.Bytes()
}

// generateRosterJSON generates a JSON contact array with the specified
// number of items.
func generateRosterJSON(items int) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"employees":[`)
	for i := 0; i < items; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"fullName":"Person %d","phone":"+1206555%04d"}`, i, i)
	}
	buf.WriteString("]}")
	return buf.Bytes()
}
