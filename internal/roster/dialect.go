package roster

import (
	"path/filepath"
	"strings"
)

// Dialect identifies the parsing strategy for an uploaded file.
type Dialect string

const (
	// DialectCSV is comma-separated text.
	DialectCSV Dialect = "csv"

	// DialectTSV is tab-separated text, including .txt exports.
	DialectTSV Dialect = "tsv"

	// DialectJSON is a JSON document carrying an array of contacts.
	DialectJSON Dialect = "json"

	// DialectUnsupported marks a file the pipeline will not read.
	DialectUnsupported Dialect = "unsupported"
)

// DetectDialect classifies a file by its extension alone. Content is
// never inspected, so an unsupported extension fails before any bytes
// are read.
func DetectDialect(fileName string) Dialect {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return DialectCSV
	case ".tsv", ".txt":
		return DialectTSV
	case ".json":
		return DialectJSON
	default:
		return DialectUnsupported
	}
}

// Delimited reports whether the dialect is line-and-delimiter based.
func (d Dialect) Delimited() bool {
	return d == DialectCSV || d == DialectTSV
}

// String returns the dialect name as shown in the UI and logs.
func (d Dialect) String() string {
	return string(d)
}
