package roster

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// utf8BOM is the byte order mark Excel prepends to UTF-8 exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse turns raw file content into an ImportBatch. The dialect comes
// from the file name alone, so an unsupported extension fails before
// the content is examined. Readable files that yield no records fail
// with ErrNoValidRecords; unreadable ones with MalformedInputError.
func Parse(fileName string, content []byte) (*ImportBatch, error) {
	dialect := DetectDialect(fileName)
	if dialect == DialectUnsupported {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileName)
	}

	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, &MalformedInputError{Reason: "content is not valid UTF-8 text"}
	}

	var records []CandidateRecord
	switch dialect {
	case DialectJSON:
		var err error
		records, err = assembleJSON(content)
		if err != nil {
			return nil, err
		}
	default:
		records = assembleDelimited(string(content), dialect)
	}

	if len(records) == 0 {
		return nil, ErrNoValidRecords
	}

	return &ImportBatch{
		SourceFileName:  fileName,
		DetectedDialect: dialect,
		Records:         records,
	}, nil
}

// assembleDelimited walks a delimited file: first row builds the
// HeaderMap, every following row becomes a record when it passes the
// name/phone invariant. Tab-separated content is rewritten to commas
// before tokenizing.
func assembleDelimited(content string, dialect Dialect) []CandidateRecord {
	if dialect == DialectTSV {
		content = strings.ReplaceAll(content, "\t", ",")
	}

	rows := lines(content)
	if len(rows) == 0 {
		return nil
	}

	header := BuildHeaderMap(SplitLine(rows[0]))
	if !header.Recognized() {
		return nil
	}

	var records []CandidateRecord
	for _, row := range rows[1:] {
		cells := SplitLine(row)
		rec := CandidateRecord{
			Name:        cellAt(cells, header.Name),
			PhoneNumber: cellAt(cells, header.PhoneNumber),
			Email:       cellAt(cells, header.Email),
			Company:     cellAt(cells, header.Company),
			Department:  cellAt(cells, header.Department),
			Role:        cellAt(cells, header.Role),
		}
		if rec.viable() {
			records = append(records, rec)
		}
	}
	return records
}

// cellAt reads a cell by mapped index, tolerating short rows and
// unmapped fields.
func cellAt(cells []string, index int) string {
	if index < 0 || index >= len(cells) {
		return ""
	}
	return cells[index]
}

// assembleJSON decodes a JSON document and probes each contact object
// through the key alias lists. Items that are not objects, or that
// fail the name/phone invariant, are dropped without error.
func assembleJSON(content []byte) ([]CandidateRecord, error) {
	var top any
	if err := json.Unmarshal(content, &top); err != nil {
		return nil, &MalformedInputError{Reason: "invalid JSON syntax", Err: err}
	}

	var records []CandidateRecord
	for _, item := range jsonItems(top) {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rec := CandidateRecord{
			Name:        probeKeys(obj, jsonKeyAliases[fieldName]),
			PhoneNumber: probeKeys(obj, jsonKeyAliases[fieldPhoneNumber]),
			Email:       probeKeys(obj, jsonKeyAliases[fieldEmail]),
			Company:     probeKeys(obj, jsonKeyAliases[fieldCompany]),
			Department:  probeKeys(obj, jsonKeyAliases[fieldDepartment]),
			Role:        probeKeys(obj, jsonKeyAliases[fieldRole]),
		}
		if rec.viable() {
			records = append(records, rec)
		}
	}
	return records, nil
}

// jsonItems extracts the contact array from a decoded document: a bare
// top-level array, or an object wrapping one under "employees" or
// "data". Any other shape reads as empty, which Parse reports as
// ErrNoValidRecords rather than a parse failure.
func jsonItems(top any) []any {
	switch t := top.(type) {
	case []any:
		return t
	case map[string]any:
		if items, ok := t["employees"].([]any); ok {
			return items
		}
		if items, ok := t["data"].([]any); ok {
			return items
		}
	}
	return nil
}
