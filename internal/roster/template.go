package roster

import (
	"bytes"
	"encoding/csv"
)

// templateRows is the downloadable sample file documenting the header
// names the import recognizes. The second data row carries an embedded
// comma on purpose, showing operators that quoted names survive.
var templateRows = [][]string{
	{"Name", "Phone Number", "Email", "Company", "Department", "Role"},
	{"Jane Cooper", "+14155550134", "jane.cooper@example.com", "Acme Corp", "Operations", "Analyst"},
	{"Smith, John", "+14155550199", "john.smith@example.com", "Acme Corp", "Finance", "Controller"},
}

// Template renders the sample CSV served by the template download
// endpoint.
func Template() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.WriteAll(templateRows)
	return buf.Bytes()
}

// TemplateFileName is the suggested download name for the sample file.
const TemplateFileName = "roster_import_template.csv"
