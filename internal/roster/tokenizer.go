package roster

import "strings"

// SplitLine splits one line of comma-delimited text into trimmed
// fields. A double quote toggles the scanner between its unquoted and
// quoted states; a comma ends the current field only while unquoted.
// Quote characters themselves never reach the output.
//
// Escaped quotes inside a quoted field are not supported, and an
// unbalanced quote leaves the remainder of the line in the quoted
// state. Both behaviors are deliberate, see the package documentation.
func SplitLine(line string) []string {
	var fields []string
	var buf strings.Builder
	quoted := false

	for _, ch := range line {
		switch {
		case ch == '"':
			quoted = !quoted
		case ch == ',' && !quoted:
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(ch)
		}
	}

	return append(fields, strings.TrimSpace(buf.String()))
}

// lines splits file content into its non-blank lines. Windows line
// endings are tolerated and blank lines are skipped, so trailing
// newlines never become phantom rows.
func lines(content string) []string {
	raw := strings.Split(content, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
