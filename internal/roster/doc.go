// Package roster implements the contact import pipeline: parsing
// operator-supplied roster files into canonical candidate records ready
// for preview and submission.
//
// # Supported Formats
//
// Input files are classified by extension before any content is read:
//
//	.csv         comma-separated values
//	.tsv, .txt   tab-separated values
//	.json        a JSON array of contact objects, bare or wrapped
//
// Any other extension is rejected up front with ErrUnsupportedFormat.
// Tab-separated input is rewritten to comma-separated form before
// tokenizing, so a literal comma inside an unquoted tab-delimited field
// is not protected. Tab-separated exports do not use comma quoting in
// practice, so this trade-off stays.
//
// # Tokenizing
//
// Delimited lines are split by a two-state scanner rather than a plain
// strings.Split. A double quote toggles the scanner between its
// unquoted and quoted states, and a comma only ends a field while
// unquoted:
//
//	SplitLine(`"Smith, John",+15550001`)
//	// -> ["Smith, John", "+15550001"]
//
// Quote characters are consumed by the scanner and never appear in
// field values. There is no support for escaped quotes inside a quoted
// field; an unbalanced quote leaves the rest of the line in the quoted
// state. Both are accepted limitations of the format this pipeline
// targets (hand-maintained contact lists, not RFC 4180 archives).
//
// # Header Normalization
//
// The first row of a delimited file is matched against a static alias
// table: each cell is lower-cased, stripped of surrounding quotes, and
// looked up to find which canonical field its column feeds. Headers
// with no alias match are ignored, their columns are simply never
// read. The same aliasing applies to JSON input per object, probing an
// ordered list of key spellings for each canonical field.
//
// # Assembly
//
// Each data row becomes a CandidateRecord when it carries a non-empty
// name and phone number after trimming; rows missing either are
// dropped without an individual error. A file that yields zero records
// fails with ErrNoValidRecords, while a file that cannot be read at
// all (invalid JSON syntax, non-UTF-8 bytes) fails with
// MalformedInputError. Callers present the two differently: the first
// means "your columns or rows are wrong", the second "this is not a
// file I can read".
//
// Record order always matches input order. Preview display truncates
// to the first few records, but the batch held for submission is the
// complete parse.
package roster
