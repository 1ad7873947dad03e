package roster

import (
	"strconv"
	"strings"
)

// canonicalField enumerates the contact attributes the pipeline
// understands. Name and phone number are mandatory on every record,
// the rest are optional.
type canonicalField int

const (
	fieldName canonicalField = iota
	fieldPhoneNumber
	fieldEmail
	fieldCompany
	fieldDepartment
	fieldRole
)

// headerAliases maps cleaned delimited-header spellings to canonical
// fields. Lookups happen after CleanHeader, so entries are lower-case.
// Headers absent from this table are ignored entirely, which keeps the
// import permissive: extra columns in a file are never an error.
var headerAliases = map[string]canonicalField{
	"name":          fieldName,
	"full name":     fieldName,
	"full_name":     fieldName,
	"fullname":      fieldName,
	"employee name": fieldName,
	"employee_name": fieldName,

	"phone":        fieldPhoneNumber,
	"phone number": fieldPhoneNumber,
	"phone_number": fieldPhoneNumber,
	"mobile":       fieldPhoneNumber,
	"telephone":    fieldPhoneNumber,

	"email":         fieldEmail,
	"email address": fieldEmail,
	"email_address": fieldEmail,

	"company":      fieldCompany,
	"company name": fieldCompany,
	"company_name": fieldCompany,
	"organization": fieldCompany,

	"department": fieldDepartment,
	"dept":       fieldDepartment,

	"role":      fieldRole,
	"job title": fieldRole,
	"job_title": fieldRole,
	"title":     fieldRole,
	"position":  fieldRole,
}

// jsonKeyAliases lists, per canonical field, the object key spellings
// probed on each JSON item in priority order. The first key holding a
// non-empty value wins.
var jsonKeyAliases = map[canonicalField][]string{
	fieldName:        {"name", "fullName", "full_name", "employeeName", "employee_name"},
	fieldPhoneNumber: {"phone_number", "phone", "phoneNumber", "mobile", "telephone"},
	fieldEmail:       {"email", "emailAddress", "email_address"},
	fieldCompany:     {"company", "companyName", "company_name", "organization"},
	fieldDepartment:  {"department", "dept"},
	fieldRole:        {"role", "jobTitle", "job_title", "title", "position"},
}

// HeaderMap records which column of a delimited file feeds each
// canonical field. An index of -1 means the file carries no column for
// that field.
type HeaderMap struct {
	Name        int
	PhoneNumber int
	Email       int
	Company     int
	Department  int
	Role        int
}

// NewHeaderMap returns a HeaderMap with every field unmapped.
func NewHeaderMap() HeaderMap {
	return HeaderMap{
		Name:        -1,
		PhoneNumber: -1,
		Email:       -1,
		Company:     -1,
		Department:  -1,
		Role:        -1,
	}
}

// Recognized reports whether at least one column matched an alias.
func (m HeaderMap) Recognized() bool {
	return m.Name >= 0 || m.PhoneNumber >= 0 || m.Email >= 0 ||
		m.Company >= 0 || m.Department >= 0 || m.Role >= 0
}

func (m *HeaderMap) set(f canonicalField, index int) {
	switch f {
	case fieldName:
		m.Name = index
	case fieldPhoneNumber:
		m.PhoneNumber = index
	case fieldEmail:
		m.Email = index
	case fieldCompany:
		m.Company = index
	case fieldDepartment:
		m.Department = index
	case fieldRole:
		m.Role = index
	}
}

// BuildHeaderMap matches a tokenized header row against the alias
// table. Unrecognized headers are skipped. When the same canonical
// field is claimed by two columns the later column wins.
func BuildHeaderMap(headerRow []string) HeaderMap {
	hm := NewHeaderMap()
	for i, cell := range headerRow {
		field, ok := headerAliases[CleanHeader(cell)]
		if !ok {
			continue
		}
		hm.set(field, i)
	}
	return hm
}

// CleanHeader normalizes a header cell for alias lookup: surrounding
// whitespace and quote characters are stripped and the result is
// lower-cased.
func CleanHeader(cell string) string {
	s := strings.TrimSpace(cell)
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)
	return strings.ToLower(s)
}

// probeKeys returns the first non-empty value among the aliased keys
// of a JSON object, or "" when none hold one.
func probeKeys(obj map[string]any, keys []string) string {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			if s := stringValue(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// stringValue renders a JSON scalar as a trimmed string. Numbers are
// accepted because phone columns regularly arrive as JSON numbers;
// every other non-string shape reads as empty.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
