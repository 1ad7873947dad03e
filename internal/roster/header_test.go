package roster

import (
	"strings"
	"testing"
)

// ============================================================================
// CleanHeader Tests
// ============================================================================

func TestCleanHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercased",
			input: "NAME",
			want:  "name",
		},
		{
			name:  "surrounding whitespace stripped",
			input: "  Phone Number  ",
			want:  "phone number",
		},
		{
			name:  "double quotes stripped",
			input: `"Email"`,
			want:  "email",
		},
		{
			name:  "single quotes stripped",
			input: "'Company'",
			want:  "company",
		},
		{
			name:  "quotes inside whitespace stripped",
			input: ` "Role" `,
			want:  "role",
		},
		{
			name:  "whitespace inside quotes stripped",
			input: `" Dept "`,
			want:  "dept",
		},
		{
			name:  "interior spacing preserved",
			input: "Job Title",
			want:  "job title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanHeader(tt.input)
			if got != tt.want {
				t.Errorf("CleanHeader(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ============================================================================
// BuildHeaderMap Tests
// ============================================================================

func TestBuildHeaderMap(t *testing.T) {
	hm := BuildHeaderMap([]string{"Name", "Phone", "Email", "Company", "Department", "Role"})

	if hm.Name != 0 {
		t.Errorf("Name index = %d, want 0", hm.Name)
	}
	if hm.PhoneNumber != 1 {
		t.Errorf("PhoneNumber index = %d, want 1", hm.PhoneNumber)
	}
	if hm.Email != 2 {
		t.Errorf("Email index = %d, want 2", hm.Email)
	}
	if hm.Company != 3 {
		t.Errorf("Company index = %d, want 3", hm.Company)
	}
	if hm.Department != 4 {
		t.Errorf("Department index = %d, want 4", hm.Department)
	}
	if hm.Role != 5 {
		t.Errorf("Role index = %d, want 5", hm.Role)
	}
}

func TestBuildHeaderMap_UnrecognizedDroppedSilently(t *testing.T) {
	hm := BuildHeaderMap([]string{"Name", "Shoe Size", "Phone", "Favorite Color"})

	if hm.Name != 0 {
		t.Errorf("Name index = %d, want 0", hm.Name)
	}
	if hm.PhoneNumber != 2 {
		t.Errorf("PhoneNumber index = %d, want 2", hm.PhoneNumber)
	}
	if hm.Email != -1 || hm.Company != -1 || hm.Department != -1 || hm.Role != -1 {
		t.Errorf("unmapped fields should stay -1, got %+v", hm)
	}
}

func TestBuildHeaderMap_ColumnOrderIrrelevant(t *testing.T) {
	hm := BuildHeaderMap([]string{"Role", "Email", "Name", "Phone"})

	if hm.Role != 0 {
		t.Errorf("Role index = %d, want 0", hm.Role)
	}
	if hm.Email != 1 {
		t.Errorf("Email index = %d, want 1", hm.Email)
	}
	if hm.Name != 2 {
		t.Errorf("Name index = %d, want 2", hm.Name)
	}
	if hm.PhoneNumber != 3 {
		t.Errorf("PhoneNumber index = %d, want 3", hm.PhoneNumber)
	}
}

func TestBuildHeaderMap_DuplicateHeaderLastWins(t *testing.T) {
	hm := BuildHeaderMap([]string{"Name", "Full Name", "Phone"})

	if hm.Name != 1 {
		t.Errorf("Name index = %d, want 1 (later column wins)", hm.Name)
	}
}

func TestBuildHeaderMap_NoRecognizedHeaders(t *testing.T) {
	hm := BuildHeaderMap([]string{"Alpha", "Beta", "Gamma"})

	if hm.Recognized() {
		t.Errorf("Recognized() = true for all-unknown headers, map %+v", hm)
	}
}

// TestBuildHeaderMap_AliasComplete walks the whole alias table and
// verifies every spelling maps to its canonical field, in original and
// upper case.
func TestBuildHeaderMap_AliasComplete(t *testing.T) {
	for alias, field := range headerAliases {
		for _, spelling := range []string{alias, strings.ToUpper(alias)} {
			hm := BuildHeaderMap([]string{spelling})
			if got := fieldIndex(hm, field); got != 0 {
				t.Errorf("alias %q did not map to field %d, header map %+v", spelling, field, hm)
			}
		}
	}
}

// fieldIndex reads the HeaderMap slot for a canonical field.
func fieldIndex(hm HeaderMap, f canonicalField) int {
	switch f {
	case fieldName:
		return hm.Name
	case fieldPhoneNumber:
		return hm.PhoneNumber
	case fieldEmail:
		return hm.Email
	case fieldCompany:
		return hm.Company
	case fieldDepartment:
		return hm.Department
	case fieldRole:
		return hm.Role
	}
	return -2
}

// ============================================================================
// JSON Key Probing Tests
// ============================================================================

func TestProbeKeys(t *testing.T) {
	tests := []struct {
		name string
		obj  map[string]any
		keys []string
		want string
	}{
		{
			name: "first key wins",
			obj:  map[string]any{"name": "A", "fullName": "B"},
			keys: []string{"name", "fullName"},
			want: "A",
		},
		{
			name: "empty value falls through to next key",
			obj:  map[string]any{"name": "", "fullName": "B"},
			keys: []string{"name", "fullName"},
			want: "B",
		},
		{
			name: "missing keys read as empty",
			obj:  map[string]any{"other": "x"},
			keys: []string{"name", "fullName"},
			want: "",
		},
		{
			name: "values trimmed",
			obj:  map[string]any{"name": "  A  "},
			keys: []string{"name"},
			want: "A",
		},
		{
			name: "numeric value rendered as digits",
			obj:  map[string]any{"phone": float64(14155550100)},
			keys: []string{"phone"},
			want: "14155550100",
		},
		{
			name: "non scalar value reads as empty",
			obj:  map[string]any{"name": map[string]any{"first": "A"}},
			keys: []string{"name"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := probeKeys(tt.obj, tt.keys)
			if got != tt.want {
				t.Errorf("probeKeys(%v, %v) = %q, want %q", tt.obj, tt.keys, got, tt.want)
			}
		})
	}
}

// TestJSONKeyAliases_CoverAllFields guards against a canonical field
// losing its probe list.
func TestJSONKeyAliases_CoverAllFields(t *testing.T) {
	fields := []canonicalField{
		fieldName, fieldPhoneNumber, fieldEmail,
		fieldCompany, fieldDepartment, fieldRole,
	}
	for _, f := range fields {
		keys, ok := jsonKeyAliases[f]
		if !ok || len(keys) == 0 {
			t.Errorf("field %d has no JSON key aliases", f)
		}
	}
}
