package choice

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	fhirmodel "github.com/gofhir/model"
)

var onset = NewGroup("onset", TypeDateTime, "Age", "Period", "Range", TypeString)

func keys(present ...string) func(string) bool {
	set := make(map[string]bool, len(present))
	for _, k := range present {
		set[k] = true
	}
	return func(k string) bool { return set[k] }
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		typ  string
		want string
	}{
		{TypeDateTime, "DateTime"},
		{TypeBoolean, "Boolean"},
		{TypeBase64Binary, "Base64Binary"},
		{TypeUUID, "Uuid"},
		{TypeOID, "Oid"},
		{TypeURI, "Uri"},
		{TypeID, "Id"},
		{"CodeableConcept", "CodeableConcept"},
		{"Age", "Age"},
	}

	for _, tt := range tests {
		if got := Suffix(tt.typ); got != tt.want {
			t.Errorf("Suffix(%q) = %q; want %q", tt.typ, got, tt.want)
		}
	}
}

func TestGroup_Key(t *testing.T) {
	if got := onset.Key(TypeDateTime); got != "onsetDateTime" {
		t.Errorf("Key() = %q; want onsetDateTime", got)
	}
	if got := onset.Path(); got != "onset[x]" {
		t.Errorf("Path() = %q; want onset[x]", got)
	}
	if !onset.Allows("Age") || onset.Allows("Quantity") {
		t.Error("Allows() mismatch")
	}
}

func TestGroup_Match(t *testing.T) {
	tests := []struct {
		key     string
		typ     string
		sidecar bool
		ok      bool
	}{
		{"onsetAge", "Age", false, true},
		{"_onsetDateTime", TypeDateTime, true, true},
		{"onsetString", TypeString, false, true},
		{"onsetBoolean", "", false, false},
		{"abatementAge", "", false, false},
	}

	for _, tt := range tests {
		typ, sidecar, ok := onset.Match(tt.key)
		if typ != tt.typ || sidecar != tt.sidecar || ok != tt.ok {
			t.Errorf("Match(%q) = %q, %v, %v; want %q, %v, %v", tt.key, typ, sidecar, ok, tt.typ, tt.sidecar, tt.ok)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		present  []string
		wantType string
		wantKeys []string
		conflict bool
	}{
		{name: "absent", present: nil},
		{name: "single value", present: []string{"onsetPeriod"}, wantType: "Period", wantKeys: []string{"onsetPeriod"}},
		{name: "sidecar only", present: []string{"_onsetDateTime"}, wantType: TypeDateTime, wantKeys: []string{"_onsetDateTime"}},
		{
			name:     "value with its sidecar",
			present:  []string{"onsetDateTime", "_onsetDateTime"},
			wantType: TypeDateTime,
			wantKeys: []string{"onsetDateTime", "_onsetDateTime"},
		},
		{
			name:     "two alternatives",
			present:  []string{"onsetPeriod", "onsetAge"},
			wantKeys: []string{"onsetAge", "onsetPeriod"},
			conflict: true,
		},
		{
			name:     "value and foreign sidecar",
			present:  []string{"onsetString", "_onsetDateTime"},
			wantKeys: []string{"_onsetDateTime", "onsetString"},
			conflict: true,
		},
		{name: "unrelated keys ignored", present: []string{"onsetBoolean", "recordedDate"}},
		{name: "underscore key of a complex type alone", present: []string{"_onsetPeriod"}},
		{
			name:     "underscore key of a complex type next to a value",
			present:  []string{"onsetAge", "_onsetPeriod"},
			wantType: "Age",
			wantKeys: []string{"onsetAge"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, got, err := Resolve(onset, keys(tt.present...))
			if tt.conflict {
				var ce *fhirmodel.ChoiceConflictError
				if !errors.As(err, &ce) {
					t.Fatalf("Resolve() error = %v; want ChoiceConflictError", err)
				}
				if ce.Group != "onset" {
					t.Errorf("Group = %q; want onset", ce.Group)
				}
				if diff := cmp.Diff(tt.wantKeys, ce.Keys); diff != "" {
					t.Errorf("Keys mismatch (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if typ != tt.wantType {
				t.Errorf("Resolve() type = %q; want %q", typ, tt.wantType)
			}
			if diff := cmp.Diff(tt.wantKeys, got); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	g := Register("Test.deceased", TypeBoolean, TypeDateTime)
	if g.Name != "deceased" {
		t.Errorf("Name = %q; want deceased", g.Name)
	}

	got, ok := Lookup("Test.deceased")
	if !ok || !cmp.Equal(got, g) {
		t.Errorf("Lookup() = %v, %v", got, ok)
	}
	if _, ok := Lookup("Test.missing"); ok {
		t.Error("Lookup() of unregistered group should fail")
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("Test.deceased", TypeBoolean)
}

func TestIsPrimitive(t *testing.T) {
	for _, typ := range PrimitiveTypes {
		if !IsPrimitive(typ) {
			t.Errorf("IsPrimitive(%q) = false", typ)
		}
	}
	if IsPrimitive("Period") {
		t.Error("IsPrimitive(Period) = true")
	}
}
