package codes

import (
	"testing"
)

type enumValue interface {
	Enum
	String() string
}

// roundTrip checks Parse(String(v)) == v for every known code and that
// near misses do not parse.
func roundTrip[E enumValue](t *testing.T, set *Set[E], parse func(string) (E, bool)) {
	t.Helper()
	if len(set.Codes()) == 0 {
		t.Fatalf("%s: empty set", set.Name())
	}
	for _, c := range set.Codes() {
		got, ok := parse(c.String())
		if !ok || got != c {
			t.Errorf("%s: Parse(%q) = %q, %v; want %q, true", set.Name(), c.String(), got, ok, c)
		}
		if !c.Known() {
			t.Errorf("%s: %q.Known() = false", set.Name(), c)
		}
		if c.System() != set.System() {
			t.Errorf("%s: System() = %q; want %q", set.Name(), c.System(), set.System())
		}
		for _, miss := range []string{" " + string(c), string(c) + " ", string(c) + "x"} {
			if got, ok := parse(miss); ok {
				t.Errorf("%s: Parse(%q) = %q, true; want no match", set.Name(), miss, got)
			}
		}
	}
	if _, ok := parse(""); ok {
		t.Errorf("%s: Parse(\"\") should fail", set.Name())
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("NarrativeStatus", func(t *testing.T) { roundTrip(t, NarrativeStatusSet, ParseNarrativeStatus) })
	t.Run("QuantityComparator", func(t *testing.T) { roundTrip(t, QuantityComparators, ParseQuantityComparator) })
	t.Run("IdentifierUse", func(t *testing.T) { roundTrip(t, IdentifierUses, ParseIdentifierUse) })
	t.Run("NameUse", func(t *testing.T) { roundTrip(t, NameUses, ParseNameUse) })
	t.Run("ContactPointSystem", func(t *testing.T) { roundTrip(t, ContactPointSystems, ParseContactPointSystem) })
	t.Run("ContactPointUse", func(t *testing.T) { roundTrip(t, ContactPointUses, ParseContactPointUse) })
	t.Run("AddressUse", func(t *testing.T) { roundTrip(t, AddressUses, ParseAddressUse) })
	t.Run("AddressType", func(t *testing.T) { roundTrip(t, AddressTypes, ParseAddressType) })
	t.Run("UnitsOfTime", func(t *testing.T) { roundTrip(t, UnitsOfTimeSet, ParseUnitsOfTime) })
	t.Run("DaysOfWeek", func(t *testing.T) { roundTrip(t, DaysOfWeekSet, ParseDaysOfWeek) })
	t.Run("EventTiming", func(t *testing.T) { roundTrip(t, EventTimings, ParseEventTiming) })
	t.Run("AdministrativeGender", func(t *testing.T) { roundTrip(t, AdministrativeGenders, ParseAdministrativeGender) })
	t.Run("LinkType", func(t *testing.T) { roundTrip(t, LinkTypes, ParseLinkType) })
	t.Run("ConditionClinicalStatus", func(t *testing.T) { roundTrip(t, ConditionClinicalStatusSet, ParseConditionClinicalStatus) })
	t.Run("ConditionVerificationStatus", func(t *testing.T) { roundTrip(t, ConditionVerificationStatusSet, ParseConditionVerificationStatus) })
	t.Run("ClaimUse", func(t *testing.T) { roundTrip(t, ClaimUses, ParseClaimUse) })
	t.Run("FinancialResourceStatus", func(t *testing.T) { roundTrip(t, FinancialResourceStatusSet, ParseFinancialResourceStatus) })
	t.Run("AdverseEventActuality", func(t *testing.T) { roundTrip(t, AdverseEventActualities, ParseAdverseEventActuality) })
	t.Run("BundleType", func(t *testing.T) { roundTrip(t, BundleTypes, ParseBundleType) })
	t.Run("HTTPVerb", func(t *testing.T) { roundTrip(t, HTTPVerbs, ParseHTTPVerb) })
	t.Run("SearchEntryMode", func(t *testing.T) { roundTrip(t, SearchEntryModes, ParseSearchEntryMode) })
}

func TestParse_NoNormalisation(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"preauthorization", true},
		{"Preauthorization", false},
		{"PREAUTHORIZATION", false},
		{" preauthorization", false},
		{"pre-authorization", false},
	}

	for _, tt := range tests {
		got, ok := ParseClaimUse(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseClaimUse(%q) ok = %v; want %v", tt.in, ok, tt.ok)
		}
		if ok && got != ClaimUsePreauthorization {
			t.Errorf("ParseClaimUse(%q) = %q", tt.in, got)
		}
		if !ok && got != "" {
			t.Errorf("ParseClaimUse(%q) = %q; want empty", tt.in, got)
		}
	}
}

func TestUnknownCodeKeepsRawValue(t *testing.T) {
	c := ClaimUse("estimate")
	if c.Known() {
		t.Error("estimate should not be a known ClaimUse")
	}
	if c.String() != "estimate" {
		t.Errorf("String() = %q; want estimate", c.String())
	}
}

func TestSymbolCodes(t *testing.T) {
	if c, ok := ParseQuantityComparator("<="); !ok || c != QuantityComparatorLessOrEqual {
		t.Errorf("ParseQuantityComparator(<=) = %q, %v", c, ok)
	}
	if c, ok := ParseEventTiming("MORN.early"); !ok || c != EventTimingMornEarly {
		t.Errorf("ParseEventTiming(MORN.early) = %q, %v", c, ok)
	}
}

func TestRegistry(t *testing.T) {
	all := All()
	if len(all) < 21 {
		t.Fatalf("All() returned %d sets; want at least 21", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name() >= all[i].Name() {
			t.Errorf("All() not sorted: %q before %q", all[i-1].Name(), all[i].Name())
		}
	}

	info, ok := Lookup("BundleType")
	if !ok {
		t.Fatal("Lookup(BundleType) failed")
	}
	if info.System() != "http://hl7.org/fhir/bundle-type" {
		t.Errorf("System() = %q", info.System())
	}
	if got := info.Strings(); len(got) != 9 || got[0] != "document" {
		t.Errorf("Strings() = %v", got)
	}
}

func TestCodes_ReturnsCopy(t *testing.T) {
	cs := ClaimUses.Codes()
	cs[0] = "mutated"
	if ClaimUses.Codes()[0] != ClaimUseClaim {
		t.Error("Codes() exposes the internal slice")
	}
}
