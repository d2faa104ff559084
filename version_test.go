package fhirmodel

import "testing"

func TestFHIRVersion(t *testing.T) {
	tests := []struct {
		v       FHIRVersion
		valid   bool
		release string
	}{
		{R4, true, "4.0.1"},
		{FHIRVersion("R5"), false, ""},
		{FHIRVersion(""), false, ""},
	}

	for _, tt := range tests {
		if got := tt.v.IsValid(); got != tt.valid {
			t.Errorf("%q.IsValid() = %v; want %v", tt.v, got, tt.valid)
		}
		if got := tt.v.Release(); got != tt.release {
			t.Errorf("%q.Release() = %q; want %q", tt.v, got, tt.release)
		}
	}
	if R4.String() != "R4" {
		t.Errorf("R4.String() = %q", R4.String())
	}
}
