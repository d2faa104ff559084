package constraint

import (
	"testing"

	fhirmodel "github.com/gofhir/model"
)

var patient = []byte(`{"resourceType":"Patient","id":"p1","name":[{"family":"Chalmers"}],"active":true}`)

func TestCheck(t *testing.T) {
	e := NewEvaluator(0, nil)

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"true", "name.exists()", true},
		{"false", "telecom.exists()", false},
		{"empty result passes", "telecom.value", true},
		{"non-boolean passes", "name.family", true},
		{"implies", "active.exists() implies name.exists()", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Check(Invariant{Key: "t-1", Expression: tt.expr}, patient)
			if err != nil {
				t.Fatalf("Check(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Check(%q) = %v; want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	m := fhirmodel.NewMetrics()
	e := NewEvaluator(8, m)

	invs := []Invariant{
		{Key: "ok-1", Severity: fhirmodel.SeverityError, Human: "has a name", Expression: "name.exists()"},
		{Key: "bad-1", Severity: fhirmodel.SeverityError, Human: "has a telecom", Expression: "telecom.exists()"},
		{Key: "warn-1", Severity: fhirmodel.SeverityWarning, Human: "has an address", Expression: "address.exists()"},
		{Key: "skip-1", Human: "no expression"},
	}

	issues := e.Evaluate(invs, patient, "Patient")
	if len(issues) != 2 {
		t.Fatalf("Evaluate() returned %d issues; want 2: %v", len(issues), issues)
	}
	if issues[0].ConstraintKey != "bad-1" || issues[0].Severity != fhirmodel.SeverityError {
		t.Errorf("issues[0] = %v; want error bad-1", issues[0])
	}
	if issues[1].ConstraintKey != "warn-1" || issues[1].Severity != fhirmodel.SeverityWarning {
		t.Errorf("issues[1] = %v; want warning warn-1", issues[1])
	}
	for _, is := range issues {
		if is.Path() != "Patient" || is.Code != fhirmodel.IssueTypeInvariant {
			t.Errorf("issue %v: want invariant at Patient", is)
		}
	}

	if got := m.InvariantsEvaluated(); got != 3 {
		t.Errorf("InvariantsEvaluated() = %d; want 3", got)
	}
	if got := m.InvariantsFailed(); got != 2 {
		t.Errorf("InvariantsFailed() = %d; want 2", got)
	}
}

func TestEvaluate_CompileErrorIsProcessingWarning(t *testing.T) {
	e := NewEvaluator(0, nil)
	issues := e.Evaluate([]Invariant{{Key: "x-1", Severity: fhirmodel.SeverityError, Expression: "name.exists("}}, patient, "Patient")

	if len(issues) != 1 {
		t.Fatalf("Evaluate() returned %d issues; want 1", len(issues))
	}
	if issues[0].Code != fhirmodel.IssueTypeProcessing || issues[0].Severity != fhirmodel.SeverityWarning {
		t.Errorf("issue = %v; want processing warning", issues[0])
	}
}

func TestCompiledExpressionsAreCached(t *testing.T) {
	m := fhirmodel.NewMetrics()
	e := NewEvaluator(4, m)
	inv := Invariant{Key: "c-1", Expression: "name.exists()"}

	for i := 0; i < 3; i++ {
		if _, err := e.Check(inv, patient); err != nil {
			t.Fatalf("Check() error = %v", err)
		}
	}

	if got := e.CacheStats().Size; got != 1 {
		t.Errorf("CacheStats().Size = %d; want 1", got)
	}
	if got := m.CacheHitRate(); got < 0.66 || got > 0.67 {
		t.Errorf("CacheHitRate() = %v; want 2/3", got)
	}
}
