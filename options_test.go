package fhirmodel

import (
	"runtime"
	"testing"
)

type fakeChecker struct{}

func (fakeChecker) KnowsCode(system, code string) bool { return code == "x" }

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	if !o.ValidateInvariants {
		t.Error("ValidateInvariants should default to true")
	}
	if !o.ValidateUnknownElements {
		t.Error("ValidateUnknownElements should default to true")
	}
	if o.StrictCodes {
		t.Error("StrictCodes should default to false")
	}
	if o.MaxIssues != 0 {
		t.Errorf("MaxIssues = %d; want 0", o.MaxIssues)
	}
	if o.WorkerCount != runtime.NumCPU() {
		t.Errorf("WorkerCount = %d; want %d", o.WorkerCount, runtime.NumCPU())
	}
	if o.Terminology != nil {
		t.Error("Terminology should default to nil")
	}
}

func TestApply(t *testing.T) {
	o := Apply(
		WithInvariants(false),
		WithUnknownElements(false),
		WithStrictCodes(true),
		WithMaxIssues(10),
		WithWorkerCount(3),
		WithTerminology(fakeChecker{}),
	)

	if o.ValidateInvariants || o.ValidateUnknownElements {
		t.Error("boolean options not applied")
	}
	if !o.StrictCodes {
		t.Error("WithStrictCodes(true) not applied")
	}
	if o.MaxIssues != 10 {
		t.Errorf("MaxIssues = %d; want 10", o.MaxIssues)
	}
	if o.WorkerCount != 3 {
		t.Errorf("WorkerCount = %d; want 3", o.WorkerCount)
	}
	if o.Terminology == nil || !o.Terminology.KnowsCode("s", "x") {
		t.Error("WithTerminology not applied")
	}
}

func TestOptions_IgnoreInvalid(t *testing.T) {
	o := Apply(WithMaxIssues(-1), WithWorkerCount(0))
	if o.MaxIssues != 0 {
		t.Errorf("MaxIssues = %d; want 0", o.MaxIssues)
	}
	if o.WorkerCount != runtime.NumCPU() {
		t.Errorf("WorkerCount = %d; want %d", o.WorkerCount, runtime.NumCPU())
	}
}
