package fhirmodel

import (
	"testing"
)

func TestIssue_IsError(t *testing.T) {
	tests := []struct {
		severity IssueSeverity
		want     bool
	}{
		{SeverityFatal, true},
		{SeverityError, true},
		{SeverityWarning, false},
		{SeverityInformation, false},
	}

	for _, tt := range tests {
		issue := Issue{Severity: tt.severity}
		if got := issue.IsError(); got != tt.want {
			t.Errorf("Issue{Severity: %s}.IsError() = %v; want %v", tt.severity, got, tt.want)
		}
	}
}

func TestIssue_IsWarning(t *testing.T) {
	tests := []struct {
		severity IssueSeverity
		want     bool
	}{
		{SeverityFatal, false},
		{SeverityError, false},
		{SeverityWarning, true},
		{SeverityInformation, false},
	}

	for _, tt := range tests {
		issue := Issue{Severity: tt.severity}
		if got := issue.IsWarning(); got != tt.want {
			t.Errorf("Issue{Severity: %s}.IsWarning() = %v; want %v", tt.severity, got, tt.want)
		}
	}
}

func TestIssue_String(t *testing.T) {
	tests := []struct {
		issue Issue
		want  string
	}{
		{
			issue: Issue{Severity: SeverityError, Diagnostics: "Invalid value"},
			want:  "error: Invalid value",
		},
		{
			issue: Issue{
				Severity:    SeverityWarning,
				Diagnostics: "unknown code 'x'",
				Expression:  []string{"Patient.gender"},
			},
			want: "warning: unknown code 'x' at Patient.gender",
		},
		{
			issue: Issue{
				Severity:      SeverityError,
				Diagnostics:   "abatement requires inactive clinical status",
				Expression:    []string{"Condition", "Condition.abatementAge"},
				ConstraintKey: "con-4",
			},
			want: "error [con-4]: abatement requires inactive clinical status at Condition",
		},
	}

	for _, tt := range tests {
		if got := tt.issue.String(); got != tt.want {
			t.Errorf("Issue.String() = %q; want %q", got, tt.want)
		}
	}
}

func TestIssue_Path(t *testing.T) {
	if got := (Issue{}).Path(); got != "" {
		t.Errorf("Path() = %q; want empty", got)
	}
	issue := Issue{Expression: []string{"Claim.item[2].servicedDate"}}
	if got := issue.Path(); got != "Claim.item[2].servicedDate" {
		t.Errorf("Path() = %q; want %q", got, "Claim.item[2].servicedDate")
	}
}

func TestIssueBuilder(t *testing.T) {
	issue := Error(IssueTypeInvariant).
		Diagnostics("contact needs details").
		At("Patient.contact[0]").
		Phase("invariant").
		Constraint("pat-1").
		Build()

	if issue.Severity != SeverityError {
		t.Errorf("Severity = %s; want error", issue.Severity)
	}
	if issue.Code != IssueTypeInvariant {
		t.Errorf("Code = %s; want invariant", issue.Code)
	}
	if issue.Path() != "Patient.contact[0]" {
		t.Errorf("Path() = %q", issue.Path())
	}
	if issue.Phase != "invariant" || issue.ConstraintKey != "pat-1" {
		t.Errorf("Phase/ConstraintKey = %q/%q", issue.Phase, issue.ConstraintKey)
	}

	if w := Warning(IssueTypeCodeInvalid).Build(); !w.IsWarning() {
		t.Error("Warning() did not build a warning")
	}
	if i := Info(IssueTypeInformational).Build(); i.Severity != SeverityInformation {
		t.Errorf("Info() severity = %s", i.Severity)
	}
}
