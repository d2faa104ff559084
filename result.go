package fhirmodel

import "sort"

// Result is the outcome of validating a record: every violation found, with its path.
// Validity is derived from the issues, never stored separately.
type Result struct {
	// Issues contains all issues found, in walk order
	Issues []Issue `json:"issues,omitempty"`

	// ResourceType is the type of record that was validated
	ResourceType string `json:"resourceType,omitempty"`

	// Truncated is set when collection stopped at Options.MaxIssues
	Truncated bool `json:"truncated,omitempty"`
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{
		Issues: make([]Issue, 0, 8),
	}
}

// Valid returns true if no error or fatal issues were found. Warnings are allowed.
func (r *Result) Valid() bool {
	return !r.HasErrors()
}

// AddIssue adds a validation issue to the result.
func (r *Result) AddIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// AddIssues adds multiple issues to the result.
func (r *Result) AddIssues(issues []Issue) {
	r.Issues = append(r.Issues, issues...)
}

// AddError is a convenience method to add an error issue.
func (r *Result) AddError(code IssueType, diagnostics, path string) {
	r.AddIssue(Issue{
		Severity:    SeverityError,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  []string{path},
	})
}

// AddWarning is a convenience method to add a warning issue.
func (r *Result) AddWarning(code IssueType, diagnostics, path string) {
	r.AddIssue(Issue{
		Severity:    SeverityWarning,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  []string{path},
	})
}

// HasErrors returns true if there are any error or fatal issues.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.IsError() {
			return true
		}
	}
	return false
}

// HasWarnings returns true if there are any warning issues.
func (r *Result) HasWarnings() bool {
	for _, issue := range r.Issues {
		if issue.IsWarning() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error and fatal issues.
func (r *Result) ErrorCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.IsError() {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning issues.
func (r *Result) WarningCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.IsWarning() {
			count++
		}
	}
	return count
}

// InfoCount returns the number of informational issues.
func (r *Result) InfoCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityInformation {
			count++
		}
	}
	return count
}

// Errors returns all error and fatal issues.
func (r *Result) Errors() []Issue {
	var errors []Issue
	for _, issue := range r.Issues {
		if issue.IsError() {
			errors = append(errors, issue)
		}
	}
	return errors
}

// Warnings returns all warning issues.
func (r *Result) Warnings() []Issue {
	var warnings []Issue
	for _, issue := range r.Issues {
		if issue.IsWarning() {
			warnings = append(warnings, issue)
		}
	}
	return warnings
}

// At returns the issues reported against exactly the given path.
func (r *Result) At(path string) []Issue {
	var found []Issue
	for _, issue := range r.Issues {
		for _, expr := range issue.Expression {
			if expr == path {
				found = append(found, issue)
				break
			}
		}
	}
	return found
}

// ErrorPaths returns the sorted, de-duplicated paths of all error issues.
func (r *Result) ErrorPaths() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, issue := range r.Issues {
		if !issue.IsError() {
			continue
		}
		p := issue.Path()
		if seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Merge combines another result into this one.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.AddIssues(other.Issues)
	if other.Truncated {
		r.Truncated = true
	}
}

// Clone creates a deep copy of the result.
func (r *Result) Clone() *Result {
	clone := &Result{
		Issues:       make([]Issue, len(r.Issues)),
		ResourceType: r.ResourceType,
		Truncated:    r.Truncated,
	}
	for i, issue := range r.Issues {
		issue.Expression = append([]string(nil), issue.Expression...)
		clone.Issues[i] = issue
	}
	return clone
}
