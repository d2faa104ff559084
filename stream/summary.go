package stream

import (
	"fmt"

	fhirmodel "github.com/gofhir/model"
)

// Summary aggregates the results of a stream.
type Summary struct {
	// Entries is the number of entries processed
	Entries int

	// EntriesWithErrors counts entries with error issues or a decode failure
	EntriesWithErrors int

	// EntriesWithWarnings counts entries with warnings but no errors
	EntriesWithWarnings int

	// TotalIssues is the total number of issues found
	TotalIssues int

	// DecodeErrors are per-entry decode failures, by entry index
	DecodeErrors map[int]error

	// StreamErrors are failures of the input as a whole
	StreamErrors []error

	// Issues holds the issues of each entry that had any, by entry index
	Issues map[int][]fhirmodel.Issue
}

// Aggregate drains results into a Summary.
func Aggregate(results <-chan *EntryResult) *Summary {
	s := &Summary{
		DecodeErrors: make(map[int]error),
		Issues:       make(map[int][]fhirmodel.Issue),
	}
	for r := range results {
		s.Add(r)
	}
	return s
}

// Add records one result.
func (s *Summary) Add(r *EntryResult) {
	if r.Index < 0 {
		s.StreamErrors = append(s.StreamErrors, r.Err)
		return
	}
	s.Entries++
	if r.Err != nil {
		s.DecodeErrors[r.Index] = r.Err
		s.EntriesWithErrors++
		return
	}
	if r.Result == nil || len(r.Result.Issues) == 0 {
		return
	}
	s.Issues[r.Index] = r.Result.Issues
	s.TotalIssues += len(r.Result.Issues)
	switch {
	case r.Result.HasErrors():
		s.EntriesWithErrors++
	case r.Result.HasWarnings():
		s.EntriesWithWarnings++
	}
}

// HasErrors returns true if any entry failed to decode or had error issues, or the
// stream itself failed.
func (s *Summary) HasErrors() bool {
	return s.EntriesWithErrors > 0 || len(s.StreamErrors) > 0
}

// String returns a human-readable summary.
func (s *Summary) String() string {
	return fmt.Sprintf(
		"Validated %d entries: %d with errors, %d with warnings, %d total issues",
		s.Entries,
		s.EntriesWithErrors,
		s.EntriesWithWarnings,
		s.TotalIssues,
	)
}
