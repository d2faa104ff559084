// Package constraint evaluates FHIRPath invariants against serialized records.
package constraint

import (
	"fmt"

	"github.com/gofhir/fhirpath"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/cache"
	"github.com/gofhir/model/walk"
)

// Invariant is a rule over a whole record, written in FHIRPath.
// The expression is evaluated with the record as context and must not yield false.
type Invariant struct {
	Key        string
	Severity   fhirmodel.IssueSeverity
	Human      string
	Expression string
}

// DefaultCacheSize is the number of compiled expressions kept by NewEvaluator(0, ...).
const DefaultCacheSize = 256

// Evaluator compiles and runs invariants. Compiled expressions are cached.
// It is safe for concurrent use.
type Evaluator struct {
	exprCache *cache.Cache[string, *fhirpath.Expression]
	metrics   *fhirmodel.Metrics
}

// NewEvaluator creates an Evaluator. metrics may be nil.
func NewEvaluator(cacheSize int, metrics *fhirmodel.Metrics) *Evaluator {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Evaluator{
		exprCache: cache.New[string, *fhirpath.Expression](cacheSize),
		metrics:   metrics,
	}
}

// Check evaluates one invariant against the JSON of a record.
// An error means the expression could not be compiled or evaluated.
func (e *Evaluator) Check(inv Invariant, data []byte) (bool, error) {
	expr, err := e.compiled(inv.Expression)
	if err != nil {
		return false, fmt.Errorf("compile %s: %w", inv.Key, err)
	}
	result, err := expr.Evaluate(data)
	if err != nil {
		return false, fmt.Errorf("evaluate %s: %w", inv.Key, err)
	}
	passed := passed(result)
	if e.metrics != nil {
		e.metrics.RecordInvariant(passed)
	}
	return passed, nil
}

// Evaluate runs every invariant against data and returns the failures as issues at path.
// Invariants that cannot be evaluated are reported as processing warnings.
func (e *Evaluator) Evaluate(invs []Invariant, data []byte, path string) []fhirmodel.Issue {
	var issues []fhirmodel.Issue
	for _, inv := range invs {
		if inv.Expression == "" {
			continue
		}
		ok, err := e.Check(inv, data)
		switch {
		case err != nil:
			issues = append(issues, fhirmodel.Warning(fhirmodel.IssueTypeProcessing).
				Diagnostics(err.Error()).
				At(path).
				Phase(walk.PhaseInvariant).
				Constraint(inv.Key).
				Build())
		case !ok:
			issues = append(issues, fhirmodel.NewIssue(inv.Severity, fhirmodel.IssueTypeInvariant).
				Diagnostics(fmt.Sprintf("Constraint failed: %s: '%s'", inv.Key, inv.Human)).
				At(path).
				Phase(walk.PhaseInvariant).
				Constraint(inv.Key).
				Build())
		}
	}
	return issues
}

// CacheStats returns statistics of the compiled expression cache.
func (e *Evaluator) CacheStats() cache.Stats {
	return e.exprCache.Stats()
}

func (e *Evaluator) compiled(expr string) (*fhirpath.Expression, error) {
	if c, ok := e.exprCache.Get(expr); ok {
		if e.metrics != nil {
			e.metrics.RecordCacheHit()
		}
		return c, nil
	}
	if e.metrics != nil {
		e.metrics.RecordCacheMiss()
	}
	c, err := fhirpath.Compile(expr)
	if err != nil {
		return nil, err
	}
	e.exprCache.Set(expr, c)
	return c, nil
}

// passed reports whether a result satisfies an invariant. An empty result means the
// rule does not apply; a result that is not a boolean counts as satisfied.
func passed(result fhirpath.Collection) bool {
	if result.Empty() {
		return true
	}
	b, err := result.ToBoolean()
	if err != nil {
		return true
	}
	return b
}
