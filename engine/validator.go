// Package engine combines the structural walk, FHIRPath invariants, terminology and
// metrics into a single Validator.
package engine

import (
	"context"
	"time"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/constraint"
	"github.com/gofhir/model/pkg/logger"
	"github.com/gofhir/model/resource"
	"github.com/gofhir/model/walk"
)

// Validator validates records. It is safe for concurrent use.
type Validator struct {
	options    *fhirmodel.Options
	invariants *constraint.Evaluator
	metrics    *fhirmodel.Metrics
	log        *logger.Logger
}

// New creates a Validator with the given options applied over DefaultOptions.
func New(opts ...fhirmodel.Option) *Validator {
	metrics := fhirmodel.NewMetrics()
	return &Validator{
		options:    fhirmodel.Apply(opts...),
		invariants: constraint.NewEvaluator(constraint.DefaultCacheSize, metrics),
		metrics:    metrics,
		log:        logger.Default(),
	}
}

// SetLogger replaces the logger, which defaults to logger.Default().
func (v *Validator) SetLogger(l *logger.Logger) {
	v.log = l
}

// Options returns the validator's options.
func (v *Validator) Options() *fhirmodel.Options {
	return v.options
}

// Metrics returns the validator's metrics.
func (v *Validator) Metrics() *fhirmodel.Metrics {
	return v.metrics
}

// Validate walks r and evaluates the invariants of r and of every resource it carries.
// Problems come back as issues; the error is only set when ctx is done.
func (v *Validator) Validate(ctx context.Context, r resource.Resource) (*fhirmodel.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	result := walk.ValidateWith(r, v.options)

	if v.options.ValidateInvariants {
		for _, l := range resource.Nested(r) {
			if result.Truncated {
				break
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			v.evaluate(result, l)
		}
	}

	elapsed := time.Since(start)
	v.metrics.RecordResult(result, elapsed)
	zl := v.log.Zerolog()
	zl.Debug().
		Str("resourceType", r.ResourceType()).
		Str("id", r.ResourceID()).
		Int("errors", result.ErrorCount()).
		Int("warnings", result.WarningCount()).
		Dur("elapsed", elapsed).
		Msg("validated")
	return result, nil
}

func (v *Validator) evaluate(result *fhirmodel.Result, l resource.Located) {
	invs := l.Resource.Invariants()
	if len(invs) == 0 {
		return
	}
	data, err := l.Resource.MarshalJSON()
	if err != nil {
		v.add(result, fhirmodel.Error(fhirmodel.IssueTypeProcessing).
			Diagnostics("cannot serialize for invariant evaluation: "+err.Error()).
			At(l.Path).
			Phase(walk.PhaseInvariant).
			Build())
		return
	}
	for _, issue := range v.invariants.Evaluate(invs, data, l.Path) {
		v.add(result, issue)
	}
}

// add appends issue unless MaxIssues has been reached.
func (v *Validator) add(result *fhirmodel.Result, issue fhirmodel.Issue) {
	if limit := v.options.MaxIssues; limit > 0 && len(result.Issues) >= limit {
		result.Truncated = true
		return
	}
	result.AddIssue(issue)
}

// ValidateJSON parses data and validates the record. Parse failures, including choice
// conflicts, are returned as the error with a nil result.
func (v *Validator) ValidateJSON(ctx context.Context, data []byte) (resource.Resource, *fhirmodel.Result, error) {
	r, err := resource.Parse(data)
	v.metrics.RecordParse(err)
	if err != nil {
		v.log.Debug("parse failed: %v", err)
		return nil, nil, err
	}
	result, err := v.Validate(ctx, r)
	if err != nil {
		return nil, nil, err
	}
	return r, result, nil
}
