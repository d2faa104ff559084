// Package walk implements the depth-first validation walk over a record tree.
//
// Every node reports problems to a Walker, which tracks the current element path and
// accumulates issues. Nothing short-circuits: the walk collects every violation unless
// Options.MaxIssues caps it.
package walk

import (
	"fmt"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/pool"
)

// Node is implemented by every element of the model that can be validated.
type Node interface {
	Walk(w *Walker)
}

// Phase names recorded on issues produced by the walk.
const (
	PhaseStructure   = "structure"
	PhaseInvariant   = "invariant"
	PhaseTerminology = "terminology"
)

// Walker carries the state of one validation walk. It is not safe for concurrent use.
type Walker struct {
	opts   *fhirmodel.Options
	path   *pool.PathBuilder
	result *fhirmodel.Result
}

// New creates a Walker rooted at root (usually the resource type).
// Call Release when done.
func New(root string, opts *fhirmodel.Options) *Walker {
	if opts == nil {
		opts = fhirmodel.DefaultOptions()
	}
	w := &Walker{
		opts:   opts,
		path:   pool.AcquirePathBuilder(),
		result: fhirmodel.NewResult(),
	}
	w.path.Field(root)
	w.result.ResourceType = root
	return w
}

// Release returns pooled buffers. The Result stays valid.
func (w *Walker) Release() {
	w.path.Release()
	w.path = nil
}

// Validate walks n and returns every issue found.
func Validate(n Node, opts ...fhirmodel.Option) *fhirmodel.Result {
	return ValidateWith(n, fhirmodel.Apply(opts...))
}

// ValidateWith is Validate with prepared options.
func ValidateWith(n Node, opts *fhirmodel.Options) *fhirmodel.Result {
	w := New(RootName(n), opts)
	defer w.Release()
	n.Walk(w)
	return w.Result()
}

// RootName returns the path root for n: its resource type, else its FHIR type.
func RootName(n any) string {
	switch v := n.(type) {
	case interface{ ResourceType() string }:
		return v.ResourceType()
	case interface{ FHIRType() string }:
		return v.FHIRType()
	default:
		return fmt.Sprintf("%T", n)
	}
}

// Options returns the options of this walk.
func (w *Walker) Options() *fhirmodel.Options {
	return w.opts
}

// Result returns the accumulated result.
func (w *Walker) Result() *fhirmodel.Result {
	return w.result
}

// Path returns the current element path.
func (w *Walker) Path() string {
	return w.path.String()
}

// Done reports whether the issue cap has been reached.
func (w *Walker) Done() bool {
	return w.result.Truncated
}

// Enter descends into a named child element and returns a mark for Leave.
func (w *Walker) Enter(name string) int {
	return w.path.Field(name)
}

// EnterIndex descends into an array position and returns a mark for Leave.
func (w *Walker) EnterIndex(i int) int {
	return w.path.Index(i)
}

// Leave restores the path saved by Enter or EnterIndex.
func (w *Walker) Leave(mark int) {
	w.path.Truncate(mark)
}

// EnterSidecar moves from a primitive element to its "_" metadata element
// (Patient.birthDate to Patient._birthDate) and returns a mark for LeaveSidecar.
func (w *Walker) EnterSidecar() int {
	return w.path.Sidecar()
}

// LeaveSidecar returns from the metadata element entered with EnterSidecar.
func (w *Walker) LeaveSidecar(mark int) {
	w.path.Unsidecar(mark)
}

// Child walks n under the named child element.
func (w *Walker) Child(name string, n Node) {
	if w.Done() {
		return
	}
	mark := w.Enter(name)
	n.Walk(w)
	w.Leave(mark)
}

// Report records an issue at the current path, or at the named child when at is set.
func (w *Walker) Report(b *fhirmodel.IssueBuilder, at ...string) {
	if w.Done() {
		return
	}
	if limit := w.opts.MaxIssues; limit > 0 && len(w.result.Issues) >= limit {
		w.result.Truncated = true
		return
	}
	path := w.Path()
	for _, a := range at {
		path = pool.JoinPath(path, a)
	}
	w.result.AddIssue(b.At(path).Build())
}

// Invalid reports a malformed value (bad lexical form, out of range).
func (w *Walker) Invalid(format string, args ...any) {
	w.Report(fhirmodel.Error(fhirmodel.IssueTypeInvalid).
		Diagnostics(fmt.Sprintf(format, args...)).
		Phase(PhaseStructure))
}

// Require reports a required element that is absent.
func (w *Walker) Require(name string, present bool) {
	if present {
		return
	}
	w.Report(fhirmodel.Error(fhirmodel.IssueTypeRequired).
		Diagnostics(fmt.Sprintf("element '%s' is required", name)).
		Phase(PhaseStructure), name)
}

// Unknown reports an element that is not part of the model.
// It is silent unless Options.ValidateUnknownElements is set.
func (w *Walker) Unknown(key string) {
	if !w.opts.ValidateUnknownElements {
		return
	}
	w.Report(fhirmodel.Error(fhirmodel.IssueTypeStructure).
		Diagnostics(fmt.Sprintf("unknown element '%s'", key)).
		Phase(PhaseStructure), key)
}

// Invariant reports a failed invariant of the current element unless ok holds.
func (w *Walker) Invariant(ok bool, key string, severity fhirmodel.IssueSeverity, human string) {
	if ok {
		return
	}
	w.Report(fhirmodel.NewIssue(severity, fhirmodel.IssueTypeInvariant).
		Diagnostics(human).
		Constraint(key).
		Phase(PhaseInvariant))
}

// Code checks a code against its closed set. known is the result of the closed-set lookup.
// Unknown codes are accepted silently when the configured terminology knows them.
// Otherwise they are a warning, or an error with Options.StrictCodes.
func (w *Walker) Code(system, code string, known bool) {
	if known {
		return
	}
	if t := w.opts.Terminology; t != nil && t.KnowsCode(system, code) {
		return
	}
	severity := fhirmodel.SeverityWarning
	if w.opts.StrictCodes {
		severity = fhirmodel.SeverityError
	}
	w.Report(fhirmodel.NewIssue(severity, fhirmodel.IssueTypeCodeInvalid).
		Diagnostics(fmt.Sprintf("code '%s' is not in %s", code, system)).
		Phase(PhaseTerminology))
}
