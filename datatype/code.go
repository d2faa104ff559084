package datatype

import (
	"github.com/gofhir/model/choice"
	"github.com/gofhir/model/codes"
	"github.com/gofhir/model/walk"
)

// CodeOf is a code bound to a closed code set. Codes outside the set are kept as
// they came off the wire and reported by the walk.
type CodeOf[E codes.Enum] struct{ Primitive[E] }

// NewCodeOf returns a bound code holding v.
func NewCodeOf[E codes.Enum](v E) CodeOf[E] { return CodeOf[E]{Of(v)} }

// Enum returns the code when it is present and part of the closed set.
func (c CodeOf[E]) Enum() (E, bool) {
	if c.Value == nil || !(*c.Value).Known() {
		var zero E
		return zero, false
	}
	return *c.Value, true
}

// Is reports whether the code is present and equal to v.
func (c CodeOf[E]) Is(v E) bool {
	return c.Value != nil && *c.Value == v
}

func (*CodeOf[E]) FHIRType() string { return choice.TypeCode }

func (c *CodeOf[E]) Walk(w *walk.Walker) {
	walkPrimitive(w, &c.Primitive, func(v E) string { return checkCode(string(v)) })
	if c.Value != nil && codeRegex.MatchString(string(*c.Value)) {
		v := *c.Value
		w.Code(v.System(), string(v), v.Known())
	}
}
