package datatype

import (
	"fmt"
	"reflect"
	"sort"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/walk"
)

// WalkFields applies the structural checks shared by every element to v, a pointer to
// a model struct, and descends into its populated fields: scalars first, then every
// entry of every list. Types with a Walk of their own call it after their specific checks.
func WalkFields(w *walk.Walker, v any) {
	walkStruct(w, reflect.ValueOf(v).Elem(), true)
}

func walkStruct(w *walk.Walker, rv reflect.Value, content bool) {
	p := planFor(rv.Type())

	if content && p.resourceType == "" && !hasContent(p, rv) {
		w.Invariant(false, "ele-1", fhirmodel.SeverityError, "All FHIR elements must have a @value or children")
	}

	if p.unknown != nil {
		extra := rv.FieldByIndex(p.unknown)
		keys := make([]string, 0, extra.Len())
		for _, k := range extra.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for _, k := range keys {
			w.Unknown(k)
		}
	}

	for i := range p.fields {
		if f := &p.fields[i]; !f.kind.isList() {
			f.walk(w, rv.FieldByIndex(f.index))
		}
	}
	for i := range p.fields {
		if f := &p.fields[i]; f.kind.isList() {
			f.walk(w, rv.FieldByIndex(f.index))
		}
	}
}

// hasContent reports whether an element carries anything besides its id.
func hasContent(p *plan, rv reflect.Value) bool {
	if p.unknown != nil && rv.FieldByIndex(p.unknown).Len() > 0 {
		return true
	}
	for i := range p.fields {
		f := &p.fields[i]
		if f.name == "id" {
			continue
		}
		v := rv.FieldByIndex(f.index)
		switch f.kind {
		case fieldPlain:
			if v.String() != "" {
				return true
			}
		case fieldPrimitive:
			if !v.Addr().Interface().(primitive).IsZero() {
				return true
			}
		case fieldObject, fieldChoice, fieldResource:
			if !v.IsNil() {
				return true
			}
		default:
			if v.Len() > 0 {
				return true
			}
		}
	}
	return false
}

func (f *field) walk(w *walk.Walker, v reflect.Value) {
	if w.Done() {
		return
	}
	switch f.kind {
	case fieldPrimitive:
		if p := v.Addr().Interface().(primitive); !p.IsZero() {
			w.Child(f.name, p)
		}

	case fieldObject:
		if !v.IsNil() {
			w.Child(f.name, nodeOf(v.Interface()))
		}

	case fieldResource:
		if !v.IsNil() {
			w.Child(f.name, v.Interface().(walk.Node))
		}

	case fieldChoice:
		if v.IsNil() {
			return
		}
		c := v.Interface().(Choice)
		typ := c.FHIRType()
		if !f.group.Allows(typ) {
			w.Report(fhirmodel.Error(fhirmodel.IssueTypeStructure).
				Diagnostics(fmt.Sprintf("type %s is not allowed for %s", typ, f.group.Path())).
				Phase(walk.PhaseStructure), f.group.Path())
			return
		}
		w.Child(f.group.Key(typ), c)

	case fieldPrimitiveList:
		for i := 0; i < v.Len() && !w.Done(); i++ {
			mark := w.Enter(f.name)
			w.EnterIndex(i)
			if p := v.Index(i).Addr().Interface().(primitive); p.IsZero() {
				w.Invariant(false, "ele-1", fhirmodel.SeverityError, "All FHIR elements must have a @value or children")
			} else {
				p.Walk(w)
			}
			w.Leave(mark)
		}

	case fieldObjectList, fieldResourceList:
		for i := 0; i < v.Len() && !w.Done(); i++ {
			mark := w.Enter(f.name)
			w.EnterIndex(i)
			if f.kind == fieldObjectList {
				nodeOf(v.Index(i).Addr().Interface()).Walk(w)
			} else if n, ok := v.Index(i).Interface().(walk.Node); ok {
				n.Walk(w)
			}
			w.Leave(mark)
		}
	}
}

// structNode walks a struct that has no Walk of its own, such as a backbone element.
type structNode struct{ v any }

func (n structNode) Walk(w *walk.Walker) { WalkFields(w, n.v) }

func nodeOf(ptr any) walk.Node {
	if n, ok := ptr.(walk.Node); ok {
		return n
	}
	return structNode{ptr}
}
