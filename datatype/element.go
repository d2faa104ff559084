package datatype

import (
	"encoding/json"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/walk"
)

// Element is the base of every FHIR element: an optional id and extensions.
// On its own it is the payload of a primitive's "_foo" sidecar.
type Element struct {
	ID        string      `fhir:"id"`
	Extension []Extension `fhir:"extension"`

	// Unknown holds JSON keys the model does not define, so that they survive a round trip.
	Unknown map[string]json.RawMessage `fhir:",unknown"`
}

// ExtensionsByURL groups the extensions by url.
func (e *Element) ExtensionsByURL() map[string][]Extension {
	out := make(map[string][]Extension, len(e.Extension))
	for _, ext := range e.Extension {
		out[ext.URL] = append(out[ext.URL], ext)
	}
	return out
}

// GetExtension returns the first extension with the given url.
func (e *Element) GetExtension(url string) (*Extension, bool) {
	for i := range e.Extension {
		if e.Extension[i].URL == url {
			return &e.Extension[i], true
		}
	}
	return nil, false
}

// BackboneElement is the base of elements defined inline in a resource.
type BackboneElement struct {
	Element
	ModifierExtension []Extension `fhir:"modifierExtension"`
}

// Extension is a url-keyed annotation. It carries either a value or nested extensions.
type Extension struct {
	Element
	URL   string `fhir:"url"`
	Value Choice `fhir:"value,choice=Extension.value"`
}

// NewExtension returns an extension with a value.
func NewExtension(url string, value Choice) Extension {
	return Extension{URL: url, Value: value}
}

func (*Extension) FHIRType() string { return "Extension" }

func (e *Extension) Walk(w *walk.Walker) {
	w.Require("url", e.URL != "")
	w.Invariant((len(e.Extension) > 0) != (e.Value != nil), "ext-1", fhirmodel.SeverityError,
		"Must have either extensions or value[x], not both")
	WalkFields(w, e)
}

func (e Extension) MarshalJSON() ([]byte, error) { return Marshal(&e) }
func (e *Extension) UnmarshalJSON(b []byte) error { return Unmarshal(b, e) }
