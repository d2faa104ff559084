package datatype

import (
	"time"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/codes"
	"github.com/gofhir/model/walk"
)

// Meta is resource metadata.
type Meta struct {
	Element
	VersionID   ID          `fhir:"versionId"`
	LastUpdated Instant     `fhir:"lastUpdated"`
	Source      URI         `fhir:"source"`
	Profile     []Canonical `fhir:"profile"`
	Security    []Coding    `fhir:"security"`
	Tag         []Coding    `fhir:"tag"`
}

// Narrative is the human-readable summary of a resource.
type Narrative struct {
	Element
	Status CodeOf[codes.NarrativeStatus] `fhir:"status"`
	Div    string                        `fhir:"div"`
}

// Coding is a code defined by a terminology system.
type Coding struct {
	Element
	System       URI     `fhir:"system"`
	Version      String  `fhir:"version"`
	Code         Code    `fhir:"code"`
	Display      String  `fhir:"display"`
	UserSelected Boolean `fhir:"userSelected"`
}

// NewCoding returns a Coding with a system and code.
func NewCoding(system, code string) Coding {
	return Coding{System: NewURI(system), Code: NewCode(code)}
}

// CodeableConcept is a concept given by codings and/or text.
type CodeableConcept struct {
	Element
	Coding []Coding `fhir:"coding"`
	Text   String   `fhir:"text"`
}

// HasCode reports whether any coding matches system and code.
func (c *CodeableConcept) HasCode(system, code string) bool {
	for i := range c.Coding {
		s, _ := c.Coding[i].System.Get()
		v, _ := c.Coding[i].Code.Get()
		if s == system && v == code {
			return true
		}
	}
	return false
}

// Reference points from one resource to another.
type Reference struct {
	Element
	Reference  String      `fhir:"reference"`
	Type       URI         `fhir:"type"`
	Identifier *Identifier `fhir:"identifier"`
	Display    String      `fhir:"display"`
}

// NewReference returns a literal reference such as "Patient/123".
func NewReference(ref string) Reference {
	return Reference{Reference: NewString(ref)}
}

// Identifier is a business identifier.
type Identifier struct {
	Element
	Use      CodeOf[codes.IdentifierUse] `fhir:"use"`
	Type     *CodeableConcept            `fhir:"type"`
	System   URI                         `fhir:"system"`
	Value    String                      `fhir:"value"`
	Period   *Period                     `fhir:"period"`
	Assigner *Reference                  `fhir:"assigner"`
}

// Period is a time range bounded by start and/or end.
type Period struct {
	Element
	Start DateTime `fhir:"start"`
	End   DateTime `fhir:"end"`
}

// Range is a set of ordered quantities.
type Range struct {
	Element
	Low  *SimpleQuantity `fhir:"low"`
	High *SimpleQuantity `fhir:"high"`
}

// Ratio is a relationship between two quantities.
type Ratio struct {
	Element
	Numerator   *Quantity `fhir:"numerator"`
	Denominator *Quantity `fhir:"denominator"`
}

// Money is an amount in a currency.
type Money struct {
	Element
	Value    Decimal `fhir:"value"`
	Currency Code    `fhir:"currency"`
}

// Annotation is a text note with author and time.
type Annotation struct {
	Element
	Author Choice   `fhir:"author,choice=Annotation.author"`
	Time   DateTime `fhir:"time"`
	Text   Markdown `fhir:"text"`
}

// HumanName is a person's name.
type HumanName struct {
	Element
	Use    CodeOf[codes.NameUse] `fhir:"use"`
	Text   String                `fhir:"text"`
	Family String                `fhir:"family"`
	Given  []String              `fhir:"given"`
	Prefix []String              `fhir:"prefix"`
	Suffix []String              `fhir:"suffix"`
	Period *Period               `fhir:"period"`
}

// ContactPoint is a phone number, email address or similar.
type ContactPoint struct {
	Element
	System CodeOf[codes.ContactPointSystem] `fhir:"system"`
	Value  String                           `fhir:"value"`
	Use    CodeOf[codes.ContactPointUse]    `fhir:"use"`
	Rank   PositiveInt                      `fhir:"rank"`
	Period *Period                          `fhir:"period"`
}

// Address is a postal or physical address.
type Address struct {
	Element
	Use        CodeOf[codes.AddressUse]  `fhir:"use"`
	Type       CodeOf[codes.AddressType] `fhir:"type"`
	Text       String                    `fhir:"text"`
	Line       []String                  `fhir:"line"`
	City       String                    `fhir:"city"`
	District   String                    `fhir:"district"`
	State      String                    `fhir:"state"`
	PostalCode String                    `fhir:"postalCode"`
	Country    String                    `fhir:"country"`
	Period     *Period                   `fhir:"period"`
}

// Attachment is inline or referenced content.
type Attachment struct {
	Element
	ContentType Code         `fhir:"contentType"`
	Language    Code         `fhir:"language"`
	Data        Base64Binary `fhir:"data"`
	URL         URL          `fhir:"url"`
	Size        UnsignedInt  `fhir:"size"`
	Hash        Base64Binary `fhir:"hash"`
	Title       String       `fhir:"title"`
	Creation    DateTime     `fhir:"creation"`
}

func (n *Narrative) Walk(w *walk.Walker) {
	w.Require("status", !n.Status.IsZero())
	w.Require("div", n.Div != "")
	WalkFields(w, n)
}

func (p *Period) Walk(w *walk.Walker) {
	start, okStart := p.Start.Get()
	end, okEnd := p.End.Get()
	w.Invariant(!okStart || !okEnd || !dateTimeAfter(start, end), "per-1", fhirmodel.SeverityError,
		"If present, start SHALL have a lower value than end")
	WalkFields(w, p)
}

func (r *Range) Walk(w *walk.Walker) {
	ok := true
	if r.Low != nil && r.High != nil {
		low, okLow := r.Low.Value.Get()
		high, okHigh := r.High.Value.Get()
		ok = !okLow || !okHigh || low.LessThanOrEqual(high)
	}
	w.Invariant(ok, "rng-2", fhirmodel.SeverityError, "If present, low SHALL have a lower value than high")
	WalkFields(w, r)
}

func (r *Ratio) Walk(w *walk.Walker) {
	w.Invariant((r.Numerator == nil) == (r.Denominator == nil) && (r.Numerator != nil || len(r.Extension) > 0),
		"rat-1", fhirmodel.SeverityError, "Numerator and denominator SHALL both be present, or both are absent. If both are absent, there SHALL be some extension present")
	WalkFields(w, r)
}

func (a *Annotation) Walk(w *walk.Walker) {
	w.Require("text", !a.Text.IsZero())
	WalkFields(w, a)
}

func (c *ContactPoint) Walk(w *walk.Walker) {
	w.Invariant(c.Value.IsZero() || !c.System.IsZero(), "cpt-2", fhirmodel.SeverityError,
		"A system is required if a value is provided.")
	WalkFields(w, c)
}

func (a *Attachment) Walk(w *walk.Walker) {
	w.Invariant(a.Data.IsZero() || !a.ContentType.IsZero(), "att-1", fhirmodel.SeverityError,
		"If the Attachment has data, it SHALL have a contentType")
	WalkFields(w, a)
}

func (m *Meta) Walk(w *walk.Walker) { WalkFields(w, m) }
func (c *Coding) Walk(w *walk.Walker) { WalkFields(w, c) }
func (c *CodeableConcept) Walk(w *walk.Walker) { WalkFields(w, c) }
func (r *Reference) Walk(w *walk.Walker) { WalkFields(w, r) }
func (i *Identifier) Walk(w *walk.Walker) { WalkFields(w, i) }
func (m *Money) Walk(w *walk.Walker) { WalkFields(w, m) }
func (h *HumanName) Walk(w *walk.Walker) { WalkFields(w, h) }
func (a *Address) Walk(w *walk.Walker) { WalkFields(w, a) }

// dateTimeAfter reports whether start is later than end. Values with a time part are
// compared as instants; partial dates are compared at their common precision.
func dateTimeAfter(start, end string) bool {
	if len(start) > 10 && len(end) > 10 {
		s, errS := time.Parse(time.RFC3339Nano, start)
		e, errE := time.Parse(time.RFC3339Nano, end)
		if errS == nil && errE == nil {
			return s.After(e)
		}
	}
	n := min(len(start), len(end), 10)
	return start[:n] > end[:n]
}

func (*Meta) FHIRType() string { return "Meta" }
func (*Narrative) FHIRType() string { return "Narrative" }
func (*Coding) FHIRType() string { return "Coding" }
func (*CodeableConcept) FHIRType() string { return "CodeableConcept" }
func (*Reference) FHIRType() string { return "Reference" }
func (*Identifier) FHIRType() string { return "Identifier" }
func (*Period) FHIRType() string { return "Period" }
func (*Range) FHIRType() string { return "Range" }
func (*Ratio) FHIRType() string { return "Ratio" }
func (*Money) FHIRType() string { return "Money" }
func (*Annotation) FHIRType() string { return "Annotation" }
func (*HumanName) FHIRType() string { return "HumanName" }
func (*ContactPoint) FHIRType() string { return "ContactPoint" }
func (*Address) FHIRType() string { return "Address" }
func (*Attachment) FHIRType() string { return "Attachment" }

func (m Meta) MarshalJSON() ([]byte, error) { return Marshal(&m) }
func (n Narrative) MarshalJSON() ([]byte, error) { return Marshal(&n) }
func (c Coding) MarshalJSON() ([]byte, error) { return Marshal(&c) }
func (c CodeableConcept) MarshalJSON() ([]byte, error) { return Marshal(&c) }
func (r Reference) MarshalJSON() ([]byte, error) { return Marshal(&r) }
func (i Identifier) MarshalJSON() ([]byte, error) { return Marshal(&i) }
func (p Period) MarshalJSON() ([]byte, error) { return Marshal(&p) }
func (r Range) MarshalJSON() ([]byte, error) { return Marshal(&r) }
func (r Ratio) MarshalJSON() ([]byte, error) { return Marshal(&r) }
func (m Money) MarshalJSON() ([]byte, error) { return Marshal(&m) }
func (a Annotation) MarshalJSON() ([]byte, error) { return Marshal(&a) }
func (h HumanName) MarshalJSON() ([]byte, error) { return Marshal(&h) }
func (c ContactPoint) MarshalJSON() ([]byte, error) { return Marshal(&c) }
func (a Address) MarshalJSON() ([]byte, error) { return Marshal(&a) }
func (a Attachment) MarshalJSON() ([]byte, error) { return Marshal(&a) }

func (m *Meta) UnmarshalJSON(b []byte) error { return Unmarshal(b, m) }
func (n *Narrative) UnmarshalJSON(b []byte) error { return Unmarshal(b, n) }
func (c *Coding) UnmarshalJSON(b []byte) error { return Unmarshal(b, c) }
func (c *CodeableConcept) UnmarshalJSON(b []byte) error { return Unmarshal(b, c) }
func (r *Reference) UnmarshalJSON(b []byte) error { return Unmarshal(b, r) }
func (i *Identifier) UnmarshalJSON(b []byte) error { return Unmarshal(b, i) }
func (p *Period) UnmarshalJSON(b []byte) error { return Unmarshal(b, p) }
func (r *Range) UnmarshalJSON(b []byte) error { return Unmarshal(b, r) }
func (r *Ratio) UnmarshalJSON(b []byte) error { return Unmarshal(b, r) }
func (m *Money) UnmarshalJSON(b []byte) error { return Unmarshal(b, m) }
func (a *Annotation) UnmarshalJSON(b []byte) error { return Unmarshal(b, a) }
func (h *HumanName) UnmarshalJSON(b []byte) error { return Unmarshal(b, h) }
func (c *ContactPoint) UnmarshalJSON(b []byte) error { return Unmarshal(b, c) }
func (a *Address) UnmarshalJSON(b []byte) error { return Unmarshal(b, a) }
func (a *Attachment) UnmarshalJSON(b []byte) error { return Unmarshal(b, a) }
