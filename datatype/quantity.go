package datatype

import (
	"strings"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/codes"
	"github.com/gofhir/model/walk"
)

// UCUM is the code system of units of measure.
const UCUM = "http://unitsofmeasure.org"

// ISO4217 is the code system of currencies.
const ISO4217 = "urn:iso:std:iso:4217"

// Quantity is a measured amount. Age, Count, Distance, Duration, SimpleQuantity and
// MoneyQuantity share its layout and add their own constraints.
type Quantity struct {
	Element
	Value      Decimal                          `fhir:"value"`
	Comparator CodeOf[codes.QuantityComparator] `fhir:"comparator"`
	Unit       String                           `fhir:"unit"`
	System     URI                              `fhir:"system"`
	Code       Code                             `fhir:"code"`
}

type (
	// Age is a duration of time during which an organism has existed.
	Age struct{ Quantity }
	// Count is a measured count of discrete items.
	Count struct{ Quantity }
	// Distance is a length, a value with a unit that is a physical distance.
	Distance struct{ Quantity }
	// Duration is a length of time.
	Duration struct{ Quantity }
	// SimpleQuantity is a Quantity without a comparator.
	SimpleQuantity struct{ Quantity }
	// MoneyQuantity is an amount of money expressed as a Quantity.
	MoneyQuantity struct{ Quantity }
)

func (q *Quantity) check(w *walk.Walker) {
	w.Invariant(q.Code.IsZero() || !q.System.IsZero(), "qty-3", fhirmodel.SeverityError,
		"If a code for the unit is present, the system SHALL also be present")
}

// coded is the shared shape of the unit constraints: a value needs a code, and the
// system, when present, must be the given one.
func (q *Quantity) coded(system string) bool {
	sys, hasSys := q.System.Get()
	return (!q.Code.IsZero() || q.Value.IsZero()) && (!hasSys || sys == system)
}

func (q *Quantity) Walk(w *walk.Walker) {
	q.check(w)
	WalkFields(w, q)
}

func (a *Age) Walk(w *walk.Walker) {
	a.check(w)
	v, ok := a.Value.Get()
	w.Invariant(a.coded(UCUM) && (!ok || v.IsPositive()), "age-1", fhirmodel.SeverityError,
		"There SHALL be a code if there is a value and it SHALL be an expression of time.  If system is present, it SHALL be UCUM.  If value is present, it SHALL be positive.")
	WalkFields(w, a)
}

func (c *Count) Walk(w *walk.Walker) {
	c.check(w)
	code, hasCode := c.Code.Get()
	w.Invariant(c.coded(UCUM) && (!hasCode || code == "1") && !strings.Contains(c.Value.String(), "."),
		"cnt-3", fhirmodel.SeverityError,
		"There SHALL be a code with a value of \"1\" if there is a value. If system is present, it SHALL be UCUM.  If present, the value SHALL be a whole number.")
	WalkFields(w, c)
}

func (d *Distance) Walk(w *walk.Walker) {
	d.check(w)
	w.Invariant(d.coded(UCUM), "dis-1", fhirmodel.SeverityError,
		"There SHALL be a code if there is a value and it SHALL be an expression of length.  If system is present, it SHALL be UCUM.")
	WalkFields(w, d)
}

func (d *Duration) Walk(w *walk.Walker) {
	d.check(w)
	sys, _ := d.System.Get()
	w.Invariant(d.Code.IsZero() || (sys == UCUM && !d.Value.IsZero()), "drt-1", fhirmodel.SeverityError,
		"There SHALL be a code if there is a value and it SHALL be an expression of time.  If system is present, it SHALL be UCUM.")
	WalkFields(w, d)
}

func (s *SimpleQuantity) Walk(w *walk.Walker) {
	s.check(w)
	w.Invariant(s.Comparator.IsZero(), "sqty-1", fhirmodel.SeverityError, "The comparator is not used on a SimpleQuantity")
	WalkFields(w, s)
}

func (m *MoneyQuantity) Walk(w *walk.Walker) {
	m.check(w)
	w.Invariant(m.coded(ISO4217), "mtqy-1", fhirmodel.SeverityError,
		"There SHALL be a code if there is a value and it SHALL be an expression of currency.  If system is present, it SHALL be ISO 4217 (system = \"urn:iso:std:iso:4217\" - currency).")
	WalkFields(w, m)
}

// SimpleQuantity and MoneyQuantity are profiles: on the wire they are Quantity.
func (*Quantity) FHIRType() string { return "Quantity" }
func (*Age) FHIRType() string { return "Age" }
func (*Count) FHIRType() string { return "Count" }
func (*Distance) FHIRType() string { return "Distance" }
func (*Duration) FHIRType() string { return "Duration" }
func (*SimpleQuantity) FHIRType() string { return "Quantity" }
func (*MoneyQuantity) FHIRType() string { return "Quantity" }

func (q Quantity) MarshalJSON() ([]byte, error) { return Marshal(&q) }
func (a Age) MarshalJSON() ([]byte, error) { return Marshal(&a) }
func (c Count) MarshalJSON() ([]byte, error) { return Marshal(&c) }
func (d Distance) MarshalJSON() ([]byte, error) { return Marshal(&d) }
func (d Duration) MarshalJSON() ([]byte, error) { return Marshal(&d) }
func (s SimpleQuantity) MarshalJSON() ([]byte, error) { return Marshal(&s) }
func (m MoneyQuantity) MarshalJSON() ([]byte, error) { return Marshal(&m) }

func (q *Quantity) UnmarshalJSON(b []byte) error { return Unmarshal(b, q) }
func (a *Age) UnmarshalJSON(b []byte) error { return Unmarshal(b, a) }
func (c *Count) UnmarshalJSON(b []byte) error { return Unmarshal(b, c) }
func (d *Distance) UnmarshalJSON(b []byte) error { return Unmarshal(b, d) }
func (d *Duration) UnmarshalJSON(b []byte) error { return Unmarshal(b, d) }
func (s *SimpleQuantity) UnmarshalJSON(b []byte) error { return Unmarshal(b, s) }
func (m *MoneyQuantity) UnmarshalJSON(b []byte) error { return Unmarshal(b, m) }
