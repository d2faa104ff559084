package datatype

import (
	"github.com/shopspring/decimal"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/codes"
	"github.com/gofhir/model/walk"
)

// Timing describes an event that may occur multiple times.
type Timing struct {
	BackboneElement
	Event  []DateTime       `fhir:"event"`
	Repeat *TimingRepeat    `fhir:"repeat"`
	Code   *CodeableConcept `fhir:"code"`
}

// TimingRepeat is the repetition rule of a Timing.
type TimingRepeat struct {
	Element
	Bounds       Choice                      `fhir:"bounds,choice=Timing.repeat.bounds"`
	Count        PositiveInt                 `fhir:"count"`
	CountMax     PositiveInt                 `fhir:"countMax"`
	Duration     Decimal                     `fhir:"duration"`
	DurationMax  Decimal                     `fhir:"durationMax"`
	DurationUnit CodeOf[codes.UnitsOfTime]   `fhir:"durationUnit"`
	Frequency    PositiveInt                 `fhir:"frequency"`
	FrequencyMax PositiveInt                 `fhir:"frequencyMax"`
	Period       Decimal                     `fhir:"period"`
	PeriodMax    Decimal                     `fhir:"periodMax"`
	PeriodUnit   CodeOf[codes.UnitsOfTime]   `fhir:"periodUnit"`
	DayOfWeek    []CodeOf[codes.DaysOfWeek]  `fhir:"dayOfWeek"`
	TimeOfDay    []Time                      `fhir:"timeOfDay"`
	When         []CodeOf[codes.EventTiming] `fhir:"when"`
	Offset       UnsignedInt                 `fhir:"offset"`
}

func (t *Timing) Walk(w *walk.Walker) { WalkFields(w, t) }

func (r *TimingRepeat) Walk(w *walk.Walker) {
	w.Invariant(r.Duration.IsZero() || !r.DurationUnit.IsZero(), "tim-1", fhirmodel.SeverityError,
		"if there's a duration, there needs to be duration units")
	w.Invariant(r.Period.IsZero() || !r.PeriodUnit.IsZero(), "tim-2", fhirmodel.SeverityError,
		"if there's a period, there needs to be period units")
	w.Invariant(notNegative(r.Duration), "tim-4", fhirmodel.SeverityError,
		"duration SHALL be a non-negative value")
	w.Invariant(notNegative(r.Period), "tim-5", fhirmodel.SeverityError,
		"period SHALL be a non-negative value")
	w.Invariant(r.PeriodMax.IsZero() || !r.Period.IsZero(), "tim-6", fhirmodel.SeverityError,
		"If there's a periodMax, there must be a period")
	w.Invariant(r.DurationMax.IsZero() || !r.Duration.IsZero(), "tim-7", fhirmodel.SeverityError,
		"If there's a durationMax, there must be a duration")
	w.Invariant(r.CountMax.IsZero() || !r.Count.IsZero(), "tim-8", fhirmodel.SeverityError,
		"If there's a countMax, there must be a count")
	w.Invariant(r.Offset.IsZero() || (len(r.When) > 0 && !whenIsMeal(r.When)), "tim-9", fhirmodel.SeverityError,
		"If there's an offset, there must be a when (and not C, CM, CD, CV)")
	w.Invariant(len(r.TimeOfDay) == 0 || len(r.When) == 0, "tim-10", fhirmodel.SeverityError,
		"If there's a timeOfDay, there cannot be a when, or vice versa")
	WalkFields(w, r)
}

func notNegative(d Decimal) bool {
	v, ok := d.Get()
	return !ok || v.GreaterThanOrEqual(decimal.Zero)
}

// whenIsMeal reports whether any when code is a meal without a before/after qualifier.
func whenIsMeal(when []CodeOf[codes.EventTiming]) bool {
	for _, c := range when {
		switch {
		case c.Is(codes.EventTimingC), c.Is(codes.EventTimingCm), c.Is(codes.EventTimingCd), c.Is(codes.EventTimingCv):
			return true
		}
	}
	return false
}

func (*Timing) FHIRType() string { return "Timing" }

func (t Timing) MarshalJSON() ([]byte, error) { return Marshal(&t) }

func (t *Timing) UnmarshalJSON(b []byte) error { return Unmarshal(b, t) }
