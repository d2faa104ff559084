package resource

import (
	"github.com/gofhir/model/codes"
	"github.com/gofhir/model/constraint"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/walk"
)

// AdverseEvent is an event that caused or could have caused harm to a subject.
type AdverseEvent struct {
	DomainResource
	Identifier            *datatype.Identifier                         `fhir:"identifier"`
	Actuality             datatype.CodeOf[codes.AdverseEventActuality] `fhir:"actuality"`
	Category              []datatype.CodeableConcept                   `fhir:"category"`
	Event                 *datatype.CodeableConcept                    `fhir:"event"`
	Subject               *datatype.Reference                          `fhir:"subject"`
	Encounter             *datatype.Reference                          `fhir:"encounter"`
	Date                  datatype.DateTime                            `fhir:"date"`
	Detected              datatype.DateTime                            `fhir:"detected"`
	RecordedDate          datatype.DateTime                            `fhir:"recordedDate"`
	ResultingCondition    []datatype.Reference                         `fhir:"resultingCondition"`
	Location              *datatype.Reference                          `fhir:"location"`
	Seriousness           *datatype.CodeableConcept                    `fhir:"seriousness"`
	Severity              *datatype.CodeableConcept                    `fhir:"severity"`
	Outcome               *datatype.CodeableConcept                    `fhir:"outcome"`
	Recorder              *datatype.Reference                          `fhir:"recorder"`
	Contributor           []datatype.Reference                         `fhir:"contributor"`
	SuspectEntity         []AdverseEventSuspectEntity                  `fhir:"suspectEntity"`
	SubjectMedicalHistory []datatype.Reference                         `fhir:"subjectMedicalHistory"`
	ReferenceDocument     []datatype.Reference                         `fhir:"referenceDocument"`
	Study                 []datatype.Reference                         `fhir:"study"`
}

// AdverseEventSuspectEntity is a suspected cause of the event.
type AdverseEventSuspectEntity struct {
	datatype.BackboneElement
	Instance  *datatype.Reference     `fhir:"instance"`
	Causality []AdverseEventCausality `fhir:"causality"`
}

// AdverseEventCausality is one assessment of causality.
type AdverseEventCausality struct {
	datatype.BackboneElement
	Assessment         *datatype.CodeableConcept `fhir:"assessment"`
	ProductRelatedness datatype.String           `fhir:"productRelatedness"`
	Author             *datatype.Reference       `fhir:"author"`
	Method             *datatype.CodeableConcept `fhir:"method"`
}

func (*AdverseEvent) ResourceType() string { return "AdverseEvent" }

func (a *AdverseEvent) Invariants() []constraint.Invariant { return domainInvariants }

func (a *AdverseEvent) Walk(w *walk.Walker) {
	walkBase(w, &a.Base)
	w.Require("actuality", !a.Actuality.IsZero())
	w.Require("subject", a.Subject != nil)
	datatype.WalkFields(w, a)
}

func (s *AdverseEventSuspectEntity) Walk(w *walk.Walker) {
	w.Require("instance", s.Instance != nil)
	datatype.WalkFields(w, s)
}

func (a AdverseEvent) MarshalJSON() ([]byte, error) { return datatype.Marshal(&a) }

func (a *AdverseEvent) UnmarshalJSON(b []byte) error { return datatype.Unmarshal(b, a) }
