package resource

import (
	"fmt"
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/choice"
	"github.com/gofhir/model/codes"
	"github.com/gofhir/model/constraint"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/walk"
)

// Choice groups of Condition. onset[x] and abatement[x] share their alternatives.
var (
	ConditionOnset     = choice.Register("Condition.onset", conditionTimeTypes...)
	ConditionAbatement = choice.Register("Condition.abatement", conditionTimeTypes...)
)

var conditionTimeTypes = []string{choice.TypeDateTime, "Age", "Period", "Range", choice.TypeString}

// Condition is a clinical condition, problem or diagnosis.
type Condition struct {
	DomainResource
	Identifier         []datatype.Identifier      `fhir:"identifier"`
	ClinicalStatus     *datatype.CodeableConcept  `fhir:"clinicalStatus"`
	VerificationStatus *datatype.CodeableConcept  `fhir:"verificationStatus"`
	Category           []datatype.CodeableConcept `fhir:"category"`
	Severity           *datatype.CodeableConcept  `fhir:"severity"`
	Code               *datatype.CodeableConcept  `fhir:"code"`
	BodySite           []datatype.CodeableConcept `fhir:"bodySite"`
	Subject            *datatype.Reference        `fhir:"subject"`
	Encounter          *datatype.Reference        `fhir:"encounter"`
	Onset              datatype.Choice            `fhir:"onset,choice=Condition.onset"`
	Abatement          datatype.Choice            `fhir:"abatement,choice=Condition.abatement"`
	RecordedDate       datatype.DateTime          `fhir:"recordedDate"`
	Recorder           *datatype.Reference        `fhir:"recorder"`
	Asserter           *datatype.Reference        `fhir:"asserter"`
	Stage              []ConditionStage           `fhir:"stage"`
	Evidence           []ConditionEvidence        `fhir:"evidence"`
	Note               []datatype.Annotation      `fhir:"note"`
}

// ConditionStage is a clinical stage or grade of a condition.
type ConditionStage struct {
	datatype.BackboneElement
	Summary    *datatype.CodeableConcept `fhir:"summary"`
	Assessment []datatype.Reference      `fhir:"assessment"`
	Type       *datatype.CodeableConcept `fhir:"type"`
}

// ConditionEvidence supports the verification status of a condition.
type ConditionEvidence struct {
	datatype.BackboneElement
	Code   []datatype.CodeableConcept `fhir:"code"`
	Detail []datatype.Reference       `fhir:"detail"`
}

var conditionInvariants = slices.Concat(domainInvariants, []constraint.Invariant{
	{
		Key:      "con-3",
		Severity: fhirmodel.SeverityWarning,
		Human:    "Condition.clinicalStatus SHALL be present if verificationStatus is not entered-in-error and category is problem-list-item",
		Expression: fmt.Sprintf("clinicalStatus.exists() or verificationStatus.coding.where(system='%s' and code = '%s').exists() or category.coding.where(code='problem-list-item').empty()",
			codes.ConditionVerificationStatusSet.System(), codes.ConditionVerificationStatusEnteredInError),
	},
	{
		Key:      "con-4",
		Severity: fhirmodel.SeverityError,
		Human:    "If condition is abated, then clinicalStatus must be either inactive, resolved, or remission",
		Expression: fmt.Sprintf("abatement.empty() or clinicalStatus.coding.where(system='%s' and (code='%s' or code='%s' or code='%s')).exists()",
			codes.ConditionClinicalStatusSet.System(), codes.ConditionClinicalStatusResolved,
			codes.ConditionClinicalStatusRemission, codes.ConditionClinicalStatusInactive),
	},
	{
		Key:      "con-5",
		Severity: fhirmodel.SeverityError,
		Human:    "Condition.clinicalStatus SHALL NOT be present if verification Status is entered-in-error",
		Expression: fmt.Sprintf("verificationStatus.coding.where(system='%s' and code='%s').empty() or clinicalStatus.empty()",
			codes.ConditionVerificationStatusSet.System(), codes.ConditionVerificationStatusEnteredInError),
	},
})

func (*Condition) ResourceType() string { return "Condition" }

func (c *Condition) Invariants() []constraint.Invariant { return conditionInvariants }

func (c *Condition) Walk(w *walk.Walker) {
	walkBase(w, &c.Base)
	w.Require("subject", c.Subject != nil)
	datatype.WalkFields(w, c)
}

func (s *ConditionStage) Walk(w *walk.Walker) {
	w.Invariant(s.Summary != nil || len(s.Assessment) > 0, "con-1", fhirmodel.SeverityError,
		"Stage SHALL have summary or assessment")
	datatype.WalkFields(w, s)
}

func (e *ConditionEvidence) Walk(w *walk.Walker) {
	w.Invariant(len(e.Code) > 0 || len(e.Detail) > 0, "con-2", fhirmodel.SeverityError,
		"evidence SHALL have code or details")
	datatype.WalkFields(w, e)
}

// OnsetDateTime returns onsetDateTime when that alternative is populated.
func (c *Condition) OnsetDateTime() (*datatype.DateTime, bool) {
	return datatype.ChoiceAs[*datatype.DateTime](c.Onset)
}

// OnsetAge returns onsetAge when that alternative is populated.
func (c *Condition) OnsetAge() (*datatype.Age, bool) {
	return datatype.ChoiceAs[*datatype.Age](c.Onset)
}

// OnsetPeriod returns onsetPeriod when that alternative is populated.
func (c *Condition) OnsetPeriod() (*datatype.Period, bool) {
	return datatype.ChoiceAs[*datatype.Period](c.Onset)
}

// OnsetRange returns onsetRange when that alternative is populated.
func (c *Condition) OnsetRange() (*datatype.Range, bool) {
	return datatype.ChoiceAs[*datatype.Range](c.Onset)
}

// OnsetString returns onsetString when that alternative is populated.
func (c *Condition) OnsetString() (*datatype.String, bool) {
	return datatype.ChoiceAs[*datatype.String](c.Onset)
}

// SetOnset sets onset[x]; nil clears it. Values outside the group are rejected.
func (c *Condition) SetOnset(v datatype.Choice) error {
	o, err := datatype.Assign(ConditionOnset, v)
	if err != nil {
		return err
	}
	c.Onset = o
	return nil
}

// AbatementDateTime returns abatementDateTime when that alternative is populated.
func (c *Condition) AbatementDateTime() (*datatype.DateTime, bool) {
	return datatype.ChoiceAs[*datatype.DateTime](c.Abatement)
}

// AbatementAge returns abatementAge when that alternative is populated.
func (c *Condition) AbatementAge() (*datatype.Age, bool) {
	return datatype.ChoiceAs[*datatype.Age](c.Abatement)
}

// AbatementPeriod returns abatementPeriod when that alternative is populated.
func (c *Condition) AbatementPeriod() (*datatype.Period, bool) {
	return datatype.ChoiceAs[*datatype.Period](c.Abatement)
}

// AbatementRange returns abatementRange when that alternative is populated.
func (c *Condition) AbatementRange() (*datatype.Range, bool) {
	return datatype.ChoiceAs[*datatype.Range](c.Abatement)
}

// AbatementString returns abatementString when that alternative is populated.
func (c *Condition) AbatementString() (*datatype.String, bool) {
	return datatype.ChoiceAs[*datatype.String](c.Abatement)
}

// SetAbatement sets abatement[x]; nil clears it.
func (c *Condition) SetAbatement(v datatype.Choice) error {
	a, err := datatype.Assign(ConditionAbatement, v)
	if err != nil {
		return err
	}
	c.Abatement = a
	return nil
}

func (c Condition) MarshalJSON() ([]byte, error) { return datatype.Marshal(&c) }

func (c *Condition) UnmarshalJSON(b []byte) error { return datatype.Unmarshal(b, c) }
