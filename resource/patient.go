package resource

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/choice"
	"github.com/gofhir/model/codes"
	"github.com/gofhir/model/constraint"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/walk"
)

// Choice groups of Patient.
var (
	PatientDeceased      = choice.Register("Patient.deceased", choice.TypeBoolean, choice.TypeDateTime)
	PatientMultipleBirth = choice.Register("Patient.multipleBirth", choice.TypeBoolean, choice.TypeInteger)
)

// Patient is demographics about an individual receiving care.
type Patient struct {
	DomainResource
	Identifier           []datatype.Identifier                       `fhir:"identifier"`
	Active               datatype.Boolean                            `fhir:"active"`
	Name                 []datatype.HumanName                        `fhir:"name"`
	Telecom              []datatype.ContactPoint                     `fhir:"telecom"`
	Gender               datatype.CodeOf[codes.AdministrativeGender] `fhir:"gender"`
	BirthDate            datatype.Date                               `fhir:"birthDate"`
	Deceased             datatype.Choice                             `fhir:"deceased,choice=Patient.deceased"`
	Address              []datatype.Address                          `fhir:"address"`
	MaritalStatus        *datatype.CodeableConcept                   `fhir:"maritalStatus"`
	MultipleBirth        datatype.Choice                             `fhir:"multipleBirth,choice=Patient.multipleBirth"`
	Photo                []datatype.Attachment                       `fhir:"photo"`
	Contact              []PatientContact                            `fhir:"contact"`
	Communication        []PatientCommunication                      `fhir:"communication"`
	GeneralPractitioner  []datatype.Reference                        `fhir:"generalPractitioner"`
	ManagingOrganization *datatype.Reference                         `fhir:"managingOrganization"`
	Link                 []PatientLink                               `fhir:"link"`
}

// PatientContact is a contact party for the patient.
type PatientContact struct {
	datatype.BackboneElement
	Relationship []datatype.CodeableConcept                  `fhir:"relationship"`
	Name         *datatype.HumanName                         `fhir:"name"`
	Telecom      []datatype.ContactPoint                     `fhir:"telecom"`
	Address      *datatype.Address                           `fhir:"address"`
	Gender       datatype.CodeOf[codes.AdministrativeGender] `fhir:"gender"`
	Organization *datatype.Reference                         `fhir:"organization"`
	Period       *datatype.Period                            `fhir:"period"`
}

// PatientCommunication is a language the patient can use.
type PatientCommunication struct {
	datatype.BackboneElement
	Language  *datatype.CodeableConcept `fhir:"language"`
	Preferred datatype.Boolean          `fhir:"preferred"`
}

// PatientLink links to another patient record about the same person.
type PatientLink struct {
	datatype.BackboneElement
	Other *datatype.Reference             `fhir:"other"`
	Type  datatype.CodeOf[codes.LinkType] `fhir:"type"`
}

func (*Patient) ResourceType() string { return "Patient" }

func (p *Patient) Invariants() []constraint.Invariant {
	return slices.Concat(domainInvariants, []constraint.Invariant{{
		Key:        "pat-1",
		Severity:   fhirmodel.SeverityError,
		Human:      "SHALL at least contain a contact's details or a reference to an organization",
		Expression: "contact.all(name.exists() or telecom.exists() or address.exists() or organization.exists())",
	}})
}

func (p *Patient) Walk(w *walk.Walker) {
	walkBase(w, &p.Base)
	datatype.WalkFields(w, p)
}

func (c *PatientCommunication) Walk(w *walk.Walker) {
	w.Require("language", c.Language != nil)
	datatype.WalkFields(w, c)
}

func (l *PatientLink) Walk(w *walk.Walker) {
	w.Require("other", l.Other != nil)
	w.Require("type", !l.Type.IsZero())
	datatype.WalkFields(w, l)
}

// DeceasedBoolean returns deceasedBoolean when that alternative is populated.
func (p *Patient) DeceasedBoolean() (*datatype.Boolean, bool) {
	return datatype.ChoiceAs[*datatype.Boolean](p.Deceased)
}

// DeceasedDateTime returns deceasedDateTime when that alternative is populated.
func (p *Patient) DeceasedDateTime() (*datatype.DateTime, bool) {
	return datatype.ChoiceAs[*datatype.DateTime](p.Deceased)
}

// SetDeceased sets deceased[x]. v must be a *Boolean or a *DateTime; nil clears it.
func (p *Patient) SetDeceased(v datatype.Choice) error {
	c, err := datatype.Assign(PatientDeceased, v)
	if err != nil {
		return err
	}
	p.Deceased = c
	return nil
}

// MultipleBirthBoolean returns multipleBirthBoolean when that alternative is populated.
func (p *Patient) MultipleBirthBoolean() (*datatype.Boolean, bool) {
	return datatype.ChoiceAs[*datatype.Boolean](p.MultipleBirth)
}

// MultipleBirthInteger returns multipleBirthInteger when that alternative is populated.
func (p *Patient) MultipleBirthInteger() (*datatype.Integer, bool) {
	return datatype.ChoiceAs[*datatype.Integer](p.MultipleBirth)
}

// SetMultipleBirth sets multipleBirth[x]. v must be a *Boolean or an *Integer; nil clears it.
func (p *Patient) SetMultipleBirth(v datatype.Choice) error {
	c, err := datatype.Assign(PatientMultipleBirth, v)
	if err != nil {
		return err
	}
	p.MultipleBirth = c
	return nil
}

func (p Patient) MarshalJSON() ([]byte, error) { return datatype.Marshal(&p) }

func (p *Patient) UnmarshalJSON(b []byte) error { return datatype.Unmarshal(b, p) }
