package resource

import (
	"github.com/gofhir/model/choice"
	"github.com/gofhir/model/codes"
	"github.com/gofhir/model/constraint"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/walk"
)

// Choice groups of Claim.
var (
	ClaimSupportingInfoTiming = choice.Register("Claim.supportingInfo.timing", choice.TypeDate, "Period")
	ClaimSupportingInfoValue  = choice.Register("Claim.supportingInfo.value",
		choice.TypeBoolean, choice.TypeString, "Quantity", "Attachment", "Reference")
	ClaimDiagnosisDiagnosis = choice.Register("Claim.diagnosis.diagnosis", "CodeableConcept", "Reference")
	ClaimProcedureProcedure = choice.Register("Claim.procedure.procedure", "CodeableConcept", "Reference")
	ClaimAccidentLocation   = choice.Register("Claim.accident.location", "Address", "Reference")
	ClaimItemServiced       = choice.Register("Claim.item.serviced", choice.TypeDate, "Period")
	ClaimItemLocation       = choice.Register("Claim.item.location", "CodeableConcept", "Address", "Reference")
)

// Claim is a request for payment, preauthorization or predetermination.
type Claim struct {
	DomainResource
	Identifier           []datatype.Identifier                          `fhir:"identifier"`
	Status               datatype.CodeOf[codes.FinancialResourceStatus] `fhir:"status"`
	Type                 *datatype.CodeableConcept                      `fhir:"type"`
	SubType              *datatype.CodeableConcept                      `fhir:"subType"`
	Use                  datatype.CodeOf[codes.ClaimUse]                `fhir:"use"`
	Patient              *datatype.Reference                            `fhir:"patient"`
	BillablePeriod       *datatype.Period                               `fhir:"billablePeriod"`
	Created              datatype.DateTime                              `fhir:"created"`
	Enterer              *datatype.Reference                            `fhir:"enterer"`
	Insurer              *datatype.Reference                            `fhir:"insurer"`
	Provider             *datatype.Reference                            `fhir:"provider"`
	Priority             *datatype.CodeableConcept                      `fhir:"priority"`
	FundsReserve         *datatype.CodeableConcept                      `fhir:"fundsReserve"`
	Related              []ClaimRelated                                 `fhir:"related"`
	Prescription         *datatype.Reference                            `fhir:"prescription"`
	OriginalPrescription *datatype.Reference                            `fhir:"originalPrescription"`
	Payee                *ClaimPayee                                    `fhir:"payee"`
	Referral             *datatype.Reference                            `fhir:"referral"`
	Facility             *datatype.Reference                            `fhir:"facility"`
	CareTeam             []ClaimCareTeam                                `fhir:"careTeam"`
	SupportingInfo       []ClaimSupportingInfo                          `fhir:"supportingInfo"`
	Diagnosis            []ClaimDiagnosis                               `fhir:"diagnosis"`
	Procedure            []ClaimProcedure                               `fhir:"procedure"`
	Insurance            []ClaimInsurance                               `fhir:"insurance"`
	Accident             *ClaimAccident                                 `fhir:"accident"`
	Item                 []ClaimItem                                    `fhir:"item"`
	Total                *datatype.Money                                `fhir:"total"`
}

// ClaimRelated is a prior or corollary claim.
type ClaimRelated struct {
	datatype.BackboneElement
	Claim        *datatype.Reference       `fhir:"claim"`
	Relationship *datatype.CodeableConcept `fhir:"relationship"`
	Reference    *datatype.Identifier      `fhir:"reference"`
}

// ClaimPayee is the recipient of benefits payable.
type ClaimPayee struct {
	datatype.BackboneElement
	Type  *datatype.CodeableConcept `fhir:"type"`
	Party *datatype.Reference       `fhir:"party"`
}

// ClaimCareTeam is a member of the care team.
type ClaimCareTeam struct {
	datatype.BackboneElement
	Sequence      datatype.PositiveInt      `fhir:"sequence"`
	Provider      *datatype.Reference       `fhir:"provider"`
	Responsible   datatype.Boolean          `fhir:"responsible"`
	Role          *datatype.CodeableConcept `fhir:"role"`
	Qualification *datatype.CodeableConcept `fhir:"qualification"`
}

// ClaimSupportingInfo is supporting information for the claim.
type ClaimSupportingInfo struct {
	datatype.BackboneElement
	Sequence datatype.PositiveInt      `fhir:"sequence"`
	Category *datatype.CodeableConcept `fhir:"category"`
	Code     *datatype.CodeableConcept `fhir:"code"`
	Timing   datatype.Choice           `fhir:"timing,choice=Claim.supportingInfo.timing"`
	Value    datatype.Choice           `fhir:"value,choice=Claim.supportingInfo.value"`
	Reason   *datatype.CodeableConcept `fhir:"reason"`
}

// ClaimDiagnosis is a diagnosis relevant to the claim.
type ClaimDiagnosis struct {
	datatype.BackboneElement
	Sequence    datatype.PositiveInt       `fhir:"sequence"`
	Diagnosis   datatype.Choice            `fhir:"diagnosis,choice=Claim.diagnosis.diagnosis"`
	Type        []datatype.CodeableConcept `fhir:"type"`
	OnAdmission *datatype.CodeableConcept  `fhir:"onAdmission"`
	PackageCode *datatype.CodeableConcept  `fhir:"packageCode"`
}

// ClaimProcedure is a clinical procedure performed.
type ClaimProcedure struct {
	datatype.BackboneElement
	Sequence  datatype.PositiveInt       `fhir:"sequence"`
	Type      []datatype.CodeableConcept `fhir:"type"`
	Date      datatype.DateTime          `fhir:"date"`
	Procedure datatype.Choice            `fhir:"procedure,choice=Claim.procedure.procedure"`
	UDI       []datatype.Reference       `fhir:"udi"`
}

// ClaimInsurance is a patient insurance coverage.
type ClaimInsurance struct {
	datatype.BackboneElement
	Sequence            datatype.PositiveInt `fhir:"sequence"`
	Focal               datatype.Boolean     `fhir:"focal"`
	Identifier          *datatype.Identifier `fhir:"identifier"`
	Coverage            *datatype.Reference  `fhir:"coverage"`
	BusinessArrangement datatype.String      `fhir:"businessArrangement"`
	PreAuthRef          []datatype.String    `fhir:"preAuthRef"`
	ClaimResponse       *datatype.Reference  `fhir:"claimResponse"`
}

// ClaimAccident describes the circumstances of an accident.
type ClaimAccident struct {
	datatype.BackboneElement
	Date     datatype.Date             `fhir:"date"`
	Type     *datatype.CodeableConcept `fhir:"type"`
	Location datatype.Choice           `fhir:"location,choice=Claim.accident.location"`
}

// ClaimItem is a product or service provided.
type ClaimItem struct {
	datatype.BackboneElement
	Sequence            datatype.PositiveInt       `fhir:"sequence"`
	CareTeamSequence    []datatype.PositiveInt     `fhir:"careTeamSequence"`
	DiagnosisSequence   []datatype.PositiveInt     `fhir:"diagnosisSequence"`
	ProcedureSequence   []datatype.PositiveInt     `fhir:"procedureSequence"`
	InformationSequence []datatype.PositiveInt     `fhir:"informationSequence"`
	Revenue             *datatype.CodeableConcept  `fhir:"revenue"`
	Category            *datatype.CodeableConcept  `fhir:"category"`
	ProductOrService    *datatype.CodeableConcept  `fhir:"productOrService"`
	Modifier            []datatype.CodeableConcept `fhir:"modifier"`
	ProgramCode         []datatype.CodeableConcept `fhir:"programCode"`
	Serviced            datatype.Choice            `fhir:"serviced,choice=Claim.item.serviced"`
	Location            datatype.Choice            `fhir:"location,choice=Claim.item.location"`
	Quantity            *datatype.SimpleQuantity   `fhir:"quantity"`
	UnitPrice           *datatype.Money            `fhir:"unitPrice"`
	Factor              datatype.Decimal           `fhir:"factor"`
	Net                 *datatype.Money            `fhir:"net"`
	UDI                 []datatype.Reference       `fhir:"udi"`
	BodySite            *datatype.CodeableConcept  `fhir:"bodySite"`
	SubSite             []datatype.CodeableConcept `fhir:"subSite"`
	Encounter           []datatype.Reference       `fhir:"encounter"`
	Detail              []ClaimItemDetail          `fhir:"detail"`
}

// ClaimItemDetail is a product or service within an item.
type ClaimItemDetail struct {
	datatype.BackboneElement
	Sequence         datatype.PositiveInt       `fhir:"sequence"`
	Revenue          *datatype.CodeableConcept  `fhir:"revenue"`
	Category         *datatype.CodeableConcept  `fhir:"category"`
	ProductOrService *datatype.CodeableConcept  `fhir:"productOrService"`
	Modifier         []datatype.CodeableConcept `fhir:"modifier"`
	ProgramCode      []datatype.CodeableConcept `fhir:"programCode"`
	Quantity         *datatype.SimpleQuantity   `fhir:"quantity"`
	UnitPrice        *datatype.Money            `fhir:"unitPrice"`
	Factor           datatype.Decimal           `fhir:"factor"`
	Net              *datatype.Money            `fhir:"net"`
	UDI              []datatype.Reference       `fhir:"udi"`
	SubDetail        []ClaimItemSubDetail       `fhir:"subDetail"`
}

// ClaimItemSubDetail is a product or service within a detail.
type ClaimItemSubDetail struct {
	datatype.BackboneElement
	Sequence         datatype.PositiveInt       `fhir:"sequence"`
	Revenue          *datatype.CodeableConcept  `fhir:"revenue"`
	Category         *datatype.CodeableConcept  `fhir:"category"`
	ProductOrService *datatype.CodeableConcept  `fhir:"productOrService"`
	Modifier         []datatype.CodeableConcept `fhir:"modifier"`
	ProgramCode      []datatype.CodeableConcept `fhir:"programCode"`
	Quantity         *datatype.SimpleQuantity   `fhir:"quantity"`
	UnitPrice        *datatype.Money            `fhir:"unitPrice"`
	Factor           datatype.Decimal           `fhir:"factor"`
	Net              *datatype.Money            `fhir:"net"`
	UDI              []datatype.Reference       `fhir:"udi"`
}

func (*Claim) ResourceType() string { return "Claim" }

func (c *Claim) Invariants() []constraint.Invariant { return domainInvariants }

func (c *Claim) Walk(w *walk.Walker) {
	walkBase(w, &c.Base)
	w.Require("status", !c.Status.IsZero())
	w.Require("type", c.Type != nil)
	w.Require("use", !c.Use.IsZero())
	w.Require("patient", c.Patient != nil)
	w.Require("created", !c.Created.IsZero())
	w.Require("provider", c.Provider != nil)
	w.Require("priority", c.Priority != nil)
	w.Require("insurance", len(c.Insurance) > 0)
	datatype.WalkFields(w, c)
}

func (p *ClaimPayee) Walk(w *walk.Walker) {
	w.Require("type", p.Type != nil)
	datatype.WalkFields(w, p)
}

func (t *ClaimCareTeam) Walk(w *walk.Walker) {
	w.Require("sequence", !t.Sequence.IsZero())
	w.Require("provider", t.Provider != nil)
	datatype.WalkFields(w, t)
}

func (s *ClaimSupportingInfo) Walk(w *walk.Walker) {
	w.Require("sequence", !s.Sequence.IsZero())
	w.Require("category", s.Category != nil)
	datatype.WalkFields(w, s)
}

func (d *ClaimDiagnosis) Walk(w *walk.Walker) {
	w.Require("sequence", !d.Sequence.IsZero())
	w.Require(ClaimDiagnosisDiagnosis.Path(), d.Diagnosis != nil)
	datatype.WalkFields(w, d)
}

func (p *ClaimProcedure) Walk(w *walk.Walker) {
	w.Require("sequence", !p.Sequence.IsZero())
	w.Require(ClaimProcedureProcedure.Path(), p.Procedure != nil)
	datatype.WalkFields(w, p)
}

func (i *ClaimInsurance) Walk(w *walk.Walker) {
	w.Require("sequence", !i.Sequence.IsZero())
	w.Require("focal", !i.Focal.IsZero())
	w.Require("coverage", i.Coverage != nil)
	datatype.WalkFields(w, i)
}

func (a *ClaimAccident) Walk(w *walk.Walker) {
	w.Require("date", !a.Date.IsZero())
	datatype.WalkFields(w, a)
}

func (i *ClaimItem) Walk(w *walk.Walker) {
	w.Require("sequence", !i.Sequence.IsZero())
	w.Require("productOrService", i.ProductOrService != nil)
	datatype.WalkFields(w, i)
}

func (d *ClaimItemDetail) Walk(w *walk.Walker) {
	w.Require("sequence", !d.Sequence.IsZero())
	w.Require("productOrService", d.ProductOrService != nil)
	datatype.WalkFields(w, d)
}

func (d *ClaimItemSubDetail) Walk(w *walk.Walker) {
	w.Require("sequence", !d.Sequence.IsZero())
	w.Require("productOrService", d.ProductOrService != nil)
	datatype.WalkFields(w, d)
}

// ServicedDate returns servicedDate when that alternative is populated.
func (i *ClaimItem) ServicedDate() (*datatype.Date, bool) {
	return datatype.ChoiceAs[*datatype.Date](i.Serviced)
}

// ServicedPeriod returns servicedPeriod when that alternative is populated.
func (i *ClaimItem) ServicedPeriod() (*datatype.Period, bool) {
	return datatype.ChoiceAs[*datatype.Period](i.Serviced)
}

// SetServiced sets serviced[x] to a *Date or a *Period; nil clears it.
func (i *ClaimItem) SetServiced(v datatype.Choice) error {
	c, err := datatype.Assign(ClaimItemServiced, v)
	if err != nil {
		return err
	}
	i.Serviced = c
	return nil
}

// LocationCodeableConcept returns locationCodeableConcept when that alternative is populated.
func (i *ClaimItem) LocationCodeableConcept() (*datatype.CodeableConcept, bool) {
	return datatype.ChoiceAs[*datatype.CodeableConcept](i.Location)
}

// LocationAddress returns locationAddress when that alternative is populated.
func (i *ClaimItem) LocationAddress() (*datatype.Address, bool) {
	return datatype.ChoiceAs[*datatype.Address](i.Location)
}

// LocationReference returns locationReference when that alternative is populated.
func (i *ClaimItem) LocationReference() (*datatype.Reference, bool) {
	return datatype.ChoiceAs[*datatype.Reference](i.Location)
}

// DiagnosisCodeableConcept returns diagnosisCodeableConcept when that alternative is populated.
func (d *ClaimDiagnosis) DiagnosisCodeableConcept() (*datatype.CodeableConcept, bool) {
	return datatype.ChoiceAs[*datatype.CodeableConcept](d.Diagnosis)
}

// DiagnosisReference returns diagnosisReference when that alternative is populated.
func (d *ClaimDiagnosis) DiagnosisReference() (*datatype.Reference, bool) {
	return datatype.ChoiceAs[*datatype.Reference](d.Diagnosis)
}

// SetDiagnosis sets diagnosis[x]; nil clears it.
func (d *ClaimDiagnosis) SetDiagnosis(v datatype.Choice) error {
	c, err := datatype.Assign(ClaimDiagnosisDiagnosis, v)
	if err != nil {
		return err
	}
	d.Diagnosis = c
	return nil
}

func (c Claim) MarshalJSON() ([]byte, error) { return datatype.Marshal(&c) }

func (c *Claim) UnmarshalJSON(b []byte) error { return datatype.Unmarshal(b, c) }
