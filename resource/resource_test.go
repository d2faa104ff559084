package resource

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/codes"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/walk"
)

const preauthClaim = `{
  "resourceType": "Claim",
  "id": "c1",
  "status": "active",
  "type": {"coding": [{"system": "http://terminology.hl7.org/CodeSystem/claim-type", "code": "professional"}]},
  "use": "preauthorization",
  "patient": {"reference": "Patient/1"},
  "created": "2024-01-15",
  "provider": {"reference": "Organization/1"},
  "priority": {"coding": [{"code": "normal"}]},
  "diagnosis": [{"sequence": 1, "diagnosisCodeableConcept": {"coding": [{"code": "J20.9"}]}}],
  "insurance": [{"sequence": 1, "focal": true, "coverage": {"reference": "Coverage/9"}}],
  "item": [{
    "sequence": 1,
    "productOrService": {"coding": [{"code": "99213"}]},
    "servicedDate": "2024-01-15",
    "unitPrice": {"value": 75.00, "currency": "USD"}
  }]
}`

type issueSummary struct {
	Severity fhirmodel.IssueSeverity
	Code     fhirmodel.IssueType
	Key      string
	Path     string
}

func summarize(r *fhirmodel.Result) []issueSummary {
	var out []issueSummary
	for _, is := range r.Issues {
		out = append(out, issueSummary{is.Severity, is.Code, is.ConstraintKey, is.Path()})
	}
	return out
}

func mustParse(t *testing.T, data string) Resource {
	t.Helper()
	r, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return r
}

// sameJSON compares two documents ignoring key order and whitespace.
func sameJSON(t *testing.T, got []byte, want string) {
	t.Helper()
	var g, w any
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("want is not JSON: %v", err)
	}
	if diff := cmp.Diff(w, g); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Claim(t *testing.T) {
	r := mustParse(t, preauthClaim)
	c, ok := r.(*Claim)
	if !ok {
		t.Fatalf("Parse() returned %T; want *Claim", r)
	}

	if use, _ := c.Use.Enum(); use != codes.ClaimUsePreauthorization {
		t.Errorf("Use = %q; want %q", use, codes.ClaimUsePreauthorization)
	}
	if d, ok := c.Item[0].ServicedDate(); !ok {
		t.Error("ServicedDate() = false; want the servicedDate alternative")
	} else if v, _ := d.Get(); v != "2024-01-15" {
		t.Errorf("ServicedDate() = %q; want 2024-01-15", v)
	}
	if _, ok := c.Item[0].ServicedPeriod(); ok {
		t.Error("ServicedPeriod() reported a value for a date")
	}
	if cc, ok := c.Diagnosis[0].DiagnosisCodeableConcept(); !ok || !cc.HasCode("", "J20.9") {
		t.Errorf("DiagnosisCodeableConcept() = %v, %v", cc, ok)
	}
	if got := c.Item[0].UnitPrice.Value.String(); got != "75.00" {
		t.Errorf("unitPrice.value = %s; want 75.00", got)
	}

	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte(`{"resourceType":"Claim","id":"c1",`)) {
		t.Errorf("Marshal() should start with resourceType and id, got %s", out)
	}
	if !bytes.Contains(out, []byte(`"value":75.00`)) {
		t.Errorf("Marshal() lost the decimal scale: %s", out)
	}
	sameJSON(t, out, preauthClaim)

	if res := walk.Validate(c); len(res.Issues) != 0 {
		t.Errorf("Validate() issues = %v; want none", summarize(res))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		path     string
		sentinel error
	}{
		{"not an object", `[1,2]`, "", fhirmodel.ErrShape},
		{"missing resourceType", `{"id":"x"}`, "resourceType", fhirmodel.ErrShape},
		{"unknown resourceType", `{"resourceType":"Starship"}`, "resourceType", fhirmodel.ErrUnknownResourceType},
		{"wrong field type", `{"resourceType":"Patient","active":"yes"}`, "active", fhirmodel.ErrShape},
		{"nested shape error", `{"resourceType":"Patient","name":[{"family":"A"},{"given":"B"}]}`, "name[1].given", fhirmodel.ErrShape},
		{
			"unknown resource in a bundle",
			`{"resourceType":"Bundle","type":"collection","entry":[{"resource":{"resourceType":"Starship"}}]}`,
			"entry[0].resource.resourceType",
			fhirmodel.ErrUnknownResourceType,
		},
		{
			"null contained entry",
			`{"resourceType":"Patient","contained":[null]}`,
			"contained[0]",
			fhirmodel.ErrShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			if err == nil {
				t.Fatal("Parse() error = nil; want an error")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Parse() error = %v; want it to match %v", err, tt.sentinel)
			}
			var pe *fhirmodel.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse() error = %T; want *fhirmodel.ParseError", err)
			}
			if pe.Path != tt.path {
				t.Errorf("ParseError.Path = %q; want %q", pe.Path, tt.path)
			}
		})
	}
}

func TestParse_ChoiceConflict(t *testing.T) {
	data := `{
	  "resourceType": "Condition",
	  "subject": {"reference": "Patient/1"},
	  "onsetPeriod": {"start": "2020-01-01"},
	  "onsetAge": {"value": 40, "unit": "a", "system": "http://unitsofmeasure.org", "code": "a"}
	}`
	_, err := Parse([]byte(data))
	if !errors.Is(err, fhirmodel.ErrChoiceConflict) {
		t.Fatalf("Parse() error = %v; want a choice conflict", err)
	}
	var ce *fhirmodel.ChoiceConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("Parse() error = %T; want *fhirmodel.ChoiceConflictError", err)
	}
	if ce.Group != "onset" {
		t.Errorf("Group = %q; want onset", ce.Group)
	}
	if diff := cmp.Diff([]string{"onsetAge", "onsetPeriod"}, ce.Keys); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}

	nested := `{"resourceType":"Claim","item":[{"sequence":1,"servicedDate":"2024-01-01","servicedPeriod":{"start":"2024-01-01"}}]}`
	_, err = Parse([]byte(nested))
	if !errors.As(err, &ce) {
		t.Fatalf("Parse() error = %v; want *fhirmodel.ChoiceConflictError", err)
	}
	if ce.Path != "item[0]" || ce.Group != "serviced" {
		t.Errorf("conflict at %q group %q; want item[0] serviced", ce.Path, ce.Group)
	}
}

func TestParse_UnderscoreOnComplexAlternative(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantAge bool
	}{
		{
			name: "alone",
			json: `{"resourceType":"Condition","subject":{"reference":"Patient/1"},"_onsetPeriod":{"id":"x"}}`,
		},
		{
			name:    "next to another alternative",
			json:    `{"resourceType":"Condition","subject":{"reference":"Patient/1"},"onsetAge":{"value":40,"unit":"a","system":"http://unitsofmeasure.org","code":"a"},"_onsetPeriod":{"id":"x"}}`,
			wantAge: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte(tt.json))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			c := r.(*Condition)
			if _, ok := c.OnsetAge(); ok != tt.wantAge {
				t.Errorf("OnsetAge() ok = %v; want %v", ok, tt.wantAge)
			}
			if _, ok := c.Unknown["_onsetPeriod"]; !ok {
				t.Errorf("Unknown = %v; want _onsetPeriod kept", c.Unknown)
			}
			res := walk.Validate(c)
			if got := res.At("Condition._onsetPeriod"); len(got) != 1 || got[0].Code != fhirmodel.IssueTypeStructure {
				t.Errorf("issues at Condition._onsetPeriod = %v; want one structure error", got)
			}
		})
	}
}

func TestMarshal_ChoiceNotInGroup(t *testing.T) {
	c := &Condition{Note: []datatype.Annotation{{Author: &datatype.Quantity{}, Text: datatype.NewMarkdown("x")}}}

	_, err := c.MarshalJSON()
	if !errors.Is(err, datatype.ErrNotInGroup) {
		t.Fatalf("MarshalJSON() error = %v; want ErrNotInGroup", err)
	}
	if errors.Is(err, fhirmodel.ErrShape) {
		t.Errorf("MarshalJSON() error = %v matches ErrShape; want an encode error", err)
	}
	var me *datatype.MarshalError
	if !errors.As(err, &me) || me.Path != "note[0].author[x]" {
		t.Errorf("MarshalJSON() error = %v; want a MarshalError at note[0].author[x]", err)
	}
}

func TestCondition_Choices(t *testing.T) {
	r := mustParse(t, `{
	  "resourceType": "Condition",
	  "subject": {"reference": "Patient/1"},
	  "onsetAge": {"value": 40, "unit": "a", "system": "http://unitsofmeasure.org", "code": "a"},
	  "_abatementString": {"extension": [{"url": "http://example.org/note", "valueString": "unclear"}]}
	}`)
	c := r.(*Condition)

	age, ok := c.OnsetAge()
	if !ok || age.Value.String() != "40" {
		t.Errorf("OnsetAge() = %v, %v; want 40, true", age, ok)
	}
	if _, ok := c.OnsetDateTime(); ok {
		t.Error("OnsetDateTime() reported a value for an Age onset")
	}
	s, ok := c.AbatementString()
	if !ok {
		t.Fatal("AbatementString() = false; want the sidecar-only alternative")
	}
	if _, has := s.Get(); has {
		t.Error("abatementString should carry no value")
	}
	if len(s.Element.Extension) != 1 {
		t.Errorf("abatementString extensions = %d; want 1", len(s.Element.Extension))
	}

	dt := datatype.NewDateTime("2021-06-01")
	if err := c.SetOnset(&dt); err != nil {
		t.Fatalf("SetOnset() error = %v", err)
	}
	if _, ok := c.OnsetAge(); ok {
		t.Error("SetOnset() left the previous alternative in place")
	}
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Contains(out, []byte(`"onsetDateTime":"2021-06-01"`)) || bytes.Contains(out, []byte("onsetAge")) {
		t.Errorf("Marshal() = %s; want only onsetDateTime", out)
	}

	coding := datatype.NewCoding("http://snomed.info/sct", "1234")
	if err := c.SetOnset(&coding); !errors.Is(err, datatype.ErrNotInGroup) {
		t.Errorf("SetOnset(Coding) error = %v; want ErrNotInGroup", err)
	}
	if err := c.SetOnset(nil); err != nil || c.Onset != nil {
		t.Errorf("SetOnset(nil) = %v, onset %v; want it cleared", err, c.Onset)
	}
}

func TestCondition_NoteListPresence(t *testing.T) {
	empty := mustParse(t, `{"resourceType":"Condition","subject":{"reference":"Patient/1"},"note":[]}`).(*Condition)
	absent := mustParse(t, `{"resourceType":"Condition","subject":{"reference":"Patient/1"}}`).(*Condition)

	if empty.Note == nil || len(empty.Note) != 0 {
		t.Errorf("note [] decoded as %#v; want an empty non-nil slice", empty.Note)
	}
	if absent.Note != nil {
		t.Errorf("absent note decoded as %#v; want nil", absent.Note)
	}

	out, _ := json.Marshal(empty)
	if !bytes.Contains(out, []byte(`"note":[]`)) {
		t.Errorf("Marshal() = %s; want note:[] kept", out)
	}
	out, _ = json.Marshal(absent)
	if bytes.Contains(out, []byte(`"note"`)) {
		t.Errorf("Marshal() = %s; want no note key", out)
	}
}

func TestValidate_Resources(t *testing.T) {
	const (
		errSev  = fhirmodel.SeverityError
		warnSev = fhirmodel.SeverityWarning
	)
	tests := []struct {
		name string
		json string
		want []issueSummary
	}{
		{
			name: "valid patient",
			json: `{"resourceType":"Patient","id":"p1","active":true,"gender":"female","deceasedBoolean":false}`,
		},
		{
			name: "bad id and date",
			json: `{"resourceType":"Patient","id":"no spaces allowed","birthDate":"2020-13-01"}`,
			want: []issueSummary{
				{errSev, fhirmodel.IssueTypeInvalid, "", "Patient.id"},
				{errSev, fhirmodel.IssueTypeInvalid, "", "Patient.birthDate"},
			},
		},
		{
			name: "unknown gender code is kept as a warning",
			json: `{"resourceType":"Patient","gender":"robot"}`,
			want: []issueSummary{{warnSev, fhirmodel.IssueTypeCodeInvalid, "", "Patient.gender"}},
		},
		{
			name: "patient link requires other and type",
			json: `{"resourceType":"Patient","link":[{"id":"l1"}]}`,
			want: []issueSummary{
				{errSev, fhirmodel.IssueTypeRequired, "", "Patient.link[0].other"},
				{errSev, fhirmodel.IssueTypeRequired, "", "Patient.link[0].type"},
				{errSev, fhirmodel.IssueTypeInvariant, "ele-1", "Patient.link[0]"},
			},
		},
		{
			name: "condition subject and stage",
			json: `{"resourceType":"Condition","stage":[{"type":{"text":"clinical"}}]}`,
			want: []issueSummary{
				{errSev, fhirmodel.IssueTypeRequired, "", "Condition.subject"},
				{errSev, fhirmodel.IssueTypeInvariant, "con-1", "Condition.stage[0]"},
			},
		},
		{
			name: "claim diagnosis without diagnosis[x]",
			json: `{
			  "resourceType":"Claim","status":"active","type":{"text":"t"},"use":"claim",
			  "patient":{"reference":"Patient/1"},"created":"2024-01-01","provider":{"reference":"Organization/1"},
			  "priority":{"text":"normal"},"insurance":[{"sequence":1,"focal":true,"coverage":{"reference":"Coverage/1"}}],
			  "diagnosis":[{"sequence":1}]
			}`,
			want: []issueSummary{{errSev, fhirmodel.IssueTypeRequired, "", "Claim.diagnosis[0].diagnosis[x]"}},
		},
		{
			name: "adverse event",
			json: `{"resourceType":"AdverseEvent","actuality":"actual","subject":{"reference":"Patient/1"},"suspectEntity":[{"causality":[{"productRelatedness":"likely"}]}]}`,
			want: []issueSummary{{errSev, fhirmodel.IssueTypeRequired, "", "AdverseEvent.suspectEntity[0].instance"}},
		},
		{
			name: "contained resources are walked under their carrier",
			json: `{"resourceType":"Condition","subject":{"reference":"#p"},"contained":[{"resourceType":"Patient","id":"p","birthDate":"yesterday"}]}`,
			want: []issueSummary{{errSev, fhirmodel.IssueTypeInvalid, "", "Condition.contained[0].birthDate"}},
		},
		{
			name: "unknown element",
			json: `{"resourceType":"Patient","colour":"blue"}`,
			want: []issueSummary{{errSev, fhirmodel.IssueTypeStructure, "", "Patient.colour"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(walk.Validate(mustParse(t, tt.json)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_Deterministic(t *testing.T) {
	data := `{"resourceType":"Patient","id":"bad id","colour":"blue","zeta":1,"alpha":2,"gender":"robot",
	  "link":[{},{"other":{"reference":"Patient/2"}}],"name":[{"given":["A",""]}]}`
	first := summarize(walk.Validate(mustParse(t, data)))
	if len(first) == 0 {
		t.Fatal("Validate() found no issues")
	}
	for i := 0; i < 20; i++ {
		got := summarize(walk.Validate(mustParse(t, data)))
		if diff := cmp.Diff(first, got); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestBundle_Rules(t *testing.T) {
	const errSev = fhirmodel.SeverityError
	inv := func(key, path string) issueSummary {
		return issueSummary{errSev, fhirmodel.IssueTypeInvariant, key, path}
	}
	patient := `{"resourceType":"Patient","active":true}`

	tests := []struct {
		name string
		json string
		want []issueSummary
	}{
		{
			name: "valid collection",
			json: `{"resourceType":"Bundle","type":"collection","entry":[{"fullUrl":"urn:uuid:a","resource":` + patient + `}]}`,
		},
		{
			name: "missing type",
			json: `{"resourceType":"Bundle"}`,
			want: []issueSummary{{errSev, fhirmodel.IssueTypeRequired, "", "Bundle.type"}},
		},
		{
			name: "total outside search",
			json: `{"resourceType":"Bundle","type":"collection","total":2}`,
			want: []issueSummary{inv("bdl-1", "Bundle")},
		},
		{
			name: "search on a collection entry",
			json: `{"resourceType":"Bundle","type":"collection","entry":[{"resource":` + patient + `,"search":{"mode":"match"}}]}`,
			want: []issueSummary{inv("bdl-2", "Bundle")},
		},
		{
			name: "transaction entry without request",
			json: `{"resourceType":"Bundle","type":"transaction","entry":[{"resource":` + patient + `}]}`,
			want: []issueSummary{inv("bdl-3", "Bundle")},
		},
		{
			name: "request without method",
			json: `{"resourceType":"Bundle","type":"batch","entry":[{"resource":` + patient + `,"request":{"url":"Patient"}}]}`,
			want: []issueSummary{{errSev, fhirmodel.IssueTypeRequired, "", "Bundle.entry[0].request.method"}},
		},
		{
			name: "response on a collection entry",
			json: `{"resourceType":"Bundle","type":"collection","entry":[{"resource":` + patient + `,"response":{"status":"201"}}]}`,
			want: []issueSummary{inv("bdl-4", "Bundle")},
		},
		{
			name: "duplicate fullUrl",
			json: `{"resourceType":"Bundle","type":"collection","entry":[{"fullUrl":"urn:uuid:a","resource":` + patient + `},{"fullUrl":"urn:uuid:a","resource":` + patient + `}]}`,
			want: []issueSummary{inv("bdl-7", "Bundle")},
		},
		{
			name: "duplicate fullUrl with distinct versions",
			json: `{"resourceType":"Bundle","type":"collection","entry":[
			  {"fullUrl":"urn:uuid:a","resource":{"resourceType":"Patient","meta":{"versionId":"1"}}},
			  {"fullUrl":"urn:uuid:a","resource":{"resourceType":"Patient","meta":{"versionId":"2"}}}]}`,
		},
		{
			name: "entry without resource",
			json: `{"resourceType":"Bundle","type":"collection","entry":[{"fullUrl":"urn:uuid:a"}]}`,
			want: []issueSummary{inv("bdl-5", "Bundle.entry[0]")},
		},
		{
			name: "version specific fullUrl",
			json: `{"resourceType":"Bundle","type":"collection","entry":[{"fullUrl":"http://example.org/Patient/1/_history/2","resource":` + patient + `}]}`,
			want: []issueSummary{inv("bdl-8", "Bundle.entry[0]")},
		},
		{
			name: "document without identifier or date",
			json: `{"resourceType":"Bundle","type":"document"}`,
			want: []issueSummary{inv("bdl-9", "Bundle"), inv("bdl-10", "Bundle")},
		},
		{
			name: "errors inside entries",
			json: `{"resourceType":"Bundle","type":"collection","entry":[{"resource":` + patient + `},{"resource":{"resourceType":"Patient","birthDate":"soon"}}]}`,
			want: []issueSummary{{errSev, fhirmodel.IssueTypeInvalid, "", "Bundle.entry[1].resource.birthDate"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(walk.Validate(mustParse(t, tt.json)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNested(t *testing.T) {
	r := mustParse(t, `{
	  "resourceType": "Bundle", "type": "batch-response",
	  "entry": [
	    {"resource": {"resourceType": "Patient", "contained": [{"resourceType": "Patient", "id": "c"}]}, "response": {"status": "200"}},
	    {"response": {"status": "400", "outcome": {"resourceType": "Patient", "id": "o"}}}
	  ]
	}`)

	var paths []string
	for _, l := range Nested(r) {
		paths = append(paths, l.Path)
	}
	want := []string{
		"Bundle",
		"Bundle.entry[0].resource",
		"Bundle.entry[0].resource.contained[0]",
		"Bundle.entry[1].response.outcome",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("Nested() paths mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignIDAndClone(t *testing.T) {
	p := &Patient{}
	if err := p.AssignID("a"); err != nil {
		t.Fatalf("AssignID() error = %v", err)
	}
	if err := p.AssignID("a"); err != nil {
		t.Errorf("AssignID(same) error = %v; want nil", err)
	}
	if err := p.AssignID("b"); !errors.Is(err, fhirmodel.ErrIDAssigned) {
		t.Errorf("AssignID(other) error = %v; want ErrIDAssigned", err)
	}

	active := datatype.NewBoolean(true)
	p.Active = active
	c, err := Clone(p)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	c.Active = datatype.NewBoolean(false)
	if v, _ := p.Active.Get(); !v {
		t.Error("mutating the clone changed the original")
	}
	if c.ResourceID() != "a" {
		t.Errorf("clone id = %q; want a", c.ResourceID())
	}
}

func TestNewCollection(t *testing.T) {
	withID := &Patient{}
	_ = withID.AssignID("keep")
	subject := datatype.NewReference("Patient/keep")
	without := &Condition{Subject: &subject}

	b, err := NewCollection(withID, without)
	if err != nil {
		t.Fatalf("NewCollection() error = %v", err)
	}
	if typ, _ := b.Type.Enum(); typ != codes.BundleTypeCollection {
		t.Errorf("type = %q; want collection", typ)
	}
	if len(b.Entry) != 2 {
		t.Fatalf("entries = %d; want 2", len(b.Entry))
	}
	if without.ResourceID() != "" {
		t.Error("NewCollection() assigned an id to the caller's record")
	}
	if b.Entry[0].Resource != withID {
		t.Error("a record with an id should be used as is")
	}
	second := b.Entry[1].Resource
	full, _ := b.Entry[1].FullURL.Get()
	if second.ResourceID() == "" || full != "urn:uuid:"+second.ResourceID() {
		t.Errorf("entry fullUrl %q does not match assigned id %q", full, second.ResourceID())
	}
	for i, e := range b.Entry {
		if u, _ := e.FullURL.Get(); !strings.HasPrefix(u, "urn:uuid:") {
			t.Errorf("entry[%d].fullUrl = %q", i, u)
		}
	}
	if res := walk.Validate(b); !res.Valid() {
		t.Errorf("Validate() = %v; want a valid bundle", summarize(res))
	}
}

func TestRegistry(t *testing.T) {
	want := []string{"AdverseEvent", "Bundle", "Claim", "Condition", "Patient"}
	if diff := cmp.Diff(want, Types()); diff != "" {
		t.Errorf("Types() mismatch (-want +got):\n%s", diff)
	}
	if _, err := New("Observation"); !errors.Is(err, fhirmodel.ErrUnknownResourceType) {
		t.Errorf("New(Observation) error = %v; want ErrUnknownResourceType", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Register() twice did not panic")
		}
	}()
	Register("Patient", func() Resource { return new(Patient) })
}
