package datatype

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/choice"
	"github.com/gofhir/model/walk"
)

// Primitive pairs a primitive value (JSON key "foo") with its element metadata
// (JSON key "_foo"). Either half may be set without the other.
type Primitive[T any] struct {
	Value   *T
	Element *Element
}

// Of returns a Primitive holding v.
func Of[T any](v T) Primitive[T] {
	return Primitive[T]{Value: &v}
}

// Get returns the value and whether it is present.
func (p Primitive[T]) Get() (T, bool) {
	if p.Value == nil {
		var zero T
		return zero, false
	}
	return *p.Value, true
}

// Set replaces the value and keeps the metadata.
func (p *Primitive[T]) Set(v T) {
	p.Value = &v
}

// IsZero reports whether both halves are absent.
func (p Primitive[T]) IsZero() bool {
	return p.Value == nil && p.Element == nil
}

func (p *Primitive[T]) hasValue() bool { return p.Value != nil }
func (p *Primitive[T]) sidecar() **Element { return &p.Element }

func (p *Primitive[T]) decodeValue(raw []byte) error {
	var v T
	want := jsonKindFor(reflect.TypeOf(v).Kind())
	if got := jsonKind(raw); got != want {
		return fmt.Errorf("expected %s, got %s", want, got)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%s is not a valid %T", raw, v)
	}
	p.Value = &v
	return nil
}

func (p *Primitive[T]) encodeValue(buf *bytes.Buffer) error {
	return writeJSON(buf, *p.Value)
}

// primitive is implemented by pointers to every named primitive type.
type primitive interface {
	Choice
	IsZero() bool
	hasValue() bool
	sidecar() **Element
	decodeValue(raw []byte) error
	encodeValue(buf *bytes.Buffer) error
}

// walkPrimitive checks the lexical form of the value and walks the metadata half.
// check returns a problem description, or "" when the value is well formed.
func walkPrimitive[T any](w *walk.Walker, p *Primitive[T], check func(T) string) {
	if p.Value != nil && check != nil {
		if msg := check(*p.Value); msg != "" {
			w.Invalid("%s", msg)
		}
	}
	if p.Element == nil {
		return
	}
	mark := w.EnterSidecar()
	defer w.LeaveSidecar(mark)
	if p.Value == nil && len(p.Element.Extension) == 0 {
		w.Invariant(false, "ele-1", fhirmodel.SeverityError, "All FHIR elements must have a @value or children")
	}
	walkStruct(w, reflect.ValueOf(p.Element).Elem(), false)
}

// Lexical forms from the R4 primitive type definitions.
var (
	codeRegex         = regexp.MustCompile(`^\S+( \S+)*$`)
	idRegex           = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	uriRegex          = regexp.MustCompile(`^\S+$`)
	oidRegex          = regexp.MustCompile(`^urn:oid:[012](\.(0|[1-9]\d*))+$`)
	uuidRegex         = regexp.MustCompile(`^urn:uuid:[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	base64BinaryRegex = regexp.MustCompile(`^(\s*([0-9a-zA-Z+/=]){4}\s*)+$`)
	dateRegex         = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01]))?)?$`)
	dateTimeRegex     = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01])(T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00)))?)?)?$`)
	instantRegex      = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[012])-(0[1-9]|[12]\d|3[01])T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))$`)
	timeRegex         = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?$`)
)

func matches(re *regexp.Regexp, typ string) func(string) string {
	return func(s string) string {
		if re.MatchString(s) {
			return ""
		}
		return fmt.Sprintf("'%s' is not a valid %s", s, typ)
	}
}

func nonEmpty(typ string) func(string) string {
	return func(s string) string {
		if s == "" {
			return fmt.Sprintf("%s values must not be empty", typ)
		}
		return ""
	}
}

func atLeast(lower int32, typ string) func(int32) string {
	return func(v int32) string {
		if v < lower {
			return fmt.Sprintf("%d is not a valid %s (minimum %d)", v, typ, lower)
		}
		return ""
	}
}

var (
	checkCode         = matches(codeRegex, choice.TypeCode)
	checkID           = matches(idRegex, choice.TypeID)
	checkURI          = matches(uriRegex, choice.TypeURI)
	checkURL          = matches(uriRegex, choice.TypeURL)
	checkCanonical    = matches(uriRegex, choice.TypeCanonical)
	checkOID          = matches(oidRegex, choice.TypeOID)
	checkUUID         = matches(uuidRegex, choice.TypeUUID)
	checkBase64Binary = matches(base64BinaryRegex, choice.TypeBase64Binary)
	checkDate         = matches(dateRegex, choice.TypeDate)
	checkDateTime     = matches(dateTimeRegex, choice.TypeDateTime)
	checkInstant      = matches(instantRegex, choice.TypeInstant)
	checkTime         = matches(timeRegex, choice.TypeTime)
	checkString       = nonEmpty(choice.TypeString)
	checkMarkdown     = nonEmpty(choice.TypeMarkdown)
	checkPositiveInt  = atLeast(1, choice.TypePositiveInt)
	checkUnsignedInt  = atLeast(0, choice.TypeUnsignedInt)
)

// Boolean is a FHIR boolean.
type Boolean struct{ Primitive[bool] }

// Integer is a FHIR integer (32-bit signed).
type Integer struct{ Primitive[int32] }

// PositiveInt is a FHIR positiveInt. Values below 1 are reported at validation.
type PositiveInt struct{ Primitive[int32] }

// UnsignedInt is a FHIR unsignedInt. Negative values are reported at validation.
type UnsignedInt struct{ Primitive[int32] }

// String is a FHIR string.
type String struct{ Primitive[string] }

// Markdown is a FHIR markdown string.
type Markdown struct{ Primitive[string] }

// Code is a FHIR code that is not bound to a closed set. See CodeOf for bound codes.
type Code struct{ Primitive[string] }

// ID is a FHIR id: up to 64 letters, digits, '-' and '.'.
type ID struct{ Primitive[string] }

// URI is a FHIR uri.
type URI struct{ Primitive[string] }

// URL is a FHIR url.
type URL struct{ Primitive[string] }

// Canonical is a FHIR canonical reference, optionally with a |version suffix.
type Canonical struct{ Primitive[string] }

// OID is a FHIR oid (urn:oid:...).
type OID struct{ Primitive[string] }

// UUID is a FHIR uuid (urn:uuid:...).
type UUID struct{ Primitive[string] }

// Base64Binary is base64 encoded content.
type Base64Binary struct{ Primitive[string] }

// Date is a FHIR date: YYYY, YYYY-MM or YYYY-MM-DD.
type Date struct{ Primitive[string] }

// DateTime is a FHIR dateTime. A time part requires a zone.
type DateTime struct{ Primitive[string] }

// Instant is a FHIR instant: a full timestamp with zone.
type Instant struct{ Primitive[string] }

// Time is a FHIR time of day.
type Time struct{ Primitive[string] }

// Constructors returning a primitive with only its value set.

func NewBoolean(v bool) Boolean { return Boolean{Of(v)} }
func NewInteger(v int32) Integer { return Integer{Of(v)} }
func NewPositiveInt(v int32) PositiveInt { return PositiveInt{Of(v)} }
func NewUnsignedInt(v int32) UnsignedInt { return UnsignedInt{Of(v)} }
func NewString(v string) String { return String{Of(v)} }
func NewMarkdown(v string) Markdown { return Markdown{Of(v)} }
func NewCode(v string) Code { return Code{Of(v)} }
func NewID(v string) ID { return ID{Of(v)} }
func NewURI(v string) URI { return URI{Of(v)} }
func NewURL(v string) URL { return URL{Of(v)} }
func NewCanonical(v string) Canonical { return Canonical{Of(v)} }
func NewOID(v string) OID { return OID{Of(v)} }
func NewUUID(v string) UUID { return UUID{Of(v)} }
func NewBase64Binary(v string) Base64Binary { return Base64Binary{Of(v)} }
func NewDate(v string) Date { return Date{Of(v)} }
func NewDateTime(v string) DateTime { return DateTime{Of(v)} }
func NewInstant(v string) Instant { return Instant{Of(v)} }
func NewTime(v string) Time { return Time{Of(v)} }

func (*Boolean) FHIRType() string { return choice.TypeBoolean }
func (*Integer) FHIRType() string { return choice.TypeInteger }
func (*PositiveInt) FHIRType() string { return choice.TypePositiveInt }
func (*UnsignedInt) FHIRType() string { return choice.TypeUnsignedInt }
func (*String) FHIRType() string { return choice.TypeString }
func (*Markdown) FHIRType() string { return choice.TypeMarkdown }
func (*Code) FHIRType() string { return choice.TypeCode }
func (*ID) FHIRType() string { return choice.TypeID }
func (*URI) FHIRType() string { return choice.TypeURI }
func (*URL) FHIRType() string { return choice.TypeURL }
func (*Canonical) FHIRType() string { return choice.TypeCanonical }
func (*OID) FHIRType() string { return choice.TypeOID }
func (*UUID) FHIRType() string { return choice.TypeUUID }
func (*Base64Binary) FHIRType() string { return choice.TypeBase64Binary }
func (*Date) FHIRType() string { return choice.TypeDate }
func (*DateTime) FHIRType() string { return choice.TypeDateTime }
func (*Instant) FHIRType() string { return choice.TypeInstant }
func (*Time) FHIRType() string { return choice.TypeTime }

func (p *Boolean) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, nil) }
func (p *Integer) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, nil) }
func (p *PositiveInt) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkPositiveInt) }
func (p *UnsignedInt) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkUnsignedInt) }
func (p *String) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkString) }
func (p *Markdown) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkMarkdown) }
func (p *Code) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkCode) }
func (p *ID) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkID) }
func (p *URI) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkURI) }
func (p *URL) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkURL) }
func (p *Canonical) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkCanonical) }
func (p *OID) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkOID) }
func (p *UUID) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkUUID) }
func (p *Base64Binary) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkBase64Binary) }
func (p *Date) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkDate) }
func (p *DateTime) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkDateTime) }
func (p *Instant) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkInstant) }
func (p *Time) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, checkTime) }
