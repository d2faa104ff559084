package datatype

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/gofhir/model/choice"
	"github.com/gofhir/model/walk"
)

// Choice is the value of a choice group such as onset[x]. It is implemented by
// pointers to every primitive and complex datatype, so a record field of this type
// holds at most one alternative.
type Choice interface {
	walk.Node
	FHIRType() string
}

// ErrNotInGroup reports a value whose type is not an alternative of the group.
var ErrNotInGroup = errors.New("datatype: type not allowed in choice group")

// ChoiceAs returns c as T when c holds a T.
//
//	if age, ok := datatype.ChoiceAs[*datatype.Age](cond.Onset); ok { ... }
func ChoiceAs[T Choice](c Choice) (T, bool) {
	v, ok := c.(T)
	if ok && isNil(v) {
		ok = false
	}
	return v, ok
}

// Assign checks v against g and returns the value to store in the group's field.
// A nil v clears the group.
func Assign(g choice.Group, v Choice) (Choice, error) {
	if v == nil || isNil(v) {
		return nil, nil
	}
	if !g.Allows(v.FHIRType()) {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotInGroup, v.FHIRType(), g.Path())
	}
	return v, nil
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil())
}

// Groups of the datatypes in this package.
var (
	ExtensionValue = choice.Register("Extension.value", append(append([]string(nil), choice.PrimitiveTypes...),
		"Address", "Age", "Annotation", "Attachment", "CodeableConcept", "Coding", "ContactPoint",
		"Count", "Distance", "Duration", "HumanName", "Identifier", "Meta", "Money", "Period",
		"Quantity", "Range", "Ratio", "Reference", "Timing")...)
	AnnotationAuthor = choice.Register("Annotation.author", "Reference", choice.TypeString)
	TimingBounds     = choice.Register("Timing.repeat.bounds", "Duration", "Range", "Period")
)

var factories = map[string]func() Choice{
	choice.TypeBoolean:      func() Choice { return new(Boolean) },
	choice.TypeInteger:      func() Choice { return new(Integer) },
	choice.TypePositiveInt:  func() Choice { return new(PositiveInt) },
	choice.TypeUnsignedInt:  func() Choice { return new(UnsignedInt) },
	choice.TypeDecimal:      func() Choice { return new(Decimal) },
	choice.TypeString:       func() Choice { return new(String) },
	choice.TypeMarkdown:     func() Choice { return new(Markdown) },
	choice.TypeCode:         func() Choice { return new(Code) },
	choice.TypeID:           func() Choice { return new(ID) },
	choice.TypeURI:          func() Choice { return new(URI) },
	choice.TypeURL:          func() Choice { return new(URL) },
	choice.TypeCanonical:    func() Choice { return new(Canonical) },
	choice.TypeOID:          func() Choice { return new(OID) },
	choice.TypeUUID:         func() Choice { return new(UUID) },
	choice.TypeBase64Binary: func() Choice { return new(Base64Binary) },
	choice.TypeDate:         func() Choice { return new(Date) },
	choice.TypeDateTime:     func() Choice { return new(DateTime) },
	choice.TypeInstant:      func() Choice { return new(Instant) },
	choice.TypeTime:         func() Choice { return new(Time) },
	"Address":               func() Choice { return new(Address) },
	"Age":                   func() Choice { return new(Age) },
	"Annotation":            func() Choice { return new(Annotation) },
	"Attachment":            func() Choice { return new(Attachment) },
	"CodeableConcept":       func() Choice { return new(CodeableConcept) },
	"Coding":                func() Choice { return new(Coding) },
	"ContactPoint":          func() Choice { return new(ContactPoint) },
	"Count":                 func() Choice { return new(Count) },
	"Distance":              func() Choice { return new(Distance) },
	"Duration":              func() Choice { return new(Duration) },
	"HumanName":             func() Choice { return new(HumanName) },
	"Identifier":            func() Choice { return new(Identifier) },
	"Meta":                  func() Choice { return new(Meta) },
	"Money":                 func() Choice { return new(Money) },
	"Period":                func() Choice { return new(Period) },
	"Quantity":              func() Choice { return new(Quantity) },
	"Range":                 func() Choice { return new(Range) },
	"Ratio":                 func() Choice { return new(Ratio) },
	"Reference":             func() Choice { return new(Reference) },
	"Timing":                func() Choice { return new(Timing) },
}

// New returns a zero value of the datatype named typ, ready to decode into.
func New(typ string) (Choice, bool) {
	f, ok := factories[typ]
	if !ok {
		return nil, false
	}
	return f(), true
}
