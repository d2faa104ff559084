package choice

// Primitive type codes.
const (
	TypeBoolean      = "boolean"
	TypeInteger      = "integer"
	TypePositiveInt  = "positiveInt"
	TypeUnsignedInt  = "unsignedInt"
	TypeDecimal      = "decimal"
	TypeString       = "string"
	TypeMarkdown     = "markdown"
	TypeCode         = "code"
	TypeID           = "id"
	TypeURI          = "uri"
	TypeURL          = "url"
	TypeCanonical    = "canonical"
	TypeOID          = "oid"
	TypeUUID         = "uuid"
	TypeBase64Binary = "base64Binary"
	TypeDate         = "date"
	TypeDateTime     = "dateTime"
	TypeInstant      = "instant"
	TypeTime         = "time"
)

// PrimitiveTypes lists every primitive type code, in FHIR order.
var PrimitiveTypes = []string{
	TypeBase64Binary, TypeBoolean, TypeCanonical, TypeCode, TypeDate, TypeDateTime,
	TypeDecimal, TypeID, TypeInstant, TypeInteger, TypeMarkdown, TypeOID,
	TypePositiveInt, TypeString, TypeTime, TypeUnsignedInt, TypeURI, TypeURL, TypeUUID,
}

var primitiveSet = func() map[string]bool {
	m := make(map[string]bool, len(PrimitiveTypes))
	for _, t := range PrimitiveTypes {
		m[t] = true
	}
	return m
}()

// IsPrimitive returns true if the type code is a FHIR primitive type.
func IsPrimitive(typ string) bool {
	return primitiveSet[typ]
}

// suffixes holds the irregular cases. Everything else is the type code with its
// first letter upper-cased.
var suffixes = map[string]string{
	TypeOID:  "Oid",
	TypeUUID: "Uuid",
	TypeURI:  "Uri",
	TypeURL:  "Url",
	TypeID:   "Id",
}

// Suffix returns the key suffix for a type code: "dateTime" gives "DateTime",
// "CodeableConcept" stays "CodeableConcept".
func Suffix(typ string) string {
	if s, ok := suffixes[typ]; ok {
		return s
	}
	return upperFirst(typ)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
