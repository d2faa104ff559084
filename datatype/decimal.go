package datatype

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gofhir/model/choice"
	"github.com/gofhir/model/walk"
)

// Decimal is a FHIR decimal. The wire precision is kept: 1.50 re-encodes as 1.50.
type Decimal struct{ Primitive[decimal.Decimal] }

// NewDecimal returns a Decimal holding d.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{Of(d)} }

// ParseDecimal parses the JSON number form of a decimal.
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return NewDecimal(d), nil
}

func (*Decimal) FHIRType() string { return choice.TypeDecimal }

func (p *Decimal) Walk(w *walk.Walker) { walkPrimitive(w, &p.Primitive, nil) }

// String returns the value with its original scale, or "" when absent.
func (p Decimal) String() string {
	if p.Value == nil {
		return ""
	}
	return formatDecimal(*p.Value)
}

func (p *Decimal) decodeValue(raw []byte) error {
	if got := jsonKind(raw); got != kindNumber {
		return fmt.Errorf("expected %s, got %s", kindNumber, got)
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return fmt.Errorf("%s is not a valid decimal", raw)
	}
	p.Value = &d
	return nil
}

func (p *Decimal) encodeValue(buf *bytes.Buffer) error {
	buf.WriteString(formatDecimal(*p.Value))
	return nil
}

func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
