package fhirmodel

import (
	"errors"
	"strings"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrShape reports a payload that does not match the expected JSON shape.
	ErrShape = errors.New("fhir: payload shape mismatch")

	// ErrChoiceConflict reports more than one populated alternative of a choice group.
	ErrChoiceConflict = errors.New("fhir: choice conflict")

	// ErrUnknownResourceType reports a resourceType with no registered record.
	ErrUnknownResourceType = errors.New("fhir: unknown resourceType")

	// ErrIDAssigned reports an attempt to change the id of a persisted record.
	ErrIDAssigned = errors.New("fhir: id already assigned")
)

// ParseError is a shape or type error at a specific element of the payload.
type ParseError struct {
	// Path is the element path, e.g. "Claim.item[0].sequence"
	Path string
	// Err is the underlying cause
	Err error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "fhir: parse: " + e.Err.Error()
	}
	return "fhir: parse " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrShape.
func (e *ParseError) Is(target error) bool { return target == ErrShape }

// ChoiceConflictError reports that a choice group had more than one alternative on the wire.
type ChoiceConflictError struct {
	// Path is the element holding the group
	Path string
	// Group is the logical name, e.g. "onset"
	Group string
	// Keys are the conflicting wire keys, e.g. ["onsetAge", "onsetPeriod"]
	Keys []string
}

func (e *ChoiceConflictError) Error() string {
	where := e.Group + "[x]"
	if e.Path != "" {
		where = e.Path + "." + where
	}
	return "fhir: choice conflict at " + where + ": " + strings.Join(e.Keys, ", ")
}

// Is makes every ChoiceConflictError match ErrChoiceConflict.
func (e *ChoiceConflictError) Is(target error) bool { return target == ErrChoiceConflict }

// NewParseError builds a ParseError for a single element.
func NewParseError(path string, err error) error {
	return &ParseError{Path: path, Err: err}
}

// PrefixPath prepends an element path to the location carried by err as decoding unwinds.
// Errors that carry no location are wrapped in a ParseError.
func PrefixPath(prefix string, err error) error {
	if err == nil || prefix == "" {
		return err
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: joinPath(prefix, pe.Path), Err: pe.Err}
	}
	var ce *ChoiceConflictError
	if errors.As(err, &ce) {
		return &ChoiceConflictError{Path: joinPath(prefix, ce.Path), Group: ce.Group, Keys: ce.Keys}
	}
	return &ParseError{Path: prefix, Err: err}
}

func joinPath(prefix, rest string) string {
	switch {
	case rest == "":
		return prefix
	case strings.HasPrefix(rest, "["):
		return prefix + rest
	default:
		return prefix + "." + rest
	}
}
