package fhirmodel

// FHIRVersion represents a FHIR specification version.
type FHIRVersion string

// R4 is FHIR Release 4, the only release modelled by this module.
const R4 FHIRVersion = "R4"

// Version is the module release.
const Version = "0.4.0"

// String returns the version string.
func (v FHIRVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a supported FHIR version.
func (v FHIRVersion) IsValid() bool {
	return v == R4
}

// Release returns the full FHIR version string used in meta and CapabilityStatements.
func (v FHIRVersion) Release() string {
	switch v {
	case R4:
		return "4.0.1"
	default:
		return ""
	}
}
