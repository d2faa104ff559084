// Package fhirmodel holds the shared types of the FHIR R4 model: validation issues and
// results, options, typed decode errors and metrics.
//
// The model itself lives in the sub-packages:
//
//   - choice: choice group definitions and wire key resolution
//   - codes: closed code sets with exact string round trip
//   - datatype: Element, Extension, primitives with their _foo sidecars, complex types
//   - resource: Patient, Condition, Claim, AdverseEvent, Bundle and the type registry
//   - walk: the depth-first validation walk
//   - constraint: FHIRPath invariants
//   - terminology: code lookup for extensible code systems
//   - engine: walk, invariants, terminology and metrics behind one Validator
//   - stream: ordered parallel validation of Bundles and NDJSON
//
// # Quick Start
//
//	r, err := resource.Parse(data)
//	if err != nil {
//	    // shape errors and choice conflicts
//	    var cc *fhirmodel.ChoiceConflictError
//	    if errors.As(err, &cc) {
//	        fmt.Println(cc.Group, cc.Keys)
//	    }
//	    return err
//	}
//
//	v := engine.New(fhirmodel.WithStrictCodes(true))
//	result, _ := v.Validate(ctx, r)
//	for _, issue := range result.Issues {
//	    fmt.Println(issue)
//	}
//
// Parse errors are hard errors. Everything found by validation is reported as issues and
// Result.Valid is derived from them.
package fhirmodel
