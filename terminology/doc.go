// Package terminology keeps the code systems and value sets the validator can consult
// for codes outside the closed sets of package codes.
//
// A Registry starts with one CodeSystem per built-in code set and accepts more at
// runtime:
//
//	reg := terminology.NewRegistry()
//	if _, err := reg.LoadFile("CodeSystem-claim-type.json"); err != nil {
//		return err
//	}
//	res := walk.Validate(claim, fhirmodel.WithStrictCodes(true), fhirmodel.WithTerminology(reg))
package terminology
