package fhirmodel

import "runtime"

// CodeChecker reports whether a code that is not part of a closed code set is known
// to some other source (an extensible code system loaded at runtime).
type CodeChecker interface {
	KnowsCode(system, code string) bool
}

// Option configures validation.
type Option func(*Options)

// Options holds all validation configuration.
type Options struct {
	// ValidateInvariants enables FHIRPath invariant evaluation on resources.
	ValidateInvariants bool

	// ValidateUnknownElements reports preserved unknown JSON keys as structure errors.
	ValidateUnknownElements bool

	// StrictCodes turns unknown codes into code-invalid errors, unless Terminology knows them.
	StrictCodes bool

	// MaxIssues stops collecting after this many issues. 0 means unlimited.
	MaxIssues int

	// WorkerCount is the number of parallel workers used by streaming validation.
	WorkerCount int

	// Terminology resolves codes outside the closed sets. May be nil.
	Terminology CodeChecker
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		ValidateInvariants:      true,
		ValidateUnknownElements: true,
		StrictCodes:             false,
		MaxIssues:               0, // unlimited
		WorkerCount:             runtime.NumCPU(),
	}
}

// Apply returns DefaultOptions with opts applied in order.
func Apply(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithInvariants enables FHIRPath invariant evaluation.
func WithInvariants(enable bool) Option {
	return func(o *Options) {
		o.ValidateInvariants = enable
	}
}

// WithUnknownElements enables reporting of unknown elements.
func WithUnknownElements(enable bool) Option {
	return func(o *Options) {
		o.ValidateUnknownElements = enable
	}
}

// WithStrictCodes makes unknown codes errors instead of warnings.
func WithStrictCodes(enable bool) Option {
	return func(o *Options) {
		o.StrictCodes = enable
	}
}

// WithMaxIssues caps the number of collected issues.
func WithMaxIssues(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxIssues = n
		}
	}
}

// WithWorkerCount sets the number of streaming workers.
func WithWorkerCount(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.WorkerCount = n
		}
	}
}

// WithTerminology sets the code checker consulted for codes outside closed sets.
func WithTerminology(tc CodeChecker) Option {
	return func(o *Options) {
		o.Terminology = tc
	}
}
