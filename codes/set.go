// Package codes holds the closed FHIR code sets used by the model.
//
// Each code type is a string type with one constant per known code. Parsing is an
// exact string match: no trimming and no case folding. Unknown codes are not errors;
// records keep them as raw values and Known reports whether a value is in the set.
package codes

import (
	"sort"
	"sync"
)

// Enum is the constraint satisfied by every code type in this package.
type Enum interface {
	~string
	Known() bool
	System() string
}

// Set is a closed code set bound to a code system URL.
type Set[E ~string] struct {
	name   string
	system string
	codes  []E
	index  map[E]struct{}
}

// NewSet creates a set and registers it for listing. Codes keep the order given.
func NewSet[E ~string](name, system string, codes ...E) *Set[E] {
	s := &Set[E]{
		name:   name,
		system: system,
		codes:  codes,
		index:  make(map[E]struct{}, len(codes)),
	}
	for _, c := range codes {
		s.index[c] = struct{}{}
	}
	register(s)
	return s
}

// Parse returns the code for s, or ("", false) if s is not in the set.
func (s *Set[E]) Parse(v string) (E, bool) {
	if _, ok := s.index[E(v)]; ok {
		return E(v), true
	}
	return "", false
}

// Contains reports whether c is a known code.
func (s *Set[E]) Contains(c E) bool {
	_, ok := s.index[c]
	return ok
}

// Codes returns the known codes in declaration order.
func (s *Set[E]) Codes() []E {
	return append([]E(nil), s.codes...)
}

// Name returns the set name, e.g. "ClaimUse".
func (s *Set[E]) Name() string { return s.name }

// System returns the code system URL.
func (s *Set[E]) System() string { return s.system }

// Strings returns the known codes as plain strings.
func (s *Set[E]) Strings() []string {
	out := make([]string, len(s.codes))
	for i, c := range s.codes {
		out[i] = string(c)
	}
	return out
}

// Info is the untyped view of a Set.
type Info interface {
	Name() string
	System() string
	Strings() []string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Info)
)

func register(s Info) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[s.Name()] = s
}

// All returns every registered set, sorted by name.
func All() []Info {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Info, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Lookup returns a registered set by name.
func Lookup(name string) (Info, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[name]
	return s, ok
}
