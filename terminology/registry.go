package terminology

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/model/codes"
)

// Registry holds code systems and value sets in memory. It implements
// fhirmodel.CodeChecker and is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	codeSystems map[string]*codeSystem
	valueSets   map[string]*valueSet
}

type codeSystem struct {
	url   string
	codes map[string]string // code -> display
}

type valueSet struct {
	url   string
	codes map[string]map[string]string // system -> code -> display
}

// NewRegistry returns a registry holding a CodeSystem for every built-in code set.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, set := range codes.All() {
		// Built-in sets always carry a system URL.
		_ = r.LoadR4CodeSystem(CodeSystemFor(set))
	}
	return r
}

// NewEmptyRegistry returns a registry with nothing loaded.
func NewEmptyRegistry() *Registry {
	return &Registry{
		codeSystems: make(map[string]*codeSystem),
		valueSets:   make(map[string]*valueSet),
	}
}

// CodeSystemFor converts a built-in code set to an R4 CodeSystem.
func CodeSystemFor(set codes.Info) *r4.CodeSystem {
	url := set.System()
	values := set.Strings()
	concepts := make([]r4.CodeSystemConcept, len(values))
	for i := range values {
		concepts[i] = r4.CodeSystemConcept{Code: &values[i]}
	}
	return &r4.CodeSystem{Url: &url, Concept: concepts}
}

// LoadR4CodeSystem adds cs, replacing any code system with the same URL.
func (r *Registry) LoadR4CodeSystem(cs *r4.CodeSystem) error {
	if cs == nil || cs.Url == nil || *cs.Url == "" {
		return fmt.Errorf("codesystem is nil or has no URL")
	}
	data := &codeSystem{url: *cs.Url, codes: make(map[string]string)}
	collectConcepts(cs.Concept, data.codes)

	r.mu.Lock()
	r.codeSystems[data.url] = data
	r.mu.Unlock()
	return nil
}

func collectConcepts(concepts []r4.CodeSystemConcept, into map[string]string) {
	for i := range concepts {
		c := &concepts[i]
		if c.Code != nil {
			into[*c.Code] = deref(c.Display)
		}
		collectConcepts(c.Concept, into)
	}
}

// LoadR4ValueSet adds vs. Codes come from the expansion when there is one, otherwise
// from the concepts listed in compose.include. Filters are not expanded.
func (r *Registry) LoadR4ValueSet(vs *r4.ValueSet) error {
	if vs == nil || vs.Url == nil || *vs.Url == "" {
		return fmt.Errorf("valueset is nil or has no URL")
	}
	data := &valueSet{url: stripVersion(*vs.Url), codes: make(map[string]map[string]string)}

	switch {
	case vs.Expansion != nil:
		collectContains(vs.Expansion.Contains, data)
	case vs.Compose != nil:
		for i := range vs.Compose.Include {
			inc := &vs.Compose.Include[i]
			if inc.System == nil {
				continue
			}
			for j := range inc.Concept {
				if c := &inc.Concept[j]; c.Code != nil {
					data.add(*inc.System, *c.Code, deref(c.Display))
				}
			}
		}
	}

	r.mu.Lock()
	r.valueSets[data.url] = data
	r.mu.Unlock()
	return nil
}

func collectContains(contains []r4.ValueSetExpansionContains, into *valueSet) {
	for i := range contains {
		c := &contains[i]
		if c.System != nil && c.Code != nil {
			into.add(*c.System, *c.Code, deref(c.Display))
		}
		collectContains(c.Contains, into)
	}
}

func (vs *valueSet) add(system, code, display string) {
	if vs.codes[system] == nil {
		vs.codes[system] = make(map[string]string)
	}
	vs.codes[system][code] = display
}

// KnowsCode reports whether code is defined by the code system at system, or listed
// under that system by any loaded value set.
func (r *Registry) KnowsCode(system, code string) bool {
	_, ok := r.Lookup(system, code)
	return ok
}

// Lookup returns the display of a known code.
func (r *Registry) Lookup(system, code string) (display string, ok bool) {
	system = stripVersion(system)
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cs, found := r.codeSystems[system]; found {
		if display, ok = cs.codes[code]; ok {
			return display, true
		}
	}
	for _, vs := range r.valueSets {
		if display, ok = vs.codes[system][code]; ok {
			return display, true
		}
	}
	return "", false
}

// InValueSet reports whether the value set at url contains code. An empty system
// matches the code in any system of the value set.
func (r *Registry) InValueSet(url, system, code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vs, ok := r.valueSets[stripVersion(url)]
	if !ok {
		return false
	}
	if system != "" {
		_, ok = vs.codes[system][code]
		return ok
	}
	for _, byCode := range vs.codes {
		if _, ok = byCode[code]; ok {
			return true
		}
	}
	return false
}

// CodeSystems returns the URLs of the loaded code systems, sorted.
func (r *Registry) CodeSystems() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	urls := make([]string, 0, len(r.codeSystems))
	for url := range r.codeSystems {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

// CountCodeSystems returns the number of loaded code systems.
func (r *Registry) CountCodeSystems() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.codeSystems)
}

// CountValueSets returns the number of loaded value sets.
func (r *Registry) CountValueSets() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.valueSets)
}

// stripVersion removes a "|version" suffix from a canonical URL.
func stripVersion(url string) string {
	if i := strings.IndexByte(url, '|'); i >= 0 {
		return url[:i]
	}
	return url
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
