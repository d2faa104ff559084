// Package choice describes FHIR choice groups (elements named "value[x]", "onset[x]", ...)
// and resolves which physical JSON key of a group is populated.
package choice

import (
	"sort"
	"strings"
	"sync"

	fhirmodel "github.com/gofhir/model"
)

// Group is a logical element with a closed set of alternative types.
// The physical JSON key of an alternative is Name followed by Suffix(type).
type Group struct {
	// Name is the logical element name, e.g. "onset"
	Name string
	// Types are FHIR type codes in declaration order, e.g. "dateTime", "Age"
	Types []string
}

// NewGroup creates a group. Types are kept in the order given.
func NewGroup(name string, types ...string) Group {
	return Group{Name: name, Types: types}
}

// Path returns the [x] form of the group, e.g. "onset[x]".
func (g Group) Path() string {
	return g.Name + "[x]"
}

// Key returns the physical JSON key for typ, e.g. "onsetDateTime".
func (g Group) Key(typ string) string {
	return g.Name + Suffix(typ)
}

// Allows reports whether typ is one of the group's alternatives.
func (g Group) Allows(typ string) bool {
	for _, t := range g.Types {
		if t == typ {
			return true
		}
	}
	return false
}

// Match maps a physical key (or its "_" sidecar) back to the alternative type.
func (g Group) Match(key string) (typ string, sidecar bool, ok bool) {
	if strings.HasPrefix(key, "_") {
		key = key[1:]
		sidecar = true
	}
	if !strings.HasPrefix(key, g.Name) {
		return "", false, false
	}
	suffix := key[len(g.Name):]
	for _, t := range g.Types {
		if Suffix(t) == suffix {
			return t, sidecar, true
		}
	}
	return "", false, false
}

// Resolve finds the populated alternative of g. has reports whether a JSON key is present.
// A type counts as present when its value key is, or, for primitive types, its sidecar key.
// A "_" key of a complex type is not a sidecar and is ignored here.
// It returns "" when no alternative is present and a *fhirmodel.ChoiceConflictError
// listing every present key when more than one type is.
func Resolve(g Group, has func(key string) bool) (typ string, keys []string, err error) {
	var found []string
	for _, t := range g.Types {
		k := g.Key(t)
		hit := false
		if has(k) {
			keys = append(keys, k)
			hit = true
		}
		if IsPrimitive(t) && has("_"+k) {
			keys = append(keys, "_"+k)
			hit = true
		}
		if hit {
			found = append(found, t)
		}
	}

	switch len(found) {
	case 0:
		return "", nil, nil
	case 1:
		return found[0], keys, nil
	default:
		sort.Strings(keys)
		return "", keys, &fhirmodel.ChoiceConflictError{Group: g.Name, Keys: keys}
	}
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Group)
)

// Register records a group under a qualified name such as "Condition.onset" and returns it.
// Struct fields refer to registered groups from their `fhir:"onset,choice=Condition.onset"` tag.
// Registering the same name twice panics.
func Register(qualified string, types ...string) Group {
	name := qualified
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		name = qualified[i+1:]
	}
	g := NewGroup(name, types...)

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[qualified]; dup {
		panic("choice: group registered twice: " + qualified)
	}
	registry[qualified] = g
	return g
}

// Lookup returns a registered group.
func Lookup(qualified string) (Group, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	g, ok := registry[qualified]
	return g, ok
}

// Registered returns the qualified names of all registered groups, sorted.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
