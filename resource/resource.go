// Package resource defines the FHIR records of the model and the registry that
// decodes them by resourceType.
package resource

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	gojson "github.com/goccy/go-json"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/constraint"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/walk"
)

// Resource is a top-level FHIR record.
type Resource interface {
	walk.Node
	json.Marshaler
	json.Unmarshaler

	// ResourceType returns the wire name, e.g. "Claim".
	ResourceType() string
	// ResourceID returns the logical id, or "".
	ResourceID() string
	// AssignID sets the logical id. It fails with ErrIDAssigned if a different id is set.
	AssignID(id string) error
	// Invariants returns the FHIRPath rules that apply to the record as a whole.
	Invariants() []constraint.Invariant
}

// Base holds the elements shared by every resource.
type Base struct {
	ID            string         `fhir:"id"`
	Meta          *datatype.Meta `fhir:"meta"`
	ImplicitRules datatype.URI   `fhir:"implicitRules"`
	Language      datatype.Code  `fhir:"language"`

	Unknown map[string]json.RawMessage `fhir:",unknown"`
}

// ResourceID returns the logical id.
func (b *Base) ResourceID() string { return b.ID }

// AssignID sets the logical id once. Assigning the same id again is a no-op.
func (b *Base) AssignID(id string) error {
	if b.ID != "" && b.ID != id {
		return fmt.Errorf("%w: %s", fhirmodel.ErrIDAssigned, b.ID)
	}
	b.ID = id
	return nil
}

// DomainResource is the base of resources with narrative, contained resources and extensions.
type DomainResource struct {
	Base
	Text              *datatype.Narrative  `fhir:"text"`
	Contained         []Resource           `fhir:"contained"`
	Extension         []datatype.Extension `fhir:"extension"`
	ModifierExtension []datatype.Extension `fhir:"modifierExtension"`
}

func (d *DomainResource) nested() []Located {
	out := make([]Located, 0, len(d.Contained))
	for i, r := range d.Contained {
		out = append(out, Located{Path: fmt.Sprintf("contained[%d]", i), Resource: r})
	}
	return out
}

// Rules shared by every DomainResource.
var domainInvariants = []constraint.Invariant{
	{
		Key:        "dom-2",
		Severity:   fhirmodel.SeverityError,
		Human:      "If the resource is contained in another resource, it SHALL NOT contain nested Resources",
		Expression: "contained.contained.empty()",
	},
	{
		Key:        "dom-4",
		Severity:   fhirmodel.SeverityError,
		Human:      "If a resource is contained in another resource, it SHALL NOT have a meta.versionId or a meta.lastUpdated",
		Expression: "contained.meta.versionId.empty() and contained.meta.lastUpdated.empty()",
	},
	{
		Key:        "dom-5",
		Severity:   fhirmodel.SeverityError,
		Human:      "If a resource is contained in another resource, it SHALL NOT have a security label",
		Expression: "contained.meta.security.empty()",
	},
	{
		Key:        "dom-6",
		Severity:   fhirmodel.SeverityWarning,
		Human:      "A resource should have narrative for robust management",
		Expression: "text.`div`.exists()",
	},
}

// walkBase checks the logical id. Everything else is covered by the field walk.
func walkBase(w *walk.Walker, b *Base) {
	if b.ID != "" {
		id := datatype.NewID(b.ID)
		w.Child("id", &id)
	}
}

// Located is a resource carried by another one, with its path relative to the carrier.
type Located struct {
	Path     string
	Resource Resource
}

type carrier interface {
	nested() []Located
}

// Nested returns r and every resource it carries (contained resources, bundle entries),
// depth first. Paths start with r's resource type, e.g. "Bundle.entry[1].resource".
func Nested(r Resource) []Located {
	var out []Located
	var visit func(path string, r Resource)
	visit = func(path string, r Resource) {
		out = append(out, Located{Path: path, Resource: r})
		c, ok := r.(carrier)
		if !ok {
			return
		}
		for _, l := range c.nested() {
			if l.Resource != nil {
				visit(path+"."+l.Path, l.Resource)
			}
		}
	}
	visit(r.ResourceType(), r)
	return out
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func() Resource)
)

// Register makes a resource type known to Parse and New. Registering a name twice panics.
func Register(resourceType string, factory func() Resource) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[resourceType]; dup {
		panic("resource: registered twice: " + resourceType)
	}
	registry[resourceType] = factory
}

// New returns an empty record of the given type.
func New(resourceType string) (Resource, error) {
	registryMu.RLock()
	factory, ok := registry[resourceType]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", fhirmodel.ErrUnknownResourceType, resourceType)
	}
	return factory(), nil
}

// Types returns the registered resource types, sorted.
func Types() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Parse decodes any registered resource, dispatching on its resourceType.
// Shape errors come back as *fhirmodel.ParseError, choice conflicts as
// *fhirmodel.ChoiceConflictError, both located relative to the record.
func Parse(data []byte) (Resource, error) {
	var head struct {
		ResourceType *string `json:"resourceType"`
	}
	if err := gojson.Unmarshal(data, &head); err != nil {
		return nil, fhirmodel.NewParseError("", fmt.Errorf("not a JSON object: %w", err))
	}
	if head.ResourceType == nil {
		return nil, fhirmodel.NewParseError("resourceType", fmt.Errorf("missing resourceType"))
	}
	r, err := New(*head.ResourceType)
	if err != nil {
		return nil, fhirmodel.NewParseError("resourceType", err)
	}
	if err := r.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return r, nil
}

// Clone returns a deep copy of r. Records are shared freely once built; mutate a clone.
func Clone[R Resource](r R) (R, error) {
	var zero R
	data, err := r.MarshalJSON()
	if err != nil {
		return zero, err
	}
	c, err := Parse(data)
	if err != nil {
		return zero, err
	}
	return c.(R), nil
}

func init() {
	datatype.RegisterInterface[Resource](Parse)

	Register("Patient", func() Resource { return new(Patient) })
	Register("Condition", func() Resource { return new(Condition) })
	Register("Claim", func() Resource { return new(Claim) })
	Register("AdverseEvent", func() Resource { return new(AdverseEvent) })
	Register("Bundle", func() Resource { return new(Bundle) })
}
