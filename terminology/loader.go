package terminology

import (
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/gofhir/fhir/r4"
)

// LoadStats counts what a load added.
type LoadStats struct {
	CodeSystemsLoaded int
	ValueSetsLoaded   int
	Errors            int
}

// LoadCodeSystemJSON decodes an R4 CodeSystem and adds it.
func (r *Registry) LoadCodeSystemJSON(data []byte) error {
	var cs r4.CodeSystem
	if err := gojson.Unmarshal(data, &cs); err != nil {
		return fmt.Errorf("failed to parse CodeSystem: %w", err)
	}
	return r.LoadR4CodeSystem(&cs)
}

// LoadValueSetJSON decodes an R4 ValueSet and adds it.
func (r *Registry) LoadValueSetJSON(data []byte) error {
	var vs r4.ValueSet
	if err := gojson.Unmarshal(data, &vs); err != nil {
		return fmt.Errorf("failed to parse ValueSet: %w", err)
	}
	return r.LoadR4ValueSet(&vs)
}

// LoadJSON adds a CodeSystem, a ValueSet, or every CodeSystem and ValueSet entry of a
// Bundle. Bundle entries of other types are skipped; entries that fail to load are
// counted in Errors.
func (r *Registry) LoadJSON(data []byte) (*LoadStats, error) {
	var probe struct {
		ResourceType string `json:"resourceType"`
	}
	if err := gojson.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	stats := &LoadStats{}
	switch probe.ResourceType {
	case "CodeSystem":
		if err := r.LoadCodeSystemJSON(data); err != nil {
			return nil, err
		}
		stats.CodeSystemsLoaded++

	case "ValueSet":
		if err := r.LoadValueSetJSON(data); err != nil {
			return nil, err
		}
		stats.ValueSetsLoaded++

	case "Bundle":
		var b struct {
			Entry []struct {
				Resource gojson.RawMessage `json:"resource"`
			} `json:"entry"`
		}
		if err := gojson.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("failed to parse Bundle: %w", err)
		}
		for _, e := range b.Entry {
			var err error
			switch resourceTypeOf(e.Resource) {
			case "CodeSystem":
				if err = r.LoadCodeSystemJSON(e.Resource); err == nil {
					stats.CodeSystemsLoaded++
				}
			case "ValueSet":
				if err = r.LoadValueSetJSON(e.Resource); err == nil {
					stats.ValueSetsLoaded++
				}
			}
			if err != nil {
				stats.Errors++
			}
		}

	default:
		return nil, fmt.Errorf("unsupported resourceType: %q", probe.ResourceType)
	}
	return stats, nil
}

func resourceTypeOf(data []byte) string {
	var probe struct {
		ResourceType string `json:"resourceType"`
	}
	if len(data) == 0 || gojson.Unmarshal(data, &probe) != nil {
		return ""
	}
	return probe.ResourceType
}

// LoadFile reads path and loads it with LoadJSON.
func (r *Registry) LoadFile(path string) (*LoadStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	stats, err := r.LoadJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return stats, nil
}
