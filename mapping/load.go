package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/housegraph/housegraph/dates"
)

type fieldFile struct {
	Property    string            `yaml:"property"`
	Datatype    string            `yaml:"datatype"`
	ValueMap    map[string]string `yaml:"value_map"`
	ValidValues []string          `yaml:"valid_values"`
	Relation    bool              `yaml:"relation"`
	Class       string            `yaml:"class"`
}

type sourceFile struct {
	Name          string               `yaml:"name"`
	Class         string               `yaml:"class"`
	URITemplate   string               `yaml:"uri_template"`
	NaturalKey    string               `yaml:"natural_key"`
	DateField     string               `yaml:"date_field"`
	LocationField string               `yaml:"location_field"`
	DateFormats   []string             `yaml:"date_formats"`
	Fields        map[string]fieldFile `yaml:"fields"`
}

type registryFile struct {
	Sources []sourceFile `yaml:"sources"`
}

// LoadFile reads a registry from a YAML file. Class and property IRIs may
// use registered vocabulary prefixes; datatypes use their xsd local names.
// The result is validated the same way as the built-in registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapping: read %q: %w", path, err)
	}
	var doc registryFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("mapping: parse %q: %w", path, err)
	}
	if len(doc.Sources) == 0 {
		return nil, fmt.Errorf("mapping: %q declares no sources", path)
	}
	sources := make([]*Source, 0, len(doc.Sources))
	for _, sf := range doc.Sources {
		s, err := sf.toSource()
		if err != nil {
			return nil, fmt.Errorf("mapping: %q: %w", path, err)
		}
		sources = append(sources, s)
	}
	return New(sources...)
}

func (sf sourceFile) toSource() (*Source, error) {
	s := &Source{
		Name:          sf.Name,
		Class:         ParseIRI(sf.Class),
		URITemplate:   sf.URITemplate,
		NaturalKey:    sf.NaturalKey,
		DateField:     sf.DateField,
		LocationField: sf.LocationField,
		Fields:        make(map[string]FieldRule, len(sf.Fields)),
	}
	for _, name := range sf.DateFormats {
		f, err := dates.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", sf.Name, err)
		}
		s.DateFormats = append(s.DateFormats, f)
	}
	for col, ff := range sf.Fields {
		rule := FieldRule{
			Property:    ParseIRI(ff.Property),
			ValueMap:    ff.ValueMap,
			ValidValues: ff.ValidValues,
			IsRelation:  ff.Relation,
		}
		if ff.Datatype != "" {
			dt, err := ParseDatatype(ff.Datatype)
			if err != nil {
				return nil, fmt.Errorf("source %q, field %q: %w", sf.Name, col, err)
			}
			rule.Datatype = dt
		}
		if ff.Class != "" {
			rule.RelationClass = ParseIRI(ff.Class)
		}
		s.Fields[col] = rule
	}
	return s, nil
}
