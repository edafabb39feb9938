// Package mapping holds the per-source descriptors that drive the
// row-to-triple transform: target class, URI template, date formats and
// field rules. A Registry is immutable after load and injected into the
// components that consume it.
package mapping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc"
	"github.com/cayleygraph/quad/voc/xsd"

	"github.com/housegraph/housegraph/dates"
)

// DateFormat aliases the date format family type so registry files can be
// declared without importing the dates package directly.
type DateFormat = dates.Format

// FieldRule describes how one source column maps onto the ontology.
type FieldRule struct {
	// Property is the predicate IRI for this field.
	Property quad.IRI
	// Datatype types the emitted literal; defaults to xsd:string.
	Datatype quad.IRI
	// ValueMap translates raw values to canonical ones. When present,
	// every raw value must be a key in it.
	ValueMap map[string]string
	// ValidValues constrains raw values before ValueMap is applied.
	ValidValues []string
	// IsRelation marks the field value as naming a related entity rather
	// than a literal. RelationClass is the related entity's class.
	IsRelation    bool
	RelationClass quad.IRI
}

func (r FieldRule) validValue(v string) bool {
	for _, ok := range r.ValidValues {
		if v == ok {
			return true
		}
	}
	return false
}

// Allows reports whether v passes the ValidValues constraint.
func (r FieldRule) Allows(v string) bool {
	return len(r.ValidValues) == 0 || r.validValue(v)
}

// Source is the mapping descriptor for one data source.
type Source struct {
	Name string
	// Class is the target ontology class of every entity from this source.
	Class quad.IRI
	// URITemplate is the entity URI pattern; "{id}" is replaced by the
	// sanitised natural key or by a synthetic identifier.
	URITemplate string
	// NaturalKey names the column whose value keys entities across runs.
	// Empty means synthetic identifiers.
	NaturalKey string
	// DateField and LocationField name the columns that get date and
	// location treatment; empty means the source has none.
	DateField     string
	LocationField string
	// DateFormats are tried in priority order; no scoring occurs.
	DateFormats []DateFormat
	Fields      map[string]FieldRule
}

// EntityIRI substitutes id into the source's URI template.
func (s *Source) EntityIRI(id string) quad.IRI {
	return quad.IRI(strings.Replace(s.URITemplate, "{id}", id, 1))
}

// ClassLocalName is the class IRI fragment, used to scope synthetic ids.
func (s *Source) ClassLocalName() string {
	name := string(s.Class)
	if i := strings.LastIndexAny(name, "#/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func (s *Source) validate() error {
	if s.Name == "" {
		return fmt.Errorf("mapping: source with empty name")
	}
	if s.Class == "" {
		return fmt.Errorf("mapping: source %q: missing target class", s.Name)
	}
	if !strings.Contains(s.URITemplate, "{id}") {
		return fmt.Errorf("mapping: source %q: URI template %q has no {id} placeholder", s.Name, s.URITemplate)
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("mapping: source %q: no fields declared", s.Name)
	}
	if s.NaturalKey != "" {
		if _, ok := s.Fields[s.NaturalKey]; !ok {
			return fmt.Errorf("mapping: source %q: natural key %q is not a declared field", s.Name, s.NaturalKey)
		}
	}
	if s.DateField != "" {
		if _, ok := s.Fields[s.DateField]; !ok {
			return fmt.Errorf("mapping: source %q: date field %q is not a declared field", s.Name, s.DateField)
		}
		if len(s.DateFormats) == 0 {
			return fmt.Errorf("mapping: source %q: date field declared without date formats", s.Name)
		}
	}
	if s.LocationField != "" {
		if _, ok := s.Fields[s.LocationField]; !ok {
			return fmt.Errorf("mapping: source %q: location field %q is not a declared field", s.Name, s.LocationField)
		}
	}
	for col, f := range s.Fields {
		if f.Property == "" {
			return fmt.Errorf("mapping: source %q: field %q has no property", s.Name, col)
		}
		if f.IsRelation && f.RelationClass == "" {
			return fmt.Errorf("mapping: source %q: relation field %q has no class", s.Name, col)
		}
	}
	return nil
}

// Registry maps source names to their descriptors.
type Registry struct {
	sources map[string]*Source
}

// New validates the given sources and builds a registry from them.
func New(sources ...*Source) (*Registry, error) {
	r := &Registry{sources: make(map[string]*Source, len(sources))}
	for _, s := range sources {
		src := *s
		if src.Fields != nil {
			fields := make(map[string]FieldRule, len(src.Fields))
			for col, f := range src.Fields {
				if f.Datatype == "" {
					f.Datatype = XSDString
				}
				fields[col] = f
			}
			src.Fields = fields
		}
		if err := src.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.sources[src.Name]; dup {
			return nil, fmt.Errorf("mapping: duplicate source %q", src.Name)
		}
		r.sources[src.Name] = &src
	}
	return r, nil
}

// Source looks up a descriptor by name. Unknown names are an error, not a
// nil result; every caller must handle it as a configuration failure.
func (r *Registry) Source(name string) (*Source, error) {
	s, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("mapping: no configuration for source %q", name)
	}
	return s, nil
}

// Names lists the registered source names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// XSD datatype IRIs in full form, as emitted into the graph.
var (
	XSDString     = quad.IRI(xsd.NS + "string")
	XSDInteger    = quad.IRI(xsd.NS + "integer")
	XSDDecimal    = quad.IRI(xsd.NS + "decimal")
	XSDFloat      = quad.IRI(xsd.NS + "float")
	XSDBoolean    = quad.IRI(xsd.NS + "boolean")
	XSDDate       = quad.IRI(xsd.NS + "date")
	XSDDateTime   = quad.IRI(xsd.NS + "dateTime")
	XSDGYear      = quad.IRI(xsd.NS + "gYear")
	XSDGYearMonth = quad.IRI(xsd.NS + "gYearMonth")
)

var datatypes = map[string]quad.IRI{
	"string":     XSDString,
	"integer":    XSDInteger,
	"decimal":    XSDDecimal,
	"float":      XSDFloat,
	"boolean":    XSDBoolean,
	"date":       XSDDate,
	"dateTime":   XSDDateTime,
	"gYear":      XSDGYear,
	"gYearMonth": XSDGYearMonth,
}

// ParseDatatype resolves a configuration datatype name, with or without the
// "xsd:" prefix, to its full IRI.
func ParseDatatype(name string) (quad.IRI, error) {
	if dt, ok := datatypes[strings.TrimPrefix(name, "xsd:")]; ok {
		return dt, nil
	}
	return "", fmt.Errorf("mapping: unknown datatype %q", name)
}

// ParseIRI resolves a configuration IRI, expanding a registered vocabulary
// prefix if one is used.
func ParseIRI(s string) quad.IRI {
	return quad.IRI(voc.FullIRI(s))
}
