package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/housegraph/housegraph/dates"
	"github.com/housegraph/housegraph/mapping"
	"github.com/housegraph/housegraph/rdf"
	"github.com/housegraph/housegraph/tabular"
	"github.com/housegraph/housegraph/vocab"
)

// Mapper turns one row of a source's processed data into triples, applying
// the source's field rules, date normalisation and URI generation.
type Mapper struct {
	src       *mapping.Source
	watermark int
	fields    []string
	newID     idFunc
}

// NewMapper builds a mapper for one source. Rows with dates resolving to a
// year before commonEarliestYear are skipped.
func NewMapper(src *mapping.Source, commonEarliestYear int) *Mapper {
	fields := make([]string, 0, len(src.Fields))
	for col := range src.Fields {
		fields = append(fields, col)
	}
	sort.Strings(fields)
	return &Mapper{
		src:       src,
		watermark: commonEarliestYear,
		fields:    fields,
		newID:     randomID,
	}
}

// SetDeterministicIDs switches synthetic identifiers from random to
// content-derived ones, making reruns over unchanged input reproducible.
func (m *Mapper) SetDeterministicIDs() { m.newID = contentID }

var braces = strings.NewReplacer("{", "", "}", "")

func (m *Mapper) entityIRI(row tabular.Row) quad.IRI {
	if m.src.NaturalKey != "" {
		if id := braces.Replace(row[m.src.NaturalKey]); id != "" {
			return m.src.EntityIRI(SanitizeIRI(id))
		}
	}
	return m.src.EntityIRI(m.newID(row, m.src.ClassLocalName()))
}

// MapRow maps one row into g. It returns false when the row fails
// validation; the reason is recorded on the summary. Triples are buffered
// and committed only when every field succeeds, so a failed row leaves no
// partial entity in the graph.
func (m *Mapper) MapRow(row tabular.Row, g *rdf.Graph, sum *RunSummary) bool {
	entity := m.entityIRI(row)
	buf := make([]quad.Quad, 0, len(m.fields)+1)
	buf = append(buf, rdf.Triple(entity, vocab.RDFType, m.src.Class))

	for _, col := range m.fields {
		raw, present := row[col]
		if !present || raw == "" {
			continue
		}
		rule := m.src.Fields[col]

		if !rule.Allows(raw) {
			sum.Errors.Add(fmt.Sprintf("invalid value %q for field %q", raw, col))
			return false
		}
		value := raw
		if rule.ValueMap != nil {
			mapped, ok := rule.ValueMap[raw]
			if !ok {
				sum.Errors.Add(fmt.Sprintf("no mapping found for value %q in field %q", raw, col))
				return false
			}
			value = mapped
		}

		switch {
		case col == m.src.DateField:
			d, err := dates.Normalise(value, m.src.DateFormats)
			if err != nil || d.Y < m.watermark {
				sum.SkippedDates.Add(value)
				return false
			}
			tp, tpQuads := timePointNode(d)
			buf = append(buf, tpQuads...)
			buf = append(buf, rdf.Triple(entity, rule.Property, tp))

		case rule.IsRelation:
			obj := quad.IRI(string(rule.RelationClass) + "/" + SanitizeIRI(value))
			buf = append(buf,
				rdf.Triple(entity, rule.Property, obj),
				rdf.Triple(obj, vocab.RDFType, rule.RelationClass))

		default:
			lit := quad.TypedString{Value: quad.String(value), Type: rule.Datatype}
			buf = append(buf, rdf.Triple(entity, rule.Property, lit))
		}
	}

	g.AddAll(buf)
	return true
}
