package transform

import (
	"strconv"

	"github.com/cayleygraph/quad"

	"github.com/housegraph/housegraph/dates"
	"github.com/housegraph/housegraph/mapping"
	"github.com/housegraph/housegraph/rdf"
	"github.com/housegraph/housegraph/vocab"
)

func gYear(y int) quad.Value {
	return quad.TypedString{Value: quad.String(strconv.Itoa(y)), Type: mapping.XSDGYear}
}

// timePointNode returns the shared TimePoint node for a canonical date and
// the triples describing it. The node IRI embeds the canonical string, so
// all rows referencing the same date share one node per combined graph.
func timePointNode(d dates.CanonicalDate) (quad.IRI, []quad.Quad) {
	s := d.String()
	switch d.Kind {
	case dates.Year:
		iri := quad.IRI(vocab.TimeNS + "Year/" + s)
		return iri, []quad.Quad{
			rdf.Triple(iri, vocab.RDFType, quad.IRI(vocab.Year)),
			rdf.Triple(iri, vocab.YearValue, quad.TypedString{Value: quad.String(s), Type: mapping.XSDGYear}),
		}
	case dates.YearMonth:
		iri := quad.IRI(vocab.TimeNS + "YearMonth/" + s)
		return iri, []quad.Quad{
			rdf.Triple(iri, vocab.RDFType, quad.IRI(vocab.YearMonth)),
			rdf.Triple(iri, vocab.YearMonthVal, quad.TypedString{Value: quad.String(s), Type: mapping.XSDGYearMonth}),
		}
	case dates.FullDate:
		iri := quad.IRI(vocab.TimeNS + "FullDate/" + s)
		return iri, []quad.Quad{
			rdf.Triple(iri, vocab.RDFType, quad.IRI(vocab.FullDate)),
			rdf.Triple(iri, vocab.Date, quad.TypedString{Value: quad.String(s), Type: mapping.XSDDate}),
		}
	case dates.AcademicYear:
		iri := quad.IRI(vocab.TimeNS + "AcademicYear/" + s)
		return iri, []quad.Quad{
			rdf.Triple(iri, vocab.RDFType, quad.IRI(vocab.AcademicYear)),
			rdf.Triple(iri, vocab.StartYear, gYear(d.Y)),
			rdf.Triple(iri, vocab.EndYear, gYear(d.EndY)),
		}
	}
	return "", nil
}
