package transform

import (
	"testing"

	"github.com/cayleygraph/quad"

	"github.com/housegraph/housegraph/dates"
	"github.com/housegraph/housegraph/rdf"
	"github.com/housegraph/housegraph/vocab"
)

func TestTimePointNode(t *testing.T) {
	cases := []struct {
		name  string
		d     dates.CanonicalDate
		iri   quad.IRI
		class quad.IRI
		quads int
	}{
		{
			name:  "year",
			d:     dates.CanonicalDate{Kind: dates.Year, Y: 2021},
			iri:   quad.IRI(vocab.TimeNS + "Year/2021"),
			class: quad.IRI(vocab.Year),
			quads: 2,
		},
		{
			name:  "year month",
			d:     dates.CanonicalDate{Kind: dates.YearMonth, Y: 2019, M: 7},
			iri:   quad.IRI(vocab.TimeNS + "YearMonth/2019-07"),
			class: quad.IRI(vocab.YearMonth),
			quads: 2,
		},
		{
			name:  "full date",
			d:     dates.CanonicalDate{Kind: dates.FullDate, Y: 2023, M: 3, D: 16},
			iri:   quad.IRI(vocab.TimeNS + "FullDate/2023-03-16"),
			class: quad.IRI(vocab.FullDate),
			quads: 2,
		},
		{
			name:  "academic year",
			d:     dates.CanonicalDate{Kind: dates.AcademicYear, Y: 2019, EndY: 2020},
			iri:   quad.IRI(vocab.TimeNS + "AcademicYear/2019-2020"),
			class: quad.IRI(vocab.AcademicYear),
			quads: 3,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			iri, quads := timePointNode(c.d)
			if iri != c.iri {
				t.Fatalf("node IRI = %q, want %q", iri, c.iri)
			}
			if len(quads) != c.quads {
				t.Fatalf("emitted %d quads, want %d", len(quads), c.quads)
			}
			g := rdf.NewGraph()
			g.AddAll(quads)
			if !g.Contains(rdf.Triple(iri, vocab.RDFType, c.class)) {
				t.Fatalf("missing type triple for %q", iri)
			}
		})
	}
}

// Two rows with the same canonical date must share a single node.
func TestTimePointNodeShared(t *testing.T) {
	d := dates.CanonicalDate{Kind: dates.Year, Y: 2021}
	a, aq := timePointNode(d)
	b, bq := timePointNode(d)
	if a != b {
		t.Fatalf("same date produced distinct nodes %q and %q", a, b)
	}
	g := rdf.NewGraph()
	g.AddAll(aq)
	g.AddAll(bq)
	if g.Len() != len(aq) {
		t.Fatalf("duplicate time point added new triples: %d != %d", g.Len(), len(aq))
	}
}
