package vocab

import (
	"testing"

	"github.com/cayleygraph/quad/voc"
)

func TestPrefixesRegistered(t *testing.T) {
	cases := []struct{ short, full string }{
		{"prop:Property", Property},
		{"loc:Location", Location},
		{"time:TimePoint", TimePoint},
		{"econ:rate", Rate},
		{"house:schoolCount", SchoolCount},
	}
	for _, c := range cases {
		if got := voc.FullIRI(c.short); got != c.full {
			t.Errorf("FullIRI(%q) = %q, want %q", c.short, got, c.full)
		}
	}
}

func TestStandardTerms(t *testing.T) {
	if RDFType != "http://www.w3.org/1999/02/22-rdf-syntax-ns#type" {
		t.Errorf("RDFType = %q", RDFType)
	}
	if SubClassOf != "http://www.w3.org/2000/01/rdf-schema#subClassOf" {
		t.Errorf("SubClassOf = %q", SubClassOf)
	}
}
