package rdf

import (
	"path/filepath"
	"testing"

	"github.com/cayleygraph/quad"
)

func tr(s, p, o string) quad.Quad {
	return Triple(quad.IRI(s), quad.IRI(p), quad.IRI(o))
}

func TestGraphSetSemantics(t *testing.T) {
	g := NewGraph()
	g.Add(tr("a", "p", "b"))
	g.Add(tr("a", "p", "b"))
	g.Add(tr("a", "p", "c"))
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
	if !g.Contains(tr("a", "p", "b")) {
		t.Fatal("graph does not contain an added triple")
	}
	if g.Contains(tr("b", "p", "a")) {
		t.Fatal("graph contains a triple that was never added")
	}
}

func TestGraphLiteralsDistinctFromIRIs(t *testing.T) {
	g := NewGraph()
	g.Add(Triple("a", "p", quad.IRI("x")))
	g.Add(Triple("a", "p", quad.String("x")))
	if g.Len() != 2 {
		t.Fatalf("IRI and literal with equal text collapsed: Len() = %d", g.Len())
	}
}

func TestUnionCommutativeIdempotent(t *testing.T) {
	quads := []quad.Quad{tr("a", "p", "b"), tr("b", "p", "c"), tr("c", "p", "a")}

	ab, ba := NewGraph(), NewGraph()
	ab.AddAll(quads[:2])
	ba.AddAll(quads[1:])

	left := NewGraph()
	left.Union(ab)
	left.Union(ba)

	right := NewGraph()
	right.Union(ba)
	right.Union(ab)
	right.Union(ab) // union with the same graph again changes nothing

	if left.Len() != 3 || right.Len() != 3 {
		t.Fatalf("union sizes = %d, %d, want 3, 3", left.Len(), right.Len())
	}
	for _, q := range quads {
		if !left.Contains(q) || !right.Contains(q) {
			t.Fatalf("union missing %v", q)
		}
	}
}

func TestQuadsReturnsCopy(t *testing.T) {
	g := NewGraph()
	g.Add(tr("a", "p", "b"))
	qs := g.Quads()
	qs[0].Subject = quad.IRI("mutated")
	if !g.Contains(tr("a", "p", "b")) {
		t.Fatal("mutating the returned slice changed the graph")
	}
}

func TestFileRoundTrip(t *testing.T) {
	g := NewGraph()
	g.Add(tr("http://example.org/a", "http://example.org/p", "http://example.org/b"))
	g.Add(Triple("http://example.org/a", "http://example.org/q", quad.String("hello world")))

	path := filepath.Join(t.TempDir(), "graph.ttl")
	if err := WriteFile(g, path, ""); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != g.Len() {
		t.Fatalf("read %d triples, wrote %d", got.Len(), g.Len())
	}
	for _, q := range g.Quads() {
		if !got.Contains(q) {
			t.Fatalf("round trip lost %v", q)
		}
	}
}

func TestWriteFileUnknownFormat(t *testing.T) {
	if err := WriteFile(NewGraph(), filepath.Join(t.TempDir(), "g"), "turtle-star"); err == nil {
		t.Fatal("expected error for unregistered format")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.ttl"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}
