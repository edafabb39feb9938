// Package rdf provides an append-only in-memory triple graph with set
// semantics, plus helpers for reading and writing it through the quad
// format registry.
package rdf

import (
	"strings"

	"github.com/cayleygraph/quad"
)

// Graph is an append-only set of triples. Adding an existing triple is a
// no-op, which makes unions commutative and idempotent. Insertion order is
// preserved so serialised output is reproducible.
type Graph struct {
	keys  map[string]struct{}
	quads []quad.Quad
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{keys: make(map[string]struct{})}
}

// Triple builds a label-less quad from subject, predicate and object.
func Triple(s, p quad.IRI, o quad.Value) quad.Quad {
	return quad.Quad{Subject: s, Predicate: p, Object: o}
}

func key(q quad.Quad) string {
	var b strings.Builder
	b.WriteString(quad.StringOf(q.Subject))
	b.WriteByte(' ')
	b.WriteString(quad.StringOf(q.Predicate))
	b.WriteByte(' ')
	b.WriteString(quad.StringOf(q.Object))
	b.WriteByte(' ')
	b.WriteString(quad.StringOf(q.Label))
	return b.String()
}

// Add inserts a triple, ignoring duplicates.
func (g *Graph) Add(q quad.Quad) {
	k := key(q)
	if _, ok := g.keys[k]; ok {
		return
	}
	g.keys[k] = struct{}{}
	g.quads = append(g.quads, q)
}

// AddAll inserts every given triple.
func (g *Graph) AddAll(quads []quad.Quad) {
	for _, q := range quads {
		g.Add(q)
	}
}

// Union folds every triple of other into g.
func (g *Graph) Union(other *Graph) {
	for _, q := range other.quads {
		g.Add(q)
	}
}

// Contains reports whether the triple is already in the graph.
func (g *Graph) Contains(q quad.Quad) bool {
	_, ok := g.keys[key(q)]
	return ok
}

// Len reports the number of distinct triples.
func (g *Graph) Len() int { return len(g.quads) }

// Quads returns the triples in insertion order. The returned slice is a
// copy and safe to retain.
func (g *Graph) Quads() []quad.Quad {
	out := make([]quad.Quad, len(g.quads))
	copy(out, g.quads)
	return out
}
