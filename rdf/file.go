package rdf

import (
	"fmt"
	"io"
	"os"

	"github.com/cayleygraph/quad"

	// Load the supported quad codecs.
	_ "github.com/cayleygraph/quad/jsonld"
	_ "github.com/cayleygraph/quad/nquads"

	"github.com/housegraph/housegraph/clog"
)

// DefaultFormat is the serialisation used when no format name is given.
// The nquads writer emits plain N-Triples lines for label-less quads, and
// every N-Triples document is also a valid Turtle document.
const DefaultFormat = "nquads"

func formatFor(typ string) (*quad.Format, error) {
	if typ == "" {
		typ = DefaultFormat
	}
	format := quad.FormatByName(typ)
	if format == nil {
		return nil, fmt.Errorf("unsupported format: %q", typ)
	}
	return format, nil
}

// WriteFile serialises the graph to path in the named quad format.
func WriteFile(g *Graph, path, typ string) error {
	format, err := formatFor(typ)
	if err != nil {
		return err
	}
	if format.Writer == nil {
		return fmt.Errorf("encoding in %s format is not supported", format.Name)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file %q: %v", path, err)
	}
	defer f.Close()

	qw := format.Writer(f)
	for _, q := range g.Quads() {
		if err := qw.WriteQuad(q); err != nil {
			qw.Close()
			return fmt.Errorf("could not write quad to %q: %v", path, err)
		}
	}
	if err := qw.Close(); err != nil {
		return err
	}
	if clog.V(2) {
		clog.Infof("wrote %d triples to %q", g.Len(), path)
	}
	return f.Close()
}

// ReadFile parses the named quad format from path into a fresh graph.
func ReadFile(path, typ string) (*Graph, error) {
	g := NewGraph()
	if err := ReadFileInto(g, path, typ); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadFileInto parses path and unions its triples into g.
func ReadFileInto(g *Graph, path, typ string) error {
	format, err := formatFor(typ)
	if err != nil {
		return err
	}
	if format.Reader == nil {
		return fmt.Errorf("decoding of %s format is not supported", format.Name)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file %q: %v", path, err)
	}
	defer f.Close()

	qr := format.Reader(f)
	defer qr.Close()
	for {
		q, err := qr.ReadQuad()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("could not read quads from %q: %v", path, err)
		}
		g.Add(q)
	}
}
