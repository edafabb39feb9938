// Package ontology builds the static class and property skeleton of the
// housing-market ontology and assembles the final populated graph from the
// per-source transformed outputs.
package ontology

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/owl"

	"github.com/housegraph/housegraph/clog"
	"github.com/housegraph/housegraph/config"
	"github.com/housegraph/housegraph/rdf"
	"github.com/housegraph/housegraph/vocab"
)

var (
	owlClass            = quad.IRI(owl.NS + "Class")
	owlObjectProperty   = quad.IRI(owl.NS + "ObjectProperty")
	owlDatatypeProperty = quad.IRI(owl.NS + "DatatypeProperty")
)

type class struct {
	name string
	uri  quad.IRI
}

type subclass struct {
	name   string
	uri    quad.IRI
	parent quad.IRI
}

type objectProperty struct {
	name   string
	uri    quad.IRI
	domain quad.IRI
	rng    quad.IRI
}

var classes = []class{
	{"Property", vocab.Property},
	{"TimePoint", vocab.TimePoint},
	{"Location", vocab.Location},
	{"EconomicIndicator", vocab.EconomicIndicator},
}

var subclasses = []subclass{
	{"NationalEconomicIndicator", vocab.NationalEconomicIndicator, vocab.EconomicIndicator},
	{"LocalEconomicIndicator", vocab.LocalEconomicIndicator, vocab.EconomicIndicator},
	{"HousingMarketIndicator", vocab.HousingMarketIndicator, vocab.LocalEconomicIndicator},
	{"Year", vocab.Year, vocab.TimePoint},
	{"YearMonth", vocab.YearMonth, vocab.TimePoint},
	{"FullDate", vocab.FullDate, vocab.TimePoint},
	{"AcademicYear", vocab.AcademicYear, vocab.TimePoint},
}

var objectProperties = []objectProperty{
	{"hasLocation", vocab.HasLocation, vocab.Property, vocab.Location},
	{"soldAt", vocab.SoldAt, vocab.Property, vocab.TimePoint},
	{"hasProperty", vocab.HasProperty, vocab.Location, vocab.Property},
	{"hasEconomicIndicator", vocab.HasEconomicIndicator, vocab.Location, vocab.EconomicIndicator},
	{"measuredAt", vocab.MeasuredAt, vocab.EconomicIndicator, vocab.TimePoint},
}

var dataProperties = map[string]quad.IRI{
	"price":               vocab.Price,
	"propertyType":        vocab.PropertyType,
	"newBuild":            vocab.NewBuild,
	"oldNew":              vocab.OldNew,
	"tenure":              vocab.Tenure,
	"transactionId":       vocab.TransactionID,
	"name":                vocab.Name,
	"date":                vocab.Date,
	"year":                vocab.YearValue,
	"yearMonth":           vocab.YearMonthVal,
	"startYear":           vocab.StartYear,
	"endYear":             vocab.EndYear,
	"rate":                vocab.Rate,
	"rateType":            vocab.RateType,
	"additionalDwellings": vocab.AdditionalDwellings,
	"schoolCount":         vocab.SchoolCount,
	"unemploymentRate":    vocab.UnemploymentRate,
	"transactionStatus":   vocab.TransactionStatus,
	"transactionCategory": vocab.TransactionCategory,
	"address1":            vocab.Address1,
	"address2":            vocab.Address2,
	"street":              vocab.Street,
	"locationName":        vocab.LocationName,
	"postcode":            vocab.Postcode,
}

func label(s string) quad.Value { return quad.String(s) }

// Skeleton builds the static class/subclass/property structure. It is pure
// and idempotent; no row data is involved.
func Skeleton() *rdf.Graph {
	g := rdf.NewGraph()
	for _, c := range classes {
		g.Add(rdf.Triple(c.uri, vocab.RDFType, owlClass))
		g.Add(rdf.Triple(c.uri, vocab.RDFSLabel, label(c.name)))
	}
	for _, s := range subclasses {
		g.Add(rdf.Triple(s.uri, vocab.RDFType, owlClass))
		g.Add(rdf.Triple(s.uri, vocab.SubClassOf, s.parent))
		g.Add(rdf.Triple(s.uri, vocab.RDFSLabel, label(s.name)))
	}
	for _, p := range objectProperties {
		g.Add(rdf.Triple(p.uri, vocab.RDFType, owlObjectProperty))
		g.Add(rdf.Triple(p.uri, vocab.Domain, p.domain))
		g.Add(rdf.Triple(p.uri, vocab.Range, p.rng))
		g.Add(rdf.Triple(p.uri, vocab.RDFSLabel, label(p.name)))
	}
	for name, uri := range dataProperties {
		g.Add(rdf.Triple(uri, vocab.RDFType, owlDatatypeProperty))
		g.Add(rdf.Triple(uri, vocab.RDFSLabel, label(name)))
	}
	return g
}

// Assembler produces the final ontology artifacts.
type Assembler struct {
	cfg *config.Config
}

// NewAssembler wires an assembler for the given run configuration.
func NewAssembler(cfg *config.Config) *Assembler {
	return &Assembler{cfg: cfg}
}

// WriteSkeleton serialises the empty ontology structure to path.
func (a *Assembler) WriteSkeleton(path string) error {
	return rdf.WriteFile(Skeleton(), path, a.cfg.Format)
}

// Assemble writes the skeleton file, unions every transformed source graph
// into it and writes the populated ontology. Unreadable source files are
// logged and skipped; an empty transformed directory is an error. Union
// order does not affect the result.
func (a *Assembler) Assemble(ctx context.Context) error {
	if err := a.WriteSkeleton(a.cfg.SkeletonFile()); err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(a.cfg.TransformedDir(), "*.ttl"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no transformed graphs found in %q", a.cfg.TransformedDir())
	}
	g := Skeleton()
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := rdf.ReadFileInto(g, f, a.cfg.Format); err != nil {
			clog.Errorf("skipping transformed file: %v", err)
			continue
		}
		if clog.V(1) {
			clog.Infof("merged %q into ontology", f)
		}
	}
	if err := rdf.WriteFile(g, a.cfg.PopulatedFile(), a.cfg.Format); err != nil {
		return err
	}
	clog.Infof("populated ontology written to %q (%d triples)", a.cfg.PopulatedFile(), g.Len())
	return nil
}
