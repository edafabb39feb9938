package transform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/housegraph/housegraph/clog"
	"github.com/housegraph/housegraph/config"
	"github.com/housegraph/housegraph/dates"
	"github.com/housegraph/housegraph/locations"
	"github.com/housegraph/housegraph/mapping"
	"github.com/housegraph/housegraph/rdf"
	"github.com/housegraph/housegraph/tabular"
)

// Builder drives the row-to-triple mapper over chunked source data,
// persisting per-chunk graphs and merging them into one graph per source.
type Builder struct {
	cfg *config.Config
	reg *mapping.Registry
	loc *locations.Validator
}

// NewBuilder wires a builder from its injected collaborators. The location
// validator may be nil when no configured source declares a location field.
func NewBuilder(cfg *config.Config, reg *mapping.Registry, loc *locations.Validator) *Builder {
	return &Builder{cfg: cfg, reg: reg, loc: loc}
}

// sources resolves the configured source list, defaulting to the whole
// registry.
func (b *Builder) sources() []string {
	if len(b.cfg.Sources) > 0 {
		return b.cfg.Sources
	}
	return b.reg.Names()
}

// CommonEarliestYear computes the watermark: the maximum over all sources'
// minimum observed year. Sources that fail to contribute a year are logged
// and skipped; if none contributes, the run cannot be temporally anchored
// and dates.ErrNoCommonYear is returned.
func (b *Builder) CommonEarliestYear() (int, error) {
	var minima []int
	for _, name := range b.sources() {
		src, err := b.reg.Source(name)
		if err != nil {
			clog.Errorf("skipping source in watermark pass: %v", err)
			continue
		}
		if src.DateField == "" {
			continue
		}
		var min dates.MinYear
		err = tabular.ScanColumn(b.cfg.ProcessedFile(name), src.DateField, func(v string) {
			min.Add(v, src.DateFormats)
		})
		if err != nil {
			clog.Errorf("could not extract earliest year for %q: %v", name, err)
			continue
		}
		if y, ok := min.Year(); ok {
			if clog.V(1) {
				clog.Infof("earliest year for %q: %d", name, y)
			}
			minima = append(minima, y)
		}
	}
	return dates.CommonEarliestYear(minima)
}

func (b *Builder) chunkFile(source string, chunk int) string {
	return filepath.Join(b.cfg.IntermediateDir(), fmt.Sprintf("%s_chunk_%04d.ttl", source, chunk))
}

func (b *Builder) chunkGlob(source string) string {
	return filepath.Join(b.cfg.IntermediateDir(), source+"_chunk_*.ttl")
}

// chunkSize picks whole-file or chunked reading based on the file size, so
// small sources stay a single chunk.
func (b *Builder) chunkSize(path string) int {
	size, err := tabular.FileSize(path)
	if err == nil && size <= b.cfg.LargeFileThreshold {
		return 0
	}
	return b.cfg.ChunkSize
}

// Build transforms one source into per-chunk graph files and returns the
// accumulated run summary. Row-level failures are recorded on the summary
// and never abort the source.
func (b *Builder) Build(ctx context.Context, source string, commonEarliestYear int) (*RunSummary, error) {
	src, err := b.reg.Source(source)
	if err != nil {
		return nil, err
	}
	if src.LocationField != "" && b.loc == nil {
		return nil, fmt.Errorf("source %q declares a location field but no location validator is configured", source)
	}

	mapper := NewMapper(src, commonEarliestYear)
	if b.cfg.DeterministicIDs {
		mapper.SetDeterministicIDs()
	}

	sum := NewRunSummary(source)
	path := b.cfg.ProcessedFile(source)
	err = tabular.ReadChunks(path, b.chunkSize(path), func(chunk int, rows []tabular.Row) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if src.LocationField != "" {
			rows = b.filterLocations(src, rows, sum)
			if len(rows) == 0 {
				clog.Infof("no valid locations in chunk %d of %q, skipping", chunk, source)
				return nil
			}
		}
		g := rdf.NewGraph()
		for _, row := range rows {
			sum.TotalRows++
			if mapper.MapRow(row, g, sum) {
				sum.MappedRows++
			}
		}
		if g.Len() == 0 {
			return nil
		}
		return rdf.WriteFile(g, b.chunkFile(source, chunk), b.cfg.Format)
	})
	if err != nil {
		return sum, fmt.Errorf("transforming %q: %w", source, err)
	}
	return sum, nil
}

// filterLocations cleans and validates each row's location, dropping rows
// with no valid location before mapping and recording them on the summary.
func (b *Builder) filterLocations(src *mapping.Source, rows []tabular.Row, sum *RunSummary) []tabular.Row {
	kept := rows[:0]
	for _, row := range rows {
		raw := row[src.LocationField]
		if raw == "" {
			continue
		}
		canon, ok := b.loc.Validate(locations.Clean(raw))
		if !ok {
			sum.InvalidLocations.Add(raw)
			continue
		}
		row[src.LocationField] = canon
		kept = append(kept, row)
	}
	return kept
}

// Merge unions every intermediate chunk of a source, in chunk order, into
// the source's final transformed file and deletes the intermediates. Any
// chunk read failure aborts the merge for this source only and leaves the
// intermediates in place.
func (b *Builder) Merge(source string) (string, error) {
	files, err := filepath.Glob(b.chunkGlob(source))
	if err != nil {
		return "", err
	}
	merged := rdf.NewGraph()
	for _, f := range files {
		if err := rdf.ReadFileInto(merged, f, b.cfg.Format); err != nil {
			return "", fmt.Errorf("merging chunks for %q: %w", source, err)
		}
	}
	out := b.cfg.TransformedFile(source)
	if err := rdf.WriteFile(merged, out, b.cfg.Format); err != nil {
		return "", fmt.Errorf("merging chunks for %q: %w", source, err)
	}
	for _, f := range files {
		if err := os.Remove(f); err != nil {
			clog.Warningf("could not remove intermediate file %q: %v", f, err)
		}
	}
	clog.Infof("merged %d chunks for %q into %q (%d triples)", len(files), source, out, merged.Len())
	return out, nil
}
