package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/housegraph/housegraph/clog"
	"github.com/housegraph/housegraph/config"
	"github.com/housegraph/housegraph/transform"
)

func NewTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [sources]",
		Short: "Map processed CSV sources to per-source RDF graphs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper()
			if len(args) > 0 {
				cfg.Sources = args
			}
			if err := cfg.EnsureDirs(); err != nil {
				return err
			}
			ctx, cancel := getContext()
			defer cancel()
			return transformSources(ctx, cfg)
		},
	}
	registerTransformFlags(cmd)
	return cmd
}

// transformSources runs the full per-source pipeline: one watermark pass
// over every source, then chunked mapping and a merge per source. A failing
// source is reported and skipped so the remaining sources still produce
// their graphs.
func transformSources(ctx context.Context, cfg *config.Config) error {
	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	b := transform.NewBuilder(cfg, reg, openValidator(cfg))

	watermark, err := b.CommonEarliestYear()
	if err != nil {
		return err
	}
	clog.Infof("common earliest year across sources: %d", watermark)

	sources := cfg.Sources
	if len(sources) == 0 {
		sources = reg.Names()
	}
	var failed int
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		sum, err := b.Build(ctx, source, watermark)
		if err != nil {
			clog.Errorf("transform of %q failed: %v", source, err)
			failed++
			continue
		}
		path, err := b.Merge(source)
		if err != nil {
			clog.Errorf("merge of %q failed: %v", source, err)
			failed++
			continue
		}
		fmt.Println(sum)
		fmt.Printf("graph for %q written to %q\n", source, path)
	}
	if failed == len(sources) {
		return fmt.Errorf("all %d sources failed to transform", failed)
	}
	return nil
}
