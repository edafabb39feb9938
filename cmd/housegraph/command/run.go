package command

import (
	"github.com/spf13/cobra"

	"github.com/housegraph/housegraph/config"
	"github.com/housegraph/housegraph/ontology"
)

func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Transform every source and assemble the populated ontology.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper()
			if err := cfg.EnsureDirs(); err != nil {
				return err
			}
			ctx, cancel := getContext()
			defer cancel()
			if err := transformSources(ctx, cfg); err != nil {
				return err
			}
			return ontology.NewAssembler(cfg).Assemble(ctx)
		},
	}
	registerTransformFlags(cmd)
	return cmd
}
