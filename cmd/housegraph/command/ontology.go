package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/housegraph/housegraph/config"
	"github.com/housegraph/housegraph/ontology"
)

func NewSkeletonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skeleton",
		Short: "Write the empty ontology structure to a file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper()
			if err := cfg.EnsureDirs(); err != nil {
				return err
			}
			path, _ := cmd.Flags().GetString("out")
			if path == "" {
				path = cfg.SkeletonFile()
			}
			a := ontology.NewAssembler(cfg)
			if err := a.WriteSkeleton(path); err != nil {
				return err
			}
			fmt.Printf("ontology skeleton written to %q\n", path)
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "file to write the skeleton to")
	return cmd
}

func NewAssembleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Union the transformed source graphs into the populated ontology.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromViper()
			if err := cfg.EnsureDirs(); err != nil {
				return err
			}
			ctx, cancel := getContext()
			defer cancel()
			return ontology.NewAssembler(cfg).Assemble(ctx)
		},
	}
	return cmd
}
