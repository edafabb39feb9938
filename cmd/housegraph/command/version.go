package command

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/housegraph/housegraph/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Housegraph version:", version.Version)
			if version.GitHash != "" {
				fmt.Println("Git commit hash:", version.GitHash)
			}
			if version.BuildDate != "" {
				fmt.Println("Build date:", version.BuildDate)
			}
			fmt.Println("Go version:", runtime.Version())
			return nil
		},
	}
}
