package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/housegraph/housegraph/clog"
	"github.com/housegraph/housegraph/cmd/housegraph/command"
	"github.com/housegraph/housegraph/config"

	// Register the glog adapter as the logger implementation.
	_ "github.com/housegraph/housegraph/clog/glog"
)

const configName = "housegraph"

func main() {
	rootCmd := &cobra.Command{
		Use:   "housegraph",
		Short: "Housegraph builds an RDF ontology of the UK housing market from government data.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if file, _ := cmd.Flags().GetString("config"); file != "" {
				viper.SetConfigFile(file)
			}
			err := viper.ReadInConfig()
			if err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					return err
				}
			} else if clog.V(1) {
				clog.Infof("using config file: %s", viper.ConfigFileUsed())
			}
			return nil
		},
	}
	rootCmd.AddCommand(
		command.NewTransformCmd(),
		command.NewSkeletonCmd(),
		command.NewAssembleCmd(),
		command.NewRunCmd(),
		command.NewVersionCmd(),
	)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to an explicit configuration file")
	// Expose the glog flags (-v, -logtostderr, ...) on every command.
	pf.AddGoFlagSet(flag.CommandLine)

	viper.SetConfigName(configName)
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.housegraph")
	viper.SetEnvPrefix("HOUSEGRAPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
