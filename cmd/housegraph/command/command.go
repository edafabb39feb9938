// Package command implements the housegraph CLI commands.
package command

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/housegraph/housegraph/clog"
	"github.com/housegraph/housegraph/config"
	"github.com/housegraph/housegraph/locations"
	"github.com/housegraph/housegraph/mapping"
)

func getContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		select {
		case <-ch:
		case <-ctx.Done():
		}
		signal.Stop(ch)
		cancel()
	}()
	return ctx, cancel
}

// registerTransformFlags declares the shared transform flags on cmd. The
// viper binds happen in PreRunE rather than here: several commands carry the
// same flags against the same keys, and binding at registration time would
// leave every key pointing at whichever command was registered last.
func registerTransformFlags(cmd *cobra.Command) {
	cmd.Flags().Int("chunk", 100000, "number of rows per intermediate graph chunk")
	cmd.Flags().String("format", "nquads", "quad format for graph files")
	cmd.Flags().Bool("deterministic-ids", false, "derive entity identifiers from row content instead of random UUIDs")
	cmd.Flags().String("locations", "", "path to the valid locations list")
	cmd.Flags().String("registry", "", "path to a source registry file (built-in registry if empty)")
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return bindTransformFlags(cmd)
	}
}

func bindTransformFlags(cmd *cobra.Command) error {
	binds := []struct{ key, flag string }{
		{config.KeyChunkSize, "chunk"},
		{config.KeyFormat, "format"},
		{config.KeyDeterministicIDs, "deterministic-ids"},
		{config.KeyLocationsFile, "locations"},
		{config.KeyRegistryFile, "registry"},
	}
	for _, b := range binds {
		if err := viper.BindPFlag(b.key, cmd.Flags().Lookup(b.flag)); err != nil {
			return err
		}
	}
	return nil
}

func openRegistry(cfg *config.Config) (*mapping.Registry, error) {
	if cfg.RegistryFile == "" {
		return mapping.Default(), nil
	}
	return mapping.LoadFile(cfg.RegistryFile)
}

// openValidator loads the location list when one is configured. Sources
// without a location column run fine without it; sources that filter on
// location fail per source when the validator is missing.
func openValidator(cfg *config.Config) *locations.Validator {
	if cfg.LocationsFile == "" {
		return nil
	}
	loc, err := locations.Load(cfg.LocationsFile)
	if err != nil {
		clog.Warningf("could not load locations list: %v", err)
		return nil
	}
	return loc
}
