// Package config holds the run configuration of the pipeline: data
// directory layout, chunk sizing and the data-source list. Values are
// resolved through viper with flag, environment and file precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDataDir          = "data.dir"
	KeyChunkSize        = "chunk.size"
	KeyLargeFile        = "chunk.large_file_threshold"
	KeyFormat           = "output.format"
	KeySources          = "sources"
	KeyLocationsFile    = "locations.file"
	KeyRegistryFile     = "registry.file"
	KeyDeterministicIDs = "ids.deterministic"
)

// SetDefaults registers the default configuration values on viper.
func SetDefaults() {
	viper.SetDefault(KeyDataDir, "data")
	viper.SetDefault(KeyChunkSize, 100000)
	viper.SetDefault(KeyLargeFile, int64(100*1024*1024))
	viper.SetDefault(KeyFormat, "")
	viper.SetDefault(KeyLocationsFile, filepath.Join("configs", "valid_locations.yaml"))
	viper.SetDefault(KeyRegistryFile, "")
	viper.SetDefault(KeyDeterministicIDs, false)
}

// Config is the resolved run configuration.
type Config struct {
	// DataDir is the root of the raw/processed/intermediate/transformed/
	// ontology directory layout.
	DataDir string
	// ChunkSize is the row count per chunk for large files.
	ChunkSize int
	// LargeFileThreshold is the file size in bytes above which a source is
	// processed in chunks instead of one pass.
	LargeFileThreshold int64
	// Format is the quad serialisation name; empty selects the default.
	Format string
	// Sources restricts the run to the named sources; empty means all
	// registered sources.
	Sources []string
	// LocationsFile is the YAML reference list of valid location names.
	LocationsFile string
	// RegistryFile overrides the built-in mapping registry when set.
	RegistryFile string
	// DeterministicIDs derives synthetic identifiers from row content.
	DeterministicIDs bool
}

// FromViper resolves the configuration from viper's current state.
func FromViper() *Config {
	return &Config{
		DataDir:            viper.GetString(KeyDataDir),
		ChunkSize:          viper.GetInt(KeyChunkSize),
		LargeFileThreshold: viper.GetInt64(KeyLargeFile),
		Format:             viper.GetString(KeyFormat),
		Sources:            viper.GetStringSlice(KeySources),
		LocationsFile:      viper.GetString(KeyLocationsFile),
		RegistryFile:       viper.GetString(KeyRegistryFile),
		DeterministicIDs:   viper.GetBool(KeyDeterministicIDs),
	}
}

// ProcessedFile is the processed CSV path for a source.
func (c *Config) ProcessedFile(source string) string {
	return filepath.Join(c.DataDir, "processed", "processed_"+source+".csv")
}

// IntermediateDir holds per-chunk graph files during a build.
func (c *Config) IntermediateDir() string {
	return filepath.Join(c.DataDir, "intermediate")
}

// TransformedDir holds the merged per-source graphs.
func (c *Config) TransformedDir() string {
	return filepath.Join(c.DataDir, "transformed")
}

// TransformedFile is the merged per-source graph path.
func (c *Config) TransformedFile(source string) string {
	return filepath.Join(c.TransformedDir(), source+".ttl")
}

// SkeletonFile is the empty ontology structure path.
func (c *Config) SkeletonFile() string {
	return filepath.Join(c.DataDir, "ontology", "housing_ontology.ttl")
}

// PopulatedFile is the final populated ontology path.
func (c *Config) PopulatedFile() string {
	return filepath.Join(c.DataDir, "ontology", "populated_housing_ontology.ttl")
}

// EnsureDirs creates the output directory layout.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{
		c.IntermediateDir(),
		c.TransformedDir(),
		filepath.Dir(c.SkeletonFile()),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory %q: %v", dir, err)
		}
	}
	return nil
}
