// Package config provides configuration structures and loading for primesieve.
package config

// Config represents the complete application configuration.
type Config struct {
	Sieve   SieveConfig   `yaml:"sieve" mapstructure:"sieve"`
	Verify  VerifyConfig  `yaml:"verify" mapstructure:"verify"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SieveConfig controls how sieves are built and grown.
type SieveConfig struct {
	InitialLimit uint64 `yaml:"initial_limit" mapstructure:"initial_limit"` // limit of the first sieve built by a command
	SegmentSize  uint64 `yaml:"segment_size" mapstructure:"segment_size"`   // width of one sieving window
	MaxGrowths   int    `yaml:"max_growths" mapstructure:"max_growths"`     // cap on grow-and-retry rounds per query
}

// VerifyConfig controls the brute-force cross-check.
type VerifyConfig struct {
	Workers   int    `yaml:"workers" mapstructure:"workers"`
	ChunkSize uint64 `yaml:"chunk_size" mapstructure:"chunk_size"` // numbers checked per work item
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color  bool   `yaml:"color" mapstructure:"color"`
	Format string `yaml:"format" mapstructure:"format"` // table or plain
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Sieve: SieveConfig{
			InitialLimit: 1 << 16,
			SegmentSize:  1 << 18,
			MaxGrowths:   32,
		},
		Verify: VerifyConfig{
			Workers:   4,
			ChunkSize: 10000,
		},
		Output: OutputConfig{
			Color:  true,
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}
