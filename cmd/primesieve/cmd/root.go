package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/primesieve/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile     string
	logLevel    string
	logFormat   string
	limit       uint64
	segmentSize uint64
	maxGrowths  int
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "primesieve",
	Short: "Segmented prime sieve and number-theory queries",
	Long: `A command-line front end for a growable segmented prime sieve.

Features:
  - Wheel-skipping segmented sieve that grows on demand
  - Primality, factorisation and divisor functions
  - Multiplicative order modulo n
  - Parallel brute-force cross-checking of query results`,
	Version:       Version,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "primesieve.yaml",
		"Path to configuration file (defaults are used if it does not exist)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Sieve overrides
	rootCmd.PersistentFlags().Uint64VarP(&limit, "limit", "l", 0,
		"Override the initial sieve limit")
	rootCmd.PersistentFlags().Uint64Var(&segmentSize, "segment-size", 0,
		"Override the sieving window width")
	rootCmd.PersistentFlags().IntVar(&maxGrowths, "max-growths", 0,
		"Override the cap on grow-and-retry rounds per query")

	// Output overrides
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable coloured output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() config.Overrides {
	return config.Overrides{
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		Limit:       limit,
		SegmentSize: segmentSize,
		MaxGrowths:  maxGrowths,
		NoColor:     noColor,
	}
}
