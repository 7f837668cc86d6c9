package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/primesieve/internal/config"
	"github.com/dbsmedya/primesieve/internal/logger"
	"github.com/dbsmedya/primesieve/internal/report"
	"github.com/dbsmedya/primesieve/internal/sieve"
)

// session bundles what every query command needs.
type session struct {
	cfg *config.Config
	log *logger.Logger
	out *report.Printer
}

// newSession loads configuration, applies CLI overrides and builds the
// logger and printer.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadOrDefault(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(GetCLIOverrides())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &session{
		cfg: cfg,
		log: log,
		out: report.New(cmd.OutOrStdout(), cfg.Output),
	}, nil
}

func (s *session) options() []sieve.Option {
	return []sieve.Option{
		sieve.WithSegmentSize(s.cfg.Sieve.SegmentSize),
		sieve.WithLogger(s.log),
	}
}

// newSieve builds a sieve to the configured initial limit.
func (s *session) newSieve() (*sieve.Sieve, error) {
	sv, err := sieve.New(s.cfg.Sieve.InitialLimit, s.options()...)
	if err != nil {
		return nil, fmt.Errorf("failed to build sieve: %w", err)
	}
	s.log.WithLimit(sv.Limit()).Debugw("Sieve ready", "primes", sv.Len())
	return sv, nil
}

// parseNumbers parses every argument as an unsigned 64-bit integer.
func parseNumbers(args []string) ([]uint64, error) {
	out := make([]uint64, len(args))
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		out[i] = n
	}
	return out, nil
}
