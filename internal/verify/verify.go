// Package verify cross-checks sieve queries against brute-force oracles.
package verify

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dbsmedya/primesieve/internal/config"
	"github.com/dbsmedya/primesieve/internal/logger"
	"github.com/dbsmedya/primesieve/internal/sieve"
)

// Check names one cross-check.
type Check string

const (
	CheckPrimality Check = "primality"
	CheckFactor    Check = "factorisation"
	CheckDivisors  Check = "divisor-count"
	CheckSigma     Check = "divisor-sum"
)

// Stats contains overall verification statistics.
type Stats struct {
	From, To uint64
	Checked  uint64
	Primes   uint64
	Workers  int
	Chunks   int
	Duration time.Duration
}

// MismatchError reports a query whose answer disagrees with brute force.
type MismatchError struct {
	N     uint64
	Check Check
	Got   string
	Want  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch for %d: got %s, want %s", e.Check, e.N, e.Got, e.Want)
}

// Verifier splits a range into chunks and checks them in parallel. Every
// worker owns its own sieve.
type Verifier struct {
	workers   int
	chunkSize uint64
	sieveCfg  config.SieveConfig
	logger    *logger.Logger
}

// NewVerifier creates a Verifier from configuration.
func NewVerifier(cfg *config.Config, log *logger.Logger) (*Verifier, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if cfg.Verify.Workers <= 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.Verify.Workers)
	}
	if cfg.Verify.ChunkSize == 0 {
		return nil, fmt.Errorf("chunk size must be positive")
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &Verifier{
		workers:   cfg.Verify.Workers,
		chunkSize: cfg.Verify.ChunkSize,
		sieveCfg:  cfg.Sieve,
		logger:    log,
	}, nil
}

type chunk struct {
	lo, hi uint64 // inclusive
}

// Verify checks every n in [from, to]. The first mismatch cancels the rest.
func (v *Verifier) Verify(ctx context.Context, from, to uint64) (*Stats, error) {
	from = max(from, 2)
	if to < from {
		return nil, fmt.Errorf("empty range [%d, %d]", from, to)
	}

	start := time.Now()
	stats := &Stats{From: from, To: to, Workers: v.workers}
	var checked, primes atomic.Uint64

	g, ctx := errgroup.WithContext(ctx)
	chunks := make(chan chunk)

	g.Go(func() error {
		defer close(chunks)
		for lo := from; ; {
			hi := to
			if to-lo >= v.chunkSize {
				hi = lo + v.chunkSize - 1
			}
			select {
			case chunks <- chunk{lo: lo, hi: hi}:
				stats.Chunks++
			case <-ctx.Done():
				return ctx.Err()
			}
			if hi == to {
				return nil
			}
			lo = hi + 1
		}
	})

	for id := 0; id < v.workers; id++ {
		log := v.logger.WithWorker(id)
		g.Go(func() error {
			s, err := sieve.New(v.sieveCfg.InitialLimit,
				sieve.WithSegmentSize(v.sieveCfg.SegmentSize),
				sieve.WithLogger(log),
			)
			if err != nil {
				return fmt.Errorf("failed to build sieve: %w", err)
			}
			for c := range chunks {
				log.Debugw("Checking chunk", "lo", c.lo, "hi", c.hi)
				for n := c.lo; ; n++ {
					if err := ctx.Err(); err != nil {
						return fmt.Errorf("verification interrupted: %w", err)
					}
					isPrime, err := v.checkOne(s, n)
					if err != nil {
						return err
					}
					checked.Add(1)
					if isPrime {
						primes.Add(1)
					}
					if n == c.hi {
						break
					}
				}
			}
			return nil
		})
	}

	err := g.Wait()
	stats.Checked = checked.Load()
	stats.Primes = primes.Load()
	stats.Duration = time.Since(start)
	if err != nil {
		return stats, err
	}

	v.logger.Infow("Verification complete",
		"from", from,
		"to", to,
		"checked", stats.Checked,
		"primes", stats.Primes,
		"duration", stats.Duration,
	)
	return stats, nil
}

// checkOne runs every cross-check for n against s, growing s as needed.
func (v *Verifier) checkOne(s *sieve.Sieve, n uint64) (bool, error) {
	maxGrowths := v.sieveCfg.MaxGrowths

	isPrime, err := sieve.Retry(s, maxGrowths, func(s *sieve.Sieve) (bool, error) {
		return s.IsPrime(n)
	})
	if err != nil {
		return false, fmt.Errorf("failed to test %d: %w", n, err)
	}
	if want := trialIsPrime(n); isPrime != want {
		return false, &MismatchError{N: n, Check: CheckPrimality, Got: fmt.Sprint(isPrime), Want: fmt.Sprint(want)}
	}

	f, err := sieve.Retry(s, maxGrowths, func(s *sieve.Sieve) (sieve.Factorization, error) {
		return s.Factorise(n)
	})
	if err != nil {
		return false, fmt.Errorf("failed to factorise %d: %w", n, err)
	}
	if err := checkFactorization(n, f); err != nil {
		return false, err
	}

	count, sum := divisorOracle(n)
	if got := f.NumberOfDivisors(); got != count {
		return false, &MismatchError{N: n, Check: CheckDivisors, Got: fmt.Sprint(got), Want: fmt.Sprint(count)}
	}
	sigma, err := f.SumOfDivisors()
	if err != nil {
		return false, fmt.Errorf("failed to sum divisors of %d: %w", n, err)
	}
	if sigma != sum {
		return false, &MismatchError{N: n, Check: CheckSigma, Got: fmt.Sprint(sigma), Want: fmt.Sprint(sum)}
	}
	return isPrime, nil
}

func checkFactorization(n uint64, f sieve.Factorization) error {
	prod, err := f.Product()
	if err != nil || prod != n {
		return &MismatchError{N: n, Check: CheckFactor, Got: f.String(), Want: fmt.Sprintf("product %d", n)}
	}
	for i, pe := range f {
		if pe.Exponent == 0 || !trialIsPrime(pe.Prime) || (i > 0 && pe.Prime <= f[i-1].Prime) {
			return &MismatchError{N: n, Check: CheckFactor, Got: f.String(), Want: "increasing prime powers"}
		}
	}
	return nil
}
