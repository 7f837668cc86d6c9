// Package sieve provides a growable segmented prime sieve and the
// number-theoretic queries built on its factor base.
//
// A Sieve owns an ascending, append-only list of primes that is complete up
// to Limit. Queries whose answer needs primes beyond Limit fail with an error
// matching ErrInsufficientSieve; callers grow the sieve (see Retry) and ask
// again. A Sieve is not safe for concurrent use.
package sieve

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/dbsmedya/primesieve/internal/logger"
)

const (
	// MaxLimit is the largest limit a sieve can grow to.
	MaxLimit uint64 = 1 << 40

	// DefaultSegmentSize is the width of one sieving window.
	DefaultSegmentSize uint64 = 1 << 18
)

// Sieve holds every prime up to Limit.
type Sieve struct {
	primes      []uint64
	index       *roaring64.Bitmap
	limit       uint64
	segmentSize uint64
	log         *logger.Logger
}

// Option configures a Sieve.
type Option func(*Sieve)

// WithSegmentSize sets the sieving window width. Values of zero are ignored
// and widths above MaxLimit are clamped to it.
func WithSegmentSize(n uint64) Option {
	return func(s *Sieve) {
		if n > 0 {
			s.segmentSize = min(n, MaxLimit)
		}
	}
}

// WithLogger sets the logger used to report growth.
func WithLogger(log *logger.Logger) Option {
	return func(s *Sieve) {
		if log != nil {
			s.log = log
		}
	}
}

func newEmpty(opts []Option) *Sieve {
	s := &Sieve{
		index:       roaring64.New(),
		segmentSize: DefaultSegmentSize,
		log:         logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New returns a sieve holding exactly the primes <= limit.
// Limits of 0 and 1 give an empty sieve.
func New(limit uint64, opts ...Option) (*Sieve, error) {
	s := newEmpty(opts)
	if err := s.Grow(limit); err != nil {
		return nil, err
	}
	return s, nil
}

// NewForCount returns a sieve holding at least count primes.
func NewForCount(count int, opts ...Option) (*Sieve, error) {
	if count < 0 {
		return nil, &DomainError{Op: "new for count", Reason: fmt.Sprintf("negative prime count %d", count)}
	}
	s := newEmpty(opts)
	if err := s.Grow(countBound(count)); err != nil {
		return nil, err
	}
	for len(s.primes) < count {
		s.log.Debugw("Prime count bound undershot, doubling", "have", len(s.primes), "want", count)
		if err := s.Extend(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// smallNth holds the k-th prime (1-indexed) for k < 6; index 0 is the empty sieve.
var smallNth = [...]uint64{0, 2, 3, 5, 7, 11}

// countBound returns a limit holding at least k primes, using
// p_k < k(ln k + ln ln k) for k >= 6.
func countBound(k int) uint64 {
	if k < len(smallNth) {
		return smallNth[k]
	}
	fk := float64(k)
	return uint64(math.Ceil(fk * (math.Log(fk) + math.Log(math.Log(fk)))))
}

// Grow extends the sieve so that it holds every prime <= limit. Sieving
// resumes just past the current limit; a smaller limit is a no-op.
func (s *Sieve) Grow(limit uint64) error {
	if limit <= s.limit {
		return nil
	}
	if limit > MaxLimit {
		return fmt.Errorf("failed to grow sieve to %d (max %d): %w", limit, MaxLimit, ErrOverflow)
	}

	from := s.limit
	before := len(s.primes)
	lo := max(s.limit+1, 2)
	for lo <= limit {
		hi := limit + 1
		if hi-lo > s.segmentSize {
			hi = lo + s.segmentSize
		}
		seg := newSegment(lo, hi)
		seg.sift(s.primes)
		n := len(s.primes)
		s.primes = seg.harvest(s.primes)
		s.index.AddMany(s.primes[n:])
		s.limit = hi - 1
		lo = hi
	}
	s.limit = limit

	s.log.Debugw("Sieve grown",
		"from", from,
		"to", limit,
		"new_primes", len(s.primes)-before,
		"primes", len(s.primes),
	)
	return nil
}

// Extend doubles the sieve limit.
func (s *Sieve) Extend() error {
	if s.limit > MaxLimit/2 {
		return fmt.Errorf("failed to extend sieve beyond %d: %w", s.limit, ErrOverflow)
	}
	return s.Grow(max(2*s.limit, 2))
}
