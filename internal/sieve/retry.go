package sieve

import (
	"errors"
	"fmt"
)

// DefaultMaxGrowths bounds Retry when callers have no better cap.
const DefaultMaxGrowths = 32

// Retry runs op against s, growing s and running op again each time it
// reports an insufficient sieve. Each growth at least doubles the limit and
// reaches the limit the failure asked for. Other errors are returned as is.
// After maxGrowths growths the last insufficient-sieve error is returned.
func Retry[T any](s *Sieve, maxGrowths int, op func(*Sieve) (T, error)) (T, error) {
	for growths := 0; ; growths++ {
		v, err := op(s)
		if err == nil || !IsInsufficient(err) {
			return v, err
		}
		if growths >= maxGrowths {
			var zero T
			return zero, fmt.Errorf("gave up after %d growths: %w", growths, err)
		}

		target := max(2*s.limit, 2)
		var ise *InsufficientSieveError
		if errors.As(err, &ise) {
			target = max(target, ise.Need)
		}
		target = min(target, MaxLimit)
		if target <= s.limit {
			var zero T
			return zero, fmt.Errorf("cannot grow past %d: %w", s.limit, err)
		}

		s.log.Debugw("Growing sieve after insufficient-sieve failure",
			"limit", s.limit,
			"target", target,
			"attempt", growths+1,
		)
		if err := s.Grow(target); err != nil {
			var zero T
			return zero, err
		}
	}
}
