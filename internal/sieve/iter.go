package sieve

import (
	"iter"
	"sort"
)

// Limit returns the largest n for which every prime <= n is known.
func (s *Sieve) Limit() uint64 {
	return s.limit
}

// Len returns the number of primes held.
func (s *Sieve) Len() int {
	return len(s.primes)
}

// All yields the known primes in ascending order. The sequence can be ranged
// over repeatedly and never triggers sieving; primes added by a Grow during
// iteration are not yielded.
func (s *Sieve) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		primes := s.primes
		for _, p := range primes {
			if !yield(p) {
				return
			}
		}
	}
}

// Indexed yields (k, p) where p is the k-th prime, 0-indexed.
func (s *Sieve) Indexed() iter.Seq2[int, uint64] {
	return func(yield func(int, uint64) bool) {
		primes := s.primes
		for i, p := range primes {
			if !yield(i, p) {
				return
			}
		}
	}
}

// NthPrime returns the k-th prime, 0-indexed, or false if the sieve does not
// reach it yet.
func (s *Sieve) NthPrime(k int) (uint64, bool) {
	if k < 0 || k >= len(s.primes) {
		return 0, false
	}
	return s.primes[k], true
}

// Primes returns a copy of the factor base.
func (s *Sieve) Primes() []uint64 {
	out := make([]uint64, len(s.primes))
	copy(out, s.primes)
	return out
}

// PrimePi returns the number of primes <= n.
func (s *Sieve) PrimePi(n uint64) (uint64, error) {
	if n > s.limit {
		return 0, &InsufficientSieveError{N: n, Limit: s.limit, Need: n}
	}
	return s.index.Rank(n), nil
}

// NextPrime returns the smallest known prime > n, or false if it lies beyond
// the sieve.
func (s *Sieve) NextPrime(n uint64) (uint64, bool) {
	i := sort.Search(len(s.primes), func(i int) bool { return s.primes[i] > n })
	if i == len(s.primes) {
		return 0, false
	}
	return s.primes[i], true
}
