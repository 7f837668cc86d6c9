package sieve

import "github.com/bits-and-blooms/bitset"

// segment is a window over [lo, hi) whose set bits mark known composites.
// It is filled, harvested into the factor base and then dropped.
type segment struct {
	lo, hi    uint64
	rootHi    uint64 // floor(sqrt(hi-1))
	composite *bitset.BitSet
}

func newSegment(lo, hi uint64) *segment {
	return &segment{
		lo:        lo,
		hi:        hi,
		rootHi:    isqrt(hi - 1),
		composite: bitset.New(uint(hi - lo)),
	}
}

// sift marks the multiples of every known prime whose square falls below hi.
// base must hold every prime below lo in ascending order.
func (s *segment) sift(base []uint64) {
	for _, p := range base {
		if p > s.rootHi {
			return
		}
		if p < wheelResidues[1] {
			// Multiples of the wheel base are never candidates.
			continue
		}
		s.cross(p)
	}
}

// cross marks p*k for every wheel candidate k >= p landing in the window.
func (s *segment) cross(p uint64) {
	k := max(p, (s.lo+p-1)/p)
	for c := cursorAt(k); ; c.next() {
		m := p * c.value()
		if m >= s.hi {
			return
		}
		s.composite.Set(uint(m - s.lo))
	}
}

// harvest appends the primes of the window to dst in ascending order.
//
// Primes found inside the window cross off their own multiples before the
// scan moves on, so the first window (lo = 2) needs no base at all.
func (s *segment) harvest(dst []uint64) []uint64 {
	for _, p := range wheelBase {
		if p >= s.lo && p < s.hi {
			dst = append(dst, p)
		}
	}
	for c := cursorAt(max(s.lo, 2)); ; c.next() {
		n := c.value()
		if n >= s.hi {
			return dst
		}
		if s.composite.Test(uint(n - s.lo)) {
			continue
		}
		dst = append(dst, n)
		if n <= s.rootHi {
			s.cross(n)
		}
	}
}
