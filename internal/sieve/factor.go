package sieve

import (
	"fmt"
	"slices"
	"strings"
)

// Factor is one prime power p^e of a factorisation.
type Factor struct {
	Prime    uint64
	Exponent uint32
}

// Factorization is a prime factorisation with strictly increasing primes and
// exponents >= 1.
type Factorization []Factor

// Product multiplies the factorisation back out.
func (f Factorization) Product() (uint64, error) {
	out := uint64(1)
	for _, pe := range f {
		for range pe.Exponent {
			var ok bool
			if out, ok = mulChecked(out, pe.Prime); !ok {
				return 0, fmt.Errorf("product of %s: %w", f, ErrOverflow)
			}
		}
	}
	return out, nil
}

// String renders the factorisation as "2^2 * 3".
func (f Factorization) String() string {
	parts := make([]string, len(f))
	for i, pe := range f {
		if pe.Exponent == 1 {
			parts[i] = fmt.Sprintf("%d", pe.Prime)
		} else {
			parts[i] = fmt.Sprintf("%d^%d", pe.Prime, pe.Exponent)
		}
	}
	return strings.Join(parts, " * ")
}

// NumberOfDivisors returns the product of (e+1) over all prime powers.
func (f Factorization) NumberOfDivisors() uint64 {
	out := uint64(1)
	for _, pe := range f {
		out *= uint64(pe.Exponent) + 1
	}
	return out
}

// SumOfDivisors returns sigma(n). Each prime contributes 1 + p + ... + p^e,
// accumulated with overflow checks.
func (f Factorization) SumOfDivisors() (uint64, error) {
	out := uint64(1)
	for _, pe := range f {
		term, pw := uint64(1), uint64(1)
		for range pe.Exponent {
			var ok bool
			if pw, ok = mulChecked(pw, pe.Prime); !ok {
				return 0, fmt.Errorf("sum of divisors of %s: %w", f, ErrOverflow)
			}
			if term, ok = addChecked(term, pw); !ok {
				return 0, fmt.Errorf("sum of divisors of %s: %w", f, ErrOverflow)
			}
		}
		var ok bool
		if out, ok = mulChecked(out, term); !ok {
			return 0, fmt.Errorf("sum of divisors of %s: %w", f, ErrOverflow)
		}
	}
	return out, nil
}

// Totient returns Euler's phi of the factorised number.
func (f Factorization) Totient() uint64 {
	out := uint64(1)
	for _, pe := range f {
		out *= pe.Prime - 1
		for range pe.Exponent - 1 {
			out *= pe.Prime
		}
	}
	return out
}

// Radical returns the product of the distinct primes.
func (f Factorization) Radical() uint64 {
	out := uint64(1)
	for _, pe := range f {
		out *= pe.Prime
	}
	return out
}

// Divisors lists every divisor in ascending order.
func (f Factorization) Divisors() []uint64 {
	divs := make([]uint64, 1, f.NumberOfDivisors())
	divs[0] = 1
	for _, pe := range f {
		n := len(divs)
		pw := uint64(1)
		for range pe.Exponent {
			pw *= pe.Prime
			for _, d := range divs[:n] {
				divs = append(divs, d*pw)
			}
		}
	}
	slices.Sort(divs)
	return divs
}
