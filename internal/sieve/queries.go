package sieve

import "fmt"

// IsPrime reports whether n is prime. It answers for every n <= Limit^2.
func (s *Sieve) IsPrime(n uint64) (bool, error) {
	if n < 2 {
		return false, nil
	}
	if n <= s.limit {
		return s.index.Contains(n), nil
	}
	if !squareAtLeast(s.limit, n) {
		return false, insufficient(n, n, s.limit)
	}
	for _, p := range s.primes {
		if p > n/p {
			break
		}
		if n%p == 0 {
			return false, nil
		}
	}
	return true, nil
}

// Factorise returns the prime factorisation of n by trial division over the
// factor base. A cofactor left once p^2 exceeds it is prime. It fails when
// the base runs out before that point.
func (s *Sieve) Factorise(n uint64) (Factorization, error) {
	if n < 2 {
		return nil, &DomainError{Op: "factorise", Reason: fmt.Sprintf("%d has no prime factorisation", n)}
	}

	var out Factorization
	rem := n
	exhausted := true
	for _, p := range s.primes {
		if p > rem/p {
			exhausted = false
			break
		}
		if rem%p != 0 {
			continue
		}
		var e uint32
		for rem%p == 0 {
			rem /= p
			e++
		}
		out = append(out, Factor{Prime: p, Exponent: e})
	}

	if rem > 1 {
		if exhausted && !squareAtLeast(s.limit, rem) {
			return nil, insufficient(n, rem, s.limit)
		}
		out = append(out, Factor{Prime: rem, Exponent: 1})
	}
	return out, nil
}

// NumberOfDivisors returns the count of positive divisors of n.
func (s *Sieve) NumberOfDivisors(n uint64) (uint64, error) {
	f, err := s.Factorise(n)
	if err != nil {
		return 0, err
	}
	return f.NumberOfDivisors(), nil
}

// SumOfDivisors returns the sum of the positive divisors of n.
func (s *Sieve) SumOfDivisors(n uint64) (uint64, error) {
	f, err := s.Factorise(n)
	if err != nil {
		return 0, err
	}
	return f.SumOfDivisors()
}

// Divisors returns the positive divisors of n in ascending order.
func (s *Sieve) Divisors(n uint64) ([]uint64, error) {
	if n == 1 {
		return []uint64{1}, nil
	}
	f, err := s.Factorise(n)
	if err != nil {
		return nil, err
	}
	return f.Divisors(), nil
}

// Totient returns Euler's phi(n) for n >= 1.
func (s *Sieve) Totient(n uint64) (uint64, error) {
	switch n {
	case 0:
		return 0, &DomainError{Op: "totient", Reason: "totient of 0 is undefined"}
	case 1:
		return 1, nil
	}
	f, err := s.Factorise(n)
	if err != nil {
		return 0, err
	}
	return f.Totient(), nil
}

// Order returns the multiplicative order of a modulo n: the smallest k > 0
// with a^k = 1 (mod n). a and n must be coprime.
//
// Starting from phi(n), each prime factor q of phi(n) is divided out of the
// candidate while a^(candidate/q) is still 1.
func (s *Sieve) Order(a, n uint64) (uint64, error) {
	if n == 0 {
		return 0, &DomainError{Op: "order", Reason: "modulus must be positive"}
	}
	if g := GCD(a, n); g != 1 {
		return 0, &DomainError{Op: "order", Reason: fmt.Sprintf("gcd(%d, %d) = %d, not a unit", a, n, g)}
	}
	if n == 1 {
		return 1, nil
	}

	phi, err := s.Totient(n)
	if err != nil {
		return 0, fmt.Errorf("order of %d modulo %d: %w", a, n, err)
	}
	if phi == 1 {
		return 1, nil
	}
	bound, err := s.Factorise(phi)
	if err != nil {
		return 0, fmt.Errorf("order of %d modulo %d: %w", a, n, err)
	}

	k := phi
	for _, q := range bound {
		for k%q.Prime == 0 && PowMod(a, k/q.Prime, n) == 1 {
			k /= q.Prime
		}
	}
	return k, nil
}

