package sieve

// ============================================================================
// Brute-force oracles
// ============================================================================

func trialIsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func trialPrimes(lo, hi uint64) []uint64 {
	var out []uint64
	for n := lo; n < hi; n++ {
		if trialIsPrime(n) {
			out = append(out, n)
		}
	}
	return out
}

func bruteDivisors(n uint64) (count, sum uint64) {
	for d := uint64(1); d <= n; d++ {
		if n%d == 0 {
			count++
			sum += d
		}
	}
	return count, sum
}

func bruteOrder(a, n uint64) uint64 {
	x := a % n
	for k := uint64(1); k < n; k++ {
		if x == 1%n {
			return k
		}
		x = x * a % n
	}
	return 0
}

func collect(s *Sieve) []uint64 {
	var out []uint64
	for p := range s.All() {
		out = append(out, p)
	}
	return out
}
