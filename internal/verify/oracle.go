package verify

// trialIsPrime tests n by dividing by every d with d*d <= n.
func trialIsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// divisorOracle counts and sums divisors by pairing d with n/d.
// The sum may wrap for n near 2^64; verify ranges stay far below that.
func divisorOracle(n uint64) (count, sum uint64) {
	for d := uint64(1); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}
		q := n / d
		count++
		sum += d
		if q != d {
			count++
			sum += q
		}
	}
	return count, sum
}
