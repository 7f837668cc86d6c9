package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/primesieve/internal/sieve"
)

func TestRunPrimes(t *testing.T) {
	useConfig(t, "30", "8")

	out, err := run(t, primesCmd)
	require.NoError(t, err)
	assert.Equal(t, "Limit=30\nCount=10\n2\t3\t5\t7\t11\t13\t17\t19\t23\t29\n", out)
}

func TestRunPrimesWrapsRows(t *testing.T) {
	useConfig(t, "50", "8")

	out, err := run(t, primesCmd)
	require.NoError(t, err)
	assert.Equal(t, "Limit=50\nCount=15\n2\t3\t5\t7\t11\t13\t17\t19\t23\t29\n31\t37\t41\t43\t47\n", out)
}

func TestRunPrimesCount(t *testing.T) {
	useConfig(t, "1000", "8")
	primesCount = 5

	out, err := run(t, primesCmd)
	require.NoError(t, err)
	assert.Equal(t, "Limit=11\nCount=5\n2\t3\t5\t7\t11\n", out)
}

func TestRunNth(t *testing.T) {
	useConfig(t, "10", "8")

	out, err := run(t, nthCmd, "1", "5", "5", "1000")
	require.NoError(t, err)
	assert.Equal(t, "1\t2\n5\t11\n1000\t7919\n", out)
}

func TestRunNthRejectsZero(t *testing.T) {
	useConfig(t, "10", "8")

	_, err := run(t, nthCmd, "0")
	assert.Error(t, err)
}

func TestRunNthRejectsOrdinalBeyondInt(t *testing.T) {
	useConfig(t, "10", "8")

	_, err := run(t, nthCmd, "5", "18446744073709551615")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
	assert.NotContains(t, err.Error(), "negative")
}

func TestRunIsPrime(t *testing.T) {
	useConfig(t, "10", "8")

	out, err := run(t, isPrimeCmd, "9", "7", "1", "1000003", "9")
	require.NoError(t, err)
	assert.Equal(t, "9\tcomposite\n7\tprime\n1\tneither\n1000003\tprime\n", out)
}

func TestRunIsPrimeGrowthCap(t *testing.T) {
	useConfig(t, "2", "0")

	_, err := run(t, isPrimeCmd, "1000003")
	require.Error(t, err)
	assert.ErrorIs(t, err, sieve.ErrInsufficientSieve)
}

func TestRunIsPrimeInvalidArgument(t *testing.T) {
	useConfig(t, "10", "8")

	_, err := run(t, isPrimeCmd, "seven")
	assert.Error(t, err)
}

func TestRunFactor(t *testing.T) {
	useConfig(t, "10", "8")

	out, err := run(t, factorCmd, "12", "360", "97", "600851475143")
	require.NoError(t, err)
	assert.Equal(t, "12\t2^2 * 3\n360\t2^3 * 3^2 * 5\n97\t97\n600851475143\t71 * 839 * 1471 * 6857\n", out)
}

func TestRunFactorDomainError(t *testing.T) {
	useConfig(t, "10", "8")

	_, err := run(t, factorCmd, "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, sieve.ErrDomain)
}

func TestRunDivisors(t *testing.T) {
	useConfig(t, "10", "8")
	listDivisors = true

	out, err := run(t, divisorsCmd, "12", "28")
	require.NoError(t, err)
	assert.Equal(t, "12\t6\t28\t4\t1 2 3 4 6 12\n28\t6\t56\t12\t1 2 4 7 14 28\n", out)
}

func TestRunOrder(t *testing.T) {
	useConfig(t, "100", "8")

	out, err := run(t, orderCmd, "10", "7")
	require.NoError(t, err)
	assert.Equal(t, "a=10\nn=7\norder=6\n", out)
}

func TestRunOrderNotCoprime(t *testing.T) {
	useConfig(t, "100", "8")

	_, err := run(t, orderCmd, "2", "4")
	require.Error(t, err)
	assert.ErrorIs(t, err, sieve.ErrDomain)
}

func TestRunVerify(t *testing.T) {
	useConfig(t, "16", "8")
	verifyFrom = 2
	verifyTo = 500
	verifyWorkers = 3
	verifyChunkSize = 100

	out, err := run(t, verifyCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Range=[2, 500]\n")
	assert.Contains(t, out, "Checked=499\n")
	assert.Contains(t, out, "Primes=95\n")
	assert.Contains(t, out, "Workers=3\n")
	assert.Contains(t, out, "Chunks=5\n")
}

func TestRunWithMissingConfigUsesDefaults(t *testing.T) {
	useConfig(t, "10", "8")
	cfgFile = t.TempDir() + "/absent.yaml"
	noColorOrig := noColor
	noColor = true
	defer func() { noColor = noColorOrig }()

	out, err := run(t, orderCmd, "10", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Multiplicative order")
	assert.Contains(t, out, "6")
}
