package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorizationString(t *testing.T) {
	tests := []struct {
		f    Factorization
		want string
	}{
		{Factorization{{Prime: 2, Exponent: 2}, {Prime: 3, Exponent: 1}}, "2^2 * 3"},
		{Factorization{{Prime: 97, Exponent: 1}}, "97"},
		{Factorization{{Prime: 2, Exponent: 10}}, "2^10"},
		{nil, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.f.String())
	}
}

func TestFactorizationArithmetic(t *testing.T) {
	// 720 = 2^4 * 3^2 * 5
	f := Factorization{{Prime: 2, Exponent: 4}, {Prime: 3, Exponent: 2}, {Prime: 5, Exponent: 1}}

	prod, err := f.Product()
	require.NoError(t, err)
	assert.Equal(t, uint64(720), prod)

	assert.Equal(t, uint64(30), f.NumberOfDivisors())

	sigma, err := f.SumOfDivisors()
	require.NoError(t, err)
	assert.Equal(t, uint64(31*13*6), sigma)

	assert.Equal(t, uint64(192), f.Totient())
	assert.Equal(t, uint64(30), f.Radical())

	divs := f.Divisors()
	assert.Len(t, divs, 30)
	assert.Equal(t, uint64(1), divs[0])
	assert.Equal(t, uint64(720), divs[len(divs)-1])
	assert.IsIncreasing(t, divs)
}

func TestFactorizationOverflow(t *testing.T) {
	// 4294967311 is the smallest prime above 2^32; its square overflows.
	f := Factorization{{Prime: 4294967311, Exponent: 2}}

	_, err := f.Product()
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = f.SumOfDivisors()
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestSumOfDivisorsNearWidth(t *testing.T) {
	// 2^63 has sigma 2^64 - 1, the largest value that still fits.
	f := Factorization{{Prime: 2, Exponent: 63}}

	sigma, err := f.SumOfDivisors()
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), sigma)

	// Multiplying by 3 pushes it over.
	f = append(f, Factor{Prime: 3, Exponent: 1})
	_, err = f.SumOfDivisors()
	assert.ErrorIs(t, err, ErrOverflow)
}
