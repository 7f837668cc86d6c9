package sieve

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientSieve is returned when the factor base does not reach the
	// square root of the queried quantity. Grow the sieve and retry.
	ErrInsufficientSieve = errors.New("insufficient sieve")

	// ErrDomain is returned for inputs outside an algorithm's domain.
	ErrDomain = errors.New("argument outside domain")

	// ErrOverflow is returned when a result or a requested limit does not fit
	// the 64-bit integer width.
	ErrOverflow = errors.New("arithmetic overflow")
)

// InsufficientSieveError reports that a query on N needs primes beyond Limit.
//
// Need is a limit that is guaranteed to satisfy the same query.
type InsufficientSieveError struct {
	N     uint64
	Limit uint64
	Need  uint64
}

func (e *InsufficientSieveError) Error() string {
	return fmt.Sprintf("insufficient sieve: %d needs limit %d, have %d", e.N, e.Need, e.Limit)
}

func (e *InsufficientSieveError) Unwrap() error { return ErrInsufficientSieve }

// insufficient reports a query on n that needs every prime up to the square
// root of rem, the part of n still to be resolved.
func insufficient(n, rem, limit uint64) *InsufficientSieveError {
	need := isqrt(rem)
	if need*need < rem {
		need++
	}
	return &InsufficientSieveError{N: n, Limit: limit, Need: need}
}

// DomainError reports a call with arguments the operation is not defined for.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// IsInsufficient reports whether err asks the caller to grow the sieve.
func IsInsufficient(err error) bool {
	return errors.Is(err, ErrInsufficientSieve)
}
