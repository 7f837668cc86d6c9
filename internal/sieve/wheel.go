package sieve

import "sort"

const (
	// wheelPeriod is the product of wheelBase.
	wheelPeriod = 2 * 3 * 5 * 7
	wheelSpokes = 48
)

var wheelBase = [...]uint64{2, 3, 5, 7}

// wheelResidues lists every r in [1, wheelPeriod) coprime to wheelPeriod.
var wheelResidues = [wheelSpokes]uint64{
	1, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103,
	107, 109, 113, 121, 127, 131, 137, 139, 143, 149, 151, 157,
	163, 167, 169, 173, 179, 181, 187, 191, 193, 197, 199, 209,
}

// WheelBase returns the small primes the wheel skips.
func WheelBase() []uint64 {
	out := make([]uint64, len(wheelBase))
	copy(out, wheelBase[:])
	return out
}

// WheelResidues returns, in ascending order, the positive integers below the
// wheel period that are coprime to every prime of WheelBase.
func WheelResidues() []uint64 {
	out := make([]uint64, wheelSpokes)
	copy(out, wheelResidues[:])
	return out
}

// wheelCursor walks the integers coprime to the wheel base in ascending order.
type wheelCursor struct {
	turn  uint64 // multiple of wheelPeriod
	spoke int
}

// cursorAt positions a cursor on the smallest wheel candidate >= n.
func cursorAt(n uint64) wheelCursor {
	turn := n - n%wheelPeriod
	r := n % wheelPeriod
	spoke := sort.Search(wheelSpokes, func(i int) bool { return wheelResidues[i] >= r })
	if spoke == wheelSpokes {
		turn += wheelPeriod
		spoke = 0
	}
	return wheelCursor{turn: turn, spoke: spoke}
}

func (c wheelCursor) value() uint64 {
	return c.turn + wheelResidues[c.spoke]
}

func (c *wheelCursor) next() {
	c.spoke++
	if c.spoke == wheelSpokes {
		c.spoke = 0
		c.turn += wheelPeriod
	}
}

// onWheel reports whether n is coprime to the wheel base.
func onWheel(n uint64) bool {
	r := n % wheelPeriod
	i := sort.Search(wheelSpokes, func(i int) bool { return wheelResidues[i] >= r })
	return i < wheelSpokes && wheelResidues[i] == r
}
