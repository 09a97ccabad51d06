package nanobench

import (
	"fmt"
	"iter"
	"math"
)

// twoTo64 is the smallest float64 above the uint64 range.
const twoTo64 = 1 << 64

// GeometricSequence generates unique, strictly increasing integers from a
// geometric progression.
//
// The real-valued term may take several multiplications to reach the next
// integer when the factor is close to 1.0; Next skips those repeats so every
// value is emitted exactly once.
//
// A sequence cannot be rewound. Construct a new one to start over.
type GeometricSequence struct {
	current float64
	factor  float64
}

// NewGeometricSequence creates a sequence whose first value is start.
// It panics if start is zero or factor is not greater than 1.0, since either
// would make Next loop forever.
func NewGeometricSequence(start uint64, factor float64) *GeometricSequence {
	if start == 0 {
		panic("nanobench: geometric sequence must start at 1 or more")
	}
	if !(factor > 1.0) {
		panic(fmt.Sprintf("nanobench: geometric sequence factor must exceed 1.0, got %v", factor))
	}
	return &GeometricSequence{current: float64(start), factor: factor}
}

// Next returns the next value of the sequence. Once the progression passes
// the uint64 range every further call returns math.MaxUint64.
func (g *GeometricSequence) Next() uint64 {
	if !(g.current < twoTo64) {
		return math.MaxUint64
	}
	value := uint64(g.current)
	for g.current < twoTo64 && uint64(g.current) == value {
		g.current *= g.factor
	}
	return value
}

// All returns an infinite iterator over the remaining values.
func (g *GeometricSequence) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			if !yield(g.Next()) {
				return
			}
		}
	}
}
