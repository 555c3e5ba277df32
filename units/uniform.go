package units

import (
	"fmt"
	"math"
)

// MaxSampleMilli is the widest span, in milli-yards, Uniform can draw from.
const MaxSampleMilli uint64 = math.MaxInt64

// Rand is the source of randomness for uniform sampling.
//
// *math/rand.Rand satisfies it; Int63n must be unbiased.
type Rand interface {
	Int63n(n int64) int64
}

// Range is a half-open range of yards [Lo, Hi).
type Range struct {
	Lo Yards
	Hi Yards
}

// Empty reports whether r contains no value.
func (r Range) Empty() bool {
	return !r.Lo.Less(r.Hi)
}

// Contains reports whether Lo <= y < Hi.
func (r Range) Contains(y Yards) bool {
	return !y.Less(r.Lo) && y.Less(r.Hi)
}

// Len returns Hi - Lo, or zero when r is empty.
func (r Range) Len() Yards {
	if r.Empty() {
		return Yards{}
	}
	return r.Hi.AbsDiff(r.Lo)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Lo, r.Hi)
}

// Uniform draws a length uniformly from [lo, hi) at milli-yard resolution.
//
// It panics if lo >= hi or the span exceeds MaxSampleMilli.
func Uniform(rng Rand, lo, hi Yards) Yards {
	if !lo.Less(hi) {
		panic(fmt.Sprintf("units: empty range [%s, %s)", lo, hi))
	}
	span := hi.milliYards - lo.milliYards
	if span > MaxSampleMilli {
		panic(fmt.Sprintf("units: range [%s, %s) is too wide", lo, hi))
	}
	return Yards{lo.milliYards + uint64(rng.Int63n(int64(span)))}
}

// Sample draws a length uniformly from r.
func (r Range) Sample(rng Rand) Yards {
	return Uniform(rng, r.Lo, r.Hi)
}
