package placement

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"fsxchallenge/units"
)

// ctxCheckInterval is the number of rejected draws between two checks of the context.
const ctxCheckInterval = 1024

// Sampler is a lazy sequence of yardages drawn uniformly from a range.
//
// Each emitted value differs from the previously emitted one by at least
// MinGap. Only adjacent values are constrained.
type Sampler struct {
	rng    units.Rand
	bounds units.Range
	minGap units.Yards

	last     units.Yards
	hasLast  bool
	rejected uint64
}

// NewRand returns a new random source seeded from crypto/rand.
//
// Every sampler should get its own source, a *rand.Rand is not safe for concurrent use.
func NewRand() *rand.Rand {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))
}

// NewSampler creates a sampler over bounds.
//
// bounds must not be empty. If bounds is narrower than twice minGap the
// sampler may never produce a value.
func NewSampler(rng units.Rand, bounds units.Range, minGap units.Yards) *Sampler {
	return &Sampler{
		rng:    rng,
		bounds: bounds,
		minGap: minGap,
	}
}

// accept reports whether y may follow the last emitted value, and records it if so.
func (s *Sampler) accept(y units.Yards) bool {
	if s.hasLast && s.last.AbsDiff(y).Less(s.minGap) {
		s.rejected++
		return false
	}
	s.last = y
	s.hasLast = true
	return true
}

// Next returns the next value. It loops until a draw satisfies the gap.
func (s *Sampler) Next() units.Yards {
	for {
		if y := s.bounds.Sample(s.rng); s.accept(y) {
			return y
		}
	}
}

// NextContext is like Next but gives up when ctx is done.
func (s *Sampler) NextContext(ctx context.Context) (units.Yards, error) {
	if err := ctx.Err(); err != nil {
		return units.Yards{}, err
	}
	for i := 1; ; i++ {
		if y := s.bounds.Sample(s.rng); s.accept(y) {
			return y, nil
		}
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return units.Yards{}, err
			}
		}
	}
}

// Take returns the next n values.
func (s *Sampler) Take(n int) []units.Yards {
	yards := make([]units.Yards, n)
	for i := range yards {
		yards[i] = s.Next()
	}
	return yards
}

// TakeContext returns the next n values, or the context error if ctx ends first.
func (s *Sampler) TakeContext(ctx context.Context, n int) ([]units.Yards, error) {
	yards := make([]units.Yards, n)
	for i := range yards {
		y, err := s.NextContext(ctx)
		if err != nil {
			return nil, err
		}
		yards[i] = y
	}
	return yards, nil
}

// Rejected returns the number of draws discarded for violating the gap.
func (s *Sampler) Rejected() uint64 {
	return s.rejected
}
