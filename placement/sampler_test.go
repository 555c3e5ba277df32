package placement

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"fsxchallenge/units"
)

func TestSamplerGapAndRange(t *testing.T) {
	bounds := units.Range{Lo: units.New(20), Hi: units.New(40)}
	minGap := units.New(10)
	s := NewSampler(rand.New(rand.NewSource(42)), bounds, minGap)

	yards := s.Take(1000)
	for i, y := range yards {
		if !bounds.Contains(y) {
			t.Fatalf("yards[%d] = %v should be in %v", i, y, bounds)
		}
		if i > 0 && y.AbsDiff(yards[i-1]).Less(minGap) {
			t.Fatalf("yards[%d] = %v and yards[%d] = %v should be at least %v apart",
				i-1, yards[i-1], i, y, minGap)
		}
	}
	if s.Rejected() == 0 {
		t.Error("a 20 yd range with a 10 yd gap should reject some draws")
	}
}

func TestSamplerZeroGap(t *testing.T) {
	bounds := units.Range{Lo: units.New(50), Hi: units.New(60)}
	s := NewSampler(rand.New(rand.NewSource(7)), bounds, units.New(0))
	for i, y := range s.Take(500) {
		if !bounds.Contains(y) {
			t.Fatalf("yards[%d] = %v should be in %v", i, y, bounds)
		}
	}
	if s.Rejected() != 0 {
		t.Errorf("no draw should be rejected without a gap, but %d were", s.Rejected())
	}
}

func TestSamplerOnlyAdjacentConstrained(t *testing.T) {
	// [0, 3) yd with a 1 yd gap must repeat values two steps apart at some point.
	bounds := units.Range{Lo: units.New(0), Hi: units.New(3)}
	s := NewSampler(rand.New(rand.NewSource(3)), bounds, units.New(1))
	yards := s.Take(2000)
	seen := make(map[units.Yards]bool)
	repeated := false
	for _, y := range yards {
		if seen[y] {
			repeated = true
		}
		seen[y] = true
	}
	if !repeated {
		t.Error("non-adjacent values should be allowed to repeat")
	}
}

func TestSamplerDeterministic(t *testing.T) {
	bounds := units.Range{Lo: units.New(20), Hi: units.New(40)}
	a := NewSampler(rand.New(rand.NewSource(99)), bounds, units.New(10)).Take(20)
	b := NewSampler(rand.New(rand.NewSource(99)), bounds, units.New(10)).Take(20)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("samplers with the same seed should agree, but %v != %v at %d", a[i], b[i], i)
		}
	}
}

func TestSamplerInfeasibleTimesOut(t *testing.T) {
	bounds := units.Range{Lo: units.New(10), Hi: units.New(12)}
	s := NewSampler(rand.New(rand.NewSource(1)), bounds, units.New(5))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	yards, err := s.TakeContext(ctx, 20)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error should be DeadlineExceeded, but %v", err)
	}
	if yards != nil {
		t.Errorf("no yardages should be returned, but %v", yards)
	}
}

func TestSamplerCancelledContext(t *testing.T) {
	bounds := units.Range{Lo: units.New(20), Hi: units.New(40)}
	s := NewSampler(rand.New(rand.NewSource(1)), bounds, units.New(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.NextContext(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error should be Canceled, but %v", err)
	}
}

func TestNewRand(t *testing.T) {
	a, b := NewRand(), NewRand()
	same := true
	for i := 0; i < 8; i++ {
		if a.Int63() != b.Int63() {
			same = false
		}
	}
	if same {
		t.Error("two fresh sources should not produce the same sequence")
	}
}
