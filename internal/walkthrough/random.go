package walkthrough

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
)

// RandomInRange returns an integer in [lo, hi]. Any pair of ints is valid,
// including the full int range.
func RandomInRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	// the span is computed unsigned so it cannot overflow
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int(rand.Uint64())
	}
	return lo + int(rand.Uint64N(span+1))
}

// CoinFlip is true half of the time.
func CoinFlip() bool {
	return rand.Float64() < 0.5
}

func random(_ context.Context, env *Env) error {
	fmt.Fprintf(env.Out, "random_number : %d\n", RandomInRange(1, 10))
	fmt.Fprintf(env.Out, "rand_bool : %t\n", CoinFlip())
	return nil
}
