package cloud

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"
)

// Rand is the source of uniform randomness used by every generator.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform returns a value in [lo, hi).
func uniform(rnd Rand, lo, hi float32) float32 {
	return lo + float32(rnd.Float64())*(hi-lo)
}

// centered returns (U-0.5)*span, i.e. a value in [-span/2, span/2).
func centered(rnd Rand, span float32) float32 {
	return (float32(rnd.Float64()) - 0.5) * span
}

// sign returns +1 or -1 with equal probability.
func sign(rnd Rand) float32 {
	if rnd.Float64() < 0.5 {
		return 1
	}
	return -1
}

// jitter returns U^power with a random sign, scaled by amount.
func jitter(rnd Rand, power, amount float32) float32 {
	m := math32.Pow(float32(rnd.Float64()), power)
	return m * sign(rnd) * amount
}
