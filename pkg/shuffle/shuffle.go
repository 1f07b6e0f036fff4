// Package shuffle implements the seeded, platform-independent permutation
// gamegrid uses so that a layout computed on the server matches the one
// computed anywhere else for the same input size.
//
// The generator is the classic minimal LCG
//
//	state = (state*9301 + 49297) mod 233280
//
// and [Shuffle] is a Fisher-Yates pass from the last index down to 1. All
// arithmetic is integral except the final division, so results are
// bit-identical everywhere.
package shuffle

import "slices"

// LCG parameters.
const (
	Multiplier = 9301
	Increment  = 49297
	Modulus    = 233280
)

// LCG is a linear congruential generator. The zero value is seeded with 0.
type LCG struct {
	state int64
}

// NewLCG returns a generator seeded with seed reduced into [0, Modulus).
func NewLCG(seed int) *LCG {
	s := int64(seed) % Modulus
	if s < 0 {
		s += Modulus
	}
	return &LCG{state: s}
}

// Next advances the generator and returns the new state in [0, Modulus).
func (g *LCG) Next() int64 {
	g.state = (g.state*Multiplier + Increment) % Modulus
	return g.state
}

// Float64 advances the generator and returns a value in [0, 1).
func (g *LCG) Float64() float64 {
	return float64(g.Next()) / Modulus
}

// Intn advances the generator and returns a value in [0, n).
// It panics if n <= 0.
func (g *LCG) Intn(n int) int {
	if n <= 0 {
		panic("shuffle: invalid argument to Intn")
	}
	return int(g.Float64() * float64(n))
}

// Shuffle returns a permutation of in determined only by seed and len(in).
// The input slice is not modified.
func Shuffle[T any](in []T, seed int) []T {
	out := slices.Clone(in)
	if len(out) < 2 {
		return out
	}
	g := NewLCG(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
