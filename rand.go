package ew

import "math/rand"

// Rng is the random source consumed by initializers, velocity
// calculators, pairing, crossover, mutation, and teleport post-moves.
type Rng interface {
	Float64() float64
	Intn(n int) int
}

// Rand is the process-wide random source.  The default delegates to the
// top-level math/rand functions and is safe for concurrent use by
// parallel experiment workers.  Swapping in a seeded *rand.Rand gives
// reproducible single-threaded runs, but *rand.Rand is not synchronized -
// do not combine that with parallel experiment workers.
var Rand Rng = stdRng{}

type stdRng struct{}

func (stdRng) Float64() float64 { return rand.Float64() }

func (stdRng) Intn(n int) int { return rand.Intn(n) }

func RandFloat() float64 { return Rand.Float64() }

// RandPop generates n points distributed uniformly in the box described
// by intervals, with unevaluated goal values.
func RandPop(n int, intervals Intervals) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = NewPointUneval(intervals.RandomPos())
	}
	return points
}
