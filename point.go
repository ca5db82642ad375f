package ew

import "math"

// Point represents a candidate solution: a position in the search space
// together with its goal function value.  The position is copied on
// construction and never mutated afterward, so a Point can be shared
// freely between strategies.
type Point struct {
	pos []float64
	Val float64
}

func NewPoint(pos []float64, val float64) Point {
	cpos := make([]float64, len(pos))
	copy(cpos, pos)
	return Point{pos: cpos, Val: val}
}

// NewPointUneval returns a point with the given position and an
// unevaluated (positive infinity) goal value.
func NewPointUneval(pos []float64) Point {
	return NewPoint(pos, math.Inf(1))
}

func (p Point) At(i int) float64 { return p.pos[i] }

func (p Point) Len() int { return len(p.pos) }

// Pos returns a copy of the point's position.
func (p Point) Pos() []float64 {
	pos := make([]float64, len(p.pos))
	copy(pos, p.pos)
	return pos
}
