package ew

import "fmt"

// Interval is the feasible range for one search-space dimension.
type Interval struct {
	Min, Max float64
}

func (iv Interval) Span() float64 { return iv.Max - iv.Min }

func (iv Interval) Contains(x float64) bool { return x >= iv.Min && x <= iv.Max }

// Clamp returns x moved to the nearest boundary if it lies outside the
// interval.
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}

// Uniform returns a uniform random value inside the interval drawn from
// Rand.
func (iv Interval) Uniform() float64 {
	return iv.Min + Rand.Float64()*(iv.Max-iv.Min)
}

// Intervals is the feasible box for the whole search space - one interval
// per dimension.
type Intervals []Interval

// UniformIntervals builds n identical intervals - the common case of a
// symmetric search box.
func UniformIntervals(n int, min, max float64) Intervals {
	ivs := make(Intervals, n)
	for i := range ivs {
		ivs[i] = Interval{Min: min, Max: max}
	}
	return ivs
}

// Check validates the box against the problem dimension.  It is used by
// optimizer constructors to reject bad configuration before any run is
// attempted.
func (ivs Intervals) Check(dim int) error {
	if len(ivs) != dim {
		return fmt.Errorf("ew: interval count %v does not match dimension %v", len(ivs), dim)
	}
	for i, iv := range ivs {
		if iv.Min > iv.Max {
			return fmt.Errorf("ew: interval %v is inverted: [%v, %v]", i, iv.Min, iv.Max)
		}
	}
	return nil
}

func (ivs Intervals) Contains(pos []float64) bool {
	if len(pos) != len(ivs) {
		return false
	}
	for i, x := range pos {
		if !ivs[i].Contains(x) {
			return false
		}
	}
	return true
}

// RandomPos returns a uniform random position inside the box.
func (ivs Intervals) RandomPos() []float64 {
	pos := make([]float64, len(ivs))
	for i := range pos {
		pos[i] = ivs[i].Uniform()
	}
	return pos
}
