package swarm

import "github.com/yuulive/ew"

// PostMove adjusts a particle's position after the velocity has been
// applied and before the goal function is evaluated.  Hooks registered on
// an optimizer apply in registration order.
type PostMove interface {
	Apply(pos []float64)
}

// MoveToBoundary clips every coordinate outside the feasible box onto the
// nearest boundary.
type MoveToBoundary struct {
	Intervals ew.Intervals
}

func (m MoveToBoundary) Apply(pos []float64) {
	for i, x := range pos {
		pos[i] = m.Intervals[i].Clamp(x)
	}
}

// RandomTeleport relocates the particle to a uniform random point in the
// feasible box with the configured probability.  Useful for preserving
// swarm diversity and escaping local minima.
type RandomTeleport struct {
	Intervals   ew.Intervals
	Probability float64
}

func (m RandomTeleport) Apply(pos []float64) {
	if ew.RandFloat() >= m.Probability {
		return
	}
	copy(pos, m.Intervals.RandomPos())
}
