// Package swarm implements particle swarm optimization with pluggable
// initialization, velocity-calculation, post-velocity and post-move
// strategies.
package swarm

import (
	"math"

	"github.com/yuulive/ew"
)

// Particle is a single search agent: current position and value, current
// velocity, and the best point it has personally visited.
type Particle struct {
	Id int
	ew.Point
	Vel  []float64
	Best ew.Point
}

// Move applies the already-calculated velocity to the particle's
// position, leaving the new position unevaluated.
func (p *Particle) Move() {
	pos := make([]float64, p.Len())
	for i := range pos {
		pos[i] = p.At(i) + p.Vel[i]
	}
	p.Point = ew.NewPointUneval(pos)
}

// Update records the evaluated point for the particle's current position
// and refreshes the personal best.  Ties keep the earlier best so that
// repeated equal values never churn state.
func (p *Particle) Update(newp ew.Point) {
	p.Point = newp
	if newp.Val < p.Best.Val {
		p.Best = newp
	}
}

// Swarm is the full particle population.
type Swarm []*Particle

// NewSwarm builds particles from initial positions and velocities.  The
// personal best of each particle starts at its own initial position.
func NewSwarm(points []ew.Point, vels [][]float64) Swarm {
	pop := make(Swarm, len(points))
	for i, p := range points {
		pop[i] = &Particle{
			Id:    i,
			Point: p,
			Best:  p,
			Vel:   vels[i],
		}
	}
	return pop
}

// Best returns the particle holding the lowest personal-best value.
// Earlier particles win ties.  Returns nil for an empty swarm.
func (pop Swarm) Best() *Particle {
	if len(pop) == 0 {
		return nil
	}
	best := pop[0]
	for _, p := range pop[1:] {
		if p.Best.Val < best.Best.Val {
			best = p
		}
	}
	return best
}

// Constriction calculates the constriction coefficient for the given c1
// and c2 of the particle velocity equation:
//
//	v_next = k(v_curr + c1*rand*(p_personal-x) + c2*rand*(p_glob-x))
//
// c1+c2 must be greater than (but is usually close to) 4.  Originally
// described in:
//
//	Clerc and M.  "The swarm and the queen: towards a deterministic and
//	adaptive particle swarm optimization" Proc. 1999 Congress on
//	Evolutionary Computation, pp. 1951-1957
func Constriction(c1, c2 float64) float64 {
	phi := c1 + c2
	return 2 / math.Abs(2-phi-math.Sqrt(phi*phi-4*phi))
}
