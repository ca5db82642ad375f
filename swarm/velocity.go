package swarm

import (
	"fmt"

	"github.com/yuulive/ew"
)

// VelocityCalc computes a particle's next velocity from its current
// velocity, its personal best, and a snapshot of the swarm's global best.
// The returned slice is owned by the caller.
type VelocityCalc interface {
	Calc(p *Particle, gbest ew.Point) []float64
}

// Classic is the original velocity update rule:
//
//	v' = v + phiPersonal*r1*(pbest - x) + phiGlobal*r2*(gbest - x)
//
// r1 and r2 are drawn independently per dimension.
type Classic struct {
	PhiPersonal float64
	PhiGlobal   float64
}

func (c Classic) Calc(p *Particle, gbest ew.Point) []float64 {
	vel := make([]float64, len(p.Vel))
	for i, currv := range p.Vel {
		// r1 and r2 MUST be generated uniquely for each dimension.
		r1 := ew.RandFloat()
		r2 := ew.RandFloat()
		vel[i] = currv +
			c.PhiPersonal*r1*(p.Best.At(i)-p.At(i)) +
			c.PhiGlobal*r2*(gbest.At(i)-p.At(i))
	}
	return vel
}

// Canonical scales the classic weighted sum by a constriction factor so
// velocity growth stays bounded:
//
//	v' = k * chi(phiPersonal, phiGlobal) * (v + phiPersonal*r1*(pbest - x) + phiGlobal*r2*(gbest - x))
//
// K is a damping coefficient in (0, 1].  phiPersonal+phiGlobal must
// exceed 4 for the constriction coefficient to be real.
type Canonical struct {
	PhiPersonal float64
	PhiGlobal   float64
	K           float64
}

// NewCanonical validates the coefficients; phi sums of 4 or less make the
// constriction coefficient complex, which has no useful interpretation.
func NewCanonical(phiPersonal, phiGlobal, k float64) (Canonical, error) {
	if phiPersonal+phiGlobal <= 4 {
		return Canonical{}, fmt.Errorf("swarm: phiPersonal+phiGlobal must exceed 4, got %v", phiPersonal+phiGlobal)
	}
	if k <= 0 || k > 1 {
		return Canonical{}, fmt.Errorf("swarm: damping coefficient k must be in (0, 1], got %v", k)
	}
	return Canonical{PhiPersonal: phiPersonal, PhiGlobal: phiGlobal, K: k}, nil
}

func (c Canonical) Calc(p *Particle, gbest ew.Point) []float64 {
	chi := c.K * Constriction(c.PhiPersonal, c.PhiGlobal)
	vel := make([]float64, len(p.Vel))
	for i, currv := range p.Vel {
		r1 := ew.RandFloat()
		r2 := ew.RandFloat()
		vel[i] = chi * (currv +
			c.PhiPersonal*r1*(p.Best.At(i)-p.At(i)) +
			c.PhiGlobal*r2*(gbest.At(i)-p.At(i)))
	}
	return vel
}
