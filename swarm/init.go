package swarm

import "github.com/yuulive/ew"

// PositionInit produces the initial particle positions.
type PositionInit interface {
	Positions() []ew.Point
	Dim() int
	Count() int
}

// VelocityInit produces the initial particle velocities.
type VelocityInit interface {
	Velocities() [][]float64
	Dim() int
	Count() int
}

// RandomPositions scatters N particles uniformly in the feasible box.
type RandomPositions struct {
	N         int
	Intervals ew.Intervals
}

func (in RandomPositions) Positions() []ew.Point { return ew.RandPop(in.N, in.Intervals) }

func (in RandomPositions) Dim() int { return len(in.Intervals) }

func (in RandomPositions) Count() int { return in.N }

// ZeroVelocity starts every particle at rest.
type ZeroVelocity struct {
	N, NDim int
}

func (in ZeroVelocity) Velocities() [][]float64 {
	vels := make([][]float64, in.N)
	for i := range vels {
		vels[i] = make([]float64, in.NDim)
	}
	return vels
}

func (in ZeroVelocity) Dim() int { return in.NDim }

func (in ZeroVelocity) Count() int { return in.N }

// RandomVelocity draws each dimension i of each initial velocity
// uniformly from [-Max[i], Max[i]].
type RandomVelocity struct {
	N   int
	Max []float64
}

func (in RandomVelocity) Velocities() [][]float64 {
	vels := make([][]float64, in.N)
	for i := range vels {
		vel := make([]float64, len(in.Max))
		for j, m := range in.Max {
			vel[j] = m * (1 - 2*ew.RandFloat())
		}
		vels[i] = vel
	}
	return vels
}

func (in RandomVelocity) Dim() int { return len(in.Max) }

func (in RandomVelocity) Count() int { return in.N }
