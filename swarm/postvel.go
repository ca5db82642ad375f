package swarm

import "math"

// PostVelocity adjusts a freshly calculated velocity before the particle
// moves.  Clamps registered on an optimizer apply in registration order.
type PostVelocity interface {
	Apply(vel []float64)
}

// MaxVelocityAbs caps the Euclidean magnitude of the whole velocity
// vector at Max, rescaling the vector when it is too fast.
type MaxVelocityAbs struct {
	Max float64
}

func (mv MaxVelocityAbs) Apply(vel []float64) {
	norm := 0.0
	for _, v := range vel {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm <= mv.Max || norm == 0 {
		return
	}
	scale := mv.Max / norm
	for i := range vel {
		vel[i] *= scale
	}
}

// MaxVelocityDims caps the speed of each dimension independently at
// Max[i], preserving direction via copysign.
type MaxVelocityDims struct {
	Max []float64
}

func (mv MaxVelocityDims) Apply(vel []float64) {
	for i, v := range vel {
		if math.Abs(v) > mv.Max[i] {
			vel[i] = math.Copysign(mv.Max[i], v)
		}
	}
}
