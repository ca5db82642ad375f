package genetic

import "github.com/yuulive/ew"

// PreBirth rejects child chromosomes violating domain constraints before
// they are admitted to the population.  Rejected children are discarded,
// never repaired, and are never evaluated by the goal function.
type PreBirth interface {
	Check(chromo []float64) bool
}

// CheckInterval accepts only chromosomes whose every gene lies inside
// its configured interval.
type CheckInterval struct {
	Intervals ew.Intervals
}

func (c CheckInterval) Check(chromo []float64) bool {
	return c.Intervals.Contains(chromo)
}
