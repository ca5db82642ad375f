package genetic

import (
	"math"
	"sort"

	"github.com/yuulive/ew"
)

// Selection culls the population after breeding.  Selections registered
// on an optimizer apply in registration order; each receives the
// population the previous one produced.
type Selection interface {
	Apply(pop Population, goal ew.Goal) Population
}

// KillFitnessNaN removes every individual whose goal value is NaN or
// infinite.
type KillFitnessNaN struct{}

func (KillFitnessNaN) Apply(pop Population, goal ew.Goal) Population {
	kept := make(Population, 0, len(pop))
	for _, ind := range pop {
		v := ind.Goal(goal)
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			kept = append(kept, ind)
		}
	}
	return kept
}

// LimitPopulation truncates the population to its N fittest individuals.
// The sort is stable, so equal goal values keep their original order.
type LimitPopulation struct {
	N int
}

func (s LimitPopulation) Apply(pop Population, goal ew.Goal) Population {
	if len(pop) <= s.N {
		return pop
	}
	sorted := make(Population, len(pop))
	copy(sorted, pop)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Goal(goal) < sorted[j].Goal(goal)
	})
	return sorted[:s.N]
}
