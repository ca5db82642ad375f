// Package genetic implements a genetic algorithm with pluggable creation,
// pairing, crossover, mutation, pre-birth filtering, and selection
// strategies.  Chromosomes are float64 vectors; lower goal values are
// fitter.
package genetic

import (
	"math"

	"github.com/yuulive/ew"
)

// Individual pairs a chromosome with its goal value.  The value is
// computed lazily on first access and invalidated by mutation.
type Individual struct {
	chromo    []float64
	val       float64
	evaluated bool
}

func NewIndividual(chromo []float64) *Individual {
	c := make([]float64, len(chromo))
	copy(c, chromo)
	return &Individual{chromo: c}
}

func (ind *Individual) Len() int { return len(ind.chromo) }

func (ind *Individual) Gene(i int) float64 { return ind.chromo[i] }

// Chromosome returns a copy of the individual's genes.
func (ind *Individual) Chromosome() []float64 {
	c := make([]float64, len(ind.chromo))
	copy(c, ind.chromo)
	return c
}

// SetGene overwrites one gene and invalidates the cached goal value.
func (ind *Individual) SetGene(i int, g float64) {
	ind.chromo[i] = g
	ind.evaluated = false
}

// Goal returns the individual's goal value, evaluating it on first call.
func (ind *Individual) Goal(goal ew.Goal) float64 {
	if !ind.evaluated {
		ind.val = goal.Calculate(ind.chromo)
		ind.evaluated = true
	}
	return ind.val
}

// Point converts the individual to an evaluated ew.Point.
func (ind *Individual) Point(goal ew.Goal) ew.Point {
	return ew.NewPoint(ind.chromo, ind.Goal(goal))
}

// Population is the current set of individuals.  Order carries no
// meaning except as the deterministic tie-breaker used by selection.
type Population []*Individual

// Best returns the fittest individual, or nil for an empty population.
// Earlier individuals win ties, and any non-NaN value beats NaN.
func (pop Population) Best(goal ew.Goal) *Individual {
	if len(pop) == 0 {
		return nil
	}
	best := pop[0]
	bestval := best.Goal(goal)
	for _, ind := range pop[1:] {
		v := ind.Goal(goal)
		if v < bestval || (math.IsNaN(bestval) && !math.IsNaN(v)) {
			best, bestval = ind, v
		}
	}
	return best
}
