package genetic

import (
	"fmt"

	"github.com/petar/GoLLRB/llrb"
	"gonum.org/v1/gonum/mat"

	"github.com/yuulive/ew"
)

// Creator produces the initial population.
type Creator interface {
	Create() Population
	Dim() int
	Count() int
}

// RandomCreator fills the initial population with uniform random
// chromosomes inside the feasible box.
type RandomCreator struct {
	Size      int
	Intervals ew.Intervals
}

func NewRandomCreator(size int, intervals ew.Intervals) (RandomCreator, error) {
	if err := intervals.Check(len(intervals)); err != nil {
		return RandomCreator{}, err
	}
	return RandomCreator{Size: size, Intervals: intervals}, nil
}

func (c RandomCreator) Create() Population {
	pop := make(Population, c.Size)
	for i := range pop {
		pop[i] = NewIndividual(c.Intervals.RandomPos())
	}
	return pop
}

func (c RandomCreator) Dim() int { return len(c.Intervals) }

func (c RandomCreator) Count() int { return c.Size }

type violator struct {
	chromo []float64
	howbad float64
}

func (v1 violator) Less(than llrb.Item) bool {
	v2 := than.(violator)
	return v1.howbad < v2.howbad
}

// ConstrainedCreator tries to generate an initial population of feasible
// chromosomes satisfying the linear constraints "Low <= A*x <= Up" in
// addition to the box bounds.  It draws random chromosomes within the box
// and keeps the feasible ones, queueing up the least unfavorable
// infeasible candidates in case Size feasible ones cannot be found within
// MaxIter draws.
type ConstrainedCreator struct {
	Size      int
	MaxIter   int
	Intervals ew.Intervals
	A         *mat.Dense
	Low, Up   []float64
}

func NewConstrainedCreator(size, maxiter int, intervals ew.Intervals, A *mat.Dense, low, up []float64) (*ConstrainedCreator, error) {
	m, n := A.Dims()
	if n != len(intervals) {
		return nil, fmt.Errorf("genetic: constraint matrix has %v columns for %v-dimensional chromosomes", n, len(intervals))
	}
	if len(low) != m || len(up) != m {
		return nil, fmt.Errorf("genetic: %v constraint rows but %v lower and %v upper limits", m, len(low), len(up))
	}
	return &ConstrainedCreator{
		Size:      size,
		MaxIter:   maxiter,
		Intervals: intervals,
		A:         A,
		Low:       low,
		Up:        up,
	}, nil
}

func (c *ConstrainedCreator) Create() Population {
	m, _ := c.A.Dims()
	violaters := llrb.New()
	pop := make(Population, 0, c.Size)

	ax := mat.NewVecDense(m, nil)
	for i := 0; i < c.MaxIter && len(pop) < c.Size; i++ {
		chromo := c.Intervals.RandomPos()
		ax.MulVec(c.A, mat.NewVecDense(len(chromo), chromo))

		howbad := 0.0
		for j := 0; j < m; j++ {
			rng := c.Up[j] - c.Low[j]
			if rng == 0 {
				rng = 1
			}
			if diff := ax.AtVec(j) - c.Up[j]; diff > 0 {
				howbad += diff / rng
			} else if diff := c.Low[j] - ax.AtVec(j); diff > 0 {
				howbad += diff / rng
			}
		}

		if howbad == 0 {
			pop = append(pop, NewIndividual(chromo))
		} else {
			violaters.InsertNoReplace(violator{chromo: chromo, howbad: howbad})
			for violaters.Len() > c.Size-len(pop) {
				violaters.DeleteMax()
			}
		}
	}

	// Top up with the least-violating candidates seen.
	for len(pop) < c.Size && violaters.Len() > 0 {
		v := violaters.DeleteMin().(violator)
		pop = append(pop, NewIndividual(v.chromo))
	}
	return pop
}

func (c *ConstrainedCreator) Dim() int { return len(c.Intervals) }

func (c *ConstrainedCreator) Count() int { return c.Size }
