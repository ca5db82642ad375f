package genetic

import (
	"math"

	"github.com/yuulive/ew"
)

// Cross combines a pair of parent chromosomes into zero or more
// children.
type Cross interface {
	Cross(parent1, parent2 []float64) [][]float64
}

// GeneCross combines one gene position of two parents into child genes.
// Gene-level operators are lifted to whole chromosomes by CrossAllGenes.
type GeneCross interface {
	Cross(g1, g2 float64) []float64
}

// CrossExp blends two genes with an exponentially distributed step along
// the line between them, producing two mirrored children:
//
//	c1 = g1 + alpha*(g2 - g1)
//	c2 = g2 + alpha*(g1 - g2)
//
// alpha is drawn from Exp(1), so children usually fall between the
// parents but can overshoot past either one.  Out-of-box children are the
// pre-birth filter's problem.
type CrossExp struct{}

func (CrossExp) Cross(g1, g2 float64) []float64 {
	alpha := -math.Log(1 - ew.RandFloat())
	return []float64{
		g1 + alpha*(g2-g1),
		g2 + alpha*(g1-g2),
	}
}

// CrossMean averages the parents' genes into a single child.
type CrossMean struct{}

func (CrossMean) Cross(g1, g2 float64) []float64 {
	return []float64{(g1 + g2) / 2}
}

// CrossAllGenes lifts a gene-level operator to whole chromosomes by
// applying it independently at every gene position.  The child count is
// whatever the gene operator produces.
type CrossAllGenes struct {
	Gene GeneCross
}

func (c CrossAllGenes) Cross(parent1, parent2 []float64) [][]float64 {
	if len(parent1) != len(parent2) || len(parent1) == 0 {
		return nil
	}

	first := c.Gene.Cross(parent1[0], parent2[0])
	children := make([][]float64, len(first))
	for i := range children {
		children[i] = make([]float64, len(parent1))
		children[i][0] = first[i]
	}

	for j := 1; j < len(parent1); j++ {
		genes := c.Gene.Cross(parent1[j], parent2[j])
		for i := range children {
			children[i][j] = genes[i]
		}
	}
	return children
}
