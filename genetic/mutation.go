package genetic

import (
	"math"

	"github.com/yuulive/ew"
)

// Mutation perturbs a child individual in place.  Implementations decide
// themselves whether to fire at all (probability lives in the lifted
// operator, not in the optimizer).
type Mutation interface {
	Mutate(ind *Individual)
}

// GeneMutation perturbs a single gene value.
type GeneMutation interface {
	Mutate(gene float64) float64
}

// BitwiseMutation flips BitCount random bits of the gene's IEEE-754
// representation.  Flips in the exponent can produce huge, Inf, or NaN
// values; those are culled later by pre-birth filters or KillFitnessNaN.
type BitwiseMutation struct {
	BitCount int
}

func NewBitwiseMutation(bitCount int) BitwiseMutation {
	return BitwiseMutation{BitCount: bitCount}
}

func (m BitwiseMutation) Mutate(gene float64) float64 {
	bits := math.Float64bits(gene)
	for i := 0; i < m.BitCount; i++ {
		bits ^= 1 << uint(ew.Rand.Intn(64))
	}
	return math.Float64frombits(bits)
}

// ChromoMutation lifts a gene-level operator to whole chromosomes: with
// the configured probability (0 to 1) per individual it applies the
// operator to GeneCount randomly chosen gene positions.
type ChromoMutation struct {
	Probability float64
	GeneCount   int
	Op          GeneMutation
}

func (m ChromoMutation) Mutate(ind *Individual) {
	if ew.RandFloat() >= m.Probability {
		return
	}
	for i := 0; i < m.GeneCount; i++ {
		at := ew.Rand.Intn(ind.Len())
		ind.SetGene(at, m.Op.Mutate(ind.Gene(at)))
	}
}
