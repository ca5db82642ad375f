package genetic

import "github.com/yuulive/ew"

// Pairing selects parent pairs from the current population for
// crossbreeding.  Pairs are returned as index pairs into the population.
type Pairing interface {
	Pair(pop Population, goal ew.Goal) [][2]int
}

// RandomPairing samples parent pairs uniformly with replacement, one
// pair per two population members.
type RandomPairing struct{}

func (RandomPairing) Pair(pop Population, goal ew.Goal) [][2]int {
	if len(pop) < 2 {
		return nil
	}
	pairs := make([][2]int, 0, len(pop)/2)
	for i := 0; i < len(pop)/2; i++ {
		pairs = append(pairs, [2]int{ew.Rand.Intn(len(pop)), ew.Rand.Intn(len(pop))})
	}
	return pairs
}

// Tournament builds Families parent pairs.  Each parent is the winner of
// Rounds uniform random draws from the population - the fittest draw
// wins, so selection pressure grows with Rounds.
type Tournament struct {
	Families int
	Rounds   int
}

func NewTournament(families, rounds int) Tournament {
	return Tournament{Families: families, Rounds: rounds}
}

func (t Tournament) Pair(pop Population, goal ew.Goal) [][2]int {
	if len(pop) < 2 {
		return nil
	}
	pairs := make([][2]int, 0, t.Families)
	for i := 0; i < t.Families; i++ {
		pairs = append(pairs, [2]int{t.winner(pop, goal), t.winner(pop, goal)})
	}
	return pairs
}

func (t Tournament) winner(pop Population, goal ew.Goal) int {
	best := ew.Rand.Intn(len(pop))
	for r := 1; r < t.Rounds; r++ {
		i := ew.Rand.Intn(len(pop))
		if pop[i].Goal(goal) < pop[best].Goal(goal) {
			best = i
		}
	}
	return best
}
