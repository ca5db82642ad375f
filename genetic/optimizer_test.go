package genetic

import (
	"database/sql"
	"math"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/yuulive/ew"
	"github.com/yuulive/ew/stop"
)

func schwefel(x []float64) float64 {
	tot := 418.9829 * float64(len(x))
	for _, v := range x {
		tot -= v * math.Sin(math.Sqrt(math.Abs(v)))
	}
	return tot
}

func TestEmptyPopulation(t *testing.T) {
	seedrng()
	creator, err := NewRandomCreator(0, ew.UniformIntervals(2, -1, 1))
	if err != nil {
		t.Fatalf("[ERROR] %v", err)
	}

	opt, err := New(ew.GoalFunc(sumsq), stop.NewMaxIterations(10),
		creator, RandomPairing{}, CrossAllGenes{Gene: CrossMean{}}, nil)
	if err != nil {
		t.Fatalf("[ERROR] %v", err)
	}

	best, ok := opt.FindMin()
	if ok {
		t.Errorf("[ERROR] empty population reported a result: %+v", best)
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(ew.GoalFunc(sumsq), stop.NewMaxIterations(1),
		RandomCreator{Size: -1}, RandomPairing{}, CrossAllGenes{Gene: CrossMean{}}, nil); err == nil {
		t.Errorf("[ERROR] negative population size accepted")
	}
	if _, err := New(ew.GoalFunc(sumsq), stop.NewMaxIterations(1),
		RandomCreator{Size: 5}, RandomPairing{}, CrossAllGenes{Gene: CrossMean{}}, nil); err == nil {
		t.Errorf("[ERROR] zero-length chromosomes accepted")
	}
}

// Rejected children must never reach the goal function, and with an
// interval filter installed the goal must only ever see in-box
// chromosomes even though bit mutation produces arbitrary values.
func TestPreBirthShieldsGoal(t *testing.T) {
	seedrng()
	ivs := ew.UniformIntervals(3, -10, 10)
	goal := &countingGoal{t: t, fn: sumsq, box: ivs}

	creator, err := NewRandomCreator(40, ivs)
	if err != nil {
		t.Fatalf("[ERROR] %v", err)
	}
	opt, err := New(goal, stop.NewMaxIterations(30),
		creator,
		NewTournament(20, 3),
		CrossAllGenes{Gene: CrossExp{}},
		ChromoMutation{Probability: 0.5, GeneCount: 1, Op: BitwiseMutation{BitCount: 1}},
		PreBirths(CheckInterval{Intervals: ivs}),
		Selections(KillFitnessNaN{}, LimitPopulation{N: 40}),
	)
	if err != nil {
		t.Fatalf("[ERROR] %v", err)
	}

	if _, ok := opt.FindMin(); !ok {
		t.Errorf("[ERROR] run reported no result")
	}
}

func TestSchwefel(t *testing.T) {
	seedrng()
	dim := 5
	ivs := ew.UniformIntervals(dim, -500, 500)

	creator, err := NewRandomCreator(800, ivs)
	if err != nil {
		t.Fatalf("[ERROR] %v", err)
	}
	checker := stop.NewCompositeAny(
		stop.NewThreshold(1e-4),
		stop.NewGoalNotChange(200, 1e-7),
		stop.NewMaxIterations(3000),
	)

	opt, err := New(ew.GoalFunc(schwefel), checker,
		creator,
		NewTournament(400, 5),
		CrossAllGenes{Gene: CrossExp{}},
		ChromoMutation{Probability: 0.15, GeneCount: 3, Op: BitwiseMutation{BitCount: 1}},
		PreBirths(CheckInterval{Intervals: ivs}),
		Selections(KillFitnessNaN{}, LimitPopulation{N: 800}),
	)
	if err != nil {
		t.Fatalf("[ERROR] %v", err)
	}

	best, ok := opt.FindMin()
	if !ok {
		t.Fatalf("[ERROR] run reported no result")
	}
	if best.Val >= 1e-3 {
		t.Errorf("[ERROR] best goal value %v, want < 1e-3", best.Val)
	}
	for i := 0; i < dim; i++ {
		if math.Abs(best.At(i)-420.9687) > 0.1 {
			t.Errorf("[ERROR] gene %v is %v, want within 0.1 of 420.9687", i, best.At(i))
		}
	}
	t.Logf("[INFO] converged to %v at %v", best.Val, best.Pos())
}

func TestDb(t *testing.T) {
	seedrng()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "genetic.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ivs := ew.UniformIntervals(2, -5, 5)
	creator, err := NewRandomCreator(10, ivs)
	if err != nil {
		t.Fatalf("[ERROR] %v", err)
	}
	opt, err := New(ew.GoalFunc(sumsq), stop.NewMaxIterations(5),
		creator, RandomPairing{}, CrossAllGenes{Gene: CrossMean{}}, nil,
		Selections(LimitPopulation{N: 10}),
		DB(db),
	)
	if err != nil {
		t.Fatalf("[ERROR] %v", err)
	}
	opt.FindMin()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM " + TblBest).Scan(&count)
	if err != nil {
		t.Errorf("[ERROR] best table query failed: %v", err)
	} else if count != 5 {
		t.Errorf("[ERROR] best table has %v rows, want 5", count)
	}

	count = 0
	err = db.QueryRow("SELECT COUNT(*) FROM " + TblIndividuals).Scan(&count)
	if err != nil {
		t.Errorf("[ERROR] individuals table query failed: %v", err)
	} else if count != 5*10 {
		t.Errorf("[ERROR] individuals table has %v rows, want %v", count, 5*10)
	}
}
