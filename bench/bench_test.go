package bench

import (
	"math"
	"math/rand"
	"testing"

	"github.com/yuulive/ew"
	"github.com/yuulive/ew/stop"
	"github.com/yuulive/ew/swarm"
)

func TestKnownOptima(t *testing.T) {
	for _, fn := range AllFuncs {
		for _, opt := range fn.Optima() {
			got := fn.Eval(opt.Pos())
			if math.Abs(got-opt.Val) > 1e-2 {
				t.Errorf("[ERROR] %v at %v evaluates to %v, want %v", fn.Name(), opt.Pos(), got, opt.Val)
			}
		}
	}
}

func TestBoxMatchesBounds(t *testing.T) {
	fn := Schwefel{NDim: 3}
	ivs := Box(fn)
	if len(ivs) != 3 {
		t.Fatalf("[ERROR] box has %v intervals, want 3", len(ivs))
	}
	for i, iv := range ivs {
		if iv.Min != -500 || iv.Max != 500 {
			t.Errorf("[ERROR] interval %v is [%v,%v], want [-500,500]", i, iv.Min, iv.Max)
		}
	}
}

func TestInsideBounds(t *testing.T) {
	fn := Ackley{}
	if !InsideBounds([]float64{0, 4.9}, fn) {
		t.Errorf("[ERROR] in-bounds point rejected")
	}
	if InsideBounds([]float64{0, 5.1}, fn) {
		t.Errorf("[ERROR] out-of-bounds point accepted")
	}
}

func buildSwarm(t *testing.T, fn Func, particles, maxiter int) *swarm.Optimizer {
	ivs := Box(fn)
	velCalc, err := swarm.NewCanonical(2, 6, 0.9)
	if err != nil {
		t.Fatalf("[ERROR] %v", err)
	}
	checker := stop.NewCompositeAny(
		stop.NewThreshold(1e-8),
		stop.NewMaxIterations(maxiter),
	)

	opt, err := swarm.New(ew.GoalFunc(fn.Eval), checker,
		swarm.RandomPositions{N: particles, Intervals: ivs},
		swarm.ZeroVelocity{N: particles, NDim: len(ivs)},
		velCalc,
		swarm.PostMoves(swarm.MoveToBoundary{Intervals: ivs}),
	)
	if err != nil {
		t.Fatalf("[ERROR] %v", err)
	}
	return opt
}

func TestBenchmarkSwarm(t *testing.T) {
	ew.Rand = rand.New(rand.NewSource(13))

	for _, fn := range []Func{Paraboloid{NDim: 5}, Ackley{}, Rosenbrock{NDim: 2}} {
		best, success := Benchmark(buildSwarm(t, fn, 60, 2000), fn, 0.01)
		if !success {
			t.Errorf("[ERROR] %v did not converge: best %v at %v", fn.Name(), best.Val, best.Pos())
		} else {
			t.Logf("[INFO] %v converged to %v at %v", fn.Name(), best.Val, best.Pos())
		}
	}
}

func TestBenchmarkEmptyOptimizer(t *testing.T) {
	fn := Paraboloid{NDim: 2}
	opt := buildSwarm(t, fn, 0, 10)
	if _, success := Benchmark(opt, fn, 0.01); success {
		t.Errorf("[ERROR] optimizer with no particles reported success")
	}
}
