// Package bench provides benchmark optimization functions from
// http://en.wikipedia.org/wiki/Test_functions_for_optimization for
// exercising the solver packages.
package bench

import (
	"fmt"
	"math"

	"github.com/yuulive/ew"
)

var (
	sin  = math.Sin
	cos  = math.Cos
	abs  = math.Abs
	exp  = math.Exp
	sqrt = math.Sqrt
)

var AllFuncs = []Func{
	Paraboloid{NDim: 5},
	Ackley{},
	Schaffer2{},
	Styblinski{NDim: 1},
	Styblinski{NDim: 10},
	Rosenbrock{NDim: 2},
	Rosenbrock{NDim: 10},
	Schwefel{NDim: 3},
	Schwefel{NDim: 5},
}

type Func interface {
	Eval(v []float64) float64
	Bounds() (low, up []float64)
	Optima() []ew.Point
	Name() string
}

// Box returns fn's bounds as the Intervals type the solver strategies
// consume.
func Box(fn Func) ew.Intervals {
	low, up := fn.Bounds()
	ivs := make(ew.Intervals, len(low))
	for i := range ivs {
		ivs[i] = ew.Interval{Min: low[i], Max: up[i]}
	}
	return ivs
}

func InsideBounds(p []float64, fn Func) bool {
	low, up := fn.Bounds()
	for i := range p {
		if p[i] < low[i] || p[i] > up[i] {
			return false
		}
	}
	return true
}

// Benchmark runs the (single-use) optimizer and reports whether it got
// within tol of fn's known optimum.
func Benchmark(opt ew.Optimizer, fn Func, tol float64) (best ew.Point, success bool) {
	optimum := fn.Optima()[0].Val
	thresh := tol * abs(optimum)
	if 0.001 > thresh {
		thresh = 0.001
	}

	best, ok := opt.FindMin()
	if !ok {
		return best, false
	}
	return best, abs(optimum-best.Val) < thresh
}

// Paraboloid is the convex function "sum(x_i^2)" with its global minimum
// of zero at the origin.
type Paraboloid struct {
	NDim int
}

func (fn Paraboloid) Name() string { return fmt.Sprintf("Paraboloid_%vD", fn.NDim) }

func (fn Paraboloid) Eval(v []float64) float64 {
	tot := 0.0
	for _, x := range v {
		tot += x * x
	}
	return tot
}

func (fn Paraboloid) Bounds() (low, up []float64) {
	low = make([]float64, fn.NDim)
	up = make([]float64, fn.NDim)
	for i := range low {
		low[i] = -100
		up[i] = 100
	}
	return low, up
}

func (fn Paraboloid) Optima() []ew.Point {
	return []ew.Point{
		ew.NewPoint(make([]float64, fn.NDim), 0),
	}
}

// Schwefel has its global minimum of zero at 420.9687 in every
// dimension, surrounded by deep deceptive local minima.
type Schwefel struct {
	NDim int
}

func (fn Schwefel) Name() string { return fmt.Sprintf("Schwefel_%vD", fn.NDim) }

func (fn Schwefel) Eval(v []float64) float64 {
	tot := 418.9829 * float64(len(v))
	for _, x := range v {
		tot -= x * sin(sqrt(abs(x)))
	}
	return tot
}

func (fn Schwefel) Bounds() (low, up []float64) {
	low = make([]float64, fn.NDim)
	up = make([]float64, fn.NDim)
	for i := range low {
		low[i] = -500
		up[i] = 500
	}
	return low, up
}

func (fn Schwefel) Optima() []ew.Point {
	pos := make([]float64, fn.NDim)
	for i := range pos {
		pos[i] = 420.9687
	}
	return []ew.Point{
		ew.NewPoint(pos, 0),
	}
}

type Ackley struct{}

func (fn Ackley) Name() string { return "Ackley" }

func (fn Ackley) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return -20*exp(-0.2*sqrt(0.5*(x*x+y*y))) -
		exp(0.5*(cos(2*math.Pi*x)+cos(2*math.Pi*y))) +
		20 + math.E
}

func (fn Ackley) Bounds() (low, up []float64) {
	return []float64{-5, -5}, []float64{5, 5}
}

func (fn Ackley) Optima() []ew.Point {
	return []ew.Point{
		ew.NewPoint([]float64{0, 0}, 0),
	}
}

type Schaffer2 struct{}

func (fn Schaffer2) Name() string { return "Schaffer2" }

func (fn Schaffer2) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return 0.5 + (math.Pow(sin(x*x-y*y), 2)-0.5)/math.Pow(1+.0001*(x*x+y*y), 2)
}

func (fn Schaffer2) Bounds() (low, up []float64) {
	return []float64{-100, -100}, []float64{100, 100}
}

func (fn Schaffer2) Optima() []ew.Point {
	return []ew.Point{
		ew.NewPoint([]float64{0, 0}, 0),
	}
}

type Styblinski struct {
	NDim int
}

func (fn Styblinski) Name() string { return fmt.Sprintf("Styblinski_%vD", fn.NDim) }

func (fn Styblinski) Eval(x []float64) float64 {
	if !InsideBounds(x, fn) {
		return math.Inf(1)
	}

	tot := 0.0
	for _, v := range x {
		tot += math.Pow(v, 4) - 16*math.Pow(v, 2) + 5*v
	}
	return tot / 2
}

func (fn Styblinski) Bounds() (low, up []float64) {
	low = make([]float64, fn.NDim)
	up = make([]float64, fn.NDim)
	for i := range low {
		low[i] = -5
		up[i] = 5
	}
	return low, up
}

func (fn Styblinski) Optima() []ew.Point {
	pos := make([]float64, fn.NDim)
	for i := range pos {
		pos[i] = -2.903534
	}
	return []ew.Point{
		ew.NewPoint(pos, -39.16599*float64(fn.NDim)),
	}
}

type Rosenbrock struct {
	NDim int
}

func (fn Rosenbrock) Name() string { return fmt.Sprintf("Rosenbrock_%vD", fn.NDim) }

func (fn Rosenbrock) Eval(x []float64) float64 {
	if !InsideBounds(x, fn) {
		return math.Inf(1)
	}

	tot := 0.0
	for i := 0; i < fn.NDim-1; i++ {
		tot += 100*math.Pow(x[i+1]-x[i]*x[i], 2) + math.Pow(x[i]-1, 2)
	}
	return tot
}

func (fn Rosenbrock) Bounds() (low, up []float64) {
	low = make([]float64, fn.NDim)
	up = make([]float64, fn.NDim)
	for i := range low {
		low[i] = -30
		up[i] = 30
	}
	return low, up
}

func (fn Rosenbrock) Optima() []ew.Point {
	pos := make([]float64, fn.NDim)
	for i := range pos {
		pos[i] = 1
	}
	return []ew.Point{
		ew.NewPoint(pos, 0),
	}
}
