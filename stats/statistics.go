// Package stats aggregates results from many independent optimizer runs:
// per-run best points, convergence traces, goal-function call counts, and
// summary metrics across all of them.  Aggregates merge through Unite,
// which is associative and commutative, so partial aggregates built by
// parallel workers can be folded in any order.
package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/yuulive/ew"
)

// RunResult is the terminal outcome of one optimizer run.  Ok is false
// when the run produced no valid result at all.
type RunResult struct {
	Best ew.Point
	Ok   bool
}

// Statistics accumulates run results and per-run convergence traces (the
// best goal value observed at each iteration, index-aligned across runs).
type Statistics struct {
	results     []RunResult
	convergence [][]float64
}

func NewStatistics() *Statistics { return &Statistics{} }

// AddRun appends one run's terminal result and convergence trace.
func (s *Statistics) AddRun(res RunResult, conv []float64) {
	s.results = append(s.results, res)
	s.convergence = append(s.convergence, conv)
}

// Unite merges another Statistics into s by concatenating run lists and
// convergence traces.  The other instance is left untouched; callers
// should not add runs to it afterward expecting them to appear in s.
func (s *Statistics) Unite(other *Statistics) {
	s.results = append(s.results, other.results...)
	s.convergence = append(s.convergence, other.convergence...)
}

func (s *Statistics) RunCount() int { return len(s.results) }

// Results returns the per-run outcomes in insertion order.
func (s *Statistics) Results() []RunResult { return s.results }

// goalvals collects final goal values of successful runs.
func (s *Statistics) goalvals() []float64 {
	vals := make([]float64, 0, len(s.results))
	for _, r := range s.results {
		if r.Ok {
			vals = append(vals, r.Best.Val)
		}
	}
	return vals
}

// AverageGoal returns the mean final goal value across successful runs.
// ok is false when there are none - callers must check before formatting
// output.
func (s *Statistics) AverageGoal() (avg float64, ok bool) {
	vals := s.goalvals()
	if len(vals) == 0 {
		return 0, false
	}
	return stat.Mean(vals, nil), true
}

// StdDevGoal returns the population standard deviation of final goal
// values across successful runs.  ok is false when there are none.
func (s *Statistics) StdDevGoal() (dev float64, ok bool) {
	vals := s.goalvals()
	if len(vals) == 0 {
		return 0, false
	}
	if len(vals) == 1 {
		return 0, true
	}
	return stat.PopStdDev(vals, nil), true
}

// SuccessRate returns the fraction of runs whose result satisfies pred.
// Failed runs count against the rate.  ok is false with zero runs.
func (s *Statistics) SuccessRate(pred func(ew.Point) bool) (rate float64, ok bool) {
	if len(s.results) == 0 {
		return 0, false
	}
	n := 0
	for _, r := range s.results {
		if r.Ok && pred(r.Best) {
			n++
		}
	}
	return float64(n) / float64(len(s.results)), true
}

// AverageConvergence returns, per iteration index, the mean goal value
// across the runs that reached that index.  The slice length equals the
// longest run's iteration count; it is empty with zero runs.
func (s *Statistics) AverageConvergence() []float64 {
	maxlen := 0
	for _, conv := range s.convergence {
		if len(conv) > maxlen {
			maxlen = len(conv)
		}
	}

	avg := make([]float64, maxlen)
	for i := 0; i < maxlen; i++ {
		sum, n := 0.0, 0
		for _, conv := range s.convergence {
			if i < len(conv) {
				sum += conv[i]
				n++
			}
		}
		avg[i] = sum / float64(n)
	}
	return avg
}

// SolutionNear builds a success predicate that accepts points within
// delta[i] of expected[i] in every dimension.
func SolutionNear(expected, delta []float64) func(ew.Point) bool {
	return func(p ew.Point) bool {
		if p.Len() != len(expected) {
			return false
		}
		for i := range expected {
			diff := p.At(i) - expected[i]
			if diff < -delta[i] || diff > delta[i] {
				return false
			}
		}
		return true
	}
}
