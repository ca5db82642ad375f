package ew

// Goal evaluates the objective function for a candidate position.  The
// function must be framed so that lower values are better.  NaN and Inf
// results are legitimate domain data (handled by selection strategies or
// propagated to the caller), never errors, and the same position must
// yield the same value within a single run.
type Goal interface {
	Calculate(x []float64) float64
}

// GoalFunc adapts a plain function to the Goal interface.
type GoalFunc func(x []float64) float64

func (f GoalFunc) Calculate(x []float64) float64 { return f(x) }
