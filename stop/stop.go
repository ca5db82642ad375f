// Package stop provides composable termination predicates for iterative
// solvers.  Checkers are mutable state machines: delta-based variants
// remember goal-value history across calls, so Start must be called
// exactly once at the beginning of every run and never mid-run.
package stop

import "math"

// Checker decides whether an optimization run should halt.  Stop receives
// the zero-based index of the iteration that just completed and the best
// goal value known so far.
type Checker interface {
	Start()
	Stop(iter int, best float64) bool
}

// Threshold halts once the best goal value reaches t or better.
type Threshold struct {
	t float64
}

func NewThreshold(t float64) *Threshold { return &Threshold{t: t} }

func (c *Threshold) Start() {}

func (c *Threshold) Stop(iter int, best float64) bool { return best <= c.t }

// MaxIterations halts after n iterations.
type MaxIterations struct {
	n int
}

func NewMaxIterations(n int) *MaxIterations { return &MaxIterations{n: n} }

func (c *MaxIterations) Start() {}

func (c *MaxIterations) Stop(iter int, best float64) bool { return iter+1 >= c.n }

// GoalNotChange halts when the best goal value has improved by less than
// delta over the last n iterations.  It keeps a rolling window of best
// values and fires only once the window is full.
type GoalNotChange struct {
	n       int
	delta   float64
	history []float64
}

func NewGoalNotChange(n int, delta float64) *GoalNotChange {
	return &GoalNotChange{n: n, delta: delta}
}

func (c *GoalNotChange) Start() { c.history = c.history[:0] }

func (c *GoalNotChange) Stop(iter int, best float64) bool {
	c.history = append(c.history, best)
	if len(c.history) <= c.n {
		return false
	}
	if len(c.history) > c.n+1 {
		c.history = c.history[len(c.history)-c.n-1:]
	}
	change := math.Abs(c.history[0] - c.history[len(c.history)-1])
	return change < c.delta
}

// CompositeAny halts when any child checker does.  All children are
// consulted on every call so that stateful children keep their history
// current - short circuiting would starve a GoalNotChange sitting after a
// checker that fires first.
type CompositeAny struct {
	children []Checker
}

func NewCompositeAny(children ...Checker) *CompositeAny {
	return &CompositeAny{children: children}
}

func (c *CompositeAny) Start() {
	for _, child := range c.children {
		child.Start()
	}
}

func (c *CompositeAny) Stop(iter int, best float64) bool {
	stop := false
	for _, child := range c.children {
		if child.Stop(iter, best) {
			stop = true
		}
	}
	return stop
}
