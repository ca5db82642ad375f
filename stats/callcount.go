package stats

import "github.com/yuulive/ew"

// CallCountData accumulates the number of goal-function invocations per
// run.  Like Statistics, partial instances merge through Unite in any
// order.
type CallCountData struct {
	counts []int64
}

func NewCallCountData() *CallCountData { return &CallCountData{} }

// NewRun opens a fresh per-run counter.  Subsequent Inc calls charge it.
func (c *CallCountData) NewRun() { c.counts = append(c.counts, 0) }

// Inc charges one goal-function call to the current run.
func (c *CallCountData) Inc() {
	if len(c.counts) == 0 {
		c.counts = append(c.counts, 0)
	}
	c.counts[len(c.counts)-1]++
}

// Unite concatenates another instance's per-run counters into c.
func (c *CallCountData) Unite(other *CallCountData) {
	c.counts = append(c.counts, other.counts...)
}

func (c *CallCountData) RunCount() int { return len(c.counts) }

func (c *CallCountData) TotalCalls() int64 {
	tot := int64(0)
	for _, n := range c.counts {
		tot += n
	}
	return tot
}

// AverageCallCount returns the mean call count per run.  ok is false
// with zero runs.
func (c *CallCountData) AverageCallCount() (avg float64, ok bool) {
	if len(c.counts) == 0 {
		return 0, false
	}
	return float64(c.TotalCalls()) / float64(len(c.counts)), true
}

// countingGoal decorates a Goal, charging every invocation to a
// CallCountData and forwarding the result unchanged.
type countingGoal struct {
	goal ew.Goal
	data *CallCountData
}

// CountCalls wraps goal so every Calculate is counted in data.
func CountCalls(goal ew.Goal, data *CallCountData) ew.Goal {
	return countingGoal{goal: goal, data: data}
}

func (g countingGoal) Calculate(x []float64) float64 {
	g.data.Inc()
	return g.goal.Calculate(x)
}
