package stats

import "github.com/yuulive/ew"

// StatsLogger observes one optimizer run and deposits its convergence
// trace and terminal result into a Statistics when the run finishes.  A
// fresh StatsLogger is required per run.
type StatsLogger struct {
	stat *Statistics
	conv []float64
}

func NewStatsLogger(stat *Statistics) *StatsLogger {
	return &StatsLogger{stat: stat}
}

func (l *StatsLogger) Start(dim int) { l.conv = nil }

func (l *StatsLogger) LogIteration(iter int, best ew.Point) {
	l.conv = append(l.conv, best.Val)
}

func (l *StatsLogger) Finish(best ew.Point, ok bool) {
	l.stat.AddRun(RunResult{Best: best, Ok: ok}, l.conv)
}
