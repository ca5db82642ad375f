package stats_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuulive/ew"
	"github.com/yuulive/ew/stats"
)

func res(val float64, pos ...float64) stats.RunResult {
	return stats.RunResult{Best: ew.NewPoint(pos, val), Ok: true}
}

func failed() stats.RunResult { return stats.RunResult{Ok: false} }

// Partial aggregates folded in any partition and order must produce the
// same summary metrics as one sequentially built aggregate.
func TestUnitePartitionInvariance(t *testing.T) {
	results := []stats.RunResult{
		res(1.0, 0.5), res(2.0, -0.5), failed(),
		res(4.0, 1.5), res(0.5, 0.1), res(3.0, -1.1),
	}
	convs := [][]float64{
		{10, 5, 1}, {8, 2}, {9, 9, 9, 9},
		{7}, {6, 3}, {5, 4, 3},
	}

	sequential := stats.NewStatistics()
	for i := range results {
		sequential.AddRun(results[i], convs[i])
	}

	a, b, c := stats.NewStatistics(), stats.NewStatistics(), stats.NewStatistics()
	a.AddRun(results[0], convs[0])
	a.AddRun(results[1], convs[1])
	b.AddRun(results[2], convs[2])
	c.AddRun(results[3], convs[3])
	c.AddRun(results[4], convs[4])
	c.AddRun(results[5], convs[5])

	folded := stats.NewStatistics()
	folded.Unite(c)
	folded.Unite(a)
	folded.Unite(b)

	require.Equal(t, sequential.RunCount(), folded.RunCount())

	wantAvg, ok := sequential.AverageGoal()
	require.True(t, ok)
	gotAvg, ok := folded.AverageGoal()
	require.True(t, ok)
	require.InDelta(t, wantAvg, gotAvg, 1e-12)

	wantDev, _ := sequential.StdDevGoal()
	gotDev, _ := folded.StdDevGoal()
	require.InDelta(t, wantDev, gotDev, 1e-12)

	pred := stats.SolutionNear([]float64{0}, []float64{1})
	wantRate, _ := sequential.SuccessRate(pred)
	gotRate, _ := folded.SuccessRate(pred)
	require.Equal(t, wantRate, gotRate)

	require.InDeltaSlice(t, sequential.AverageConvergence(), folded.AverageConvergence(), 1e-12)
}

func TestEmptyStatistics(t *testing.T) {
	s := stats.NewStatistics()

	_, ok := s.AverageGoal()
	require.False(t, ok)
	_, ok = s.StdDevGoal()
	require.False(t, ok)
	_, ok = s.SuccessRate(func(ew.Point) bool { return true })
	require.False(t, ok)
	require.Empty(t, s.AverageConvergence())
	require.Zero(t, s.RunCount())
}

func TestFailedRunsExcludedFromGoalMetrics(t *testing.T) {
	s := stats.NewStatistics()
	s.AddRun(res(2.0, 0), nil)
	s.AddRun(failed(), nil)
	s.AddRun(res(4.0, 0), nil)

	avg, ok := s.AverageGoal()
	require.True(t, ok)
	require.Equal(t, 3.0, avg)

	// A failed run still counts against the success rate.
	rate, ok := s.SuccessRate(func(ew.Point) bool { return true })
	require.True(t, ok)
	require.InDelta(t, 2.0/3.0, rate, 1e-12)
}

func TestStdDevSingleRun(t *testing.T) {
	s := stats.NewStatistics()
	s.AddRun(res(5.0, 0), nil)

	dev, ok := s.StdDevGoal()
	require.True(t, ok)
	require.Zero(t, dev)
}

func TestAverageConvergenceRaggedRuns(t *testing.T) {
	s := stats.NewStatistics()
	s.AddRun(res(3.0, 0), []float64{1, 2, 3})
	s.AddRun(res(5.0, 0), []float64{5})

	// Index 0 averages both runs; later indexes only the longer one.
	require.InDeltaSlice(t, []float64{3, 2, 3}, s.AverageConvergence(), 1e-12)
}

func TestSolutionNear(t *testing.T) {
	pred := stats.SolutionNear([]float64{1, 2}, []float64{0.5, 0.5})

	require.True(t, pred(ew.NewPoint([]float64{1.4, 1.6}, 0)))
	require.False(t, pred(ew.NewPoint([]float64{1.6, 2}, 0)))
	require.False(t, pred(ew.NewPoint([]float64{1}, 0)), "dimension mismatch accepted")
}

func TestCallCountData(t *testing.T) {
	c := stats.NewCallCountData()
	_, ok := c.AverageCallCount()
	require.False(t, ok)

	c.NewRun()
	c.Inc()
	c.Inc()
	c.NewRun()
	c.Inc()

	other := stats.NewCallCountData()
	other.NewRun()
	for i := 0; i < 5; i++ {
		other.Inc()
	}
	c.Unite(other)

	require.Equal(t, 3, c.RunCount())
	require.Equal(t, int64(8), c.TotalCalls())
	avg, ok := c.AverageCallCount()
	require.True(t, ok)
	require.InDelta(t, 8.0/3.0, avg, 1e-12)
}

func TestCountCalls(t *testing.T) {
	c := stats.NewCallCountData()
	c.NewRun()
	goal := stats.CountCalls(ew.GoalFunc(func(x []float64) float64 { return x[0] * 2 }), c)

	require.Equal(t, 6.0, goal.Calculate([]float64{3}))
	goal.Calculate([]float64{1})
	require.Equal(t, int64(2), c.TotalCalls())
}

func TestStatsLogger(t *testing.T) {
	s := stats.NewStatistics()
	l := stats.NewStatsLogger(s)

	l.Start(1)
	l.LogIteration(0, ew.NewPoint([]float64{1}, 10))
	l.LogIteration(1, ew.NewPoint([]float64{0.5}, 4))
	l.Finish(ew.NewPoint([]float64{0.5}, 4), true)

	require.Equal(t, 1, s.RunCount())
	require.InDeltaSlice(t, []float64{10, 4}, s.AverageConvergence(), 1e-12)
	avg, ok := s.AverageGoal()
	require.True(t, ok)
	require.Equal(t, 4.0, avg)
}

func TestWriteResults(t *testing.T) {
	s := stats.NewStatistics()
	s.AddRun(res(0.25, 1.5, -2.5), nil)
	s.AddRun(failed(), nil)

	var buf bytes.Buffer
	require.NoError(t, stats.WriteResults(&buf, s))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "1.5000000000")
	require.Contains(t, lines[0], "-2.5000000000")
	require.Contains(t, lines[0], "0.2500000000")
	require.Contains(t, lines[1], "Failed")
}

func TestWriteConvergence(t *testing.T) {
	s := stats.NewStatistics()
	s.AddRun(res(1.0, 0), []float64{100, 1.0, 0.001})

	var buf bytes.Buffer
	require.NoError(t, stats.WriteConvergence(&buf, s))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "e+")
	require.Contains(t, lines[2], "1.0000000000e-03")
}
