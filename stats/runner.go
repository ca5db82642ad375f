package stats

import (
	"fmt"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/yuulive/ew"
)

// Builder constructs a fresh optimizer for a single run.  The supplied
// goal must be installed as the optimizer's goal function and the
// supplied logger must be registered on it - that is how the runner
// observes convergence and call counts.  Builders are called from
// worker goroutines and must not share mutable state between calls.
type Builder func(goal ew.Goal, logger ew.Logger) (ew.Optimizer, error)

// Experiment describes a batch of independent optimizer runs executed by
// parallel workers.
type Experiment struct {
	// Goal is the shared objective.  It must be pure: the workers call
	// it concurrently.
	Goal ew.Goal
	// Build creates one optimizer per run.
	Build Builder
	// Workers is the parallel worker count; 0 means one per CPU.
	Workers int
	// RunsPerWorker is each worker's private, sequential run count.
	RunsPerWorker int
}

type workerData struct {
	stat  *Statistics
	calls *CallCountData
}

// Run fans the experiment out over the workers and folds their local
// aggregates into one Statistics and CallCountData.  Each worker owns
// all of its per-run state; the only cross-goroutine traffic is the
// handoff of finished aggregates, and Unite's order insensitivity makes
// the fold independent of completion order.
func (e Experiment) Run() (*Statistics, *CallCountData, error) {
	workers := e.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers < 0 || e.RunsPerWorker < 0 {
		return nil, nil, fmt.Errorf("stats: invalid experiment shape: %v workers, %v runs per worker", workers, e.RunsPerWorker)
	}

	p := pool.NewWithResults[workerData]().WithErrors()
	for w := 0; w < workers; w++ {
		p.Go(func() (workerData, error) {
			local := workerData{stat: NewStatistics(), calls: NewCallCountData()}
			for r := 0; r < e.RunsPerWorker; r++ {
				local.calls.NewRun()
				logger := NewStatsLogger(local.stat)
				opt, err := e.Build(CountCalls(e.Goal, local.calls), logger)
				if err != nil {
					return workerData{}, err
				}
				opt.FindMin()
			}
			return local, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, nil, err
	}

	full := NewStatistics()
	fullCalls := NewCallCountData()
	for _, wd := range results {
		full.Unite(wd.stat)
		fullCalls.Unite(wd.calls)
	}
	return full, fullCalls, nil
}
