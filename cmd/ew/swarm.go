package main

import (
	"database/sql"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/yuulive/ew"
	"github.com/yuulive/ew/bench"
	"github.com/yuulive/ew/stats"
	"github.com/yuulive/ew/stop"
	"github.com/yuulive/ew/swarm"
)

var (
	swarmDim         int
	swarmParticles   int
	swarmRuns        int
	swarmPhiPersonal float64
	swarmPhiGlobal   float64
	swarmK           float64
	swarmMaxVel      float64
	swarmTeleport    float64
	swarmThreshold   float64
	swarmMaxIter     int
	swarmResultsOut  string
	swarmConvOut     string
	swarmDBPath      string
)

var swarmCmd = &cobra.Command{
	Use:   "swarm",
	Short: "Run a parallel particle swarm experiment on the Schwefel function",
	RunE:  runSwarmExperiment,
}

func init() {
	swarmCmd.Flags().IntVar(&swarmDim, "dim", 3, "Search space dimension")
	swarmCmd.Flags().IntVar(&swarmParticles, "particles", 30, "Particle count")
	swarmCmd.Flags().IntVar(&swarmRuns, "runs", 1000, "Total independent runs")
	swarmCmd.Flags().Float64Var(&swarmPhiPersonal, "phi-personal", 3.2, "Personal acceleration coefficient")
	swarmCmd.Flags().Float64Var(&swarmPhiGlobal, "phi-global", 1.0, "Global acceleration coefficient")
	swarmCmd.Flags().Float64Var(&swarmK, "k", 0.9, "Constriction damping coefficient")
	swarmCmd.Flags().Float64Var(&swarmMaxVel, "max-velocity", 700, "Velocity magnitude cap")
	swarmCmd.Flags().Float64Var(&swarmTeleport, "teleport", 0.05, "Random teleport probability")
	swarmCmd.Flags().Float64Var(&swarmThreshold, "threshold", 1e-8, "Goal value stop threshold")
	swarmCmd.Flags().IntVar(&swarmMaxIter, "max-iter", 3000, "Iteration cap per run")
	swarmCmd.Flags().StringVar(&swarmResultsOut, "results", "result_stat.txt", "Per-run results file")
	swarmCmd.Flags().StringVar(&swarmConvOut, "convergence", "convergence_stat.txt", "Convergence file")
	swarmCmd.Flags().StringVar(&swarmDBPath, "db", "", "Optional sqlite file recording per-iteration swarm state")
	rootCmd.AddCommand(swarmCmd)
}

func runSwarmExperiment(cmd *cobra.Command, args []string) error {
	fn := bench.Schwefel{NDim: swarmDim}
	intervals := bench.Box(fn)

	var db *sql.DB
	if swarmDBPath != "" {
		var err error
		db, err = sql.Open("sqlite", swarmDBPath)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	workers := runtime.NumCPU()
	perWorker := swarmRuns / workers
	if perWorker == 0 {
		perWorker = 1
	}
	fmt.Printf("CPUs:%15v\n", workers)
	fmt.Printf("Run count per CPU:%8v\n", perWorker)
	fmt.Print("Run optimizations... ")

	exp := stats.Experiment{
		Goal:          ew.GoalFunc(fn.Eval),
		Workers:       workers,
		RunsPerWorker: perWorker,
		Build: func(goal ew.Goal, logger ew.Logger) (ew.Optimizer, error) {
			velCalc, err := swarm.NewCanonical(swarmPhiPersonal, swarmPhiGlobal, swarmK)
			if err != nil {
				return nil, err
			}
			checker := stop.NewCompositeAny(
				stop.NewThreshold(swarmThreshold),
				stop.NewMaxIterations(swarmMaxIter),
			)
			return swarm.New(goal, checker,
				swarm.RandomPositions{N: swarmParticles, Intervals: intervals},
				swarm.ZeroVelocity{N: swarmParticles, NDim: swarmDim},
				velCalc,
				swarm.PostVelocities(swarm.MaxVelocityAbs{Max: swarmMaxVel}),
				swarm.PostMoves(
					swarm.RandomTeleport{Intervals: intervals, Probability: swarmTeleport},
					swarm.MoveToBoundary{Intervals: intervals},
				),
				swarm.Loggers(logger),
				swarmDBOption(db),
			)
		},
	}

	stat, calls, err := exp.Run()
	if err != nil {
		return err
	}
	fmt.Println("OK")

	if err := writeReports(stat, swarmResultsOut, swarmConvOut); err != nil {
		return err
	}

	expected := fn.Optima()[0].Pos()
	delta := make([]float64, swarmDim)
	for i := range delta {
		delta[i] = 1.0
	}
	printSummary(stat, calls, expected, delta)
	return nil
}

// swarmDBOption turns a possibly-nil database handle into a swarm
// option.
func swarmDBOption(db *sql.DB) swarm.Option {
	if db == nil {
		return func(*swarm.Optimizer) {}
	}
	return swarm.DB(db)
}

func writeReports(stat *stats.Statistics, resultsPath, convPath string) error {
	rf, err := os.Create(resultsPath)
	if err != nil {
		return err
	}
	defer rf.Close()
	if err := stats.WriteResults(rf, stat); err != nil {
		return err
	}

	cf, err := os.Create(convPath)
	if err != nil {
		return err
	}
	defer cf.Close()
	return stats.WriteConvergence(cf, stat)
}

func printSummary(stat *stats.Statistics, calls *stats.CallCountData, expected, delta []float64) {
	fmt.Printf("Run count%15v\n", stat.RunCount())
	if rate, ok := stat.SuccessRate(stats.SolutionNear(expected, delta)); ok {
		fmt.Printf("Success rate:%15.5f\n", rate)
	}
	if avg, ok := stat.AverageGoal(); ok {
		fmt.Printf("Average goal:%15.5f\n", avg)
	}
	if dev, ok := stat.StdDevGoal(); ok {
		fmt.Printf("Standard deviation for goal:%15.5f\n", dev)
	}
	if avg, ok := calls.AverageCallCount(); ok {
		fmt.Printf("Average goal function call count:%15.5f\n", avg)
	}
}
