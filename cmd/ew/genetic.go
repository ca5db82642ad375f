package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yuulive/ew"
	"github.com/yuulive/ew/bench"
	"github.com/yuulive/ew/genetic"
	"github.com/yuulive/ew/stats"
	"github.com/yuulive/ew/stop"
)

var (
	gaDim        int
	gaPopSize    int
	gaRuns       int
	gaRounds     int
	gaMutateProb float64
	gaMutateBits int
	gaGeneCount  int
	gaThreshold  float64
	gaNotChange  int
	gaDelta      float64
	gaMaxIter    int
	gaResultsOut string
	gaConvOut    string
)

var geneticCmd = &cobra.Command{
	Use:   "genetic",
	Short: "Run a parallel genetic algorithm experiment on the Schwefel function",
	RunE:  runGeneticExperiment,
}

func init() {
	geneticCmd.Flags().IntVar(&gaDim, "dim", 5, "Chromosome length")
	geneticCmd.Flags().IntVar(&gaPopSize, "pop", 800, "Population size")
	geneticCmd.Flags().IntVar(&gaRuns, "runs", 200, "Total independent runs")
	geneticCmd.Flags().IntVar(&gaRounds, "rounds", 5, "Tournament rounds per parent")
	geneticCmd.Flags().Float64Var(&gaMutateProb, "mutate-prob", 0.15, "Mutation probability per individual")
	geneticCmd.Flags().IntVar(&gaMutateBits, "mutate-bits", 1, "Bits flipped per mutated gene")
	geneticCmd.Flags().IntVar(&gaGeneCount, "mutate-genes", 3, "Genes mutated per firing")
	geneticCmd.Flags().Float64Var(&gaThreshold, "threshold", 1e-4, "Goal value stop threshold")
	geneticCmd.Flags().IntVar(&gaNotChange, "not-change", 200, "Stagnation window in generations")
	geneticCmd.Flags().Float64Var(&gaDelta, "delta", 1e-7, "Stagnation delta")
	geneticCmd.Flags().IntVar(&gaMaxIter, "max-iter", 3000, "Generation cap per run")
	geneticCmd.Flags().StringVar(&gaResultsOut, "results", "result_stat.txt", "Per-run results file")
	geneticCmd.Flags().StringVar(&gaConvOut, "convergence", "convergence_stat.txt", "Convergence file")
	rootCmd.AddCommand(geneticCmd)
}

func runGeneticExperiment(cmd *cobra.Command, args []string) error {
	fn := bench.Schwefel{NDim: gaDim}
	intervals := bench.Box(fn)

	workers := runtime.NumCPU()
	perWorker := gaRuns / workers
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
			creator, err := genetic.NewRandomCreator(gaPopSize, intervals)
			if err != nil {
				return nil, err
			}
			checker := stop.NewCompositeAny(
				stop.NewThreshold(gaThreshold),
				stop.NewGoalNotChange(gaNotChange, gaDelta),
				stop.NewMaxIterations(gaMaxIter),
			)
			return genetic.New(goal, checker, creator,
				genetic.NewTournament(gaPopSize/2, gaRounds),
				genetic.CrossAllGenes{Gene: genetic.CrossExp{}},
				genetic.ChromoMutation{
					Probability: gaMutateProb,
					GeneCount:   gaGeneCount,
					Op:          genetic.NewBitwiseMutation(gaMutateBits),
				},
				genetic.PreBirths(genetic.CheckInterval{Intervals: intervals}),
				genetic.Selections(
					genetic.KillFitnessNaN{},
					genetic.LimitPopulation{N: gaPopSize},
				),
				genetic.Loggers(logger),
			)
		},
	}

	stat, calls, err := exp.Run()
	if err != nil {
		return err
	}
	fmt.Println("OK")

	if err := writeReports(stat, gaResultsOut, gaConvOut); err != nil {
		return err
	}

	expected := fn.Optima()[0].Pos()
	delta := make([]float64, gaDim)
	for i := range delta {
		delta[i] = 1.0
	}
	printSummary(stat, calls, expected, delta)
	return nil
}
