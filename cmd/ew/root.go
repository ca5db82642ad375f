package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "ew",
	Short: "Population-based stochastic minimization experiments",
	Long: `ew runs batches of independent particle swarm or genetic algorithm
optimizations of a benchmark function in parallel, aggregates their
statistics, and writes per-run result and convergence report files.`,
	SilenceUsage: true,
}
