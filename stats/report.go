package stats

import (
	"fmt"
	"io"
)

// WriteResults writes the per-run results file: run index, each solution
// coordinate in fixed-width decimal, and the final goal value, or a
// literal "Failed" marker for runs without a result.
func WriteResults(w io.Writer, s *Statistics) error {
	for n, r := range s.Results() {
		if !r.Ok {
			if _, err := fmt.Fprintf(w, "%-8v  Failed\n", n); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%-8v", n); err != nil {
			return err
		}
		for i := 0; i < r.Best.Len(); i++ {
			if _, err := fmt.Fprintf(w, "  %-20.10f", r.Best.At(i)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  %20.10f\n", r.Best.Val); err != nil {
			return err
		}
	}
	return nil
}

// WriteConvergence writes the convergence file: one line per iteration
// index present in at least one run, with the across-run average goal
// value at that index in scientific notation.
func WriteConvergence(w io.Writer, s *Statistics) error {
	for n, val := range s.AverageConvergence() {
		if _, err := fmt.Fprintf(w, "%-8v%15.10e\n", n, val); err != nil {
			return err
		}
	}
	return nil
}
