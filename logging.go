package ew

import (
	"fmt"
	"io"
	"time"
)

// Logger observes an optimization run.  Implementations are side-effect
// only observers: they may record or print state but never influence
// control flow.  Optimizers call Start once before the first iteration,
// LogIteration once per iteration with the best point so far, and Finish
// once with the final result.
type Logger interface {
	Start(dim int)
	LogIteration(iter int, best Point)
	Finish(best Point, ok bool)
}

// VerboseLogger prints the best point of every iteration.
type VerboseLogger struct {
	W         io.Writer
	Precision int
}

func NewVerboseLogger(w io.Writer, precision int) *VerboseLogger {
	return &VerboseLogger{W: w, Precision: precision}
}

func (l *VerboseLogger) Start(dim int) {
	fmt.Fprintf(l.W, "iter%*s\n", 10+dim*(l.Precision+8), "best")
}

func (l *VerboseLogger) LogIteration(iter int, best Point) {
	fmt.Fprintf(l.W, "%-8v", iter)
	for i := 0; i < best.Len(); i++ {
		fmt.Fprintf(l.W, "  %.*f", l.Precision, best.At(i))
	}
	fmt.Fprintf(l.W, "    %.*f\n", l.Precision, best.Val)
}

func (l *VerboseLogger) Finish(best Point, ok bool) {}

// ResultOnlyLogger prints only the final result of a run.
type ResultOnlyLogger struct {
	W         io.Writer
	Precision int
}

func NewResultOnlyLogger(w io.Writer, precision int) *ResultOnlyLogger {
	return &ResultOnlyLogger{W: w, Precision: precision}
}

func (l *ResultOnlyLogger) Start(dim int) {}

func (l *ResultOnlyLogger) LogIteration(iter int, best Point) {}

func (l *ResultOnlyLogger) Finish(best Point, ok bool) {
	if !ok {
		fmt.Fprintln(l.W, "Failed")
		return
	}
	fmt.Fprint(l.W, "Solution:")
	for i := 0; i < best.Len(); i++ {
		fmt.Fprintf(l.W, "  %.*f", l.Precision, best.At(i))
	}
	fmt.Fprintf(l.W, "\nGoal: %.*f\n", l.Precision, best.Val)
}

// TimeLogger prints the wall-clock duration of a run.
type TimeLogger struct {
	W     io.Writer
	start time.Time
}

func NewTimeLogger(w io.Writer) *TimeLogger { return &TimeLogger{W: w} }

func (l *TimeLogger) Start(dim int) { l.start = time.Now() }

func (l *TimeLogger) LogIteration(iter int, best Point) {}

func (l *TimeLogger) Finish(best Point, ok bool) {
	fmt.Fprintf(l.W, "Elapsed: %v\n", time.Since(l.start))
}
