// Package ew provides shared primitives for population-based stochastic
// minimization of black-box goal functions.  The solver families live in
// the swarm (particle swarm) and genetic subpackages; this package holds
// the pieces both of them consume: candidate points, goal functions,
// search intervals, random sources, loggers, and stop checkers (package
// stop).
package ew

// Optimizer is the common surface of the solver families.  FindMin runs a
// complete optimization and returns the best point found.  ok is false
// only if no valid candidate was ever produced (e.g. an empty population
// or every fitness value NaN) - callers must treat that as a normal,
// expected outcome of a run rather than a fault.
type Optimizer interface {
	FindMin() (best Point, ok bool)
}
