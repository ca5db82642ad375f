package swarm

import (
	"database/sql"
	"fmt"

	"github.com/yuulive/ew"
	"github.com/yuulive/ew/stop"
)

type Option func(*Optimizer)

// PostMoves appends hooks applied to each particle position after every
// move, in the given order.
func PostMoves(hooks ...PostMove) Option {
	return func(o *Optimizer) {
		o.postMoves = append(o.postMoves, hooks...)
	}
}

// PostVelocities appends clamps applied to each freshly calculated
// velocity, in the given order.
func PostVelocities(clamps ...PostVelocity) Option {
	return func(o *Optimizer) {
		o.postVels = append(o.postVels, clamps...)
	}
}

// Loggers appends run observers.  Loggers never affect control flow.
func Loggers(loggers ...ew.Logger) Option {
	return func(o *Optimizer) {
		o.loggers = append(o.loggers, loggers...)
	}
}

// DB enables per-iteration recording of particle state to the given
// sqlite database.
func DB(db *sql.DB) Option {
	return func(o *Optimizer) {
		o.db = db
	}
}

// Optimizer orchestrates a particle swarm run.  All strategy objects are
// fixed at construction; a fresh Optimizer is required for each
// independent run.
type Optimizer struct {
	goal      ew.Goal
	check     stop.Checker
	posInit   PositionInit
	velInit   VelocityInit
	velCalc   VelocityCalc
	postVels  []PostVelocity
	postMoves []PostMove
	loggers   []ew.Logger
	db        *sql.DB
	rec       *recorder

	Pop  Swarm
	best ew.Point
}

// New validates the configuration and builds an optimizer.  A dimension
// or particle-count mismatch between the initializers is invalid
// configuration and reported immediately; a particle count of zero is
// permitted and makes FindMin report no result.
func New(goal ew.Goal, check stop.Checker, posInit PositionInit, velInit VelocityInit, velCalc VelocityCalc, opts ...Option) (*Optimizer, error) {
	if posInit.Count() != velInit.Count() {
		return nil, fmt.Errorf("swarm: position initializer creates %v particles, velocity initializer %v", posInit.Count(), velInit.Count())
	}
	if posInit.Dim() != velInit.Dim() {
		return nil, fmt.Errorf("swarm: position dimension %v does not match velocity dimension %v", posInit.Dim(), velInit.Dim())
	}

	o := &Optimizer{
		goal:    goal,
		check:   check,
		posInit: posInit,
		velInit: velInit,
		velCalc: velCalc,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.db != nil {
		rec, err := newRecorder(o.db, posInit.Dim())
		if err != nil {
			return nil, err
		}
		o.rec = rec
	}
	return o, nil
}

// FindMin runs the swarm until the stop checker fires and returns the
// global best point.  ok is false only when the swarm is empty.
func (o *Optimizer) FindMin() (best ew.Point, ok bool) {
	o.check.Start()
	o.initialize()

	if len(o.Pop) == 0 {
		for _, l := range o.loggers {
			l.Finish(ew.Point{}, false)
		}
		return ew.Point{}, false
	}

	for _, l := range o.loggers {
		l.Start(o.posInit.Dim())
	}

	for iter := 0; ; iter++ {
		o.iterate()
		o.record(iter)
		for _, l := range o.loggers {
			l.LogIteration(iter, o.best)
		}
		if o.check.Stop(iter, o.best.Val) {
			break
		}
	}

	for _, l := range o.loggers {
		l.Finish(o.best, true)
	}
	return o.best, true
}

func (o *Optimizer) initialize() {
	points := o.posInit.Positions()
	vels := o.velInit.Velocities()

	for i := range points {
		pos := points[i].Pos()
		points[i] = ew.NewPoint(pos, o.goal.Calculate(pos))
	}
	o.Pop = NewSwarm(points, vels)

	if pbest := o.Pop.Best(); pbest != nil {
		o.best = pbest.Best
	}
}

// iterate runs one full swarm update: velocity calculation with the
// post-velocity chain, the move with the post-move chain, evaluation, and
// the best-state update.  The global best is exposed to particles as an
// immutable snapshot taken before any particle moves.
func (o *Optimizer) iterate() {
	gbest := o.best

	for _, p := range o.Pop {
		vel := o.velCalc.Calc(p, gbest)
		for _, clamp := range o.postVels {
			clamp.Apply(vel)
		}
		p.Vel = vel

		p.Move()
		pos := p.Pos()
		for _, hook := range o.postMoves {
			hook.Apply(pos)
		}

		p.Update(ew.NewPoint(pos, o.goal.Calculate(pos)))
	}

	// Ties keep the earlier global best.
	if pbest := o.Pop.Best(); pbest != nil && pbest.Best.Val < o.best.Val {
		o.best = pbest.Best
	}
}

func (o *Optimizer) record(iter int) {
	if o.rec == nil {
		return
	}
	o.rec.snapshot(iter, o.Pop, o.best)
}
