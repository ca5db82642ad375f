package genetic

import (
	"database/sql"
	"fmt"

	"github.com/yuulive/ew"
	"github.com/yuulive/ew/stop"
)

type Option func(*Optimizer)

// Selections appends post-breeding culling strategies, applied in the
// given order each generation.
func Selections(sels ...Selection) Option {
	return func(o *Optimizer) {
		o.selections = append(o.selections, sels...)
	}
}

// PreBirths appends child admission filters, applied in the given order.
func PreBirths(filters ...PreBirth) Option {
	return func(o *Optimizer) {
		o.preBirths = append(o.preBirths, filters...)
	}
}

// Loggers appends run observers.  Loggers never affect control flow.
func Loggers(loggers ...ew.Logger) Option {
	return func(o *Optimizer) {
		o.loggers = append(o.loggers, loggers...)
	}
}

// DB enables per-generation recording of population state to the given
// sqlite database.
func DB(db *sql.DB) Option {
	return func(o *Optimizer) {
		o.db = db
	}
}

// Optimizer orchestrates a genetic algorithm run.  All strategy objects
// are fixed at construction; a fresh Optimizer is required for each
// independent run.
type Optimizer struct {
	goal       ew.Goal
	check      stop.Checker
	creator    Creator
	pairing    Pairing
	cross      Cross
	mutation   Mutation
	preBirths  []PreBirth
	selections []Selection
	loggers    []ew.Logger
	db         *sql.DB
	rec        *recorder

	Pop Population
}

// New validates the configuration and builds an optimizer.  A creator
// size of zero is permitted and makes FindMin report no result.
func New(goal ew.Goal, check stop.Checker, creator Creator, pairing Pairing, cross Cross, mutation Mutation, opts ...Option) (*Optimizer, error) {
	if creator.Count() < 0 {
		return nil, fmt.Errorf("genetic: negative population size %v", creator.Count())
	}
	if creator.Count() > 0 && creator.Dim() == 0 {
		return nil, fmt.Errorf("genetic: zero-length chromosomes")
	}

	o := &Optimizer{
		goal:     goal,
		check:    check,
		creator:  creator,
		pairing:  pairing,
		cross:    cross,
		mutation: mutation,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.db != nil {
		rec, err := newRecorder(o.db, creator.Dim())
		if err != nil {
			return nil, err
		}
		o.rec = rec
	}
	return o, nil
}

// FindMin breeds generations until the stop checker fires and returns
// the fittest individual's point.  ok is false when the population was
// empty at creation or became empty through selection (e.g. every
// fitness value NaN and culled).
func (o *Optimizer) FindMin() (best ew.Point, ok bool) {
	o.check.Start()
	o.Pop = o.creator.Create()

	if len(o.Pop) == 0 {
		return o.fail()
	}
	for _, l := range o.loggers {
		l.Start(o.creator.Dim())
	}

	for iter := 0; ; iter++ {
		o.breed()
		for _, sel := range o.selections {
			o.Pop = sel.Apply(o.Pop, o.goal)
		}

		fittest := o.Pop.Best(o.goal)
		if fittest == nil {
			return o.fail()
		}
		bp := fittest.Point(o.goal)

		o.record(iter, bp)
		for _, l := range o.loggers {
			l.LogIteration(iter, bp)
		}
		if o.check.Stop(iter, bp.Val) {
			break
		}
	}

	bp := o.Pop.Best(o.goal).Point(o.goal)
	for _, l := range o.loggers {
		l.Finish(bp, true)
	}
	return bp, true
}

// breed runs one generation of pairing, crossover, mutation, pre-birth
// filtering, and admission.  Admitted children are evaluated and merged,
// so the population may transiently exceed its nominal size until
// selection runs.
func (o *Optimizer) breed() {
	pairs := o.pairing.Pair(o.Pop, o.goal)

	var admitted Population
	for _, pair := range pairs {
		p1 := o.Pop[pair[0]].Chromosome()
		p2 := o.Pop[pair[1]].Chromosome()

		for _, chromo := range o.cross.Cross(p1, p2) {
			child := NewIndividual(chromo)
			if o.mutation != nil {
				o.mutation.Mutate(child)
			}
			if !o.admit(child) {
				continue
			}
			child.Goal(o.goal)
			admitted = append(admitted, child)
		}
	}
	o.Pop = append(o.Pop, admitted...)
}

// admit runs the pre-birth filters in registration order.  A rejected
// child is discarded without ever reaching the goal function.
func (o *Optimizer) admit(child *Individual) bool {
	for _, f := range o.preBirths {
		if !f.Check(child.chromo) {
			return false
		}
	}
	return true
}

func (o *Optimizer) fail() (ew.Point, bool) {
	for _, l := range o.loggers {
		l.Finish(ew.Point{}, false)
	}
	return ew.Point{}, false
}

func (o *Optimizer) record(iter int, best ew.Point) {
	if o.rec == nil {
		return
	}
	o.rec.snapshot(iter, o.Pop, best, o.goal)
}
