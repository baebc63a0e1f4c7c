// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/disco/cbf"
	"github.com/katalvlaran/disco/cutsched"
	"github.com/katalvlaran/disco/lift"
	"github.com/katalvlaran/disco/metrics"
	"github.com/katalvlaran/disco/nodedesc"
	"github.com/katalvlaran/disco/params"
)

// Model is the result of setup.
type Model struct {
	Problem  *lift.Problem
	Schedule *cutsched.Schedule
	Params   params.Params

	// Relaxed lists the columns whose integrality the relaxation drops.
	Relaxed []int

	log     *zap.Logger
	metrics *metrics.Collectors
}

// Load reads path and builds the model.
func Load(path string, p params.Params, opts ...Option) (*Model, error) {
	o := gatherOptions(opts)
	in, err := cbf.ReadFile(path, cbf.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}

	return build(in, p, o)
}

// New builds the model from an already parsed instance.
func New(in *cbf.Instance, p params.Params, opts ...Option) (*Model, error) {
	return build(in, p, gatherOptions(opts))
}

func build(in *cbf.Instance, p params.Params, o Options) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	prob, err := lift.Canonicalize(in, lift.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("model: canonicalize: %w", err)
	}
	for _, w := range prob.Warnings {
		o.Metrics.Warning(string(w.Kind))
	}

	sched, err := cutsched.Resolve(p.CutConfig(),
		cutsched.WithLogger(o.Logger),
		cutsched.WithFamilies(o.Families...),
	)
	if err != nil {
		return nil, fmt.Errorf("model: cut schedule: %w", err)
	}
	for _, w := range sched.Warnings() {
		o.Metrics.Warning(string(w.Kind))
	}
	if e, ok := sched.Entry(cutsched.OA); ok && e.Registered() && o.BuiltinOA {
		if err = sched.Bind(cutsched.NewConic(cutsched.OA, cutsched.OuterApproximation(p.ConeTol))); err != nil {
			return nil, fmt.Errorf("model: bind OA: %w", err)
		}
	}

	m := &Model{
		Problem:  prob,
		Schedule: sched,
		Params:   p,
		Relaxed:  append([]int(nil), prob.Integers...),
		log:      o.Logger,
		metrics:  o.Metrics,
	}
	m.observe(o)

	return m, nil
}

func (m *Model) observe(o Options) {
	p := m.Problem
	o.Metrics.ObserveModel(p.NumCols(), p.NumRows(), p.NumCones(), p.NumLifted)

	counts := make(map[cutsched.Strategy]int)
	for _, e := range m.Schedule.Entries() {
		counts[e.Strategy]++
	}
	for _, s := range []cutsched.Strategy{cutsched.Root, cutsched.Auto, cutsched.Periodic} {
		o.Metrics.SetCutFamilies(s.String(), counts[s])
	}

	strategy, freq := m.Schedule.Global()
	m.log.Info("model loaded",
		zap.Stringer("sense", p.Sense),
		zap.Int("cols", p.NumCols()),
		zap.Int("rows", p.NumRows()),
		zap.Int("lifted", p.NumLifted),
		zap.Int("cones", p.NumCones()),
		zap.Int("integers", len(m.Relaxed)),
		zap.Stringer("cut_strategy", strategy),
		zap.Int("cut_frequency", freq),
	)
}

// Root returns the root descriptor: no branching, the hard bounds of every
// column and row as base deltas, no warm start.
func (m *Model) Root() *nodedesc.Descriptor {
	var (
		p = m.Problem
		d = m.track(nodedesc.New())
	)
	d.Deltas.Vars.LbHard = bounds(p.ColLB)
	d.Deltas.Vars.UbHard = bounds(p.ColUB)
	d.Deltas.Cons.LbHard = bounds(p.RowLB)
	d.Deltas.Cons.UbHard = bounds(p.RowUB)

	return d
}

// track counts the warm starts d releases when metrics are enabled.
func (m *Model) track(d *nodedesc.Descriptor) *nodedesc.Descriptor {
	if m.metrics != nil {
		d.OnRelease(m.metrics.Released)
	}

	return d
}

func bounds(v []float64) []nodedesc.Bound {
	out := make([]nodedesc.Bound, len(v))
	for i, x := range v {
		out[i] = nodedesc.Bound{Index: i, Value: x}
	}

	return out
}
