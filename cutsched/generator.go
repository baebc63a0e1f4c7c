package cutsched

import (
	"context"

	"github.com/katalvlaran/disco/cone"
	"github.com/katalvlaran/disco/matrix"
)

// Cut is a candidate inequality lb <= sum coef[k]*x[index[k]] <= ub.
type Cut struct {
	Index []int
	Coef  []float64
	LB    float64
	UB    float64
}

// Activity evaluates the cut's left-hand side at x.
func (c Cut) Activity(x []float64) float64 {
	var v float64
	for k, j := range c.Index {
		v += c.Coef[k] * x[j]
	}

	return v
}

// Violated reports whether x violates the cut by more than tol.
func (c Cut) Violated(x []float64, tol float64) bool {
	a := c.Activity(x)

	return a < c.LB-tol || a > c.UB+tol
}

// Relaxation is the solved node relaxation handed to generators.
type Relaxation struct {
	Rows  *matrix.Packed
	Cones []cone.Cone
	X     []float64
}

// Generator produces cuts for one family.
type Generator interface {
	Family() string
	Kind() Kind
	Generate(ctx context.Context, r Relaxation) ([]Cut, error)
}

// LinearFunc separates cuts from the row matrix.
type LinearFunc func(ctx context.Context, rows *matrix.Packed, x []float64) ([]Cut, error)

// ConicFunc separates cuts from the cone records.
type ConicFunc func(ctx context.Context, cones []cone.Cone, x []float64) ([]Cut, error)

type linearGen struct {
	family string
	fn     LinearFunc
}

// NewLinear wraps fn as a generator for a linear family.
func NewLinear(family string, fn LinearFunc) Generator {
	return &linearGen{family: family, fn: fn}
}

func (g *linearGen) Family() string { return g.family }
func (g *linearGen) Kind() Kind     { return Linear }

func (g *linearGen) Generate(ctx context.Context, r Relaxation) ([]Cut, error) {
	return g.fn(ctx, r.Rows, r.X)
}

type conicGen struct {
	family string
	fn     ConicFunc
}

// NewConic wraps fn as a generator for a conic family.
func NewConic(family string, fn ConicFunc) Generator {
	return &conicGen{family: family, fn: fn}
}

func (g *conicGen) Family() string { return g.family }
func (g *conicGen) Kind() Kind     { return Conic }

func (g *conicGen) Generate(ctx context.Context, r Relaxation) ([]Cut, error) {
	return g.fn(ctx, r.Cones, r.X)
}
