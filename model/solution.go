package model

import (
	"context"
	"math"

	"github.com/katalvlaran/disco/cutsched"
	"github.com/katalvlaran/disco/nodedesc"
)

// Fractionality is the distance of v to the nearest integer.
func Fractionality(v float64) float64 {
	return math.Abs(v - math.Round(v))
}

// Infeasibility counts relaxed columns that are not integral within
// integerTol, and cones violated by more than coneTol, at x.
func (m *Model) Infeasibility(x []float64) (cols, cones int) {
	for _, j := range m.Relaxed {
		if Fractionality(x[j]) > m.Params.IntegerTol {
			cols++
		}
	}
	for _, c := range m.Problem.Cones() {
		if v, ok := cutsched.ConeViolation(c, x); ok && v > m.Params.ConeTol {
			cones++
		}
	}

	return cols, cones
}

// Feasible reports whether x satisfies every relaxed constraint.
func (m *Model) Feasible(x []float64) bool {
	cols, cones := m.Infeasibility(x)

	return cols == 0 && cones == 0
}

// Objective evaluates the objective at x in the sense of the file.
func (m *Model) Objective(x []float64) float64 {
	v := m.Problem.ObjConstant
	for j, c := range m.Problem.Objective {
		v += c * x[j]
	}

	return v
}

// MostFractional returns the relaxed column farthest from integrality at x,
// or false when every relaxed column is integral within integerTol.
func (m *Model) MostFractional(x []float64) (int, bool) {
	best, col := m.Params.IntegerTol, -1
	for _, j := range m.Relaxed {
		if f := Fractionality(x[j]); f > best {
			best, col = f, j
		}
	}

	return col, col >= 0
}

// Branch returns the two children of branching on column col at value val:
// down (direction -1) tightens the upper bound to floor(val), up (direction
// 1) tightens the lower bound to ceil(val).
func (m *Model) Branch(col int, val float64) (down, up *nodedesc.Descriptor) {
	down = m.track(nodedesc.NewChild(-1, col, val))
	down.Deltas.Vars.UbHard = []nodedesc.Bound{{Index: col, Value: math.Floor(val)}}

	up = m.track(nodedesc.NewChild(1, col, val))
	up.Deltas.Vars.LbHard = []nodedesc.Bound{{Index: col, Value: math.Ceil(val)}}

	return down, up
}

// Separate runs the generators due at the node and keeps the cuts that x
// violates by more than coneTol.
func (m *Model) Separate(ctx context.Context, depth, index int, x []float64) ([]cutsched.Cut, error) {
	r := cutsched.Relaxation{Rows: m.Problem.Matrix, Cones: m.Problem.Cones(), X: x}

	var out []cutsched.Cut
	for _, g := range m.Schedule.Due(depth, index) {
		cuts, err := g.Generate(ctx, r)
		if err != nil {
			return out, err
		}
		for _, c := range cuts {
			if c.Violated(x, m.Params.ConeTol) {
				out = append(out, c)
			}
		}
	}

	return out, nil
}
