// SPDX-License-Identifier: MIT

// Package lift - Canonicalization of a parsed conic program.
//
// Purpose:
//   - Turn variable and row domains into column bounds, row bounds and cone records.
//   - Move every conic row onto fresh columns so that cones only ever range over variables.
//   - Report unusual cone records as warnings without rejecting the instance.
//
// Determinism:
//   - Cone records follow declaration order: variable domains first, then lifted rows.
//   - Lifted columns are numbered in row order after the original columns.
//
// Note:
//   - A lifted row i reads A_i·x − y_i = −b_i, so y = A·x + b is the point the cone constrains.

package lift

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/disco/cbf"
	"github.com/katalvlaran/disco/cone"
	"github.com/katalvlaran/disco/matrix"
)

// Canonicalize builds the canonical problem for in.
//
// Steps:
//  1. Column bounds start at (−inf, +inf); orthant/fixed variable domains
//     tighten them, conic variable domains become cone records.
//  2. Row bounds start at (−inf, +inf); rhs = −b is scattered into the
//     bounds of orthant/fixed row domains. Conic row domains are lifted:
//     one new column per row, row fixed to rhs, −1 at (row, new column).
//  3. Cone records are checked; warnings are logged and kept on the result.
//
// Errors: ErrNilInstance, ErrInconsistent, or a wrapped matrix sentinel.
// Complexity: O(numCols + numRows + nnz·log nnz).
func Canonicalize(in *cbf.Instance, opts ...Option) (*Problem, error) {
	if in == nil {
		return nil, ErrNilInstance
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	var (
		numLifted = in.NumConicRows()
		numCols   = in.NumCols + numLifted
		inf       = o.infinity
		cones     = make([]cone.Cone, 0, len(in.ColDomains)+len(in.RowDomains))
	)
	p := &Problem{
		Sense:       in.Sense,
		NumOrigCols: in.NumCols,
		NumLifted:   numLifted,
		ColLB:       fill(numCols, -inf),
		ColUB:       fill(numCols, inf),
		RowLB:       fill(in.NumRows, -inf),
		RowUB:       fill(in.NumRows, inf),
		Objective:   make([]float64, numCols),
		ObjConstant: in.ObjConstant,
		Integers:    append([]int(nil), in.Integers...),
	}
	copy(p.Objective, in.Objective)

	// 1) Variable domains.
	for _, d := range in.ColDomains {
		switch d.Kind {
		case cone.PositiveOrthant:
			setRange(p.ColLB, d.Offset, d.Size, 0)
		case cone.NegativeOrthant:
			setRange(p.ColUB, d.Offset, d.Size, 0)
		case cone.FixedZero:
			setRange(p.ColLB, d.Offset, d.Size, 0)
			setRange(p.ColUB, d.Offset, d.Size, 0)
		case cone.QuadraticCone, cone.RotatedQuadraticCone:
			cones = append(cones, p.addCone(d.Kind.ConeType(), d.Offset, d.Size))
		}
	}

	// 2) Row domains.
	var (
		rhs       = negate(in.Constant)
		liftCol   = in.NumCols
		liftRows  = make([]int, 0, numLifted)
		liftStart = make([]int, 1, numLifted+1)
		liftVals  = make([]float64, 0, numLifted)
	)
	for _, d := range in.RowDomains {
		lo, hi := d.Offset, d.End()
		switch d.Kind {
		case cone.PositiveOrthant:
			copy(p.RowLB[lo:hi], rhs[lo:hi])
		case cone.NegativeOrthant:
			copy(p.RowUB[lo:hi], rhs[lo:hi])
		case cone.FixedZero:
			copy(p.RowLB[lo:hi], rhs[lo:hi])
			copy(p.RowUB[lo:hi], rhs[lo:hi])
		case cone.QuadraticCone, cone.RotatedQuadraticCone:
			cones = append(cones, p.addCone(d.Kind.ConeType(), liftCol, d.Size))
			copy(p.RowLB[lo:hi], rhs[lo:hi])
			copy(p.RowUB[lo:hi], rhs[lo:hi])
			for r := lo; r < hi; r++ {
				liftRows = append(liftRows, r)
				liftVals = append(liftVals, -1)
				liftStart = append(liftStart, len(liftRows))
			}
			liftCol += d.Size
		}
	}

	// Matrix: original coefficients over the declared columns, then one
	// column per lifted variable.
	m, err := matrix.FromTriplets(in.NumRows, in.NumCols, in.ARows, in.ACols, in.AVals)
	if err != nil {
		return nil, fmt.Errorf("lift: matrix: %w", err)
	}
	if numLifted > 0 {
		if err = m.AppendCols(liftStart, liftRows, liftVals); err != nil {
			return nil, fmt.Errorf("lift: lifted columns: %w", err)
		}
	}
	p.Matrix = m
	p.cones = cones

	// 3) Warnings never abort.
	p.Warnings = cone.Check(cones)
	for _, w := range p.Warnings {
		o.logger.Warn("cone configuration warning",
			zap.String("kind", string(w.Kind)),
			zap.Int("cone", w.Cone),
			zap.Stringer("type", w.Type),
			zap.Int("members", w.Members),
		)
	}
	o.logger.Debug("problem canonicalized",
		zap.Int("cols", p.NumCols()),
		zap.Int("lifted", numLifted),
		zap.Int("rows", p.NumRows()),
		zap.Int("cones", len(cones)),
		zap.Int("nnz", m.NNZ()),
	)

	return p, nil
}

// addCone records a cone over columns [first, first+size) and applies the
// leading-member nonnegativity bounds.
func (p *Problem) addCone(t cone.Type, first, size int) cone.Cone {
	members := make([]int, size)
	for j := range members {
		members[j] = first + j
	}
	lead := t.LeadingNonnegative()
	if lead > size {
		lead = size
	}
	for j := 0; j < lead; j++ {
		p.ColLB[members[j]] = 0
	}

	return cone.Cone{Type: t, Members: members}
}

// validate re-checks the invariants Canonicalize indexes with.
func validate(in *cbf.Instance) error {
	if cone.Total(in.ColDomains) != in.NumCols || cone.Total(in.RowDomains) != in.NumRows {
		return fmt.Errorf("%w: domain sizes", ErrInconsistent)
	}
	if len(in.Objective) != in.NumCols || len(in.Constant) != in.NumRows {
		return fmt.Errorf("%w: objective/constant length", ErrInconsistent)
	}
	for _, ds := range [][]cone.Domain{in.ColDomains, in.RowDomains} {
		var next int
		for _, d := range ds {
			if d.Offset != next || d.Size <= 0 {
				return fmt.Errorf("%w: domain at offset %d", ErrInconsistent, d.Offset)
			}
			next = d.End()
		}
	}

	return nil
}

func fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

func setRange(dst []float64, off, n int, v float64) {
	for i := off; i < off+n; i++ {
		dst[i] = v
	}
}

// negate returns −b without producing negative zeros.
func negate(b []float64) []float64 {
	out := make([]float64, len(b))
	for i, v := range b {
		if v != 0 {
			out[i] = -v
		}
	}

	return out
}
