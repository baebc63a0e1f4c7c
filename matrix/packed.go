// SPDX-License-Identifier: MIT

// Package matrix - Packed storage (column-major, compressed) & safe accessors.
//
// Purpose:
//   - Hold the constraint matrix of a canonical problem as starts/index/values arrays.
//   - Let the lifting step append columns without rebuilding the stored ones.
//   - Guarantee safety at the public surface: At/Column/MulVec return errors instead of panicking.
//
// Determinism:
//   - Row indices inside a column are kept sorted; duplicate triplets are summed in input order.
//   - Triplets() walks columns then rows, so it is stable across runs.
//
// Complexity quicksheet:
//   - FromTriplets: O(nnz·log nnz); At: O(log k) for k entries in the column;
//     AppendCols: O(added nnz·log k) amortized; MulVec: O(nnz); Clone: O(nnz).

package matrix

import (
	"fmt"
	"sort"
)

// Packed is a column-major compressed sparse matrix.
type Packed struct {
	rows, cols int
	starts     []int     // len cols+1
	index      []int     // row index per stored entry
	values     []float64 // value per stored entry
}

// NewPacked returns an empty rows×cols matrix.
func NewPacked(rows, cols int) (*Packed, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Packed{rows: rows, cols: cols, starts: make([]int, cols+1)}, nil
}

// FromTriplets builds a rows×cols matrix from coordinate triplets.
// Duplicate (row, col) entries are summed; explicit zeros are kept.
//
// Errors: those of ValidateTriplets.
// Complexity: O(nnz·log nnz).
func FromTriplets(rows, cols int, ri, ci []int, v []float64) (*Packed, error) {
	if err := ValidateTriplets(rows, cols, ri, ci, v); err != nil {
		return nil, err
	}

	order := make([]int, len(v))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if ci[ka] != ci[kb] {
			return ci[ka] < ci[kb]
		}

		return ri[ka] < ri[kb]
	})

	var (
		m    = &Packed{rows: rows, cols: cols, starts: make([]int, cols+1)}
		last = -1
		col  = -1
	)
	m.index = make([]int, 0, len(v))
	m.values = make([]float64, 0, len(v))
	for _, k := range order {
		if ci[k] == col && ri[k] == last {
			m.values[len(m.values)-1] += v[k]
			continue
		}
		col, last = ci[k], ri[k]
		m.index = append(m.index, ri[k])
		m.values = append(m.values, v[k])
		m.starts[col+1]++
	}
	for j := 0; j < cols; j++ {
		m.starts[j+1] += m.starts[j]
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Packed) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Packed) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *Packed) NNZ() int { return len(m.values) }

// At returns the entry at (i, j), zero when not stored.
// Complexity: O(log nnz(col j)).
func (m *Packed) At(i, j int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	lo, hi := m.starts[j], m.starts[j+1]
	k := lo + sort.SearchInts(m.index[lo:hi], i)
	if k < hi && m.index[k] == i {
		return m.values[k], nil
	}

	return 0, nil
}

// Column returns the row indices and values of column j.
// The returned slices alias internal storage and must not be modified.
func (m *Packed) Column(j int) ([]int, []float64, error) {
	if j < 0 || j >= m.cols {
		return nil, nil, ErrOutOfRange
	}
	lo, hi := m.starts[j], m.starts[j+1]

	return m.index[lo:hi], m.values[lo:hi], nil
}

// AppendCols adds len(starts)-1 columns given in compressed form:
// rows[starts[k]:starts[k+1]] and vals[...] describe new column k.
// Row indices inside one new column must be distinct.
//
// Errors: ErrDimensionMismatch for inconsistent arrays, ErrOutOfRange for a
// row outside [0, Rows()).
func (m *Packed) AppendCols(starts, rows []int, vals []float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(starts) == 0 || starts[0] != 0 || starts[len(starts)-1] != len(rows) || len(rows) != len(vals) {
		return validatorErrorf("AppendCols", ErrDimensionMismatch)
	}

	var (
		n      = len(starts) - 1
		base   = len(m.values)
		index  = make([]int, 0, len(rows))
		values = make([]float64, 0, len(vals))
		ends   = make([]int, 0, n)
	)
	for k := 0; k < n; k++ {
		lo, hi := starts[k], starts[k+1]
		if hi < lo {
			return validatorErrorf("AppendCols: starts", ErrDimensionMismatch)
		}
		idx := append([]int(nil), rows[lo:hi]...)
		val := append([]float64(nil), vals[lo:hi]...)
		sort.Sort(&columnSorter{idx: idx, val: val})
		for p, r := range idx {
			if r < 0 || r >= m.rows {
				return fmt.Errorf("AppendCols: column %d row %d: %w", k, r, ErrOutOfRange)
			}
			if p > 0 && idx[p-1] == r {
				return fmt.Errorf("AppendCols: column %d repeats row %d: %w", k, r, ErrDimensionMismatch)
			}
		}
		index = append(index, idx...)
		values = append(values, val...)
		ends = append(ends, base+len(index))
	}

	// Commit only once every new column is valid.
	m.index = append(m.index, index...)
	m.values = append(m.values, values...)
	m.starts = append(m.starts, ends...)
	m.cols += n

	return nil
}

// MulVec returns A·x.
// Complexity: O(nnz).
func (m *Packed) MulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.cols); err != nil {
		return nil, err
	}

	out := make([]float64, m.rows)
	for j := 0; j < m.cols; j++ {
		if x[j] == 0 {
			continue
		}
		for k := m.starts[j]; k < m.starts[j+1]; k++ {
			out[m.index[k]] += m.values[k] * x[j]
		}
	}

	return out, nil
}

// Triplets returns the stored entries in column-major order.
func (m *Packed) Triplets() (rows, cols []int, vals []float64) {
	rows = make([]int, 0, len(m.values))
	cols = make([]int, 0, len(m.values))
	vals = make([]float64, 0, len(m.values))
	for j := 0; j < m.cols; j++ {
		for k := m.starts[j]; k < m.starts[j+1]; k++ {
			rows = append(rows, m.index[k])
			cols = append(cols, j)
			vals = append(vals, m.values[k])
		}
	}

	return rows, cols, vals
}

// Clone returns a deep copy of m.
func (m *Packed) Clone() *Packed {
	return &Packed{
		rows:   m.rows,
		cols:   m.cols,
		starts: append([]int(nil), m.starts...),
		index:  append([]int(nil), m.index...),
		values: append([]float64(nil), m.values...),
	}
}

// columnSorter orders one column's entries by row index.
type columnSorter struct {
	idx []int
	val []float64
}

func (s *columnSorter) Len() int           { return len(s.idx) }
func (s *columnSorter) Less(i, j int) bool { return s.idx[i] < s.idx[j] }
func (s *columnSorter) Swap(i, j int) {
	s.idx[i], s.idx[j] = s.idx[j], s.idx[i]
	s.val[i], s.val[j] = s.val[j], s.val[i]
}
