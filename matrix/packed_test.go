// Package matrix_test contains unit tests for the Packed sparse matrix.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/disco/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewPackedBadShape ensures negative shapes are rejected.
func TestNewPackedBadShape(t *testing.T) {
	_, err := matrix.NewPacked(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewPacked(0, 0) // empty is legal
	require.NoError(t, err)
	require.Equal(t, 0, m.NNZ())
}

// TestFromTripletsSumsDuplicates checks column-major storage and duplicate merging.
func TestFromTripletsSumsDuplicates(t *testing.T) {
	m, err := matrix.FromTriplets(2, 3,
		[]int{1, 0, 0, 1},
		[]int{2, 0, 0, 0},
		[]float64{5, 1, 2, 4},
	)
	require.NoError(t, err)
	require.Equal(t, 3, m.NNZ()) // (0,0) merged

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = m.At(1, 1) // not stored
	require.NoError(t, err)
	require.Zero(t, v)

	rows, vals, err := m.Column(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, rows)
	require.Equal(t, []float64{3, 4}, vals)
}

// TestFromTripletsValidation covers every sentinel of ValidateTriplets.
func TestFromTripletsValidation(t *testing.T) {
	cases := []struct {
		name string
		ri   []int
		ci   []int
		v    []float64
		want error
	}{
		{"lengths", []int{0}, []int{0, 1}, []float64{1}, matrix.ErrDimensionMismatch},
		{"row", []int{2}, []int{0}, []float64{1}, matrix.ErrOutOfRange},
		{"col", []int{0}, []int{-1}, []float64{1}, matrix.ErrOutOfRange},
		{"nan", []int{0}, []int{0}, []float64{math.NaN()}, matrix.ErrNaNInf},
		{"inf", []int{0}, []int{0}, []float64{math.Inf(-1)}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromTriplets(2, 2, tc.ri, tc.ci, tc.v)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestAppendCols verifies new columns land after existing ones.
func TestAppendCols(t *testing.T) {
	m, err := matrix.FromTriplets(2, 1, []int{0, 1}, []int{0, 0}, []float64{1, 2})
	require.NoError(t, err)

	err = m.AppendCols([]int{0, 1, 2}, []int{0, 1}, []float64{-1, -1})
	require.NoError(t, err)
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 4, m.NNZ())

	v, _ := m.At(0, 1)
	require.Equal(t, -1.0, v)
	v, _ = m.At(1, 2)
	require.Equal(t, -1.0, v)
	v, _ = m.At(0, 2)
	require.Zero(t, v)

	y, err := m.MulVec([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, y)
}

// TestAppendColsAtomic ensures a rejected append leaves the matrix untouched.
func TestAppendColsAtomic(t *testing.T) {
	m, err := matrix.NewPacked(2, 1)
	require.NoError(t, err)

	err = m.AppendCols([]int{0, 1, 2}, []int{0, 5}, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, 1, m.Cols())
	require.Equal(t, 0, m.NNZ())

	err = m.AppendCols([]int{0, 2}, []int{1, 1}, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = m.AppendCols([]int{1}, nil, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTripletsAndClone checks export order and clone independence.
func TestTripletsAndClone(t *testing.T) {
	m, err := matrix.FromTriplets(2, 2, []int{1, 0}, []int{1, 0}, []float64{7, 3})
	require.NoError(t, err)

	r, c, v := m.Triplets()
	require.Equal(t, []int{0, 1}, r)
	require.Equal(t, []int{0, 1}, c)
	require.Equal(t, []float64{3, 7}, v)

	cl := m.Clone()
	require.NoError(t, cl.AppendCols([]int{0, 1}, []int{0}, []float64{1}))
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 3, cl.Cols())

	_, err = m.MulVec([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
