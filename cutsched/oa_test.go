package cutsched_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disco/cone"
	"github.com/katalvlaran/disco/cutsched"
)

const tol = 1e-9

func separate(t *testing.T, c cone.Cone, x []float64) []cutsched.Cut {
	t.Helper()
	cuts, err := cutsched.OuterApproximation(tol)(context.Background(), []cone.Cone{c}, x)
	require.NoError(t, err)

	return cuts
}

func TestOuterApproximation_Quadratic(t *testing.T) {
	q := cone.Cone{Type: cone.Quadratic, Members: []int{0, 1, 2}}

	cuts := separate(t, q, []float64{1, 1, 1})
	require.Len(t, cuts, 1)
	c := cuts[0]
	assert.Equal(t, []int{0, 1, 2}, c.Index)
	assert.InDeltaSlice(t, []float64{-1, 1 / math.Sqrt2, 1 / math.Sqrt2}, c.Coef, 1e-12)
	assert.True(t, c.Violated([]float64{1, 1, 1}, tol))

	// points of the cone satisfy the cut
	for _, y := range [][]float64{{math.Sqrt2, 1, 1}, {5, 3, -4}, {1, 0, 0}, {0, 0, 0}} {
		assert.False(t, c.Violated(y, tol), "%v", y)
	}

	assert.Empty(t, separate(t, q, []float64{2, 1, 1}), "inside the cone")
}

func TestOuterApproximation_Rotated(t *testing.T) {
	r := cone.Cone{Type: cone.Rotated, Members: []int{2, 0, 1}}
	x := []float64{1, 2, 1} // x2=1, x0=1, z=2: 2*1*1 < 4

	cuts := separate(t, r, x)
	require.Len(t, cuts, 1)
	c := cuts[0]
	assert.InDeltaSlice(t, []float64{-1, -1, math.Sqrt2}, c.Coef, 1e-12)
	assert.True(t, c.Violated(x, tol))

	// 2*x2*x0 >= x1^2 with x2, x0 >= 0
	for _, y := range [][]float64{{2, 2, 1}, {0, 0, 3}, {1, 1, 0.5}} {
		assert.False(t, c.Violated(y, tol), "%v", y)
	}
}

func TestOuterApproximation_Apex(t *testing.T) {
	cuts := separate(t, cone.Cone{Type: cone.Quadratic, Members: []int{0, 1}}, []float64{-1, 0})
	require.Len(t, cuts, 1)
	assert.Equal(t, []float64{-1, 0}, cuts[0].Coef)
}

func TestOuterApproximation_Skips(t *testing.T) {
	assert.Empty(t, separate(t, cone.Cone{Type: cone.Type(5), Members: []int{0, 1}}, []float64{0, 9}))
	assert.Empty(t, separate(t, cone.Cone{Type: cone.Rotated, Members: []int{0}}, []float64{-1}))
}

func TestOuterApproximation_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cutsched.OuterApproximation(tol)(ctx, []cone.Cone{{Type: cone.Quadratic, Members: []int{0}}}, []float64{1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestConeViolation(t *testing.T) {
	cases := []struct {
		name string
		c    cone.Cone
		x    []float64
		want float64
		ok   bool
	}{
		{"quadratic outside", cone.Cone{Type: cone.Quadratic, Members: []int{0, 1, 2}}, []float64{1, 3, 4}, 4, true},
		{"quadratic inside", cone.Cone{Type: cone.Quadratic, Members: []int{0, 1, 2}}, []float64{6, 3, 4}, -1, true},
		// ||(0, sqrt(2)*2)|| - 2
		{"rotated", cone.Cone{Type: cone.Rotated, Members: []int{0, 1, 2}}, []float64{1, 1, 2}, 2*math.Sqrt2 - 2, true},
		{"unsupported type", cone.Cone{Type: cone.Type(7), Members: []int{0}}, []float64{1}, 0, false},
		{"short rotated", cone.Cone{Type: cone.Rotated, Members: []int{0}}, []float64{1}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := cutsched.ConeViolation(tc.c, tc.x)
			require.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.want, v, 1e-12)
		})
	}
}
