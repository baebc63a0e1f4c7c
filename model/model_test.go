package model_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disco/cbf"
	"github.com/katalvlaran/disco/cone"
	"github.com/katalvlaran/disco/cutsched"
	"github.com/katalvlaran/disco/metrics"
	"github.com/katalvlaran/disco/model"
	"github.com/katalvlaran/disco/nodedesc"
	"github.com/katalvlaran/disco/params"
)

// socp has one integer column, a conic variable domain over cols 1-2 and a
// conic row domain over rows 0-1 that lifts to cols 3-4.
const socp = `VER
1
VAR
3 2
L+ 1
Q 2
INT
1
0
CON
2 1
Q 2
OBJACOORD
2
0 1
1 2
OBJBCOORD
0.5
ACOORD
2
0 1 1
1 2 1
`

func build(t *testing.T, src string, p params.Params, opts ...model.Option) *model.Model {
	t.Helper()
	in, err := cbf.Read(strings.NewReader(src))
	require.NoError(t, err)
	m, err := model.New(in, p, opts...)
	require.NoError(t, err)

	return m
}

func TestNew_Pipeline(t *testing.T) {
	m := build(t, socp, params.Default())

	p := m.Problem
	assert.Equal(t, 5, p.NumCols())
	assert.Equal(t, 2, p.NumLifted)
	assert.Equal(t, 2, p.NumRows())
	assert.Equal(t, []cone.Cone{
		{Type: cone.Quadratic, Members: []int{1, 2}},
		{Type: cone.Quadratic, Members: []int{3, 4}},
	}, p.Cones())
	assert.Equal(t, []int{0}, m.Relaxed)

	strategy, freq := m.Schedule.Global()
	assert.Equal(t, cutsched.Periodic, strategy)
	assert.Equal(t, 1, freq)
	assert.Equal(t, 1, m.Schedule.Bound(), "OA separator bound")
}

func TestNew_WithoutBuiltinOA(t *testing.T) {
	m := build(t, socp, params.Default(), model.WithoutBuiltinOA())
	assert.Zero(t, m.Schedule.Bound())
}

func TestNew_VRPFamilies(t *testing.T) {
	m := build(t, socp, params.VRP(), model.WithFamilies(cutsched.Family{
		Name: "VRP", Kind: cutsched.Linear, Fallback: cutsched.Root,
	}))

	entries := m.Schedule.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "VRP", entries[0].Family)
	assert.Zero(t, m.Schedule.Bound())
}

func TestNew_InvalidParams(t *testing.T) {
	in, err := cbf.Read(strings.NewReader(socp))
	require.NoError(t, err)

	p := params.Default()
	p.IntegerTol = 0
	_, err = model.New(in, p)
	require.ErrorIs(t, err, params.ErrInvalid)

	p = params.Default()
	p.Cut.Families = map[string]cutsched.FamilyConfig{"Lift": {}}
	_, err = model.New(in, p)
	require.ErrorIs(t, err, cutsched.ErrUnknownFamily)
}

func TestNew_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	build(t, "VER\n1\nVAR\n2 1\nQR 2\n", params.Default(), model.WithMetrics(metrics.New(reg)))

	const want = `
# HELP disco_model_warnings_total Configuration warnings by kind.
# TYPE disco_model_warnings_total counter
disco_model_warnings_total{kind="rotated_cone_size"} 1
# HELP disco_model_lifted_columns Columns added to move row cones onto variables.
# TYPE disco_model_lifted_columns gauge
disco_model_lifted_columns 0
# HELP disco_model_cones Cone records of the last canonical problem.
# TYPE disco_model_cones gauge
disco_model_cones 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want),
		"disco_model_warnings_total", "disco_model_lifted_columns", "disco_model_cones"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "socp.cbf")
	require.NoError(t, os.WriteFile(path, []byte(socp), 0o600))

	m, err := model.Load(path, params.Default())
	require.NoError(t, err)
	assert.Equal(t, 5, m.Problem.NumCols())

	_, err = model.Load(filepath.Join(t.TempDir(), "none.cbf"), params.Default())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoot(t *testing.T) {
	m := build(t, socp, params.Default())
	root := m.Root()

	assert.Equal(t, -1, root.BranchedInd())
	assert.Nil(t, root.Basis())
	require.Len(t, root.Deltas.Vars.LbHard, 5)
	require.Len(t, root.Deltas.Vars.UbHard, 5)
	require.Len(t, root.Deltas.Cons.LbHard, 2)
	for i, b := range root.Deltas.Vars.LbHard {
		assert.Equal(t, i, b.Index)
		assert.Equal(t, m.Problem.ColLB[i], b.Value)
	}
	assert.Empty(t, root.Deltas.Vars.LbSoft)

	raw, err := nodedesc.Marshal(root)
	require.NoError(t, err)
	back, err := nodedesc.Unmarshal(raw)
	require.NoError(t, err)
	again, err := nodedesc.Marshal(back)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestInfeasibility(t *testing.T) {
	m := build(t, socp, params.Default())

	cases := []struct {
		name        string
		x           []float64
		cols, cones int
	}{
		{"feasible", []float64{1, 1, 1, 1, 1}, 0, 0},
		{"fractional", []float64{0.5, 1, 1, 1, 1}, 1, 0},
		{"within tolerance", []float64{2 + 1e-7, 1, 0, 1, 0}, 0, 0},
		{"cone within tolerance", []float64{1, 1, 1 + 5e-6, 1, 1}, 0, 0},
		{"cone violated", []float64{1, 0.5, 1, 1, 1}, 0, 1},
		{"both", []float64{0.3, 0.5, 1, 0, 2}, 1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cols, cones := m.Infeasibility(tc.x)
			assert.Equal(t, tc.cols, cols)
			assert.Equal(t, tc.cones, cones)
			assert.Equal(t, tc.cols == 0 && tc.cones == 0, m.Feasible(tc.x))
		})
	}
}

func TestObjective(t *testing.T) {
	m := build(t, socp, params.Default())
	assert.Equal(t, 0.5+3+2*4, m.Objective([]float64{3, 4, 0, 0, 0}))
}

func TestMostFractionalAndBranch(t *testing.T) {
	m := build(t, socp, params.Default())

	_, ok := m.MostFractional([]float64{3, 0.5, 0, 0, 0})
	assert.False(t, ok, "only relaxed columns count")

	col, ok := m.MostFractional([]float64{2.4, 0, 0, 0, 0})
	require.True(t, ok)
	require.Equal(t, 0, col)

	down, up := m.Branch(col, 2.4)
	assert.Equal(t, -1, down.BranchedDir())
	assert.Equal(t, 1, up.BranchedDir())
	assert.Equal(t, 2.4, up.BranchedVal())
	assert.Equal(t, []nodedesc.Bound{{Index: 0, Value: 2}}, down.Deltas.Vars.UbHard)
	assert.Equal(t, []nodedesc.Bound{{Index: 0, Value: 3}}, up.Deltas.Vars.LbHard)
}

func TestBranch_CountsReleasedWarmStarts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := build(t, socp, params.Default(), model.WithMetrics(metrics.New(reg)))

	down, up := m.Branch(0, 2.4)
	down.SetBasis(nodedesc.NewWarmStart([]byte{1}))
	down.SetBasis(nodedesc.NewWarmStart([]byte{2}))
	up.SetBasis(nodedesc.NewWarmStart([]byte{3}))
	down.Close()
	up.Close()

	root := m.Root()
	root.SetBasis(nodedesc.NewWarmStart([]byte{4}))
	require.NoError(t, root.UnmarshalBinary(mustEncode(t, m.Root())))

	const want = `
# HELP disco_nodedesc_warm_starts_released_total Warm starts released on replacement, close or decode.
# TYPE disco_nodedesc_warm_starts_released_total counter
disco_nodedesc_warm_starts_released_total 4
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want),
		"disco_nodedesc_warm_starts_released_total"))
}

func mustEncode(t *testing.T, d *nodedesc.Descriptor) []byte {
	t.Helper()
	b, err := nodedesc.Marshal(d)
	require.NoError(t, err)

	return b
}

func TestSeparate(t *testing.T) {
	m := build(t, socp, params.Default())
	x := []float64{0, 0.5, 1, 1, 1}

	cuts, err := m.Separate(context.Background(), 3, 7, x)
	require.NoError(t, err)
	require.Len(t, cuts, 1)
	assert.Equal(t, []int{1, 2}, cuts[0].Index)

	cuts, err = m.Separate(context.Background(), 0, 0, []float64{0, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.Empty(t, cuts)
}
