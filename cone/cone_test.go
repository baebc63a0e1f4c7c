package cone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/disco/cone"
)

func TestParseKind(t *testing.T) {
	cases := map[string]cone.Kind{
		"F":  cone.Free,
		"L+": cone.PositiveOrthant,
		"L-": cone.NegativeOrthant,
		"L=": cone.FixedZero,
		"Q":  cone.QuadraticCone,
		"QR": cone.RotatedQuadraticCone,
	}
	for tok, want := range cases {
		got, err := cone.ParseKind(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, want, got, tok)
		assert.Equal(t, tok, got.Token())
	}

	for _, tok := range []string{"", "q", "L", "SVPSD", "QR "} {
		_, err := cone.ParseKind(tok)
		require.ErrorIs(t, err, cone.ErrUnknownKind, tok)
	}
}

func TestKind_ConeType(t *testing.T) {
	assert.Equal(t, cone.Quadratic, cone.QuadraticCone.ConeType())
	assert.Equal(t, cone.Rotated, cone.RotatedQuadraticCone.ConeType())
	assert.Equal(t, cone.Type(0), cone.FixedZero.ConeType())
	assert.True(t, cone.RotatedQuadraticCone.IsConic())
	assert.False(t, cone.PositiveOrthant.IsConic())

	assert.Equal(t, 1, cone.Quadratic.LeadingNonnegative())
	assert.Equal(t, 2, cone.Rotated.LeadingNonnegative())
	assert.Equal(t, 0, cone.Type(4).LeadingNonnegative())
}

func TestLayout(t *testing.T) {
	ds, err := cone.Layout(
		[]cone.Kind{cone.PositiveOrthant, cone.QuadraticCone, cone.Free},
		[]int{2, 3, 1}, 6)
	require.NoError(t, err)
	require.Equal(t, []cone.Domain{
		{Kind: cone.PositiveOrthant, Size: 2, Offset: 0},
		{Kind: cone.QuadraticCone, Size: 3, Offset: 2},
		{Kind: cone.Free, Size: 1, Offset: 5},
	}, ds)
	assert.Equal(t, 5, ds[1].End())
	assert.Equal(t, 6, cone.Total(ds))
}

func TestLayout_Errors(t *testing.T) {
	_, err := cone.Layout([]cone.Kind{cone.Free}, []int{0}, 0)
	require.ErrorIs(t, err, cone.ErrBadSize)

	_, err = cone.Layout([]cone.Kind{cone.Free, cone.Free}, []int{2, 2}, 5)
	require.ErrorIs(t, err, cone.ErrPartition)

	_, err = cone.Layout([]cone.Kind{cone.Free}, []int{1, 1}, 2)
	require.ErrorIs(t, err, cone.ErrPartition)
}

func TestCompress_Expand(t *testing.T) {
	cones := []cone.Cone{
		{Type: cone.Quadratic, Members: []int{0, 1, 2}},
		{Type: cone.Rotated, Members: []int{5, 6, 7, 8}},
		{Type: cone.Quadratic, Members: []int{3}},
	}
	c := cone.Compress(cones)

	assert.Equal(t, 3, c.NumCones())
	assert.Equal(t, []int{0, 3, 7, 8}, c.Start)
	assert.Equal(t, []int{0, 1, 2, 5, 6, 7, 8, 3}, c.Members)
	assert.Equal(t, []int{1, 2, 1}, c.Types)

	back, err := c.Expand()
	require.NoError(t, err)
	assert.Equal(t, cones, back)

	back[0].Members[0] = 99
	assert.Equal(t, 0, c.Members[0], "expanded members are copies")
}

func TestCompress_Empty(t *testing.T) {
	c := cone.Compress(nil)
	assert.Equal(t, []int{0}, c.Start)
	assert.Zero(t, c.NumCones())

	back, err := c.Expand()
	require.NoError(t, err)
	assert.Empty(t, back)
}

func TestExpand_Errors(t *testing.T) {
	cases := map[string]cone.Compressed{
		"short start":   {Start: []int{0}, Members: nil, Types: []int{1}},
		"nonzero first": {Start: []int{1, 2}, Members: []int{0, 1}, Types: []int{1}},
		"last mismatch": {Start: []int{0, 1}, Members: []int{0, 1}, Types: []int{1}},
		"decreasing":    {Start: []int{0, 2, 1, 3}, Members: []int{0, 1, 2}, Types: []int{1, 1, 1}},
		"overshoot":     {Start: []int{0, 5, 3}, Members: []int{0, 1, 2}, Types: []int{1, 1}},
	}
	for name, c := range cases {
		_, err := c.Expand()
		require.ErrorIs(t, err, cone.ErrCompressed, name)
	}
}

func TestExpand_KeepsUnsupportedTypes(t *testing.T) {
	back, err := cone.Compressed{Start: []int{0, 2}, Members: []int{4, 5}, Types: []int{7}}.Expand()
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, cone.Type(7), back[0].Type)
	assert.False(t, back[0].Type.Valid())
}

func TestCheck(t *testing.T) {
	cones := []cone.Cone{
		{Type: cone.Quadratic, Members: []int{0, 1}},
		{Type: cone.Rotated, Members: []int{2, 3}},
		{Type: cone.Rotated, Members: []int{4, 5, 6}},
		{Type: cone.Type(3), Members: []int{7}},
	}
	ws := cone.Check(cones)

	require.Equal(t, []cone.Warning{
		{Kind: cone.WarnRotatedSize, Cone: 1, Type: cone.Rotated, Members: 2},
		{Kind: cone.WarnUnsupportedType, Cone: 3, Type: cone.Type(3), Members: 1},
	}, ws)
	assert.Equal(t, "cone 1 (Rotated, 2 members): rotated_cone_size", ws[0].String())
	assert.Empty(t, cone.Check(cones[2:3]))
}
