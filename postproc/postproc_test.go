package postproc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdist/edt"
	"github.com/katalvlaran/lvdist/grid"
	"github.com/katalvlaran/lvdist/postproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFloat(t *testing.T, rows ...[]float64) *grid.Float {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	return g
}

func TestNilGrid(t *testing.T) {
	_, err := postproc.Sqrt(nil)
	assert.ErrorIs(t, err, postproc.ErrNilGrid)
	_, err = postproc.MinMaxScale(nil, 0, 1)
	assert.ErrorIs(t, err, postproc.ErrNilGrid)
	_, err = postproc.Clip(nil, 0, 1)
	assert.ErrorIs(t, err, postproc.ErrNilGrid)
	_, err = postproc.ReplaceUnreachable(nil, 1, 0)
	assert.ErrorIs(t, err, postproc.ErrNilGrid)
}

func TestSqrt(t *testing.T) {
	g := mustFloat(t, []float64{0, 1, 4}, []float64{9, 2, math.Inf(1)})
	out, err := postproc.Sqrt(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, math.Sqrt2, math.Inf(1)}, out.Values())
	assert.Equal(t, 4.0, g.Values()[2], "input must be untouched")

	_, err = postproc.Sqrt(mustFloat(t, []float64{1, -1}))
	assert.ErrorIs(t, err, postproc.ErrNegativeValue)
	assert.Contains(t, err.Error(), "(1,0)")
}

// TestSqrt_EuclideanDistances chains the transform with Sqrt on a 3-4-5 triangle.
func TestSqrt_EuclideanDistances(t *testing.T) {
	bin, err := grid.New(4, 5, false)
	require.NoError(t, err)
	require.NoError(t, bin.Set(0, 0, true))

	sq, err := edt.Binary2D(bin)
	require.NoError(t, err)
	d, err := postproc.Sqrt(sq)
	require.NoError(t, err)

	v, err := d.At(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestMinMaxScale(t *testing.T) {
	g := mustFloat(t, []float64{2, 4}, []float64{6, 10})
	out, err := postproc.MinMaxScale(g, 0, 255)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 63.75, 127.5, 255}, out.Values(), 1e-12)

	// A non-zero lower bound shifts the ramp up, never down.
	out, err = postproc.MinMaxScale(g, 10, 20)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{10, 12.5, 15, 20}, out.Values(), 1e-12)

	// hi < lo inverts.
	out, err = postproc.MinMaxScale(g, 1, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0.75, 0.5, 0}, out.Values(), 1e-12)
}

func TestMinMaxScale_Infinities(t *testing.T) {
	g := mustFloat(t, []float64{math.Inf(1), 0, 8, math.Inf(-1)})
	out, err := postproc.MinMaxScale(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1, 0}, out.Values())
}

func TestMinMaxScale_Constant(t *testing.T) {
	g := mustFloat(t, []float64{3, 3}, []float64{3, 3})
	out, err := postproc.MinMaxScale(g, 5, 9)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5, 5}, out.Values())

	allInf := mustFloat(t, []float64{math.Inf(1), math.Inf(1)})
	out, err = postproc.MinMaxScale(allInf, 5, 9)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 9}, out.Values())
}

func TestMinMaxScale_EmptyAndNaN(t *testing.T) {
	empty, err := grid.New(0, 3, 0.0)
	require.NoError(t, err)
	out, err := postproc.MinMaxScale(empty, 0, 1)
	require.NoError(t, err)
	assert.True(t, out.Empty())

	_, err = postproc.MinMaxScale(mustFloat(t, []float64{1, math.NaN()}), 0, 1)
	assert.ErrorIs(t, err, postproc.ErrNaN)
}

func TestClip(t *testing.T) {
	g := mustFloat(t, []float64{-5, 0, 5, 50, math.Inf(1)})
	out, err := postproc.Clip(g, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 5, 10, 10}, out.Values())

	swapped, err := postproc.Clip(g, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, out.Values(), swapped.Values())
}

func TestReplaceUnreachable(t *testing.T) {
	bin, err := grid.New(3, 3, false)
	require.NoError(t, err)
	sq, err := edt.Binary2D(bin)
	require.NoError(t, err)

	out, err := postproc.ReplaceUnreachable(sq, edt.DefaultInfinity, -1)
	require.NoError(t, err)
	for _, v := range out.Values() {
		assert.Equal(t, -1.0, v)
	}

	g := mustFloat(t, []float64{1, math.Inf(1), 7})
	out, err = postproc.ReplaceUnreachable(g, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, out.Values())
}
