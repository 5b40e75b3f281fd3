// SPDX-License-Identifier: MIT

package edt_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/lvdist/edt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1) TestNewOptions_Defaults verifies that NewOptions() equals the documented defaults.
func TestNewOptions_Defaults(t *testing.T) {
	o := edt.NewOptions()
	if o.Infinity() != edt.DefaultInfinity {
		t.Fatalf("infinity default mismatch: got %v, want %v", o.Infinity(), edt.DefaultInfinity)
	}
	if o.Workers() != edt.DefaultWorkers {
		t.Fatalf("workers default mismatch: got %v, want %v", o.Workers(), edt.DefaultWorkers)
	}
	if o.Unreachable() != edt.DefaultUnreachable {
		t.Fatalf("unreachable default mismatch: got %v, want %v", o.Unreachable(), edt.DefaultUnreachable)
	}
}

// 2) TestNewOptions_LastWriterWins ensures options apply in order and nil options are skipped.
func TestNewOptions_LastWriterWins(t *testing.T) {
	o := edt.NewOptions(
		edt.WithInfinity(1e9),
		edt.WithWorkers(2),
		nil,
		edt.WithUnreachable(edt.UnreachableInf),
		edt.WithInfinity(1e12),
		edt.WithWorkers(5),
		edt.WithUnreachable(edt.UnreachableClamp),
	)
	assert.Equal(t, 1e12, o.Infinity())
	assert.Equal(t, 5, o.Workers())
	assert.Equal(t, edt.UnreachableClamp, o.Unreachable())
}

// 3) TestWithWorkers_NonPositive selects GOMAXPROCS.
func TestWithWorkers_NonPositive(t *testing.T) {
	for _, n := range []int{0, -3} {
		o := edt.NewOptions(edt.WithWorkers(n))
		assert.Equal(t, runtime.GOMAXPROCS(0), o.Workers(), "n=%d", n)
	}
}

// 4) TestWithInfinity_Panics rejects non-finite and non-positive sentinels.
func TestWithInfinity_Panics(t *testing.T) {
	for _, v := range []float64{0, -1, posInf(), negInf(), nan()} {
		assert.PanicsWithValue(t, edt.PanicInfinityInvalid_TestOnly, func() { edt.WithInfinity(v) }, "v=%v", v)
	}
}

// 5) TestWithUnreachable_Panics rejects values outside the declared constants.
func TestWithUnreachable_Panics(t *testing.T) {
	assert.PanicsWithValue(t, edt.PanicPolicyInvalid_TestOnly, func() { edt.WithUnreachable(edt.Policy(7)) })
	assert.PanicsWithValue(t, edt.PanicPolicyInvalid_TestOnly, func() { edt.WithUnreachable(edt.Policy(-1)) })
}

// 6) TestParsePolicy round-trips names and rejects unknown ones.
func TestParsePolicy(t *testing.T) {
	for _, p := range []edt.Policy{edt.UnreachableSentinel, edt.UnreachableInf, edt.UnreachableClamp} {
		got, err := edt.ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := edt.ParsePolicy("  CLAMP ")
	require.NoError(t, err)
	assert.Equal(t, edt.UnreachableClamp, got)

	_, err = edt.ParsePolicy("nearest")
	assert.ErrorIs(t, err, edt.ErrUnknownPolicy)

	assert.Equal(t, "Policy(9)", edt.Policy(9).String())
}

// 7) TestBandBounds checks that bands tile [0,n) without gaps and differ by at most one line.
func TestBandBounds(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for k := 1; k <= n; k++ {
			next := 0
			for b := 0; b < k; b++ {
				lo, hi := edt.ExportedBandBounds(n, k, b)
				require.Equal(t, next, lo, "n=%d k=%d b=%d", n, k, b)
				size := hi - lo
				require.True(t, size == n/k || size == n/k+1, "n=%d k=%d b=%d size=%d", n, k, b, size)
				next = hi
			}
			require.Equal(t, n, next, "n=%d k=%d", n, k)
		}
	}
}

// 8) TestMaxSquaredDistance covers the clamp value for a few shapes.
func TestMaxSquaredDistance(t *testing.T) {
	assert.Equal(t, 8.0, edt.ExportedMaxSquaredDistance(3, 3))
	assert.Equal(t, 9.0, edt.ExportedMaxSquaredDistance(4, 1))
	assert.Equal(t, 0.0, edt.ExportedMaxSquaredDistance(1, 1))
	assert.Equal(t, 0.0, edt.ExportedMaxSquaredDistance(0, 0))
}
