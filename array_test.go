package bigcoll

import (
	"testing"

	"github.com/stretchr/testify/require"

	bcerrors "github.com/tamirms/bigcoll/errors"
)

func TestArraySortAndBinarySearch(t *testing.T) {
	rng := newTestRNG(t)
	const n = 200

	vals := distinctPermutation(rng, n)
	a, err := NewArray[int64](n, smallChunks())
	require.NoError(t, err)
	require.NoError(t, a.CopyFromSlice(vals, 0))

	a.Sort(Compare[int64]())

	prev, err := a.Get(0)
	require.NoError(t, err)
	for i := int64(1); i < n; i++ {
		v, err := a.Get(i)
		require.NoError(t, err)
		require.Greater(t, v, prev, "not ascending at index %d", i)
		prev = v
	}

	// every present value is found at an index actually holding it
	for _, v := range vals {
		idx := a.BinarySearch(v, Compare[int64]())
		require.GreaterOrEqual(t, idx, int64(0), "value %d not found", v)
		got, err := a.Get(idx)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	// values in the gaps are reported absent
	require.Equal(t, int64(-1), a.BinarySearch(1, Compare[int64]()))
	require.Equal(t, int64(-1), a.BinarySearch(-5, Compare[int64]()))
	require.Equal(t, int64(-1), a.BinarySearch(int64(n)*3+1, Compare[int64]()))
}

func TestArraySortRange(t *testing.T) {
	rng := newTestRNG(t)
	vals := distinctPermutation(rng, 50)
	a, err := NewArray[int64](50, smallChunks())
	require.NoError(t, err)
	require.NoError(t, a.CopyFromSlice(vals, 0))

	// sort only the middle window, spanning chunk boundaries
	require.NoError(t, a.SortRange(7, 30, Compare[int64]()))

	for i := int64(8); i < 37; i++ {
		lo, _ := a.Get(i - 1)
		hi, _ := a.Get(i)
		require.Less(t, lo, hi)
	}
	// outside the window nothing moved
	for _, i := range []int64{0, 3, 6} {
		v, _ := a.Get(i)
		require.Equal(t, vals[i], v)
	}
	for _, i := range []int64{37, 42, 49} {
		v, _ := a.Get(i)
		require.Equal(t, vals[i], v)
	}

	idx, err := a.BinarySearchRange(vals[10], 7, 30, Compare[int64]())
	require.NoError(t, err)
	if contains := int64InRange(vals[10], vals[7:37]); contains {
		require.GreaterOrEqual(t, idx, int64(7))
	}

	require.ErrorIs(t, a.SortRange(40, 11, Compare[int64]()), bcerrors.ErrInvalidRange)
	_, err = a.BinarySearchRange(0, -1, 5, Compare[int64]())
	require.ErrorIs(t, err, bcerrors.ErrInvalidRange)
}

func int64InRange(v int64, vals []int64) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

func TestArraySortPermutationsPreserveElements(t *testing.T) {
	rng := newTestRNG(t)
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.IntN(64)
		vals := distinctPermutation(rng, n)
		a, err := NewArray[int64](int64(n), WithChunkLength(8+rng.Int64N(5)))
		require.NoError(t, err)
		require.NoError(t, a.CopyFromSlice(vals, 0))

		a.Sort(Compare[int64]())

		for i := int64(0); i < int64(n); i++ {
			v, err := a.Get(i)
			require.NoError(t, err)
			require.Equal(t, i*3, v) // sorted distinct gap-3 values
		}
	}
}

func TestArrayContains(t *testing.T) {
	a, err := NewArray[int64](25, smallChunks())
	require.NoError(t, err)
	require.NoError(t, a.Set(13, 42))

	eq := Equal[int64]()
	require.True(t, a.Contains(42, eq))
	require.False(t, a.Contains(43, eq))
	require.Equal(t, int64(13), a.IndexOf(42, eq))
	require.Equal(t, int64(-1), a.IndexOf(43, eq))

	ok, err := a.ContainsInRange(42, 0, 13, eq)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = a.ContainsInRange(42, 13, 1, eq)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = a.ContainsInRange(42, 20, 6, eq)
	require.ErrorIs(t, err, bcerrors.ErrInvalidRange)
}

func TestArrayFill(t *testing.T) {
	a, err := NewArray[int64](25, smallChunks())
	require.NoError(t, err)
	require.NoError(t, a.Fill(8, 10, 9)) // straddles two boundaries

	for i := int64(0); i < 25; i++ {
		v, _ := a.Get(i)
		if i >= 8 && i < 18 {
			require.Equal(t, int64(9), v)
		} else {
			require.Zero(t, v)
		}
	}
	require.ErrorIs(t, a.Fill(20, 6, 1), bcerrors.ErrInvalidRange)
}

func TestArrayAllRestartable(t *testing.T) {
	a, err := NewArray[int64](15, smallChunks())
	require.NoError(t, err)
	for i := int64(0); i < 15; i++ {
		require.NoError(t, a.Set(i, i))
	}

	// two full, independent traversals of the same iterator
	seq := a.All()
	for pass := 0; pass < 2; pass++ {
		next := int64(0)
		for i, v := range seq {
			require.Equal(t, next, i)
			require.Equal(t, next, v)
			next++
		}
		require.Equal(t, int64(15), next)
	}
}

func TestArrayCopyTo(t *testing.T) {
	src, err := NewArray[int64](20, smallChunks())
	require.NoError(t, err)
	for i := int64(0); i < 20; i++ {
		require.NoError(t, src.Set(i, i+1))
	}
	dst, err := NewArray[int64](20, WithChunkLength(6))
	require.NoError(t, err)

	require.NoError(t, src.CopyTo(dst, 4, 10, 9))
	for i := int64(0); i < 9; i++ {
		v, _ := dst.Get(10 + i)
		require.Equal(t, 4+i+1, v)
	}
}

func TestArrayResizeMatchesCount(t *testing.T) {
	a, err := NewArray[int64](5, smallChunks())
	require.NoError(t, err)
	require.Equal(t, int64(5), a.Count())
	require.NoError(t, a.Resize(30))
	require.Equal(t, int64(30), a.Count())
	require.NoError(t, a.Resize(0))
	require.Equal(t, int64(0), a.Count())
}
