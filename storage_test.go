package bigcoll

import (
	"testing"

	"github.com/stretchr/testify/require"

	bcerrors "github.com/tamirms/bigcoll/errors"
)

func TestStorageGeometry(t *testing.T) {
	s, err := NewStorage[int64](25, smallChunks())
	require.NoError(t, err)

	require.Equal(t, int64(25), s.Count())
	require.Len(t, s.chunks, 3)
	require.Len(t, s.chunks[0], 10)
	require.Len(t, s.chunks[1], 10)
	require.Len(t, s.chunks[2], 5)

	chunkIdx, offset := s.geo.Locate(23)
	require.Equal(t, int64(2), chunkIdx)
	require.Equal(t, int64(3), offset)

	_, err = s.Get(25)
	require.ErrorIs(t, err, bcerrors.ErrIndexOutOfRange)
	_, err = s.Get(-1)
	require.ErrorIs(t, err, bcerrors.ErrIndexOutOfRange)
}

func TestStorageRoundTrip(t *testing.T) {
	s, err := NewStorage[int64](25, smallChunks())
	require.NoError(t, err)

	for i := int64(0); i < 25; i++ {
		require.NoError(t, s.Set(i, i*7))
	}
	for i := int64(0); i < 25; i++ {
		v, err := s.Get(i)
		require.NoError(t, err)
		require.Equal(t, i*7, v)
	}
}

func TestStorageResizePreservesPrefix(t *testing.T) {
	s, err := NewStorage[int64](25, smallChunks())
	require.NoError(t, err)
	for i := int64(0); i < 25; i++ {
		require.NoError(t, s.Set(i, i+100))
	}

	// grow: old values survive, new indices read as zero
	require.NoError(t, s.Resize(40))
	require.Equal(t, int64(40), s.Count())
	for i := int64(0); i < 25; i++ {
		v, err := s.Get(i)
		require.NoError(t, err)
		require.Equal(t, i+100, v)
	}
	for i := int64(25); i < 40; i++ {
		v, err := s.Get(i)
		require.NoError(t, err)
		require.Zero(t, v)
	}

	// shrink: the prefix survives, the rest is gone
	require.NoError(t, s.Resize(10))
	require.Equal(t, int64(10), s.Count())
	for i := int64(0); i < 10; i++ {
		v, err := s.Get(i)
		require.NoError(t, err)
		require.Equal(t, i+100, v)
	}
	_, err = s.Get(10)
	require.ErrorIs(t, err, bcerrors.ErrIndexOutOfRange)
}

func TestStorageResizeCapacityBounds(t *testing.T) {
	s, err := NewStorage[int64](0, smallChunks())
	require.NoError(t, err)

	// chunk length 10 bounds total capacity at 100
	require.NoError(t, s.Resize(100))
	require.ErrorIs(t, s.Resize(101), bcerrors.ErrInvalidCapacity)
	require.ErrorIs(t, s.Resize(-1), bcerrors.ErrInvalidCapacity)

	_, err = NewStorage[int64](101, smallChunks())
	require.ErrorIs(t, err, bcerrors.ErrInvalidCapacity)
}

func TestStorageSwap(t *testing.T) {
	s, err := NewStorage[int64](25, smallChunks())
	require.NoError(t, err)
	require.NoError(t, s.Set(3, 33))
	require.NoError(t, s.Set(21, 77)) // different chunk

	require.NoError(t, s.Swap(3, 21))
	a, _ := s.Get(3)
	b, _ := s.Get(21)
	require.Equal(t, int64(77), a)
	require.Equal(t, int64(33), b)

	require.ErrorIs(t, s.Swap(0, 25), bcerrors.ErrIndexOutOfRange)
}

// TestStorageCopyToStorage copies between storages with different chunk
// lengths at misaligned offsets, so batches end at boundaries of either
// side.
func TestStorageCopyToStorage(t *testing.T) {
	src, err := NewStorage[int64](40, WithChunkLength(10))
	require.NoError(t, err)
	dst, err := NewStorage[int64](40, WithChunkLength(7))
	require.NoError(t, err)

	for i := int64(0); i < 40; i++ {
		require.NoError(t, src.Set(i, i))
	}
	require.NoError(t, src.CopyToStorage(dst, 5, 3, 30))
	for i := int64(0); i < 30; i++ {
		v, err := dst.Get(3 + i)
		require.NoError(t, err)
		require.Equal(t, 5+i, v)
	}

	require.ErrorIs(t, src.CopyToStorage(dst, 20, 0, 21), bcerrors.ErrInvalidRange)
	require.ErrorIs(t, src.CopyToStorage(dst, 0, 20, 21), bcerrors.ErrInvalidRange)
}

func TestStorageCopySlices(t *testing.T) {
	s, err := NewStorage[int64](25, smallChunks())
	require.NoError(t, err)

	in := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	require.NoError(t, s.CopyFromSlice(in, 7)) // straddles the first boundary

	out := make([]int64, 12)
	require.NoError(t, s.CopyToSlice(out, 7, 12))
	require.Equal(t, in, out)

	require.ErrorIs(t, s.CopyFromSlice(in, 20), bcerrors.ErrInvalidRange)
	require.ErrorIs(t, s.CopyToSlice(make([]int64, 2), 0, 5), bcerrors.ErrInvalidRange)
}

func TestStorageForEachRange(t *testing.T) {
	s, err := NewStorage[int64](25, smallChunks())
	require.NoError(t, err)
	for i := int64(0); i < 25; i++ {
		require.NoError(t, s.Set(i, i*2))
	}

	var indices []int64
	require.NoError(t, s.ForEachRange(8, 5, func(index int64, value int64) bool {
		require.Equal(t, index*2, value)
		indices = append(indices, index)
		return true
	}))
	require.Equal(t, []int64{8, 9, 10, 11, 12}, indices)

	// early stop
	visits := 0
	require.NoError(t, s.ForEachRange(0, 25, func(index int64, value int64) bool {
		visits++
		return visits < 3
	}))
	require.Equal(t, 3, visits)

	require.ErrorIs(t, s.ForEachRange(20, 6, nil), bcerrors.ErrInvalidRange)
}

func TestCheckRange(t *testing.T) {
	cases := []struct {
		name                 string
		offset, count, size  int64
		wantErr              bool
	}{
		{"empty range on empty size", 0, 0, 0, false},
		{"full range", 0, 10, 10, false},
		{"tail range", 9, 1, 10, false},
		{"negative offset", -1, 1, 10, true},
		{"negative count", 0, -1, 10, true},
		{"off the end", 5, 6, 10, true},
		{"offset past end", 11, 0, 10, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := checkRange(c.offset, c.count, c.size)
			if c.wantErr {
				require.ErrorIs(t, err, bcerrors.ErrInvalidRange)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
