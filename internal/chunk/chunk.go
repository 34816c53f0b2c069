// Package chunk provides the index-translation math for chunked storage.
//
// A chunked container splits its elements across an ordered sequence of
// buffers ("chunks") of at most Length elements each, so that the total
// element count can exceed what a single Go slice can address. A logical
// index i maps to chunk i/Length at offset i%Length.
//
// The translation uses the general division/modulo form so that arbitrary
// chunk lengths work (tests rely on small lengths like 10 to exercise chunk
// boundaries). When Length is a power of two the equivalent shift/mask form
// is precomputed and used instead; the two forms agree bit-for-bit for
// power-of-two lengths.
package chunk

import (
	"math"
	"math/bits"
)

// Geometry captures the chunk layout derived from a chunk length.
// The zero value is not usable; construct with NewGeometry.
type Geometry struct {
	length int64
	shift  uint
	mask   int64
	pow2   bool
}

// NewGeometry returns the geometry for the given chunk length.
// length must be at least 1; callers validate before constructing.
func NewGeometry(length int64) Geometry {
	g := Geometry{length: length}
	if length > 0 && length&(length-1) == 0 {
		g.pow2 = true
		g.shift = uint(bits.TrailingZeros64(uint64(length)))
		g.mask = length - 1
	}
	return g
}

// Length returns the maximum number of elements in one chunk.
func (g Geometry) Length() int64 { return g.length }

// MaxCapacity returns the largest addressable capacity, Length squared,
// clamped so it never overflows int64.
func (g Geometry) MaxCapacity() int64 {
	if g.length > math.MaxInt64/g.length {
		return math.MaxInt64
	}
	return g.length * g.length
}

// Locate translates a logical index into a (chunk index, in-chunk offset)
// pair. The index must be non-negative; bounds against capacity are the
// caller's responsibility.
func (g Geometry) Locate(index int64) (int64, int64) {
	if g.pow2 {
		return index >> g.shift, index & g.mask
	}
	return index / g.length, index % g.length
}

// NumChunks returns the number of chunks needed to hold capacity elements.
func (g Geometry) NumChunks(capacity int64) int64 {
	return (capacity + g.length - 1) / g.length
}

// ChunkLen returns the element count of chunk chunkIdx in a layout of the
// given capacity. Every chunk is full width except the last, which holds
// the exact remainder (full width when capacity divides evenly).
func (g Geometry) ChunkLen(chunkIdx, capacity int64) int64 {
	if chunkIdx < g.NumChunks(capacity)-1 {
		return g.length
	}
	if rem := capacity % g.length; rem != 0 {
		return rem
	}
	return g.length
}
