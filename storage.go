package bigcoll

import (
	"fmt"

	bcerrors "github.com/tamirms/bigcoll/errors"
	"github.com/tamirms/bigcoll/internal/chunk"
)

// Storage is the chunked storage primitive underlying every container in
// this package. It owns an ordered sequence of buffers of at most the
// configured chunk length each; the last buffer holds the exact remainder.
// A logical index is translated to a (chunk, offset) pair on every access,
// which is what lets a Storage address far more elements than a single Go
// slice can.
//
// Storage is not safe for concurrent use. See SyncList, SyncSet and
// SyncDict for coarse-grained thread-safe wrappers over the containers
// built on top of it.
type Storage[T any] struct {
	geo      chunk.Geometry
	chunks   [][]T
	capacity int64
}

// NewStorage creates a Storage with the given capacity. The chunk length
// defaults to DefaultChunkLength and can be lowered with WithChunkLength,
// which tests use to make chunk boundaries easy to exercise.
func NewStorage[T any](capacity int64, opts ...Option) (*Storage[T], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	s := &Storage[T]{geo: chunk.NewGeometry(cfg.chunkLength)}
	if err := s.Resize(capacity); err != nil {
		return nil, err
	}
	return s, nil
}

// Count returns the total number of addressable elements. For a Storage,
// count and capacity are the same thing.
func (s *Storage[T]) Count() int64 { return s.capacity }

// ChunkLength returns the maximum number of elements per chunk.
func (s *Storage[T]) ChunkLength() int64 { return s.geo.Length() }

// MaxCapacity returns the largest capacity this Storage can be resized to:
// the square of its chunk length (clamped to the int64 range).
func (s *Storage[T]) MaxCapacity() int64 { return s.geo.MaxCapacity() }

// Resize changes the capacity to exactly the requested value, preserving
// the value at every logical index that survives. Growth extends the
// previous last chunk to full width and allocates new trailing chunks,
// exposing new indices at the zero value; shrink truncates trailing chunks
// and reallocates the new last chunk so that discarded slots do not pin
// their old values.
func (s *Storage[T]) Resize(capacity int64) error {
	if capacity < 0 || capacity > s.geo.MaxCapacity() {
		return fmt.Errorf("%w: requested %d, valid range [0, %d]",
			bcerrors.ErrInvalidCapacity, capacity, s.geo.MaxCapacity())
	}
	numChunks := s.geo.NumChunks(capacity)
	chunks := make([][]T, numChunks)
	for i := int64(0); i < numChunks; i++ {
		newLen := s.geo.ChunkLen(i, capacity)
		if i < int64(len(s.chunks)) {
			old := s.chunks[i]
			if int64(len(old)) == newLen {
				chunks[i] = old
				continue
			}
			chunks[i] = make([]T, newLen)
			copy(chunks[i], old)
		} else {
			chunks[i] = make([]T, newLen)
		}
	}
	s.chunks = chunks
	s.capacity = capacity
	return nil
}

// Get returns the element at the given logical index.
func (s *Storage[T]) Get(index int64) (T, error) {
	if index < 0 || index >= s.capacity {
		var zero T
		return zero, fmt.Errorf("%w: index %d, count %d", bcerrors.ErrIndexOutOfRange, index, s.capacity)
	}
	return s.getUnchecked(index), nil
}

// Set stores value at the given logical index.
func (s *Storage[T]) Set(index int64, value T) error {
	if index < 0 || index >= s.capacity {
		return fmt.Errorf("%w: index %d, count %d", bcerrors.ErrIndexOutOfRange, index, s.capacity)
	}
	s.setUnchecked(index, value)
	return nil
}

// Swap exchanges the elements at indices i and j.
func (s *Storage[T]) Swap(i, j int64) error {
	if i < 0 || i >= s.capacity || j < 0 || j >= s.capacity {
		return fmt.Errorf("%w: indices %d, %d, count %d", bcerrors.ErrIndexOutOfRange, i, j, s.capacity)
	}
	ci, oi := s.geo.Locate(i)
	cj, oj := s.geo.Locate(j)
	s.chunks[ci][oi], s.chunks[cj][oj] = s.chunks[cj][oj], s.chunks[ci][oi]
	return nil
}

func (s *Storage[T]) getUnchecked(index int64) T {
	c, o := s.geo.Locate(index)
	return s.chunks[c][o]
}

func (s *Storage[T]) setUnchecked(index int64, value T) {
	c, o := s.geo.Locate(index)
	s.chunks[c][o] = value
}

// checkRange validates the (offset, count) convention shared by every
// range-taking operation: offset >= 0, count >= 0, offset+count <= size.
// Violations are contract errors, never clamped.
func checkRange(offset, count, size int64) error {
	if offset < 0 || count < 0 || offset > size-count {
		return fmt.Errorf("%w: offset %d, count %d, size %d", bcerrors.ErrInvalidRange, offset, count, size)
	}
	return nil
}

// CopyToStorage copies count elements from s starting at srcOffset into dst
// starting at dstOffset. The copy proceeds in chunk-aligned batches: each
// step moves min(remaining source chunk, remaining destination chunk,
// remaining count) elements, so the number of iterations is bounded by the
// chunk boundaries crossed rather than by the element count. When dst is
// the same Storage the ranges may overlap only with dstOffset <= srcOffset
// (shifting toward lower indices); batches advance left to right, so a
// shift toward higher indices would read already-overwritten elements.
func (s *Storage[T]) CopyToStorage(dst *Storage[T], srcOffset, dstOffset, count int64) error {
	if err := checkRange(srcOffset, count, s.capacity); err != nil {
		return err
	}
	if err := checkRange(dstOffset, count, dst.capacity); err != nil {
		return err
	}
	for count > 0 {
		sc, so := s.geo.Locate(srcOffset)
		dc, do := dst.geo.Locate(dstOffset)
		n := min(int64(len(s.chunks[sc]))-so, int64(len(dst.chunks[dc]))-do, count)
		copy(dst.chunks[dc][do:do+n], s.chunks[sc][so:so+n])
		srcOffset += n
		dstOffset += n
		count -= n
	}
	return nil
}

// CopyToSlice copies count elements starting at srcOffset into the flat
// buffer dst, which must hold at least count elements.
func (s *Storage[T]) CopyToSlice(dst []T, srcOffset, count int64) error {
	if err := checkRange(srcOffset, count, s.capacity); err != nil {
		return err
	}
	if count > int64(len(dst)) {
		return fmt.Errorf("%w: destination buffer holds %d, need %d", bcerrors.ErrInvalidRange, len(dst), count)
	}
	written := int64(0)
	for written < count {
		c, o := s.geo.Locate(srcOffset + written)
		n := min(int64(len(s.chunks[c]))-o, count-written)
		copy(dst[written:written+n], s.chunks[c][o:o+n])
		written += n
	}
	return nil
}

// CopyFromSlice copies all of src into s starting at dstOffset.
func (s *Storage[T]) CopyFromSlice(src []T, dstOffset int64) error {
	count := int64(len(src))
	if err := checkRange(dstOffset, count, s.capacity); err != nil {
		return err
	}
	read := int64(0)
	for read < count {
		c, o := s.geo.Locate(dstOffset + read)
		n := min(int64(len(s.chunks[c]))-o, count-read)
		copy(s.chunks[c][o:o+n], src[read:read+n])
		read += n
	}
	return nil
}

// ForEachRange visits count elements starting at offset in logical order,
// chunk by chunk. The visitor returns false to stop early. Each call starts
// a fresh traversal; no state is retained between calls.
func (s *Storage[T]) ForEachRange(offset, count int64, visit func(index int64, value T) bool) error {
	if err := checkRange(offset, count, s.capacity); err != nil {
		return err
	}
	index := offset
	remaining := count
	for remaining > 0 {
		c, o := s.geo.Locate(index)
		n := min(int64(len(s.chunks[c]))-o, remaining)
		for _, v := range s.chunks[c][o : o+n] {
			if !visit(index, v) {
				return nil
			}
			index++
		}
		remaining -= n
	}
	return nil
}

// zeroRange resets count elements starting at offset to the zero value so
// that cleared slots do not keep dead references alive. Range is assumed
// validated by the caller.
func (s *Storage[T]) zeroRange(offset, count int64) {
	var zero T
	for count > 0 {
		c, o := s.geo.Locate(offset)
		n := min(int64(len(s.chunks[c]))-o, count)
		cs := s.chunks[c][o : o+n]
		for i := range cs {
			cs[i] = zero
		}
		offset += n
		count -= n
	}
}

// containsRange scans count elements starting at offset for an element
// equal to item under eq, returning the first matching logical index or -1.
// Range is assumed validated by the caller.
func (s *Storage[T]) containsRange(offset, count int64, item T, eq EqualFunc[T]) int64 {
	found := int64(-1)
	_ = s.ForEachRange(offset, count, func(index int64, value T) bool {
		if eq(item, value) {
			found = index
			return false
		}
		return true
	})
	return found
}
