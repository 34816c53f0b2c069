package bigcoll

import (
	"fmt"
	"iter"

	bcerrors "github.com/tamirms/bigcoll/errors"
)

// List is a growable container backed by one Array plus a logical count.
// Capacity grows by policy when an append finds the backing array full:
// multiplicative below the fixed-grow limit, additive at or above it (see
// WithGrowFactor, WithFixedGrowAmount, WithFixedGrowLimit). Count only
// ever moves by Add/RemoveAt/Clear; capacity only by growth and Shrink.
type List[T any] struct {
	cfg   config
	array *Array[T]
	count int64
}

// NewList creates an empty List. The backing array starts at zero capacity
// and grows on first append.
func NewList[T any](opts ...Option) (*List[T], error) {
	return NewListWithCapacity[T](0, opts...)
}

// NewListWithCapacity creates an empty List whose backing array is
// preallocated to hold capacity elements.
func NewListWithCapacity[T any](capacity int64, opts ...Option) (*List[T], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	array, err := NewArray[T](capacity, WithChunkLength(cfg.chunkLength))
	if err != nil {
		return nil, err
	}
	return &List[T]{cfg: cfg, array: array}, nil
}

// Count returns the number of live elements.
func (l *List[T]) Count() int64 { return l.count }

// Capacity returns the allocated element capacity of the backing array.
func (l *List[T]) Capacity() int64 { return l.array.Count() }

// Storage exposes the backing chunked storage. Only indices below Count
// hold live elements.
func (l *List[T]) Storage() *Storage[T] { return l.array.Storage() }

func (l *List[T]) checkIndex(index int64) error {
	if index < 0 || index >= l.count {
		return fmt.Errorf("%w: index %d, count %d", bcerrors.ErrIndexOutOfRange, index, l.count)
	}
	return nil
}

// Get returns the element at the given index, which must be below Count.
func (l *List[T]) Get(index int64) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.array.storage.getUnchecked(index), nil
}

// Set replaces the element at the given index, which must be below Count.
func (l *List[T]) Set(index int64, value T) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.array.storage.setUnchecked(index, value)
	return nil
}

// Add appends item, growing the backing array by policy when full. Fails
// with ErrCapacityExceeded once the list holds the global maximum count
// for its chunk length.
func (l *List[T]) Add(item T) error {
	if l.count == l.array.Count() {
		if err := l.grow(l.count + 1); err != nil {
			return err
		}
	}
	l.array.storage.setUnchecked(l.count, item)
	l.count++
	return nil
}

// AddSlice appends every element of items, growing at most once.
func (l *List[T]) AddSlice(items []T) error {
	needed := l.count + int64(len(items))
	if needed > l.array.Count() {
		if err := l.grow(needed); err != nil {
			return err
		}
	}
	if err := l.array.storage.CopyFromSlice(items, l.count); err != nil {
		return err
	}
	l.count = needed
	return nil
}

// grow raises capacity by repeated application of the growth policy until
// it reaches at least needed.
func (l *List[T]) grow(needed int64) error {
	maxCapacity := l.array.storage.MaxCapacity()
	if needed > maxCapacity {
		return fmt.Errorf("%w: count %d at global maximum %d", bcerrors.ErrCapacityExceeded, l.count, maxCapacity)
	}
	capacity := l.array.Count()
	for capacity < needed {
		capacity = l.cfg.grownCapacity(capacity, maxCapacity)
	}
	return l.array.Resize(capacity)
}

// RemoveAt deletes the element at index, shifting every later element left
// by one and zeroing the vacated tail slot so it does not pin its old
// value. O(n) in the elements after index.
func (l *List[T]) RemoveAt(index int64) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	storage := l.array.storage
	if tail := l.count - index - 1; tail > 0 {
		if err := storage.CopyToStorage(storage, index+1, index, tail); err != nil {
			return err
		}
	}
	storage.zeroRange(l.count-1, 1)
	l.count--
	return nil
}

// Clear zeroes every live slot and resets count to zero. Capacity is
// unchanged; use Shrink to release storage.
func (l *List[T]) Clear() {
	l.array.storage.zeroRange(0, l.count)
	l.count = 0
}

// Shrink resizes the backing array down to exactly the current count.
func (l *List[T]) Shrink() error {
	return l.array.Resize(l.count)
}

// IndexOf scans the live elements for the first equal to item under eq,
// returning its index or -1.
func (l *List[T]) IndexOf(item T, eq EqualFunc[T]) int64 {
	return l.array.storage.containsRange(0, l.count, item, eq)
}

// Contains reports whether any live element equals item under eq.
func (l *List[T]) Contains(item T, eq EqualFunc[T]) bool {
	return l.IndexOf(item, eq) >= 0
}

// Sort orders the live elements ascending by compare, in place.
func (l *List[T]) Sort(compare CompareFunc[T]) {
	l.array.storage.sortRange(0, l.count, compare)
}

// BinarySearch returns the index of a live element equal to item, or -1
// when absent. The list must already be sorted ascending by compare; the
// result on an unsorted list is undefined, not checked.
func (l *List[T]) BinarySearch(item T, compare CompareFunc[T]) int64 {
	return l.array.storage.searchRange(0, l.count, item, compare)
}

// CopyToSlice copies count live elements starting at srcOffset into the
// flat buffer dst.
func (l *List[T]) CopyToSlice(dst []T, srcOffset, count int64) error {
	if err := checkRange(srcOffset, count, l.count); err != nil {
		return err
	}
	return l.array.storage.CopyToSlice(dst, srcOffset, count)
}

// CopyToArray copies count live elements starting at srcOffset into dst
// starting at dstOffset, in chunk-aligned batches.
func (l *List[T]) CopyToArray(dst *Array[T], srcOffset, dstOffset, count int64) error {
	if err := checkRange(srcOffset, count, l.count); err != nil {
		return err
	}
	return l.array.storage.CopyToStorage(dst.storage, srcOffset, dstOffset, count)
}

// ForEach visits count live elements starting at offset in logical order.
// The visitor returns false to stop early.
func (l *List[T]) ForEach(offset, count int64, visit func(index int64, value T) bool) error {
	if err := checkRange(offset, count, l.count); err != nil {
		return err
	}
	return l.array.storage.ForEachRange(offset, count, visit)
}

// All returns a lazy, restartable iterator over every live (index,
// element) pair. Each range-over starts a fresh traversal.
func (l *List[T]) All() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		_ = l.array.storage.ForEachRange(0, l.count, yield)
	}
}
