package bigcoll

import (
	"iter"
)

// Array is a fixed-size indexed container over chunked storage. Unlike a
// List its count always equals its capacity: every index in [0, Count())
// is live from the moment of construction, holding the zero value until
// written. Resize is the only operation that changes its size.
type Array[T any] struct {
	storage *Storage[T]
}

// NewArray creates an Array with the given capacity, every element at the
// zero value.
func NewArray[T any](capacity int64, opts ...Option) (*Array[T], error) {
	storage, err := NewStorage[T](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Array[T]{storage: storage}, nil
}

// Storage exposes the backing chunked storage for bulk interop with other
// containers and flat buffers.
func (a *Array[T]) Storage() *Storage[T] { return a.storage }

// Count returns the number of elements, which for an Array is its capacity.
func (a *Array[T]) Count() int64 { return a.storage.Count() }

// Get returns the element at the given index.
func (a *Array[T]) Get(index int64) (T, error) { return a.storage.Get(index) }

// Set stores value at the given index.
func (a *Array[T]) Set(index int64, value T) error { return a.storage.Set(index, value) }

// Swap exchanges the elements at indices i and j.
func (a *Array[T]) Swap(i, j int64) error { return a.storage.Swap(i, j) }

// Resize changes the capacity, preserving every surviving element and
// exposing new indices at the zero value.
func (a *Array[T]) Resize(capacity int64) error { return a.storage.Resize(capacity) }

// IndexOf scans for the first element equal to item under eq, returning
// its index or -1. The scan walks the storage in chunk order.
func (a *Array[T]) IndexOf(item T, eq EqualFunc[T]) int64 {
	return a.storage.containsRange(0, a.storage.Count(), item, eq)
}

// Contains reports whether any element equals item under eq.
func (a *Array[T]) Contains(item T, eq EqualFunc[T]) bool {
	return a.IndexOf(item, eq) >= 0
}

// ContainsInRange reports whether any of the count elements starting at
// offset equals item under eq.
func (a *Array[T]) ContainsInRange(item T, offset, count int64, eq EqualFunc[T]) (bool, error) {
	if err := checkRange(offset, count, a.storage.Count()); err != nil {
		return false, err
	}
	return a.storage.containsRange(offset, count, item, eq) >= 0, nil
}

// Sort orders the whole array ascending by compare using an in-place
// heap-sort. Elements that compare equal may change relative order.
func (a *Array[T]) Sort(compare CompareFunc[T]) {
	a.storage.sortRange(0, a.storage.Count(), compare)
}

// SortRange orders the count elements starting at offset.
func (a *Array[T]) SortRange(offset, count int64, compare CompareFunc[T]) error {
	if err := checkRange(offset, count, a.storage.Count()); err != nil {
		return err
	}
	a.storage.sortRange(offset, count, compare)
	return nil
}

// BinarySearch returns the index of an element equal to item, or -1 when
// absent. The array must already be sorted ascending by compare; the
// result on an unsorted array is undefined, not checked.
func (a *Array[T]) BinarySearch(item T, compare CompareFunc[T]) int64 {
	return a.storage.searchRange(0, a.storage.Count(), item, compare)
}

// BinarySearchRange searches the count elements starting at offset, which
// must already be sorted ascending by compare.
func (a *Array[T]) BinarySearchRange(item T, offset, count int64, compare CompareFunc[T]) (int64, error) {
	if err := checkRange(offset, count, a.storage.Count()); err != nil {
		return -1, err
	}
	return a.storage.searchRange(offset, count, item, compare), nil
}

// CopyTo copies count elements starting at srcOffset into dst starting at
// dstOffset, in chunk-aligned batches.
func (a *Array[T]) CopyTo(dst *Array[T], srcOffset, dstOffset, count int64) error {
	return a.storage.CopyToStorage(dst.storage, srcOffset, dstOffset, count)
}

// CopyToSlice copies count elements starting at srcOffset into the flat
// buffer dst.
func (a *Array[T]) CopyToSlice(dst []T, srcOffset, count int64) error {
	return a.storage.CopyToSlice(dst, srcOffset, count)
}

// CopyFromSlice copies all of src into the array starting at dstOffset.
func (a *Array[T]) CopyFromSlice(src []T, dstOffset int64) error {
	return a.storage.CopyFromSlice(src, dstOffset)
}

// ForEach visits count elements starting at offset in logical order. The
// visitor returns false to stop early.
func (a *Array[T]) ForEach(offset, count int64, visit func(index int64, value T) bool) error {
	return a.storage.ForEachRange(offset, count, visit)
}

// All returns a lazy, restartable iterator over every (index, element)
// pair. Each range-over starts a fresh traversal.
func (a *Array[T]) All() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		_ = a.storage.ForEachRange(0, a.storage.Count(), yield)
	}
}

// Fill sets the count elements starting at offset to value.
func (a *Array[T]) Fill(offset, count int64, value T) error {
	if err := checkRange(offset, count, a.storage.Count()); err != nil {
		return err
	}
	for count > 0 {
		c, o := a.storage.geo.Locate(offset)
		n := min(int64(len(a.storage.chunks[c]))-o, count)
		cs := a.storage.chunks[c][o : o+n]
		for i := range cs {
			cs[i] = value
		}
		offset += n
		count -= n
	}
	return nil
}
