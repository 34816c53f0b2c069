package bigcoll

import (
	"fmt"
	"iter"

	bcerrors "github.com/tamirms/bigcoll/errors"
)

// Span is a read-only, zero-copy window over count elements of a source
// starting at offset. A span constructed over another span folds the
// offsets together and points at the original source, so index translation
// stays a single addition no matter how many times a window is re-sliced.
//
// A Span holds no element data and observes later mutations of its source;
// it remains valid only while the window stays inside the source's count.
type Span[T any] struct {
	source Indexed[T]
	offset int64
	count  int64
}

// NewSpan creates a window over count elements of source starting at
// offset. If source is itself a span, the new span is built directly
// against the original source with the offsets combined.
func NewSpan[T any](source Indexed[T], offset, count int64) (Span[T], error) {
	source, offset, err := foldSpan(source, offset, count)
	if err != nil {
		return Span[T]{}, err
	}
	return Span[T]{source: source, offset: offset, count: count}, nil
}

// foldSpan validates the window against the immediate source and collapses
// span-over-span construction to the original source. Validation runs
// before folding: when the source is itself a span, the window must fit
// inside that span's count, not inside the original container it wraps.
func foldSpan[T any](source Indexed[T], offset, count int64) (Indexed[T], int64, error) {
	if err := checkRange(offset, count, source.Count()); err != nil {
		return nil, 0, err
	}
	switch sp := source.(type) {
	case Span[T]:
		source = sp.source
		offset += sp.offset
	case MutableSpan[T]:
		source = sp.source
		offset += sp.offset
	}
	return source, offset, nil
}

// Count returns the number of elements in the window.
func (s Span[T]) Count() int64 { return s.count }

// Offset returns the window's starting position in the original source.
func (s Span[T]) Offset() int64 { return s.offset }

func (s Span[T]) checkIndex(index int64) error {
	if index < 0 || index >= s.count {
		return fmt.Errorf("%w: index %d, count %d", bcerrors.ErrIndexOutOfRange, index, s.count)
	}
	return nil
}

// Get returns the element at the given window-relative index.
func (s Span[T]) Get(index int64) (T, error) {
	if err := s.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return s.source.Get(s.offset + index)
}

// Slice returns a sub-window of this window. The result points at the
// original source, never at this span.
func (s Span[T]) Slice(offset, count int64) (Span[T], error) {
	return NewSpan[T](s, offset, count)
}

// IndexOf scans the window for the first element equal to item under eq,
// returning its window-relative index or -1.
func (s Span[T]) IndexOf(item T, eq EqualFunc[T]) int64 {
	for i, v := range s.All() {
		if eq(item, v) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element in the window equals item under eq.
func (s Span[T]) Contains(item T, eq EqualFunc[T]) bool {
	return s.IndexOf(item, eq) >= 0
}

// BinarySearch returns the window-relative index of an element equal to
// item, or -1 when absent. The window must already be sorted ascending by
// compare; the result on an unsorted window is undefined, not checked.
func (s Span[T]) BinarySearch(item T, compare CompareFunc[T]) int64 {
	return searchIndexed(s.source, s.offset, s.count, item, compare)
}

// ForEach visits every element of the window in order. The visitor returns
// false to stop early.
func (s Span[T]) ForEach(visit func(index int64, value T) bool) {
	for i, v := range s.All() {
		if !visit(i, v) {
			return
		}
	}
}

// All returns a lazy, restartable iterator over every (window-relative
// index, element) pair.
func (s Span[T]) All() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		for i := int64(0); i < s.count; i++ {
			v, err := s.source.Get(s.offset + i)
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// MutableSpan is a Span whose source supports mutation, adding Set and
// Sort to the read-only query surface. The same folding rule applies:
// a mutable span over a mutable span points at the original source.
type MutableSpan[T any] struct {
	source MutableIndexed[T]
	offset int64
	count  int64
}

// NewMutableSpan creates a mutable window over count elements of source
// starting at offset, collapsing span-over-span construction. As with
// NewSpan, the window is validated against the immediate source before
// folding, so a slice of a span is bounded by that span's count.
func NewMutableSpan[T any](source MutableIndexed[T], offset, count int64) (MutableSpan[T], error) {
	if err := checkRange(offset, count, source.Count()); err != nil {
		return MutableSpan[T]{}, err
	}
	if sp, ok := source.(MutableSpan[T]); ok {
		source = sp.source
		offset += sp.offset
	}
	return MutableSpan[T]{source: source, offset: offset, count: count}, nil
}

// Count returns the number of elements in the window.
func (s MutableSpan[T]) Count() int64 { return s.count }

// Offset returns the window's starting position in the original source.
func (s MutableSpan[T]) Offset() int64 { return s.offset }

func (s MutableSpan[T]) checkIndex(index int64) error {
	if index < 0 || index >= s.count {
		return fmt.Errorf("%w: index %d, count %d", bcerrors.ErrIndexOutOfRange, index, s.count)
	}
	return nil
}

// Get returns the element at the given window-relative index.
func (s MutableSpan[T]) Get(index int64) (T, error) {
	if err := s.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return s.source.Get(s.offset + index)
}

// Set stores value at the given window-relative index.
func (s MutableSpan[T]) Set(index int64, value T) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	return s.source.Set(s.offset+index, value)
}

// ReadOnly returns the read-only view of the same window.
func (s MutableSpan[T]) ReadOnly() Span[T] {
	return Span[T]{source: s.source, offset: s.offset, count: s.count}
}

// Slice returns a mutable sub-window pointing at the original source.
func (s MutableSpan[T]) Slice(offset, count int64) (MutableSpan[T], error) {
	return NewMutableSpan[T](s, offset, count)
}

// IndexOf scans the window for the first element equal to item under eq.
func (s MutableSpan[T]) IndexOf(item T, eq EqualFunc[T]) int64 {
	return s.ReadOnly().IndexOf(item, eq)
}

// Contains reports whether any element in the window equals item under eq.
func (s MutableSpan[T]) Contains(item T, eq EqualFunc[T]) bool {
	return s.ReadOnly().Contains(item, eq)
}

// BinarySearch searches the window, which must already be sorted ascending
// by compare; undefined on an unsorted window, not checked.
func (s MutableSpan[T]) BinarySearch(item T, compare CompareFunc[T]) int64 {
	return searchIndexed(s.source, s.offset, s.count, item, compare)
}

// Sort orders the window ascending by compare, in place through the
// source's Set.
func (s MutableSpan[T]) Sort(compare CompareFunc[T]) {
	sortIndexed(s.source, s.offset, s.count, compare)
}

// ForEach visits every element of the window in order.
func (s MutableSpan[T]) ForEach(visit func(index int64, value T) bool) {
	s.ReadOnly().ForEach(visit)
}

// All returns a lazy, restartable iterator over every (window-relative
// index, element) pair.
func (s MutableSpan[T]) All() iter.Seq2[int64, T] {
	return s.ReadOnly().All()
}

// searchIndexed binary-searches count elements of src starting at offset
// through the Indexed interface, returning a range-relative index or -1.
// Get cannot fail inside a validated range, so its error is discarded.
func searchIndexed[T any](src Indexed[T], offset, count int64, item T, compare CompareFunc[T]) int64 {
	lo, hi := int64(0), count-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		v, _ := src.Get(offset + mid)
		switch c := compare(v, item); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// sortIndexed heap-sorts count elements of src starting at offset through
// the MutableIndexed interface: the same iterative sift-down used by the
// storage-level sort, expressed over Get/Set.
func sortIndexed[T any](src MutableIndexed[T], offset, count int64, compare CompareFunc[T]) {
	if count < 2 {
		return
	}
	sift := func(root, end int64) {
		val, _ := src.Get(offset + root)
		for {
			child := 2*root + 1
			if child >= end {
				break
			}
			childVal, _ := src.Get(offset + child)
			if child+1 < end {
				if right, _ := src.Get(offset + child + 1); compare(childVal, right) < 0 {
					child++
					childVal = right
				}
			}
			if compare(val, childVal) >= 0 {
				break
			}
			_ = src.Set(offset+root, childVal)
			root = child
		}
		_ = src.Set(offset+root, val)
	}
	for i := count/2 - 1; i >= 0; i-- {
		sift(i, count)
	}
	for end := count - 1; end > 0; end-- {
		a, _ := src.Get(offset)
		b, _ := src.Get(offset + end)
		_ = src.Set(offset, b)
		_ = src.Set(offset+end, a)
		sift(0, end)
	}
}
