package bigcoll

import (
	"iter"
)

// chainNode is one entry in a bucket's singly linked collision chain.
// Nodes are created on insert and unlinked on remove; a rehash rebuilds
// every chain into the new table and discards the old nodes rather than
// relinking them.
type chainNode[T any] struct {
	item T
	next *chainNode[T]
}

// Set is a separate-chaining hash table. The bucket array is an Array of
// chain heads over chunked storage, so the table itself can exceed the
// single-buffer element limit; bucket capacity is additionally capped at
// the 32-bit hash domain, since a larger table cannot reduce collisions
// under a 32-bit hash.
//
// The hash and equality strategies are explicit constructor arguments (see
// HashBytes, HashString, HashUint64, Equal). Add is an upsert: inserting
// an element equal to a stored one replaces it in place without changing
// the count, which is what lets a Dict overwrite values under key-only
// equality.
//
// The bucket array grows when the load factor (count/capacity) exceeds the
// configured maximum and shrinks when it falls to or below the configured
// minimum scaled by the tolerance. Both directions rehash the full table.
type Set[T any] struct {
	cfg     config
	hash    HashFunc[T]
	eq      EqualFunc[T]
	buckets *Array[*chainNode[T]]
	count   int64
}

// NewSet creates an empty Set with the given hash and equality strategies.
func NewSet[T any](hash HashFunc[T], eq EqualFunc[T], opts ...Option) (*Set[T], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	buckets, err := NewArray[*chainNode[T]](cfg.bucketCount, WithChunkLength(cfg.chunkLength))
	if err != nil {
		return nil, err
	}
	return &Set[T]{cfg: cfg, hash: hash, eq: eq, buckets: buckets}, nil
}

// Count returns the number of live elements.
func (s *Set[T]) Count() int64 { return s.count }

// BucketCount returns the current bucket capacity.
func (s *Set[T]) BucketCount() int64 { return s.buckets.Count() }

// LoadFactor returns the ratio of live elements to buckets.
func (s *Set[T]) LoadFactor() float64 {
	return float64(s.count) / float64(s.buckets.Count())
}

func (s *Set[T]) bucketIndex(buckets *Array[*chainNode[T]], item T) int64 {
	return int64(s.hash(item)) % buckets.Count()
}

// insert is the raw add-to-storage routine shared by Add and the rehash:
// walk the bucket's chain, replace in place on an equal element, otherwise
// append a node at the chain end. Reports whether a node was added. No
// load-factor check happens here, which is what keeps a rehash from
// re-triggering itself mid-flight.
func (s *Set[T]) insert(buckets *Array[*chainNode[T]], item T) bool {
	idx := s.bucketIndex(buckets, item)
	head := buckets.storage.getUnchecked(idx)
	if head == nil {
		buckets.storage.setUnchecked(idx, &chainNode[T]{item: item})
		return true
	}
	n := head
	for {
		if s.eq(n.item, item) {
			n.item = item
			return false
		}
		if n.next == nil {
			n.next = &chainNode[T]{item: item}
			return true
		}
		n = n.next
	}
}

// Add upserts item: a stored element equal to it is replaced in place with
// no count change, otherwise item is chained into its bucket and the table
// grows if the load factor now exceeds the maximum.
func (s *Set[T]) Add(item T) error {
	if !s.insert(s.buckets, item) {
		return nil
	}
	s.count++
	return s.maybeExtend()
}

// Remove unlinks the element equal to item, reporting whether it was
// present. A removal that drops the load factor to or below the scaled
// minimum shrinks the table.
func (s *Set[T]) Remove(item T) (bool, error) {
	idx := s.bucketIndex(s.buckets, item)
	var prev *chainNode[T]
	for n := s.buckets.storage.getUnchecked(idx); n != nil; n = n.next {
		if !s.eq(n.item, item) {
			prev = n
			continue
		}
		if prev == nil {
			s.buckets.storage.setUnchecked(idx, n.next)
		} else {
			prev.next = n.next
		}
		s.count--
		return true, s.maybeShrink()
	}
	return false, nil
}

// Contains reports whether an element equal to item is stored.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.TryGet(item)
	return ok
}

// TryGet returns the stored element equal to item. The stored element can
// differ from the probe in the fields the equality strategy ignores, which
// is how a Dict reads a value back by key.
func (s *Set[T]) TryGet(item T) (T, bool) {
	idx := s.bucketIndex(s.buckets, item)
	for n := s.buckets.storage.getUnchecked(idx); n != nil; n = n.next {
		if s.eq(n.item, item) {
			return n.item, true
		}
	}
	var zero T
	return zero, false
}

// Clear drops every element, resetting the bucket array to its initial
// capacity.
func (s *Set[T]) Clear() error {
	buckets, err := NewArray[*chainNode[T]](s.cfg.bucketCount, WithChunkLength(s.cfg.chunkLength))
	if err != nil {
		return err
	}
	s.buckets = buckets
	s.count = 0
	return nil
}

// maxBuckets returns the bucket-capacity ceiling: the 32-bit hash domain,
// or the chunked-storage maximum if that is lower (only with tiny test
// chunk lengths).
func (s *Set[T]) maxBuckets() int64 {
	return min(maxBucketCount, s.buckets.storage.MaxCapacity())
}

func (s *Set[T]) maybeExtend() error {
	maxB := s.maxBuckets()
	target := s.buckets.Count()
	for float64(s.count)/float64(target) > s.cfg.maxLoadFactor && target < maxB {
		target = s.cfg.grownCapacity(target, maxB)
	}
	if target == s.buckets.Count() {
		return nil
	}
	return s.rehash(target)
}

func (s *Set[T]) maybeShrink() error {
	if s.LoadFactor() > s.cfg.minLoadFactor*s.cfg.minLoadFactorTolerance {
		return nil
	}
	// Re-target the midpoint of the load-factor band so the next few
	// inserts or removals do not immediately rehash again.
	mid := (s.cfg.minLoadFactor + s.cfg.maxLoadFactor) / 2
	target := max(int64(float64(s.count)/mid)+1, s.cfg.bucketCount)
	if target >= s.buckets.Count() {
		return nil
	}
	return s.rehash(target)
}

// rehash rebuilds the table at the target bucket capacity: allocate a new
// bucket array, walk every old chain, and reinsert each element through
// the raw insert path. The old nodes are discarded wholesale.
func (s *Set[T]) rehash(target int64) error {
	buckets, err := NewArray[*chainNode[T]](target, WithChunkLength(s.cfg.chunkLength))
	if err != nil {
		return err
	}
	_ = s.buckets.storage.ForEachRange(0, s.buckets.Count(), func(_ int64, head *chainNode[T]) bool {
		for n := head; n != nil; n = n.next {
			s.insert(buckets, n.item)
		}
		return true
	})
	s.buckets = buckets
	return nil
}

// All returns a lazy, restartable iterator over every element, in bucket
// order then chain order. The order is stable as long as the set is not
// modified, which is what snapshot consumers rely on.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = s.buckets.storage.ForEachRange(0, s.buckets.Count(), func(_ int64, head *chainNode[T]) bool {
			for n := head; n != nil; n = n.next {
				if !yield(n.item) {
					return false
				}
			}
			return true
		})
	}
}

// ToSlice copies every element into a flat slice, in enumeration order.
func (s *Set[T]) ToSlice() []T {
	out := make([]T, 0, s.count)
	for item := range s.All() {
		out = append(out, item)
	}
	return out
}
