package bigcoll

import (
	"fmt"
	"iter"

	bcerrors "github.com/tamirms/bigcoll/errors"
)

// Pair is one key/value entry of a Dict.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Dict is a hash dictionary: a Set of Pair entries whose hash and equality
// strategies consider only the key, so Set's upsert semantics become
// "replace the value stored under this key".
type Dict[K, V any] struct {
	set *Set[Pair[K, V]]
}

// NewDict creates an empty Dict with the given key hash and key equality
// strategies.
func NewDict[K, V any](hash HashFunc[K], eq EqualFunc[K], opts ...Option) (*Dict[K, V], error) {
	set, err := NewSet(
		func(p Pair[K, V]) uint32 { return hash(p.Key) },
		func(a, b Pair[K, V]) bool { return eq(a.Key, b.Key) },
		opts...,
	)
	if err != nil {
		return nil, err
	}
	return &Dict[K, V]{set: set}, nil
}

// Count returns the number of entries.
func (d *Dict[K, V]) Count() int64 { return d.set.Count() }

// BucketCount returns the current bucket capacity.
func (d *Dict[K, V]) BucketCount() int64 { return d.set.BucketCount() }

// Set stores value under key, replacing any existing value.
func (d *Dict[K, V]) Set(key K, value V) error {
	return d.set.Add(Pair[K, V]{Key: key, Value: value})
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (d *Dict[K, V]) Get(key K) (V, error) {
	if v, ok := d.TryGet(key); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: key %v", bcerrors.ErrKeyNotFound, key)
}

// TryGet returns the value stored under key and whether it was present.
func (d *Dict[K, V]) TryGet(key K) (V, bool) {
	p, ok := d.set.TryGet(Pair[K, V]{Key: key})
	return p.Value, ok
}

// ContainsKey reports whether an entry is stored under key.
func (d *Dict[K, V]) ContainsKey(key K) bool {
	return d.set.Contains(Pair[K, V]{Key: key})
}

// Remove deletes the entry stored under key, reporting whether it existed.
func (d *Dict[K, V]) Remove(key K) (bool, error) {
	return d.set.Remove(Pair[K, V]{Key: key})
}

// Clear drops every entry, resetting the bucket array to its initial
// capacity.
func (d *Dict[K, V]) Clear() error { return d.set.Clear() }

// All returns a lazy, restartable iterator over every (key, value) entry,
// in bucket order then chain order; stable while the dict is unmodified.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range d.set.All() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns a lazy, restartable iterator over every key.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := range d.set.All() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values returns a lazy, restartable iterator over every value.
func (d *Dict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := range d.set.All() {
			if !yield(p.Value) {
				return
			}
		}
	}
}
