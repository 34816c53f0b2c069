package bigcoll

import (
	"sync"
)

// The Sync* wrappers add one mutex per container instance, held for the
// full duration of every public operation. Enumeration takes the lock for
// the entire walk: while a caller ranges over a snapshot, every other
// operation on the same wrapper blocks. There is no finer-grained or
// lock-free path; callers that need one should shard externally.

// SyncList is a List behind a single mutex.
type SyncList[T any] struct {
	mu   sync.Mutex
	list *List[T]
}

// NewSyncList creates an empty thread-safe list.
func NewSyncList[T any](opts ...Option) (*SyncList[T], error) {
	list, err := NewList[T](opts...)
	if err != nil {
		return nil, err
	}
	return &SyncList[T]{list: list}, nil
}

// Count returns the number of live elements.
func (l *SyncList[T]) Count() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Count()
}

// Get returns the element at the given index.
func (l *SyncList[T]) Get(index int64) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Get(index)
}

// Set replaces the element at the given index.
func (l *SyncList[T]) Set(index int64, value T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Set(index, value)
}

// Add appends item.
func (l *SyncList[T]) Add(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Add(item)
}

// RemoveAt deletes the element at index.
func (l *SyncList[T]) RemoveAt(index int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.RemoveAt(index)
}

// Clear drops every live element, keeping capacity.
func (l *SyncList[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.list.Clear()
}

// Shrink resizes capacity down to the current count.
func (l *SyncList[T]) Shrink() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Shrink()
}

// Contains reports whether any live element equals item under eq.
func (l *SyncList[T]) Contains(item T, eq EqualFunc[T]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Contains(item, eq)
}

// Sort orders the live elements ascending by compare. The lock is held for
// the whole O(n log n) pass.
func (l *SyncList[T]) Sort(compare CompareFunc[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.list.Sort(compare)
}

// ForEach visits every live element under the lock.
func (l *SyncList[T]) ForEach(visit func(index int64, value T) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.list.ForEach(0, l.list.Count(), visit)
}

// ToSlice copies every live element into a flat slice under the lock.
func (l *SyncList[T]) ToSlice() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, l.list.Count())
	_ = l.list.CopyToSlice(out, 0, l.list.Count())
	return out
}

// SyncSet is a Set behind a single mutex.
type SyncSet[T any] struct {
	mu  sync.Mutex
	set *Set[T]
}

// NewSyncSet creates an empty thread-safe set with the given hash and
// equality strategies.
func NewSyncSet[T any](hash HashFunc[T], eq EqualFunc[T], opts ...Option) (*SyncSet[T], error) {
	set, err := NewSet(hash, eq, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncSet[T]{set: set}, nil
}

// Count returns the number of live elements.
func (s *SyncSet[T]) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Count()
}

// Add upserts item.
func (s *SyncSet[T]) Add(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Add(item)
}

// Remove unlinks the element equal to item.
func (s *SyncSet[T]) Remove(item T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Remove(item)
}

// Contains reports whether an element equal to item is stored.
func (s *SyncSet[T]) Contains(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Contains(item)
}

// TryGet returns the stored element equal to item.
func (s *SyncSet[T]) TryGet(item T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.TryGet(item)
}

// Clear drops every element.
func (s *SyncSet[T]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Clear()
}

// ForEach visits every element under the lock, in enumeration order.
func (s *SyncSet[T]) ForEach(visit func(item T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for item := range s.set.All() {
		if !visit(item) {
			return
		}
	}
}

// ToSlice copies every element into a flat slice under the lock.
func (s *SyncSet[T]) ToSlice() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.ToSlice()
}

// SyncDict is a Dict behind a single mutex.
type SyncDict[K, V any] struct {
	mu   sync.Mutex
	dict *Dict[K, V]
}

// NewSyncDict creates an empty thread-safe dictionary with the given key
// hash and key equality strategies.
func NewSyncDict[K, V any](hash HashFunc[K], eq EqualFunc[K], opts ...Option) (*SyncDict[K, V], error) {
	dict, err := NewDict[K, V](hash, eq, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncDict[K, V]{dict: dict}, nil
}

// Count returns the number of entries.
func (d *SyncDict[K, V]) Count() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dict.Count()
}

// Set stores value under key, replacing any existing value.
func (d *SyncDict[K, V]) Set(key K, value V) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dict.Set(key, value)
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (d *SyncDict[K, V]) Get(key K) (V, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dict.Get(key)
}

// TryGet returns the value stored under key and whether it was present.
func (d *SyncDict[K, V]) TryGet(key K) (V, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dict.TryGet(key)
}

// ContainsKey reports whether an entry is stored under key.
func (d *SyncDict[K, V]) ContainsKey(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dict.ContainsKey(key)
}

// Remove deletes the entry stored under key.
func (d *SyncDict[K, V]) Remove(key K) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dict.Remove(key)
}

// Clear drops every entry.
func (d *SyncDict[K, V]) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dict.Clear()
}

// ForEach visits every entry under the lock, in enumeration order.
func (d *SyncDict[K, V]) ForEach(visit func(key K, value V) bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for k, v := range d.dict.All() {
		if !visit(k, v) {
			return
		}
	}
}
