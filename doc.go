// Package bigcoll implements generic containers that address far more
// elements than a single Go slice can hold.
//
// Storage splits elements across an ordered sequence of bounded-size
// chunks and translates every logical index into a (chunk, offset) pair,
// so total capacity is bounded by the square of the chunk length (about
// 4.6e18 elements at the default length of 2^31-1) rather than by the
// maximum length of one contiguous buffer. Array, List, Set and Dict are
// policy layers over that primitive; Span and MutableSpan are zero-copy
// windows over any of them.
//
// # Basic Usage
//
// A growable list:
//
//	list, err := bigcoll.NewList[int64]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := int64(0); i < n; i++ {
//	    if err := list.Add(i); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	list.Sort(bigcoll.Compare[int64]())
//
// A dictionary keyed by string:
//
//	dict, err := bigcoll.NewDict[string, int64](bigcoll.HashString, bigcoll.Equal[string]())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = dict.Set("answer", 42)
//	v, err := dict.Get("answer")
//
// # Strategies
//
// Containers never assume an element representation. Equality, ordering
// and hashing are explicit constructor or method arguments; Equal and
// Compare provide the natural strategies for comparable and ordered types,
// and HashBytes, HashString, HashUint64 and friends provide 32-bit hash
// strategies built on xxHash, xxHash3 and murmur3.
//
// # Contracts
//
// Every range-taking operation follows the (offset, count) convention:
// offset >= 0, count >= 0, offset+count <= size. Violations return errors
// from the errors subpackage and are programming mistakes, not conditions
// to retry. BinarySearch additionally requires an already-sorted range and
// leaves the unsorted case undefined rather than checked.
//
// # Concurrency
//
// The core containers are not synchronized: operations assume a single
// writer and no concurrent readers. SyncList, SyncSet and SyncDict wrap a
// container with one mutex held for the full duration of each operation,
// including enumeration. ForEachParallel fans read-only enumeration of an
// unmodified container across worker goroutines.
//
// # Package Structure
//
//   - Core primitive: storage.go (chunked storage), sort.go (range
//     heap-sort and binary search), internal/chunk (index translation)
//   - Containers: array.go, list.go, set.go, dict.go
//   - Views: span.go (read-only and mutable windows with window folding)
//   - Strategies: compare.go, hasher.go
//   - Configuration: options.go (chunk length, growth policy, load factors)
//   - Adapters: stream.go (byte-stream interop), parallel.go, sync.go
package bigcoll
