// Package errors defines all exported error sentinels for the bigcoll library.
//
// This is the single source of truth for error values. Both the top-level
// bigcoll package and internal packages import from here, ensuring errors.Is
// checks work across package boundaries.
//
// Every sentinel marks a programming-contract violation, not a transient
// condition: there is nothing to retry in a pure in-memory structure.
package errors

import "errors"

// Range errors: a negative or out-of-bounds index, offset, or count.
var (
	ErrIndexOutOfRange = errors.New("bigcoll: index out of range")
	ErrInvalidRange    = errors.New("bigcoll: invalid range (offset/count out of bounds)")
)

// Capacity errors: a requested or resulting capacity outside [0, MaxCapacity],
// or an insertion attempted when the container already holds the global
// maximum element count.
var (
	ErrInvalidCapacity  = errors.New("bigcoll: capacity outside valid bounds")
	ErrCapacityExceeded = errors.New("bigcoll: maximum capacity exceeded")
)

// Lookup errors
var (
	ErrKeyNotFound = errors.New("bigcoll: key not found")
)

// Configuration errors: growth or load-factor parameters outside their
// required ordering (e.g. minLoadFactor >= maxLoadFactor).
var (
	ErrInvalidConfiguration = errors.New("bigcoll: invalid configuration")
)
