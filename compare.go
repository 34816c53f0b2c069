package bigcoll

import "cmp"

// EqualFunc reports whether two elements are equal. Containers take the
// strategy as an explicit constructor argument rather than a nilable field,
// so there is no "no comparator supplied" runtime branch.
type EqualFunc[T any] func(a, b T) bool

// CompareFunc orders two elements: negative when a < b, zero when equal,
// positive when a > b.
type CompareFunc[T any] func(a, b T) int

// Equal returns the natural equality strategy for comparable types.
func Equal[T comparable]() EqualFunc[T] {
	return func(a, b T) bool { return a == b }
}

// Compare returns the natural ordering strategy for ordered types.
func Compare[T cmp.Ordered]() CompareFunc[T] {
	return cmp.Compare[T]
}

// EqualFromCompare derives an equality strategy from an ordering strategy.
func EqualFromCompare[T any](compare CompareFunc[T]) EqualFunc[T] {
	return func(a, b T) bool { return compare(a, b) == 0 }
}
