package bigcoll

// Indexed is the read surface shared by Array, List and Span: anything with
// a logical count and index-checked element access. Span views accept any
// Indexed source.
type Indexed[T any] interface {
	// Count returns the number of live elements.
	Count() int64
	// Get returns the element at the given logical index.
	Get(index int64) (T, error)
}

// MutableIndexed extends Indexed with element replacement. MutableSpan
// requires its source to implement it.
type MutableIndexed[T any] interface {
	Indexed[T]
	// Set stores value at the given logical index.
	Set(index int64, value T) error
}
