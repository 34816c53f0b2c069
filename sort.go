package bigcoll

// sortRange heap-sorts the half-open range [offset, offset+count) in place:
// build a max-heap by sifting down from the midpoint to the range start,
// then repeatedly swap the range start with the shrinking right boundary
// and re-sift. O(n log n), no extra allocation, and not stable: elements
// that compare equal may change relative order. The sift is iterative, so
// range size never translates into stack depth.
func (s *Storage[T]) sortRange(offset, count int64, compare CompareFunc[T]) {
	if count < 2 {
		return
	}
	for i := count/2 - 1; i >= 0; i-- {
		s.siftDown(offset, i, count, compare)
	}
	for end := count - 1; end > 0; end-- {
		s.swapUnchecked(offset, offset+end)
		s.siftDown(offset, 0, end, compare)
	}
}

// siftDown restores the max-heap property for the heap rooted at root
// within the first end elements of the range starting at offset. The root
// value is held aside and written once at its final position instead of
// swapping at every level.
func (s *Storage[T]) siftDown(offset, root, end int64, compare CompareFunc[T]) {
	val := s.getUnchecked(offset + root)
	for {
		child := 2*root + 1
		if child >= end {
			break
		}
		childVal := s.getUnchecked(offset + child)
		if child+1 < end {
			if right := s.getUnchecked(offset + child + 1); compare(childVal, right) < 0 {
				child++
				childVal = right
			}
		}
		if compare(val, childVal) >= 0 {
			break
		}
		s.setUnchecked(offset+root, childVal)
		root = child
	}
	s.setUnchecked(offset+root, val)
}

// searchRange binary-searches [offset, offset+count) for item, returning a
// matching logical index or -1. The range must already be sorted ascending
// by compare; the result on an unsorted range is undefined, not checked.
func (s *Storage[T]) searchRange(offset, count int64, item T, compare CompareFunc[T]) int64 {
	lo, hi := int64(0), count-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := compare(s.getUnchecked(offset+mid), item); {
		case c == 0:
			return offset + mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

func (s *Storage[T]) swapUnchecked(i, j int64) {
	ci, oi := s.geo.Locate(i)
	cj, oj := s.geo.Locate(j)
	s.chunks[ci][oi], s.chunks[cj][oj] = s.chunks[cj][oj], s.chunks[ci][oi]
}
