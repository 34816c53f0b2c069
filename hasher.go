package bigcoll

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// HashFunc maps an element to an unsigned 32-bit hash. Bucket indices are
// computed as hash % bucketCount, so the value must already be reduced to
// 32 bits; the helpers below truncate their 64-bit hashes accordingly,
// which keeps bucket placement reproducible regardless of host word size.
type HashFunc[T any] func(item T) uint32

// HashBytes hashes a byte slice with xxHash64, truncated to 32 bits.
func HashBytes(b []byte) uint32 {
	return uint32(xxhash.Sum64(b))
}

// HashString hashes a string with xxHash64, truncated to 32 bits.
func HashString(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}

// HashBytesSeed hashes a byte slice with seeded xxHash3.
func HashBytesSeed(b []byte, seed uint64) uint32 {
	return uint32(xxh3.HashSeed(b, seed))
}

// HashStringSeed hashes a string with seeded xxHash3.
func HashStringSeed(s string, seed uint64) uint32 {
	return uint32(xxh3.HashStringSeed(s, seed))
}

// HashUint64 hashes an unsigned integer with murmur3. Sequential integers
// hash to well-spread buckets, unlike the identity mapping.
func HashUint64(v uint64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return murmur3.Sum32(buf[:])
}

// HashInt64 hashes a signed integer with murmur3.
func HashInt64(v int64) uint32 {
	return HashUint64(uint64(v))
}

// HashFloat64 hashes a float by its bit pattern, with +0 and -0 collapsed
// so that equal floats always hash equally.
func HashFloat64(v float64) uint32 {
	if v == 0 {
		v = 0
	}
	return HashUint64(math.Float64bits(v))
}
