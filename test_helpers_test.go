package bigcoll

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// smallChunks keeps chunk boundaries easy to cross in tests.
func smallChunks() Option {
	return WithChunkLength(10)
}

// distinctPermutation returns a shuffled slice of n distinct values with
// gaps between them, so probes for absent values are easy to construct.
func distinctPermutation(rng *rand.Rand, n int) []int64 {
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(i) * 3
	}
	rng.Shuffle(n, func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
	return vals
}

// listOf builds a small-chunked list holding vals.
func listOf(t testing.TB, vals []int64) *List[int64] {
	t.Helper()
	list, err := NewList[int64](smallChunks())
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	if err := list.AddSlice(vals); err != nil {
		t.Fatalf("AddSlice: %v", err)
	}
	return list
}
