package chunk

import (
	"encoding/binary"
	"hash/fnv"
	"math"
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

func TestLocate(t *testing.T) {
	g := NewGeometry(10)

	cases := []struct {
		index, chunk, offset int64
	}{
		{0, 0, 0},
		{9, 0, 9},
		{10, 1, 0},
		{23, 2, 3},
		{99, 9, 9},
		{100, 10, 0},
	}
	for _, c := range cases {
		chunkIdx, offset := g.Locate(c.index)
		if chunkIdx != c.chunk || offset != c.offset {
			t.Errorf("Locate(%d) = (%d, %d), want (%d, %d)", c.index, chunkIdx, offset, c.chunk, c.offset)
		}
	}
}

// TestLocatePow2Agreement verifies the shift/mask fast path agrees with the
// general division/modulo form for power-of-two lengths.
func TestLocatePow2Agreement(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for _, length := range []int64{1, 2, 8, 1 << 16, 1 << 31} {
		g := NewGeometry(length)
		if !g.pow2 {
			t.Fatalf("length %d should take the power-of-two path", length)
		}
		for i := 0; i < iterations; i++ {
			index := rng.Int64N(g.MaxCapacity())
			chunkIdx, offset := g.Locate(index)
			if chunkIdx != index/length || offset != index%length {
				t.Fatalf("length %d index %d: fast path (%d, %d) disagrees with div/mod (%d, %d)",
					length, index, chunkIdx, offset, index/length, index%length)
			}
		}
	}
}

func TestNumChunks(t *testing.T) {
	g := NewGeometry(10)

	cases := []struct {
		capacity, numChunks int64
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{100, 10},
	}
	for _, c := range cases {
		if got := g.NumChunks(c.capacity); got != c.numChunks {
			t.Errorf("NumChunks(%d) = %d, want %d", c.capacity, got, c.numChunks)
		}
	}
}

func TestChunkLen(t *testing.T) {
	g := NewGeometry(10)

	// capacity 25: chunks of 10, 10, 5
	for i, want := range []int64{10, 10, 5} {
		if got := g.ChunkLen(int64(i), 25); got != want {
			t.Errorf("ChunkLen(%d, 25) = %d, want %d", i, got, want)
		}
	}
	// evenly divisible: the last chunk is full width
	if got := g.ChunkLen(1, 20); got != 10 {
		t.Errorf("ChunkLen(1, 20) = %d, want 10", got)
	}
}

func TestMaxCapacity(t *testing.T) {
	if got := NewGeometry(10).MaxCapacity(); got != 100 {
		t.Errorf("MaxCapacity for length 10 = %d, want 100", got)
	}
	// the default-sized geometry must not overflow int64
	g := NewGeometry(math.MaxInt32)
	want := int64(math.MaxInt32) * int64(math.MaxInt32)
	if got := g.MaxCapacity(); got != want {
		t.Errorf("MaxCapacity for length 2^31-1 = %d, want %d", got, want)
	}
	// lengths whose square overflows clamp to MaxInt64
	if got := NewGeometry(1 << 62).MaxCapacity(); got != math.MaxInt64 {
		t.Errorf("MaxCapacity for length 2^62 = %d, want MaxInt64", got)
	}
}
