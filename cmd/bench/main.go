// Bench is a benchmarking tool for measuring bigcoll container throughput
// and memory usage: list append/sort/search and hash set/dict churn.
//
// Usage:
//
//	go run ./cmd/bench -items 10000000 -chunklen 1048576
//
// Flags:
//
//	-items     Number of elements per phase (default: 10,000,000)
//	-chunklen  Chunk length for the backing storage (default: 2^20)
//	-workers   Workers for the parallel enumeration phase (default: GOMAXPROCS)
//	-probes    Number of lookup probes per query phase (default: 1,000,000)
package main

import (
	"context"
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"runtime"
	"runtime/metrics"
	"runtime/pprof"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/tamirms/bigcoll"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024 // Convert KB to bytes on Linux
	}
	return maxRSS
}

func phase(name string, items int, fn func() error) {
	start := time.Now()
	if err := fn(); err != nil {
		fmt.Printf("%-24s FAILED: %v\n", name, err)
		os.Exit(1)
	}
	elapsed := time.Since(start)
	rate := float64(items) / elapsed.Seconds()
	fmt.Printf("%-24s %12v  %14.0f items/s\n", name, elapsed.Round(time.Millisecond), rate)
}

func main() {
	itemsFlag := flag.Int("items", 10_000_000, "number of elements per phase")
	chunkLenFlag := flag.Int64("chunklen", 1<<20, "chunk length for backing storage")
	workersFlag := flag.Int("workers", 0, "workers for parallel enumeration (0 = GOMAXPROCS)")
	probesFlag := flag.Int("probes", 1_000_000, "lookup probes per query phase")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	items := *itemsFlag
	probes := *probesFlag
	opts := []bigcoll.Option{bigcoll.WithChunkLength(*chunkLenFlag)}

	runtime.GC()
	var baseline runtime.MemStats
	runtime.ReadMemStats(&baseline)

	// 10ms sampling for peak heap via runtime/metrics, avoiding the
	// stop-the-world cost of repeated ReadMemStats calls.
	var peakAlloc atomic.Uint64
	peakAlloc.Store(baseline.Alloc)
	done := make(chan struct{})
	go func() {
		samples := []metrics.Sample{
			{Name: "/memory/classes/heap/objects:bytes"},
		}
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				metrics.Read(samples)
				heapBytes := samples[0].Value.Uint64()
				for {
					old := peakAlloc.Load()
					if heapBytes <= old || peakAlloc.CompareAndSwap(old, heapBytes) {
						break
					}
				}
			}
		}
	}()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Printf("items=%d chunklen=%d\n\n", items, *chunkLenFlag)
	rng := mrand.New(mrand.NewPCG(0x1234567890ABCDEF, 0xFEDCBA9876543210))

	list, err := bigcoll.NewList[int64](opts...)
	if err != nil {
		fmt.Printf("list construction failed: %v\n", err)
		os.Exit(1)
	}

	phase("list append", items, func() error {
		for i := 0; i < items; i++ {
			if err := list.Add(rng.Int64()); err != nil {
				return err
			}
		}
		return nil
	})

	phase("list sort", items, func() error {
		list.Sort(bigcoll.Compare[int64]())
		return nil
	})

	phase("list binary search", probes, func() error {
		for i := 0; i < probes; i++ {
			list.BinarySearch(rng.Int64(), bigcoll.Compare[int64]())
		}
		return nil
	})

	phase("parallel enumeration", items, func() error {
		var sum atomic.Int64
		return bigcoll.ForEachParallel(context.Background(), list, *workersFlag,
			func(_ int64, v int64) error {
				sum.Add(v)
				return nil
			})
	})

	set, err := bigcoll.NewSet(bigcoll.HashInt64, bigcoll.Equal[int64](), opts...)
	if err != nil {
		fmt.Printf("set construction failed: %v\n", err)
		os.Exit(1)
	}

	phase("set insert", items, func() error {
		for i := 0; i < items; i++ {
			if err := set.Add(int64(i)); err != nil {
				return err
			}
		}
		return nil
	})

	phase("set lookup", probes, func() error {
		for i := 0; i < probes; i++ {
			set.Contains(rng.Int64N(int64(items) * 2))
		}
		return nil
	})

	phase("set remove", items, func() error {
		for i := 0; i < items; i++ {
			if _, err := set.Remove(int64(i)); err != nil {
				return err
			}
		}
		return nil
	})

	dict, err := bigcoll.NewDict[int64, int64](bigcoll.HashInt64, bigcoll.Equal[int64](), opts...)
	if err != nil {
		fmt.Printf("dict construction failed: %v\n", err)
		os.Exit(1)
	}

	phase("dict upsert", items, func() error {
		for i := 0; i < items; i++ {
			if err := dict.Set(int64(i), int64(i)*2); err != nil {
				return err
			}
		}
		return nil
	})

	phase("dict lookup", probes, func() error {
		for i := 0; i < probes; i++ {
			dict.TryGet(rng.Int64N(int64(items)))
		}
		return nil
	})

	close(done)
	fmt.Printf("\npeak heap: %.1f MiB (baseline %.1f MiB), peak RSS: %.1f MiB\n",
		float64(peakAlloc.Load())/(1<<20),
		float64(baseline.Alloc)/(1<<20),
		float64(getMaxRSS())/(1<<20))
}
