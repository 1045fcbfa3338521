package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	cache "github.com/krisalay/lfu-cache"
	"github.com/krisalay/lfu-cache/eviction"
)

func newBenchmarkCache(policy eviction.PolicyType) *cache.Concurrent[string, int] {
	return cache.NewConcurrent(cache.New[string, int](
		100000, // capacity
		policy, // eviction
		nil,
	))
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkCacheGetHit(b *testing.B) {
	c := newBenchmarkCache(eviction.LFU)

	c.Put("key", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}

func BenchmarkCacheGetMiss(b *testing.B) {
	c := newBenchmarkCache(eviction.LFU)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("miss-%d", i)
		c.Get(key)
	}
}

// Every key is read the same number of times, so each Get moves its
// entry past every other entry with the same hit count: the slow path.
func BenchmarkCacheGetUniformLFU(b *testing.B) {
	benchmarkUniform(b, eviction.LFU)
}

func BenchmarkCacheGetUniformLRU(b *testing.B) {
	benchmarkUniform(b, eviction.LRU)
}

func benchmarkUniform(b *testing.B, policy eviction.PolicyType) {
	c := cache.New[int, int](1000, policy, nil)
	for i := 0; i < 1000; i++ {
		c.Put(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i % 1000)
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkCacheParallelGet(b *testing.B) {
	c := newBenchmarkCache(eviction.LFU)

	for i := 0; i < 1000; i++ {
		c.Put(fmt.Sprintf("key-%d", i), i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Get("key-42")
		}
	})
}

//
// ================= WRITE BENCH =================
//

func BenchmarkCachePut(b *testing.B) {
	c := newBenchmarkCache(eviction.LFU)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(fmt.Sprintf("key-%d", i), i)
	}
}

//
// ================= HIGH CONCURRENCY TEST =================
//

func BenchmarkCacheGetOrLoadHighConcurrency(b *testing.B) {
	ctx := context.Background()
	c := newBenchmarkCache(eviction.LFU)

	keys := make([]string, 10000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	load := func(_ context.Context, key string) (int, error) { return len(key), nil }

	b.ResetTimer()

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < b.N/100; j++ {
				c.GetOrLoad(ctx, keys[j%len(keys)], load)
			}
		}()
	}
	wg.Wait()
}
