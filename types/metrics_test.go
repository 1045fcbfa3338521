package types_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krisalay/lfu-cache/types"
)

var (
	_ types.Metrics = types.NoopMetrics{}
	_ types.Metrics = (*types.Counters)(nil)
)

func TestCountersConcurrent(t *testing.T) {
	c := &types.Counters{}

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Hit()
				c.Miss()
			}
			c.Eviction()
		}()
	}
	wg.Wait()

	assert.Equal(t, types.Stats{Hits: 1000, Misses: 1000, Evictions: 10}, c.Snapshot())

	c.Reset()
	assert.Equal(t, types.Stats{}, c.Snapshot())
}

func TestHitRatio(t *testing.T) {
	assert.Zero(t, types.Stats{}.HitRatio())
	assert.InDelta(t, 0.75, types.Stats{Hits: 3, Misses: 1}.HitRatio(), 1e-9)
}
