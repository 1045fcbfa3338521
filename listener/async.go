package listener

import (
	"sync"

	"go.uber.org/atomic"
)

// evicted is one pending delivery.
type evicted[K comparable, V any] struct {
	key   K
	value V
}

/*
Async delivers evictions from a background worker.
*/
type Async[K comparable, V any] struct {

	// fn receives every delivered eviction, in eviction order.
	fn func(K, V)

	// ch is a buffered channel that holds pending deliveries.
	//
	// Buffering lets bursts of evictions pass without blocking the cache.
	ch chan evicted[K, V]

	// dropped counts evictions discarded because ch was full.
	dropped atomic.Int64

	// wg is used to wait for the worker to finish during shutdown.
	wg sync.WaitGroup

	closeOnce sync.Once
}

// NewAsync creates an asynchronous listener with room for buffer
// undelivered evictions and starts its worker.
func NewAsync[K comparable, V any](fn func(K, V), buffer int) *Async[K, V] {
	a := &Async[K, V]{
		fn: fn,
		ch: make(chan evicted[K, V], buffer),
	}

	a.wg.Add(1)
	go a.worker()

	return a
}

// OnEvict queues the eviction. If the queue is full the eviction is
// DROPPED and counted: blocking here would stall the cache.
// It must not be called after Close.
func (a *Async[K, V]) OnEvict(key K, value V) {
	select {
	case a.ch <- evicted[K, V]{key, value}:
	default:
		a.dropped.Inc()
	}
}

// Dropped returns how many evictions were discarded under pressure.
func (a *Async[K, V]) Dropped() int64 {
	return a.dropped.Load()
}

func (a *Async[K, V]) worker() {
	defer a.wg.Done()

	for ev := range a.ch {
		a.fn(ev.key, ev.value)
	}
}

/*
Close shuts the listener down gracefully.
------------------
1. Close the channel (no more evictions accepted)
2. Wait for the worker to deliver everything already queued

Calling Close more than once is safe.
*/
func (a *Async[K, V]) Close() {
	a.closeOnce.Do(func() {
		close(a.ch)
		a.wg.Wait()
	})
}
