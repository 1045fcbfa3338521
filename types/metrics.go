package types

import "go.uber.org/atomic"

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call these methods whenever something happens.
*/
type Metrics interface {

	// Hit is called when Get finds the key.
	Hit()

	// Miss is called when Get does NOT find the key.
	Miss()

	// Eviction is called when a key is removed because the cache is full and needs space.
	Eviction()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

The cache always holds a non-nil Metrics so callers that don't care
about counting never have to pass one.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}

// Stats is a point-in-time copy of Counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// HitRatio returns hits / (hits + misses), or 0 when nothing was looked up.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Counters is a Metrics implementation backed by atomic counters.
// It is safe to share between goroutines.
type Counters struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

func (c *Counters) Hit()      { c.hits.Inc() }
func (c *Counters) Miss()     { c.misses.Inc() }
func (c *Counters) Eviction() { c.evictions.Inc() }

// Snapshot returns the current counter values.
func (c *Counters) Snapshot() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Reset sets every counter back to zero.
func (c *Counters) Reset() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
