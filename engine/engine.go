package engine

import (
	"github.com/rs/zerolog"

	"github.com/krisalay/lfu-cache/types"
)

/*
CacheEngine is the "brain" of the cache system.
It is responsible for the "behavior" of the cache, NOT storage.

It decides:
- How an entry's metadata changes on insert, read and update
- How metrics are recorded
- What gets logged

It does NOT:
- Store data
- Handle locking
- Decide eviction order
*/
type CacheEngine struct {

	// Metrics is how we keep track of what the cache is doing.
	// Hits, misses, evictions.
	Metrics types.Metrics

	// Logger receives eviction and load-failure events. Disabled by default.
	Logger zerolog.Logger

	// CountUpdates decides whether Put on an existing key counts as a
	// frequency hit. When false the value is replaced and the access time
	// refreshed, but HitCount stays where it was.
	CountUpdates bool
}

/*
NewCacheEngine creates a CacheEngine.
*/
func NewCacheEngine(metrics types.Metrics, logger zerolog.Logger, countUpdates bool) *CacheEngine {

	// Ensure metrics is always non-nil
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}

	return &CacheEngine{
		Metrics:      metrics,
		Logger:       logger,
		CountUpdates: countUpdates,
	}
}

// Default returns an engine with no metrics, no logging, and updates
// counted as hits.
func Default() *CacheEngine {
	return NewCacheEngine(nil, zerolog.Nop(), true)
}

// OnInsert stamps a brand-new entry.
func (e *CacheEngine) OnInsert(m *types.Meta, tick uint64) {
	m.HitCount = 1
	m.LastAccess = tick
	m.InsertedAt = tick
}

/*
OnRead is called every time Get finds the key.

The entry gains one hit and the current clock value. The caller must
reposition it afterwards.
*/
func (e *CacheEngine) OnRead(m *types.Meta, tick uint64) {
	e.Metrics.Hit()
	m.HitCount++
	m.LastAccess = tick
}

/*
OnWrite is called when Put replaces the value of a live key.

Whether this is a frequency hit depends on CountUpdates; recency is
always refreshed.
*/
func (e *CacheEngine) OnWrite(m *types.Meta, tick uint64) {
	if e.CountUpdates {
		m.HitCount++
	}
	m.LastAccess = tick
}

// OnMiss records a Get that found nothing.
func (e *CacheEngine) OnMiss() {
	e.Metrics.Miss()
}

// OnEvict records a capacity eviction.
func (e *CacheEngine) OnEvict(key any, m types.Meta) {
	e.Metrics.Eviction()
	e.Logger.Debug().
		Interface("key", key).
		Uint64("hits", m.HitCount).
		Uint64("last_access", m.LastAccess).
		Msg("evicted")
}

// OnLoadError records a failed load for key.
func (e *CacheEngine) OnLoadError(key any, err error) {
	e.Logger.Warn().Err(err).Interface("key", key).Msg("load failed")
}
