package cache

import (
	"github.com/krisalay/lfu-cache/engine"
	"github.com/krisalay/lfu-cache/eviction"
	"github.com/krisalay/lfu-cache/listener"
	"github.com/krisalay/lfu-cache/types"
)

/*
Cache is a fixed-capacity cache that evicts by a priority ordering.

It connects:
- the key index (key → handle into the ordered list)
- the ordered list (entries sorted by eviction priority, victim at the front)
- the logical clock (one tick per Get or Put, hit or miss)
- the engine (metadata rules, metrics, logging)

With the default LFU policy the victim is the entry with the fewest hits,
and among those the one accessed longest ago.

A Cache is NOT safe for concurrent use. Wrap it with NewConcurrent to
share it between goroutines.
*/
type Cache[K comparable, V any] struct {

	// capacity is the maximum number of live entries. Zero means the
	// cache never stores anything.
	capacity int

	// clock advances once per Get and Put and stamps every access.
	clock uint64

	policy  eviction.Policy
	entries *eviction.List[types.Entry[K, V]]

	// index holds exactly the keys present in entries.
	index map[K]eviction.Handle

	engine   *engine.CacheEngine
	listener listener.Listener[K, V]
}

// New creates an empty cache holding at most capacity entries, ordered
// by the given policy. A nil engine means engine.Default().
// It panics if capacity is negative or the policy is unknown.
func New[K comparable, V any](capacity int, policy eviction.PolicyType, eng *engine.CacheEngine) *Cache[K, V] {
	if capacity < 0 {
		panic("cache: negative capacity")
	}
	if eng == nil {
		eng = engine.Default()
	}

	p := eviction.NewEvictionPolicy(policy)
	less := func(a, b *types.Entry[K, V]) bool {
		return p.Less(&a.Meta, &b.Meta)
	}

	return &Cache[K, V]{
		capacity: capacity,
		policy:   p,
		entries:  eviction.NewList(less),
		index:    make(map[K]eviction.Handle),
		engine:   eng,
	}
}

// NewLFU creates an LFU cache with the default engine.
func NewLFU[K comparable, V any](capacity int) *Cache[K, V] {
	return New[K, V](capacity, eviction.LFU, nil)
}

// SetListener installs l to be told about every capacity eviction.
// A nil l removes the current listener without closing it.
func (c *Cache[K, V]) SetListener(l listener.Listener[K, V]) {
	c.listener = l
}

/*
Get retrieves the value for key.

On a hit the entry gains one hit and the current clock value, and moves
to its new place in the eviction order. On a miss it returns the zero
value and false. The clock advances either way.
*/
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.clock++

	h, ok := c.index[key]
	if !ok {
		c.engine.OnMiss()
		var zero V
		return zero, false
	}

	ent := c.entries.Value(h)
	c.engine.OnRead(&ent.Meta, c.clock)
	c.entries.Fix(h)

	return ent.Value, true
}

/*
Put stores value under key.

- Existing key: the value is replaced and, like Get, the entry is accessed
  and repositioned.
- New key with the cache full: the front of the eviction order is removed
  first. This is the only way an entry is evicted.
- Zero capacity: nothing is stored.

The clock advances on every call, including the zero-capacity no-op.
*/
func (c *Cache[K, V]) Put(key K, value V) {
	c.clock++

	if c.capacity == 0 {
		return
	}

	if h, ok := c.index[key]; ok {
		ent := c.entries.Value(h)
		ent.Value = value
		c.engine.OnWrite(&ent.Meta, c.clock)
		c.entries.Fix(h)
		return
	}

	if len(c.index) >= c.capacity {
		c.evict()
	}

	ent := types.Entry[K, V]{Key: key, Value: value}
	c.engine.OnInsert(&ent.Meta, c.clock)
	c.index[key] = c.entries.Insert(ent)
}

// evict removes the lowest-priority entry.
func (c *Cache[K, V]) evict() {
	h, ok := c.entries.Front()
	if !ok {
		return
	}

	ent := c.entries.Remove(h)
	delete(c.index, ent.Key)

	c.engine.OnEvict(ent.Key, ent.Meta)
	if c.listener != nil {
		c.listener.OnEvict(ent.Key, ent.Value)
	}
}

// Remove deletes key and reports whether it was present.
// It is not an access and does not advance the clock.
func (c *Cache[K, V]) Remove(key K) bool {
	h, ok := c.index[key]
	if !ok {
		return false
	}

	c.entries.Remove(h)
	delete(c.index, key)
	return true
}

// Peek returns the value for key without counting an access.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	h, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.entries.Value(h).Value, true
}

// Contains reports whether key is live. It is not an access.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Keys returns the live keys in eviction order, next victim first.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for _, ent := range c.entries.All() {
		keys = append(keys, ent.Key)
	}
	return keys
}

// Entries returns copies of the live entries in eviction order.
func (c *Cache[K, V]) Entries() []types.Entry[K, V] {
	out := make([]types.Entry[K, V], 0, len(c.index))
	for _, ent := range c.entries.All() {
		out = append(out, *ent)
	}
	return out
}

// Purge removes every entry. The clock keeps its value.
func (c *Cache[K, V]) Purge() {
	c.entries.Clear()
	clear(c.index)
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int { return len(c.index) }

// Capacity returns the maximum number of live entries.
func (c *Cache[K, V]) Capacity() int { return c.capacity }

// Clock returns the logical clock: the number of Get and Put calls so far.
func (c *Cache[K, V]) Clock() uint64 { return c.clock }

// Policy returns the eviction policy ordering this cache.
func (c *Cache[K, V]) Policy() eviction.PolicyType { return c.policy.Type() }
