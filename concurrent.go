package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/krisalay/lfu-cache/eviction"
	"github.com/krisalay/lfu-cache/listener"
	"github.com/krisalay/lfu-cache/types"
	"golang.org/x/sync/singleflight"
)

// ErrNilLoader is returned by GetOrLoad when no loader is given.
var ErrNilLoader = errors.New("cache: nil loader")

/*
Concurrent makes a Cache safe to share between goroutines.

The ordered list and the key index change together on every call, so one
exclusive lock guards each operation as a whole. Nothing is lock-free:
even Get mutates the eviction order.
*/
type Concurrent[K comparable, V any] struct {
	mu sync.Mutex
	c  *Cache[K, V]

	// singleflight prevents multiple goroutines from loading the same
	// missing key at the same time.
	sf singleflight.Group

	// listener is closed together with the cache.
	listener listener.Listener[K, V]
}

// NewConcurrent wraps c. The caller must stop using c directly.
func NewConcurrent[K comparable, V any](c *Cache[K, V]) *Concurrent[K, V] {
	return &Concurrent[K, V]{c: c}
}

// SetListener installs l on the wrapped cache. Close closes it.
func (s *Concurrent[K, V]) SetListener(l listener.Listener[K, V]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listener = l
	s.c.SetListener(l)
}

// Get is Cache.Get under the lock.
func (s *Concurrent[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.c.Get(key)
}

// Put is Cache.Put under the lock.
func (s *Concurrent[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.c.Put(key, value)
}

/*
GetOrLoad returns the cached value for key, or loads, stores and returns it.

A hit counts as an access exactly like Get. On a miss, concurrent callers
asking for the same key share one call to load. A load error is returned
as-is and nothing is stored.
*/
func (s *Concurrent[K, V]) GetOrLoad(ctx context.Context, key K, load types.LoaderFunc[K, V]) (V, error) {
	var zero V
	if load == nil {
		return zero, ErrNilLoader
	}

	if v, ok := s.Get(key); ok {
		return v, nil
	}

	res, err, _ := s.sf.Do(flightKey(key), func() (any, error) {

		// Another flight may have stored the key between our miss and now.
		if v, ok := s.Peek(key); ok {
			return v, nil
		}

		v, err := load(ctx, key)
		if err != nil {
			return nil, err
		}

		s.Put(key, v)
		return v, nil
	})
	if err != nil {
		s.c.engine.OnLoadError(key, err)
		return zero, err
	}

	v, _ := res.(V)
	return v, nil
}

// flightKey turns a key into the string singleflight groups calls by.
func flightKey[K comparable](key K) string {
	return fmt.Sprintf("%#v", key)
}

// Remove is Cache.Remove under the lock.
func (s *Concurrent[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.c.Remove(key)
}

// Peek is Cache.Peek under the lock.
func (s *Concurrent[K, V]) Peek(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.c.Peek(key)
}

// Contains is Cache.Contains under the lock.
func (s *Concurrent[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.c.Contains(key)
}

// Keys is Cache.Keys under the lock.
func (s *Concurrent[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.c.Keys()
}

// Entries is Cache.Entries under the lock.
func (s *Concurrent[K, V]) Entries() []types.Entry[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.c.Entries()
}

// Purge is Cache.Purge under the lock.
func (s *Concurrent[K, V]) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.c.Purge()
}

// Len is Cache.Len under the lock.
func (s *Concurrent[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.c.Len()
}

// Capacity returns the wrapped cache's capacity. It never changes.
func (s *Concurrent[K, V]) Capacity() int {
	return s.c.Capacity()
}

// Clock is Cache.Clock under the lock.
func (s *Concurrent[K, V]) Clock() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.c.Clock()
}

// Policy returns the wrapped cache's eviction policy.
func (s *Concurrent[K, V]) Policy() eviction.PolicyType {
	return s.c.Policy()
}

/*
Close detaches and closes the eviction listener, if any.
Pending asynchronous deliveries are flushed before it returns. The cache
stays usable afterwards; evictions are simply no longer reported.
*/
func (s *Concurrent[K, V]) Close() {
	s.mu.Lock()
	l := s.listener
	s.listener = nil
	s.c.SetListener(nil)
	s.mu.Unlock()

	if l != nil {
		l.Close()
	}
}
