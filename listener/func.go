package listener

/*
Func is the synchronous listener: every eviction calls the function
before the cache operation returns.

The cache operation is not complete until the callback finishes, so a
slow callback makes Put slow. It also runs with the cache lock held when
used through cache.Concurrent and must not call back into the cache.
*/
type Func[K comparable, V any] func(key K, value V)

// OnEvict calls f.
func (f Func[K, V]) OnEvict(key K, value V) {
	f(key, value)
}

// Close does nothing: there is no background work to stop.
func (f Func[K, V]) Close() {}
