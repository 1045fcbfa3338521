package listener

/*
This file defines what an eviction "listener" is.

When the cache is full and drops an entry to make room, some callers want
to know: flush it somewhere, count it, log it. Instead of hard-coding one
behavior, the cache talks to a Listener and the caller picks the delivery
strategy:
- Func: call back synchronously, inside the cache operation
- Async: queue the eviction and deliver it from a background worker
*/

/*
Listener is the contract that all eviction listeners must follow.
The cache does not care how delivery works. It simply calls these methods.
*/
type Listener[K comparable, V any] interface {

	// OnEvict is called once for every entry removed to make room.
	// Explicit removals and purges are not reported.
	OnEvict(key K, value V)

	// Close is called when the cache is shutting down.
	Close()
}
