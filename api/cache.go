package cache

import "github.com/krisalay/lfu-cache/eviction"

/*
Cache defines the PUBLIC API shared by the single-threaded cache and its
concurrent front. Callers that only read and write should depend on this
interface, not on either concrete type.
*/
type Cache[K comparable, V any] interface {

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		-------------------
		1. If the key exists:
		   - The entry is accessed: one more hit, fresh access time
		   - Its place in the eviction order is updated
		   - The value is returned with true

		2. If the key does NOT exist:
		   - The zero value is returned with false
		   - The logical clock still advances
	*/
	Get(key K) (V, bool)

	/*
		Put stores a key-value pair in the cache.

		BEHAVIOR:
		---------
		- Replacing an existing key counts as an access
		- A new key on a full cache evicts the lowest-priority entry first
		- With zero capacity nothing is ever stored
	*/
	Put(key K, value V)

	/*
		Remove deletes a key from the cache immediately.

		This operation is idempotent:
		- Removing a non-existing key is safe and returns false
	*/
	Remove(key K) bool

	// Peek reads a value without counting an access.
	Peek(key K) (V, bool)

	// Contains reports whether key is live.
	Contains(key K) bool

	// Keys returns live keys, next eviction victim first.
	Keys() []K

	// Purge removes everything.
	Purge()

	// Len returns the number of live entries.
	Len() int

	// Capacity returns the fixed maximum number of entries.
	Capacity() int

	// Policy returns the eviction policy in use.
	Policy() eviction.PolicyType
}
