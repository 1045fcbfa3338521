package types

// Meta is the eviction metadata carried by every cache entry.
// All three fields are logical clock values or counters, never wall time.
type Meta struct {
	HitCount   uint64 // accesses so far, 1 on insert
	LastAccess uint64 // clock value of the most recent access
	InsertedAt uint64 // clock value of the insert
}

// Entry binds one key to its value and eviction metadata.
// Key never changes once the entry is created; Value and Meta are mutated in place.
type Entry[K comparable, V any] struct {
	Meta
	Key   K
	Value V
}
