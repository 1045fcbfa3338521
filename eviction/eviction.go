package eviction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/krisalay/lfu-cache/types"
)

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

/*
Policy is the interface that all eviction strategies must follow.

A policy is an ordering: it tells the List which of two entries should be
evicted first. The cache keeps every entry in a List sorted by the policy,
so eviction is always "remove the front".

Every access only ever raises an entry's priority (counters and clock
values only grow), which is what lets the List repair its order with a
forward-only scan. A policy must keep that property.
*/
type Policy interface {

	// Type names the policy.
	Type() PolicyType

	// Less reports whether a must be evicted before b.
	Less(a, b *types.Meta) bool
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// LFU (Least Frequently Used): evicts the key with the fewest accesses,
	// and among those the one accessed longest ago.
	LFU PolicyType = "LFU"

	// LRU (Least Recently Used): evicts the key that has NOT been accessed for the longest time.
	LRU PolicyType = "LRU"

	// FIFO (First In First Out): evicts the oldest inserted key, regardless of access.
	FIFO PolicyType = "FIFO"
)

// ErrUnknownPolicy is returned by ParsePolicyType for names it does not know.
var ErrUnknownPolicy = errors.New("unknown eviction policy")

// ParsePolicyType maps a user-supplied name, in any case, to a PolicyType.
func ParsePolicyType(s string) (PolicyType, error) {
	switch t := PolicyType(strings.ToUpper(strings.TrimSpace(s))); t {
	case LFU, LRU, FIFO:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// NewEvictionPolicy is a small factory function.
// Given a PolicyType, it creates the correct eviction policy.
func NewEvictionPolicy(t PolicyType) Policy {
	switch t {
	case LFU:
		return lfu{}
	case LRU:
		return lru{}
	case FIFO:
		return fifo{}
	default:
		panic("unknown eviction policy")
	}
}
