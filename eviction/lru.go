// This file implements LRU eviction.

package eviction

import "github.com/krisalay/lfu-cache/types"

// lru ignores hit counts: the entry touched longest ago goes first.
// Every access moves an entry to the back of the list.
type lru struct{}

func (lru) Type() PolicyType { return LRU }

func (lru) Less(a, b *types.Meta) bool {
	return a.LastAccess < b.LastAccess
}
