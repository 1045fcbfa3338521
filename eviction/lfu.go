// This file implements LFU eviction.

package eviction

import "github.com/krisalay/lfu-cache/types"

// lfu orders entries by hit count, oldest access first among equals.
//
// LastAccess is unique per live entry because the clock ticks before every
// access is stamped, so two entries never compare equal.
type lfu struct{}

func (lfu) Type() PolicyType { return LFU }

func (lfu) Less(a, b *types.Meta) bool {
	if a.HitCount != b.HitCount {
		return a.HitCount < b.HitCount
	}
	return a.LastAccess < b.LastAccess
}
