// This file implements FIFO eviction.

package eviction

import "github.com/krisalay/lfu-cache/types"

// fifo orders by insertion time only. Reads and updates never change
// InsertedAt, so a FIFO entry never moves once placed.
type fifo struct{}

func (fifo) Type() PolicyType { return FIFO }

func (fifo) Less(a, b *types.Meta) bool {
	return a.InsertedAt < b.InsertedAt
}
