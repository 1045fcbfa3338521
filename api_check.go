package cache

import api "github.com/krisalay/lfu-cache/api"

// Compile-time checks that both cache types implement the public API.
var (
	_ api.Cache[string, any] = (*Cache[string, any])(nil)
	_ api.Cache[string, any] = (*Concurrent[string, any])(nil)
)
