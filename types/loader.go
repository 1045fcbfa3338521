package types

import "context"

/*
LoaderFunc computes the value for a key the cache does not hold.

 1. Cache checks memory → key not found
 2. Cache calls the loader
 3. Cache stores the result with Put
 4. Cache returns the value

A loader error is returned to the caller and nothing is stored.
*/
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)
