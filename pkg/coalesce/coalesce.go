// Package coalesce deduplicates concurrent operations by key: any number of
// callers asking for the same key while a call is outstanding share its
// single execution and settled result. No caching happens beyond the
// in-flight window; once a call settles, the next one does fresh work.
package coalesce

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Coalescer is a typed keyed single-flight. The zero value is ready to use;
// each instance owns its own in-flight map, so tests can create them freely.
type Coalescer[T any] struct {
	group singleflight.Group
}

// Run executes fn under key, or joins the in-flight call for key if one
// exists. All joined callers receive the same value and error. The entry is
// cleared on settlement.
//
// A canceled ctx releases the waiting caller only; the underlying fn keeps
// running and keeps the key occupied until it settles. Retry on timeout is
// the caller's concern.
func (c *Coalescer[T]) Run(ctx context.Context, key string, fn func() (T, error)) (T, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		return fn()
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		return res.Val.(T), nil //nolint:forcetypeassert // only Run stores values
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Forget drops the in-flight entry for key so the next Run starts a new
// call instead of joining the current one.
func (c *Coalescer[T]) Forget(key string) {
	c.group.Forget(key)
}
