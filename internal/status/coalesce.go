package status

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// loader couples a TTL cell with request coalescing: for any key there is at
// most one outstanding upstream fetch, no matter how many callers resolve it
// concurrently. All callers attached to a flight observe the same outcome.
type loader[V any] struct {
	cell  *cell[V]
	group singleflight.Group
}

func newLoader[V any](policy ttlPolicy) *loader[V] {
	return &loader[V]{cell: newCell[V](policy)}
}

// resolve returns the fresh cached outcome for key, or arranges exactly one
// fetch shared by every concurrent caller. The fetch runs detached from the
// triggering caller's cancellation: a caller that loses interest may discard
// the result, but the flight still completes for everyone else attached to
// it, and the outcome still lands in the cache.
func (l *loader[V]) resolve(ctx context.Context, key string, fetch func(context.Context) (V, error)) (V, error) {
	if v, err, ok := l.cell.peekFresh(key); ok {
		return v, err
	}

	res, err, _ := l.group.Do(key, func() (any, error) {
		// A caller queued behind a just-finished flight re-checks before
		// issuing another fetch.
		if v, cachedErr, ok := l.cell.peekFresh(key); ok {
			return v, cachedErr
		}

		v, fetchErr := fetch(context.WithoutCancel(ctx))
		l.cell.store(key, v, fetchErr)
		return v, fetchErr
	})

	v, ok := res.(V)
	if !ok {
		var zero V
		return zero, err
	}
	return v, err
}

// peekFresh exposes the underlying cell's non-blocking read.
func (l *loader[V]) peekFresh(key string) (V, error, bool) {
	return l.cell.peekFresh(key)
}
