// Package status resolves a display status and year for movie and TV titles
// from the upstream catalog, through a set of per-kind in-memory TTL caches.
package status

import (
	"sync"
	"time"
)

// ttlPolicy controls read-time freshness for one cache kind. Failed
// resolutions are negative-cached for the (usually much shorter) failure
// TTL; a zero failure TTL means failures are never treated as fresh.
type ttlPolicy struct {
	success time.Duration
	failure time.Duration
}

// entry is one resolution outcome. fetchedAt is stamped exactly once, when
// the resolution attempt finishes, and never touched afterward; staleness is
// always a judgment made at read time.
type entry[V any] struct {
	val       V
	err       error
	fetchedAt time.Time
}

// cell is a string-keyed TTL cache for one resolver. Entries are only ever
// written by a completed resolution attempt and are never evicted; stale
// entries simply stop being returned. The set of keys is bounded by the
// titles browsed during the process lifetime.
type cell[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	policy  ttlPolicy
	now     func() time.Time
}

func newCell[V any](policy ttlPolicy) *cell[V] {
	return &cell[V]{
		entries: make(map[string]entry[V]),
		policy:  policy,
		now:     time.Now,
	}
}

// peek returns the entry for key regardless of freshness. It never blocks on
// anything but the map lock and never triggers a fetch.
func (c *cell[V]) peek(key string) (entry[V], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	return e, ok
}

// peekFresh returns the cached outcome for key while it is still fresh.
func (c *cell[V]) peekFresh(key string) (V, error, bool) {
	e, ok := c.peek(key)
	if !ok || !c.fresh(e) {
		var zero V
		return zero, nil, false
	}
	return e.val, e.err, true
}

func (c *cell[V]) fresh(e entry[V]) bool {
	ttl := c.policy.success
	if e.err != nil {
		ttl = c.policy.failure
	}
	return c.now().Sub(e.fetchedAt) < ttl
}

// store records the outcome of a resolution attempt, stamping it with the
// current time. Failed attempts with a zero failure TTL are recorded too;
// they are just never fresh.
func (c *cell[V]) store(key string, val V, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{val: val, err: err, fetchedAt: c.now()}
}
