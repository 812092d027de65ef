package cache

import (
	"context"
	"sync"
	"time"

	"tgju/internal"
)

// Cache memoizes the last successful Envelope in a single slot for a TTL.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	entry *entry
}

type entry struct {
	envelope   internal.Envelope
	capturedAt time.Time
}

func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the stored Envelope while it is younger than the TTL,
// otherwise it calls fetch. The lock spans the whole check-fetch-store
// sequence so concurrent misses do not both hit the source.
func (c *Cache) Get(ctx context.Context, fetch func(context.Context) internal.Envelope) internal.Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry != nil && c.now().Sub(c.entry.capturedAt) < c.ttl {
		return c.entry.envelope
	}
	return c.refresh(ctx, fetch)
}

// refresh must be called with mu held. A failed fetch is handed back to
// the caller but never evicts a previously stored success.
func (c *Cache) refresh(ctx context.Context, fetch func(context.Context) internal.Envelope) internal.Envelope {
	env := fetch(ctx)
	if env.OK() {
		c.entry = &entry{envelope: env, capturedAt: c.now()}
	}
	return env
}
