package surfline

import (
	"time"
)

// responseCache holds raw response bodies keyed by request URL, each valid
// for a fixed TTL. It is not thread safe; the pipeline is sequential.
type responseCache struct {
	ttl     time.Duration
	entries map[string]cached
}

type cached struct {
	body    []byte
	fetched time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:     ttl,
		entries: make(map[string]cached),
	}
}

// put saves a body for a URL.
func (c *responseCache) put(key string, body []byte) {
	c.putAt(key, body, time.Now())
}

// putAt performs put's work with the wall clock factored out.
func (c *responseCache) putAt(key string, body []byte, t time.Time) {
	c.entries[key] = cached{body: body, fetched: t}
}

// get retrieves a body if present and not expired.
func (c *responseCache) get(key string) ([]byte, bool) {
	return c.getAt(key, time.Now())
}

// getAt is like putAt in that the time is factored out.
func (c *responseCache) getAt(key string, t time.Time) ([]byte, bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if elapsed := t.Sub(e.fetched); elapsed > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.body, true
}
