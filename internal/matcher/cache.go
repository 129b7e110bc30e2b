package matcher

import (
	"context"
	"sync"
	"time"
)

// snapshotTTL bounds how long a fitted snapshot may serve before it is
// rebuilt from the current section set. Section ingestion happens out
// of process, so the cache cannot observe corpus writes directly.
const snapshotTTL = 10 * time.Minute

// Loader produces a fresh matcher for a cache key, typically by loading
// the sections for a document family and calling New.
type Loader func(ctx context.Context) (*Matcher, error)

type entry struct {
	matcher *Matcher
	builtAt time.Time
}

// Cache holds immutable matcher snapshots keyed by document-family
// filter. Reads are lock-cheap and may run concurrently against the
// same snapshot; builds for the same key are serialized so concurrent
// misses do not duplicate fit work. Publication is last-writer-wins.
// Entries expire after snapshotTTL and may be dropped earlier with
// Invalidate when the section set for their key is known to change.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	builds  map[string]*sync.Mutex
	ttl     time.Duration
	now     func() time.Time
}

// NewCache creates an empty snapshot cache with the default TTL.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		builds:  make(map[string]*sync.Mutex),
		ttl:     snapshotTTL,
		now:     time.Now,
	}
}

// Get returns the cached snapshot for the key if present and fresh.
func (c *Cache) Get(key string) (*Matcher, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.builtAt) >= c.ttl {
		return nil, false
	}
	return e.matcher, true
}

// GetOrBuild returns the cached snapshot for the key, building and
// publishing one via load on a miss or an expired entry. A concurrent
// miss on the same key waits for the in-flight build and then
// re-checks the cache.
func (c *Cache) GetOrBuild(ctx context.Context, key string, load Loader) (*Matcher, error) {
	if m, ok := c.Get(key); ok {
		return m, nil
	}

	buildMu := c.buildLock(key)
	buildMu.Lock()
	defer buildMu.Unlock()

	// Another builder may have published while we waited.
	if m, ok := c.Get(key); ok {
		return m, nil
	}

	m, err := load(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{matcher: m, builtAt: c.now()}
	c.mu.Unlock()
	return m, nil
}

// Invalidate drops the snapshot for the key. The next GetOrBuild
// rebuilds from the current section set.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidateAll drops every snapshot.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

func (c *Cache) buildLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	mu, ok := c.builds[key]
	if !ok {
		mu = &sync.Mutex{}
		c.builds[key] = mu
	}
	return mu
}
