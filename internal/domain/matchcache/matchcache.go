// Package matchcache memoizes closest-match lookups by canonical hex.
//
// Matching is a pure function of the hex value and the (immutable)
// reference table, so cached results never go stale for a given matcher.
package matchcache

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/okian/swatch/internal/domain/pantone"
)

const defaultMaxSize = 50000

// Cache stores match results keyed by canonical "#RRGGBB" hex.
type Cache interface {
	// Get returns the cached result for key, if any.
	Get(ctx context.Context, key string) (pantone.MatchResult, bool)
	// Put records a result. In bounded mode the oldest insertion is evicted
	// once the cache is full.
	Put(ctx context.Context, key string, r pantone.MatchResult)
	// Size returns the number of cached entries.
	Size() int64
}

// node is one entry in the insertion-ordered list (head = newest).
type node struct {
	key    string
	result pantone.MatchResult
	prev   *node
	next   *node
}

func (n *node) reset() {
	n.key = ""
	n.result = pantone.MatchResult{}
	n.prev = nil
	n.next = nil
}

// inMemoryCache implements Cache with a map plus an insertion-ordered list.
// Bounded mode (maxSize > 0) evicts from the tail; unbounded mode never
// evicts.
type inMemoryCache struct {
	mu       sync.RWMutex
	entries  map[string]*node
	head     *node
	tail     *node
	maxSize  int
	size     atomic.Int64
	nodePool sync.Pool
}

// NewInMemoryCache creates a cache with configuration options.
func NewInMemoryCache(opts ...Option) Cache {
	c := &inMemoryCache{
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.entries = make(map[string]*node)
	c.nodePool = sync.Pool{
		New: func() interface{} {
			return &node{}
		},
	}
	return c
}

func (c *inMemoryCache) Get(_ context.Context, key string) (pantone.MatchResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.entries[key]
	if !ok {
		return pantone.MatchResult{}, false
	}
	return n.result, true
}

func (c *inMemoryCache) Put(_ context.Context, key string, r pantone.MatchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.result = r
		return
	}
	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	n := c.nodePool.Get().(*node)
	n.key = key
	n.result = r
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
	c.entries[key] = n
	c.size.Add(1)
}

// evictOldest removes the tail entry. Caller holds c.mu.
func (c *inMemoryCache) evictOldest() {
	n := c.tail
	if n == nil {
		return
	}
	c.tail = n.prev
	if c.tail != nil {
		c.tail.next = nil
	} else {
		c.head = nil
	}
	delete(c.entries, n.key)
	n.reset()
	c.nodePool.Put(n)
	c.size.Add(-1)
}

func (c *inMemoryCache) Size() int64 {
	return c.size.Load()
}
