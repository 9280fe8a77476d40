package sig

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/iwanowww/valhalla/internal/resolve"
)

// Cache is a bounded cache of constructed Signatures keyed by accessing
// class and descriptor. Eviction is safe: a Signature is reconstructible
// from its key, and equality is structural.
type Cache struct {
	resolver *resolve.Resolver
	lru      *lru.Cache[string, *Signature]
}

// NewCache creates a cache over the given resolver holding at most size
// signatures.
func NewCache(resolver *resolve.Resolver, size int) (*Cache, error) {
	l, err := lru.New[string, *Signature](size)
	if err != nil {
		return nil, err
	}
	return &Cache{resolver: resolver, lru: l}, nil
}

// Get returns the cached Signature for (ctx, desc), constructing and
// caching it on a miss. Construction failures are not cached.
func (c *Cache) Get(ctx *resolve.Context, desc string) (*Signature, error) {
	key := cacheKey(ctx, desc)
	if s, ok := c.lru.Get(key); ok {
		return s, nil
	}
	s, err := New(c.resolver, ctx, desc)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, s)
	return s, nil
}

// Len returns the number of cached signatures.
func (c *Cache) Len() int {
	return c.lru.Len()
}

func cacheKey(ctx *resolve.Context, desc string) string {
	accessor := "<none>"
	if ctx != nil && ctx.Accessor() != nil {
		accessor = ctx.Accessor().Name()
	}
	return accessor + ":" + desc
}
