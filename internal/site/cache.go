package site

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// pageCache holds composed pages in-process, keyed by tenant and slug.
// Entries expire by TTL only; there is no explicit invalidation, so
// edits become visible within one TTL window.
type pageCache struct {
	c   *ristretto.Cache[string, *RenderedPage]
	ttl time.Duration
}

// newPageCache creates a ristretto-backed page cache. maxCostBytes is
// the maximum total size of cached pages in bytes.
func newPageCache(maxCostBytes int64, ttl time.Duration) (*pageCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, *RenderedPage]{
		NumCounters: maxCostBytes / 100 * 10, // ~10x expected items
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &pageCache{c: c, ttl: ttl}, nil
}

func (p *pageCache) get(key string) (*RenderedPage, bool) {
	return p.c.Get(key)
}

func (p *pageCache) set(key string, page *RenderedPage) {
	cost := int64(1)
	if raw, err := json.Marshal(page); err == nil {
		cost = int64(len(raw))
	}
	p.c.SetWithTTL(key, page, cost, p.ttl)
}

func (p *pageCache) close() {
	p.c.Close()
}

func cacheKey(tenantID, slug string) string {
	return tenantID + "/" + slug
}
