package cache

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type entry struct {
	body        []byte
	contentType string
	expires     time.Time
}

// PageCache memoizes rendered response bytes for a bounded time window.
// Entries move {absent -> valid -> expired -> absent}; nothing but Invalidate
// clears a still-valid entry. Concurrent puts race last-write-wins.
type PageCache struct {
	TTL    time.Duration
	Prefix string
	Now    func() time.Time // test hook
	pages  cmap.ConcurrentMap[string, entry]
}

func NewPageCache(prefix string, ttl time.Duration) *PageCache {
	return &PageCache{
		TTL:    ttl,
		Prefix: prefix,
		Now:    time.Now,
		pages:  cmap.New[entry](),
	}
}

func (pc *PageCache) cacheKey(key string) string {
	return pc.Prefix + ":" + key
}

func (pc *PageCache) Get(key string) (body []byte, contentType string, ok bool) {
	e, ok := pc.pages.Get(pc.cacheKey(key))
	if !ok {
		return nil, "", false
	}
	if pc.Now().After(e.expires) {
		pc.pages.Remove(pc.cacheKey(key))
		return nil, "", false
	}
	return e.body, e.contentType, true
}

func (pc *PageCache) Put(key, contentType string, body []byte) {
	pc.pages.Set(pc.cacheKey(key), entry{
		body:        body,
		contentType: contentType,
		expires:     pc.Now().Add(pc.TTL),
	})
}

// Invalidate drops every cached page
func (pc *PageCache) Invalidate() {
	pc.pages.Clear()
}

// InvalidateKey drops a single cached page
func (pc *PageCache) InvalidateKey(key string) {
	pc.pages.Remove(pc.cacheKey(key))
}
