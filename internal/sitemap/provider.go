package sitemap

import "sync"

// Provider memoizes sitemap construction: computed at most once per run on
// first access, then treated as immutable. Concurrent reads after
// construction are safe; construction itself assumes single-threaded entry.
type Provider struct {
	once    sync.Once
	build   func() *Sitemap
	sitemap *Sitemap
}

// NewProvider wraps a build function in a memoizing provider.
func NewProvider(build func() *Sitemap) *Provider {
	return &Provider{build: build}
}

// Sitemap returns the cached sitemap, building it on first call.
func (p *Provider) Sitemap() *Sitemap {
	p.once.Do(func() {
		p.sitemap = p.build()
	})
	return p.sitemap
}
