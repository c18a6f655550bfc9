package store

import (
	"sync"

	"lastgame-service/internal/domain"
)

// DayCache keeps a thread-safe lookup table of built presentations keyed by
// ISO day. Entries are replaced wholesale on write; this is the only
// caching the service owns.
type DayCache struct {
	mu   sync.RWMutex
	days map[string]domain.Presentation
}

// NewDayCache constructs an empty DayCache.
func NewDayCache() *DayCache {
	return &DayCache{
		days: make(map[string]domain.Presentation),
	}
}

// Get retrieves the presentation cached for a day.
func (c *DayCache) Get(date string) (domain.Presentation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.days[date]
	return p, ok
}

// Put stores a presentation under its day, replacing any previous entry.
func (c *DayCache) Put(p domain.Presentation) {
	if p.Date == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.days[p.Date] = p
}

// Dates returns the cached days, in no particular order.
func (c *DayCache) Dates() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.days))
	for d := range c.days {
		out = append(out, d)
	}
	return out
}

// Len reports the number of cached days.
func (c *DayCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.days)
}
