package ranking

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/voluntariado/match-engine/internal/normalizer"
	"github.com/voluntariado/match-engine/services"
)

// FilterKey returns a canonical key for a search filter: the same logical
// filter always maps to the same key regardless of skill order, casing or
// accents. It identifies both cache entries and the filter state a result
// set belongs to.
func FilterKey(filter services.SearchFilter) string {
	skills := normalizer.NormalizeSet(filter.Skills)
	sort.Strings(skills)
	locations := normalizer.NormalizeSet(filter.Locations)
	sort.Strings(locations)

	return fmt.Sprintf("q=%s|s=%s|h=%g-%g|l=%s",
		normalizer.Normalize(filter.Query),
		strings.Join(skills, ","),
		filter.MinHours, filter.MaxHours,
		strings.Join(locations, ","),
	)
}

type cacheEntry struct {
	result   services.SearchResult
	storedAt time.Time
}

// resultCache holds read-only result snapshots keyed by filter key, each
// valid for a short staleness window. Entries are never mutated in place;
// a fresher result replaces the snapshot wholesale.
type resultCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// get returns the cached snapshot for key if it is still within the
// staleness window.
func (c *resultCache) get(key string, now time.Time) (services.SearchResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || now.Sub(entry.storedAt) > c.ttl {
		return services.SearchResult{}, false
	}
	return entry.result, true
}

// put stores a snapshot and opportunistically drops expired entries.
func (c *resultCache) put(key string, result services.SearchResult, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, entry := range c.entries {
		if now.Sub(entry.storedAt) > c.ttl {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{result: result, storedAt: now}
}
