package inline

import (
	"container/list"

	"github.com/yaklabco/livemark/pkg/element"
)

// CacheStats reports the line cache's counters, exposed for diagnostics.
type CacheStats struct {
	Size     int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// cacheEntry is one cached line result. Elements are stored with absolute
// offsets plus the line's base offset at scan time; a hit at a different
// base offset rebases a copy so cached results survive edits that shift
// lines without changing their text.
type cacheEntry struct {
	key   string
	base  int
	elems []element.Element
}

// lineCache is a bounded map + intrusive LRU list. Invalidation is
// implicit: a changed line or reference signature changes the key, and the
// stale entry ages out of the LRU tail.
type lineCache struct {
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently used

	hits   uint64
	misses uint64
}

func newLineCache(capacity int) *lineCache {
	return &lineCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// get returns the cached elements for key. When the line's base offset is
// unchanged the stored slice is returned by reference; otherwise a rebased
// copy is returned (and kept, so repeated hits stay identity-stable).
func (c *lineCache) get(key string, base int) ([]element.Element, bool) {
	node, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.order.MoveToFront(node)

	entry := node.Value.(*cacheEntry)
	if entry.base != base {
		entry.elems = rebase(entry.elems, base-entry.base)
		entry.base = base
	}
	return entry.elems, true
}

func (c *lineCache) put(key string, base int, elems []element.Element) {
	if c.capacity <= 0 {
		return
	}
	if node, ok := c.entries[key]; ok {
		c.order.MoveToFront(node)
		entry := node.Value.(*cacheEntry)
		entry.base = base
		entry.elems = elems
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, base: base, elems: elems})

	for len(c.entries) > c.capacity {
		tail := c.order.Back()
		if tail == nil {
			break
		}
		c.order.Remove(tail)
		delete(c.entries, tail.Value.(*cacheEntry).key)
	}
}

func (c *lineCache) clear() {
	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

func (c *lineCache) stats() CacheStats {
	return CacheStats{
		Size:     len(c.entries),
		Capacity: c.capacity,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// rebase shifts every offset in a cached element slice by delta.
func rebase(elems []element.Element, delta int) []element.Element {
	out := make([]element.Element, len(elems))
	for i, el := range elems {
		el.From += delta
		el.To += delta
		el.ContentFrom += delta
		el.ContentTo += delta
		out[i] = el
	}
	return out
}
