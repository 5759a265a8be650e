// Package cache is a small bounded read cache. Entries are evicted
// least-recently-boosted first; lookups boost.
package cache

import (
	"cmp"

	"github.com/emirpasic/gods/maps/treemap"
)

type item[K any, V any] struct {
	priority uint64
	key      K
	val      V
}

type Cache[K cmp.Ordered, V any] struct {
	size    int
	tick    uint64
	items   *treemap.Map
	lru     *treemap.Map
	onEvict func(key K, val V)
}

func New[K cmp.Ordered, V any](size int, onEvict func(key K, val V)) *Cache[K, V] {
	return &Cache[K, V]{
		size:    size,
		onEvict: onEvict,

		items: treemap.NewWith(func(a, b interface{}) int {
			return cmp.Compare(a.(K), b.(K))
		}),
		lru: treemap.NewWith(func(a, b interface{}) int {
			ai, bi := a.(item[K, V]), b.(item[K, V])
			if res := cmp.Compare(ai.priority, bi.priority); res != 0 {
				return res
			}
			return cmp.Compare(ai.key, bi.key)
		}),
	}
}

func (c *Cache[K, V]) Add(key K, val V) {
	if _, ok := c.items.Get(key); ok {
		return
	}

	if c.lru.Size() >= c.size {
		oldest, _ := c.lru.Min()
		c.evict(oldest.(item[K, V]))
	}

	c.tick++
	itm := item[K, V]{priority: c.tick, key: key, val: val}
	c.lru.Put(itm, struct{}{})
	c.items.Put(key, itm)
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	val, ok := c.items.Get(key)
	if !ok {
		var zero V
		return zero, false
	}

	// boost: reinsert under a fresh priority
	itm := val.(item[K, V])
	c.lru.Remove(itm)
	c.tick++
	itm.priority = c.tick
	c.lru.Put(itm, struct{}{})
	c.items.Put(itm.key, itm)
	return itm.val, true
}

func (c *Cache[K, V]) Del(key K) {
	val, ok := c.items.Get(key)
	if !ok {
		return
	}

	c.lru.Remove(val.(item[K, V]))
	c.items.Remove(key)
}

func (c *Cache[K, V]) Len() int {
	return c.items.Size()
}

func (c *Cache[K, V]) Clear() {
	c.items.Clear()
	c.lru.Clear()
}

// Flush evicts everything, oldest first, running the callback for
// each entry.
func (c *Cache[K, V]) Flush() {
	for _, key := range c.lru.Keys() {
		c.evict(key.(item[K, V]))
	}
	c.Clear()
}

func (c *Cache[K, V]) evict(itm item[K, V]) {
	c.lru.Remove(itm)
	if c.onEvict != nil {
		c.onEvict(itm.key, itm.val)
	}
	c.items.Remove(itm.key)
}
