package cache

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// LRU is a fixed-capacity map that drops the least recently used entry when
// full.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List
	onEvict  func(key K, value V)
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictFunc registers fn for every entry that leaves the cache.
func WithEvictFunc[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

// NewLRU panics when capacity is not positive.
func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key. A replaced value is not passed to the evict
// callback; it is returned instead.
func (c *LRU[K, V]) Put(key K, value V) (old V, replaced bool) {
	c.mu.Lock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		e := el.Value.(*entry[K, V])
		old, e.value = e.value, value
		c.mu.Unlock()
		return old, true
	}
	evicted := c.insertLocked(key, value)
	c.mu.Unlock()

	c.evict(evicted)
	return old, false
}

// GetOrCreate returns the value for key, creating it with create when
// missing. create runs under the cache lock and must not call the cache.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) (value V, created bool) {
	c.mu.Lock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		value = el.Value.(*entry[K, V]).value
		c.mu.Unlock()
		return value, false
	}
	value = create()
	evicted := c.insertLocked(key, value)
	c.mu.Unlock()

	c.evict(evicted)
	return value, true
}

// Remove deletes key and passes its value to the evict callback.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	el, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return false
	}
	e := c.unlinkLocked(el)
	c.mu.Unlock()

	c.evict([]*entry[K, V]{e})
	return true
}

// RemoveIf removes the entry for key only when match accepts its value.
func (c *LRU[K, V]) RemoveIf(key K, match func(V) bool) bool {
	c.mu.Lock()
	el, ok := c.items[key]
	if !ok || !match(el.Value.(*entry[K, V]).value) {
		c.mu.Unlock()
		return false
	}
	e := c.unlinkLocked(el)
	c.mu.Unlock()

	c.evict([]*entry[K, V]{e})
	return true
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Purge empties the cache, evicting every entry from least to most recently
// used.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	evicted := make([]*entry[K, V], 0, c.order.Len())
	for el := c.order.Back(); el != nil; el = c.order.Back() {
		evicted = append(evicted, c.unlinkLocked(el))
	}
	c.mu.Unlock()

	c.evict(evicted)
}

func (c *LRU[K, V]) insertLocked(key K, value V) []*entry[K, V] {
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})

	var evicted []*entry[K, V]
	for c.order.Len() > c.capacity {
		evicted = append(evicted, c.unlinkLocked(c.order.Back()))
	}
	return evicted
}

func (c *LRU[K, V]) unlinkLocked(el *list.Element) *entry[K, V] {
	c.order.Remove(el)
	e := el.Value.(*entry[K, V])
	delete(c.items, e.key)
	return e
}

func (c *LRU[K, V]) evict(entries []*entry[K, V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range entries {
		c.onEvict(e.key, e.value)
	}
}
