/*
A thread-safe, fixed-capacity, in-memory LRU cache with O(1) insert,
lookup, removal, and membership checks, and an optional eviction
callback.

For more information, see: https://github.com/rakesio/lru.
*/
package lru

import (
	"errors"
	"sync"
)

// Errors returned by New and Put.
var (
	// ErrInvalidSize is returned by New when maxSize is zero or negative.
	ErrInvalidSize = errors.New("lru: max size must be positive")

	// ErrNilKey is returned by Put when the key is nil.
	ErrNilKey = errors.New("lru: key must be non-nil")

	// ErrNilValue is returned by Put when the value is nil.
	ErrNilValue = errors.New("lru: value must be non-nil")
)

// Callback is called with the key and value of an entry evicted to make
// room for a new one. See SetOnEvict.
type Callback func(key, val interface{})

// Cache is a thread-safe fixed-capacity LRU cache. A map provides O(1)
// key lookup, and an intrusive doubly-linked list threaded through the
// entries maintains recency order: the front of the list is the most
// recently used entry, the back is the next to be evicted.
//
// The map and the list are only ever mutated together, under the write
// side of the lock. Put, Get, Remove, and Clear all take the write lock
// (a Get promotes the entry, which rewrites the list); Contains, Peek,
// Keys, and Len are the only true reads and share the read lock.
type Cache struct {
	maxSize int
	items   map[interface{}]*entry
	root    entry
	onEvict Callback
	lock    sync.RWMutex
}

var _ Interface = &Cache{}

// entry carries the intrusive list links, so relinking on promotion or
// eviction never allocates. The key is kept here because eviction starts
// from the list tail and must delete from the map.
type entry struct {
	key        interface{}
	val        interface{}
	next, prev *entry
}

// Option is a configuration option which can be passed to New to
// customize the cache.
type Option func(c *Cache)

// SetOnEvict provides a callback that is called whenever an entry is
// evicted to make room for a new one. It is not called for entries
// dropped by Remove or Clear. The callback runs after the cache's lock
// has been released, so it never blocks concurrent cache operations and
// may itself call back into the cache.
func SetOnEvict(onEvict Callback) Option {
	return func(c *Cache) {
		c.onEvict = onEvict
	}
}

// New returns a Cache holding at most maxSize entries. Once full, adding
// a new key silently evicts the least recently used entry. Returns
// ErrInvalidSize if maxSize is not positive.
func New(maxSize int, options ...Option) (*Cache, error) {
	if maxSize <= 0 {
		return nil, ErrInvalidSize
	}

	c := &Cache{
		maxSize: maxSize,
		items:   make(map[interface{}]*entry, maxSize),
	}
	c.root.next = &c.root
	c.root.prev = &c.root

	for _, option := range options {
		option(c)
	}
	return c, nil
}

// Put inserts or updates the entry for key and marks it most recently
// used. If the key is new and the cache is full, the least recently used
// entry is evicted first; eviction is silent and never an error. Returns
// ErrNilKey or ErrNilValue if key or val is nil.
func (c *Cache) Put(key, val interface{}) error {
	if key == nil {
		return ErrNilKey
	}
	if val == nil {
		return ErrNilValue
	}

	c.lock.Lock()

	// Existing key: overwrite in place and promote. Size is unchanged,
	// so nothing is evicted.
	if e, ok := c.items[key]; ok {
		e.val = val
		c.moveToFront(e)
		c.lock.Unlock()
		return nil
	}

	var evicted *entry
	if len(c.items) == c.maxSize {
		evicted = c.back()
		c.unlink(evicted)
		delete(c.items, evicted.key)
	}

	e := &entry{key: key, val: val}
	c.items[key] = e
	c.pushFront(e)

	c.lock.Unlock()

	// The callback runs outside the critical section so a slow listener
	// cannot stall the cache, and a re-entrant one cannot deadlock it.
	if evicted != nil && c.onEvict != nil {
		c.onEvict(evicted.key, evicted.val)
	}
	return nil
}

// Get returns the value stored for key, and whether it was present.
// A hit counts as a use: the entry is promoted to most recently used.
func (c *Cache) Get(key interface{}) (val interface{}, ok bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if e, ok := c.items[key]; ok {
		c.moveToFront(e)
		return e.val, true
	}
	return nil, false
}

// Peek returns the value stored for key without updating its position in
// the recency order (see Get).
func (c *Cache) Peek(key interface{}) (val interface{}, ok bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if e, ok := c.items[key]; ok {
		return e.val, true
	}
	return nil, false
}

// Contains reports whether key is in the cache. It does not update the
// recency order.
func (c *Cache) Contains(key interface{}) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()

	_, ok := c.items[key]
	return ok
}

// Remove deletes the entry for key if present, returning its value and
// whether a removal occurred. The eviction callback is not called.
func (c *Cache) Remove(key interface{}) (val interface{}, ok bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.unlink(e)
	delete(c.items, key)
	return e.val, true
}

// Keys returns the keys of all entries in the cache, in least recently
// used order (i.e. the next entry to be evicted first).
func (c *Cache) Keys() []interface{} {
	c.lock.RLock()
	defer c.lock.RUnlock()

	keys := make([]interface{}, len(c.items))
	var i int
	for e := c.root.prev; e != &c.root; e = e.prev {
		keys[i] = e.key
		i++
	}
	return keys
}

// Len returns the number of entries currently in the cache.
func (c *Cache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return len(c.items)
}

// MaxSize returns the capacity the cache was created with. It is fixed
// for the lifetime of the cache.
func (c *Cache) MaxSize() int {
	return c.maxSize
}

// Clear drops all entries. Afterwards the cache behaves exactly as a
// freshly constructed one of the same capacity. The eviction callback is
// not called for the dropped entries.
func (c *Cache) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.items = make(map[interface{}]*entry, c.maxSize)
	c.root.next = &c.root
	c.root.prev = &c.root
}

// back returns the least recently used entry. Only valid while the cache
// is non-empty.
func (c *Cache) back() *entry {
	return c.root.prev
}

func (c *Cache) pushFront(e *entry) {
	e.next = c.root.next
	e.prev = &c.root
	c.root.next.prev = e
	c.root.next = e
}

func (c *Cache) moveToFront(e *entry) {
	c.unlink(e)
	c.pushFront(e)
}

func (c *Cache) unlink(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}
