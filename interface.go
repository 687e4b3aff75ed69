package lru

// Interface is the contract implemented by Cache.
type Interface interface {
	// Inserts or updates the value for a key and marks it most
	// recently used, evicting the least recently used entry if the
	// cache is full. Returns an error if key or value is nil.
	Put(key, val interface{}) error

	// Returns a key's value from the cache and updates the
	// "recently used"-ness of the key.
	Get(key interface{}) (val interface{}, ok bool)

	// Returns a key's value without updating the
	// "recently used"-ness of the key.
	Peek(key interface{}) (val interface{}, ok bool)

	// Checks if a key exists in the cache without updating the
	// recent-ness.
	Contains(key interface{}) bool

	// Removes a key from the cache, returning the value it held.
	Remove(key interface{}) (val interface{}, ok bool)

	// Returns a slice of the keys in the cache, from oldest to newest.
	Keys() []interface{}

	// Returns the number of entries in the cache.
	Len() int

	// Returns the fixed capacity of the cache.
	MaxSize() int

	// Drops all cache entries.
	Clear()
}
