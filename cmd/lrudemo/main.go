// Command lrudemo exercises the cache and logs eviction notifications.
package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog/v2"
	"github.com/jessevdk/go-flags"
	"github.com/rakesio/lru"
)

type config struct {
	MaxSize int `short:"s" long:"maxsize" default:"3" description:"Maximum number of entries the cache holds"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		os.Exit(1)
	}

	log := btclog.NewSLogger(btclog.NewDefaultHandler(os.Stdout))

	// The listener runs outside the cache's lock, so logging here can
	// never slow down concurrent cache operations.
	cache, err := lru.New(cfg.MaxSize, lru.SetOnEvict(
		func(key, val interface{}) {
			log.Infof("Evicted entry: key=%v val=%v", key, val)
		},
	))
	if err != nil {
		log.Errorf("Unable to create cache: %v", err)
		os.Exit(1)
	}

	log.Infof("Created cache with maxSize=%d", cache.MaxSize())

	// Fill the cache to capacity, with two extra keys to overflow with.
	keys := make([]string, cache.MaxSize()+2)
	for i := range keys {
		keys[i] = fmt.Sprintf("key%d", i+1)
	}
	for _, key := range keys[:cache.MaxSize()] {
		if err := cache.Put(key, "value-"+key); err != nil {
			log.Errorf("Put %q: %v", key, err)
			os.Exit(1)
		}
	}
	log.Infof("Keys (oldest to newest): %v", cache.Keys())

	// A lookup counts as a use, so the first key inserted is no longer
	// the next eviction candidate.
	if val, ok := cache.Get(keys[0]); ok {
		log.Infof("Get %q = %v (promoted)", keys[0], val)
	}

	// Overflow the capacity; the least recently used entries go first.
	for _, key := range keys[cache.MaxSize():] {
		if err := cache.Put(key, "value-"+key); err != nil {
			log.Errorf("Put %q: %v", key, err)
			os.Exit(1)
		}
	}
	log.Infof("Keys (oldest to newest): %v", cache.Keys())
	log.Infof("Contains %q: %t", keys[0], cache.Contains(keys[0]))

	if val, ok := cache.Remove(keys[0]); ok {
		log.Infof("Removed %q, had value %v", keys[0], val)
	}
	log.Infof("Size %d of %d", cache.Len(), cache.MaxSize())

	cache.Clear()
	log.Infof("Cleared, size %d of %d", cache.Len(), cache.MaxSize())
}
