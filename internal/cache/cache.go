package cache

import (
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is a time-bounded key/value store. Expired entries are never returned;
// Sweep removes them from memory.
type Store struct {
	cache *gocache.Cache
}

// New creates a Store whose entries live for ttl. Cleanup is left to Sweep so
// the owner decides when it runs.
func New(ttl time.Duration) *Store {
	return &Store{
		cache: gocache.New(ttl, 0),
	}
}

// Key builds a cache key from a ticker, a range name and a provider period.
func Key(ticker, rng, period string) string {
	return fmt.Sprintf("%s:%s:%s", strings.ToUpper(ticker), rng, period)
}

// Get returns the live value stored under key.
func (s *Store) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

// Set stores value under key for the store's TTL.
func (s *Store) Set(key string, value any) {
	if s == nil {
		return
	}
	s.cache.Set(key, value, gocache.DefaultExpiration)
}

// Sweep deletes expired entries and returns the number left.
func (s *Store) Sweep() int {
	if s == nil {
		return 0
	}
	s.cache.DeleteExpired()
	return s.cache.ItemCount()
}

// Len reports the number of entries, including expired ones not yet swept.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.cache.ItemCount()
}
