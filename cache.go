package owned

import (
	"errors"

	"github.com/hashicorp/golang-lru/simplelru"
)

var ErrInvalidCacheSize = errors.New("Cache size must be positive")

// SharedCache keeps an LRU of shared values, holding one owning reference
// per resident entry. Eviction, removal and purging drop that reference,
// so a cached value lives at least as long as its key stays resident and
// no longer than the rest of its owners keep it.
type SharedCache[K comparable, T any] struct {
	lru *simplelru.LRU
}

func NewSharedCache[K comparable, T any](size int) (*SharedCache[K, T], error) {
	if size <= 0 {
		return nil, ErrInvalidCacheSize
	}
	c := &SharedCache[K, T]{}
	lru, err := simplelru.NewLRU(size, c.onEvict)
	if err != nil {
		return nil, err
	}
	c.lru = lru
	return c, nil
}

func (c *SharedCache[K, T]) onEvict(key interface{}, value interface{}) {
	value.(*Shared[T]).Release()
}

// Put stores a reference to what s owns under key. The cache clones its
// own handle; the caller keeps theirs. Returns true when the insert
// evicted the oldest entry.
func (c *SharedCache[K, T]) Put(key K, s *Shared[T]) bool {
	if s == nil || s.IsNull() {
		return false
	}
	// Add overwrites a resident key without running the evict callback,
	// which would leak the old reference. Drop it explicitly first.
	c.lru.Remove(key)
	return c.lru.Add(key, s.Clone())
}

// Get returns a fresh owning handle over the cached value, or an empty
// handle on a miss.
func (c *SharedCache[K, T]) Get(key K) *Shared[T] {
	if v, ok := c.lru.Get(key); ok {
		return v.(*Shared[T]).Clone()
	}
	return &Shared[T]{}
}

func (c *SharedCache[K, T]) Contains(key K) bool {
	return c.lru.Contains(key)
}

// Remove drops the entry for key and the reference held for it.
func (c *SharedCache[K, T]) Remove(key K) bool {
	return c.lru.Remove(key)
}

// Purge drops every entry and every reference the cache holds.
func (c *SharedCache[K, T]) Purge() {
	c.lru.Purge()
}

func (c *SharedCache[K, T]) Len() int {
	return c.lru.Len()
}
