package owned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CacheBadSize(t *testing.T) {
	_, err := NewSharedCache[string, tracked](0)
	assert.Equal(t, ErrInvalidCacheSize, err)
}

func Test_CacheKeepsValueAlive(t *testing.T) {
	cache, err := NewSharedCache[string, tracked](4)
	require.NoError(t, err)

	obj, drops := newTracked(1)
	s := NewShared(obj)
	require.True(t, cache.Put("a", s))
	assert.Equal(t, int32(2), s.RefCount(), "cache should hold its own reference")

	s.Release()
	assert.Equal(t, 0, *drops, "cached value should stay alive")

	got := cache.Get("a")
	require.False(t, got.IsNull())
	assert.Equal(t, obj, got.Get())
	assert.Equal(t, int32(2), got.RefCount())
	got.Release()

	cache.Remove("a")
	assert.Equal(t, 1, *drops, "removal should drop the last reference")
}

func Test_CacheEviction(t *testing.T) {
	cache, err := NewSharedCache[int, tracked](2)
	require.NoError(t, err)

	dropCounters := make([]*int, 3)
	for i := 0; i < 3; i++ {
		obj, drops := newTracked(i)
		dropCounters[i] = drops
		s := NewShared(obj)
		cache.Put(i, s)
		s.Release()
	}

	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, 1, *dropCounters[0], "oldest entry should be evicted and freed once")
	assert.Equal(t, 0, *dropCounters[1])
	assert.Equal(t, 0, *dropCounters[2])
	assert.False(t, cache.Contains(0))
	assert.True(t, cache.Contains(1))
	assert.True(t, cache.Contains(2))

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, 1, *dropCounters[1], "purge should free each resident value once")
	assert.Equal(t, 1, *dropCounters[2], "purge should free each resident value once")
}

func Test_CacheReplace(t *testing.T) {
	cache, err := NewSharedCache[string, tracked](4)
	require.NoError(t, err)

	first, firstDrops := newTracked(1)
	s1 := NewShared(first)
	cache.Put("k", s1)
	s1.Release()

	second, secondDrops := newTracked(2)
	s2 := NewShared(second)
	cache.Put("k", s2)
	s2.Release()

	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 1, *firstDrops, "replaced entry should drop its reference")

	got := cache.Get("k")
	assert.Equal(t, second, got.Get())
	got.Release()

	cache.Purge()
	assert.Equal(t, 1, *secondDrops)
}

func Test_CacheMiss(t *testing.T) {
	cache, err := NewSharedCache[string, tracked](4)
	require.NoError(t, err)

	assert.True(t, cache.Get("missing").IsNull())

	var empty Shared[tracked]
	assert.False(t, cache.Put("empty", &empty), "empty handles are not cacheable")
	assert.False(t, cache.Put("nil", nil))
	assert.Equal(t, 0, cache.Len())
}

func Test_CacheSharedTeardownOrder(t *testing.T) {
	cache, err := NewSharedCache[string, tracked](4)
	require.NoError(t, err)

	obj, drops := newTracked(9)
	s := NewShared(obj)
	cache.Put("k", s)

	// Cache entry goes first; the caller's handle still owns the value.
	cache.Remove("k")
	assert.Equal(t, 0, *drops)
	assert.Equal(t, int32(1), s.RefCount())

	s.Release()
	assert.Equal(t, 1, *drops)
}
