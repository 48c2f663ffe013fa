package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskCache(t *testing.T) {
	cache := &DiskCache{Dir: t.TempDir()}

	_, ok := cache.Get("feed")
	assert.False(t, ok, "fresh cache must miss")

	require.NoError(t, cache.Put("feed", []byte(feedSample), time.Minute))
	got, ok := cache.Get("feed")
	require.True(t, ok)
	assert.Equal(t, []byte(feedSample), got)

	cache.Invalidate("feed")
	_, ok = cache.Get("feed")
	assert.False(t, ok, "invalidated entry must miss")
}

func TestDiskCache_Expiry(t *testing.T) {
	cache := &DiskCache{Dir: t.TempDir()}

	// A ttl in the past expires the entry immediately, no sleeping needed.
	require.NoError(t, cache.Put("feed", []byte("stale"), -time.Second))
	_, ok := cache.Get("feed")
	assert.False(t, ok, "expired entry must miss")
}

func TestDiskCache_ValueKeepsNewlines(t *testing.T) {
	cache := &DiskCache{Dir: t.TempDir()}

	value := []byte("Date,Type,Amount,Note\n2025-06-01,topup,1000000,x\n")
	require.NoError(t, cache.Put("feed", value, time.Minute))
	got, ok := cache.Get("feed")
	require.True(t, ok)
	assert.Equal(t, value, got)
}

func TestDiskCache_DistinctKeys(t *testing.T) {
	cache := &DiskCache{Dir: t.TempDir()}

	require.NoError(t, cache.Put("a", []byte("A"), time.Minute))
	require.NoError(t, cache.Put("b", []byte("B"), time.Minute))

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("A"), got)
}
