package sheets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/adinata/fintrack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedSample = `Date,Type,Amount,Note
2025-06-01,topup,1000000,initial deposit
2025-06-02,profit,50000,
`

// memCache implements Cache in memory for tests.
type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache { return &memCache{entries: make(map[string][]byte)} }

func (c *memCache) Get(key string) ([]byte, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *memCache) Put(key string, value []byte, ttl time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *memCache) Invalidate(key string) { delete(c.entries, key) }

func TestClient_Transactions(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		io.WriteString(w, feedSample)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	client.Cache = newMemCache()

	l, err := client.Transactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	// The second read is served from the cache.
	_, err = client.Transactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	// After invalidation the read hits the network again.
	client.Invalidate()
	_, err = client.Transactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_TransactionsGviz(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, gvizSample)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	client.Cache = newMemCache()

	l, err := client.Transactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
}

func TestClient_TransactionsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	client.Cache = newMemCache()

	_, err := client.Transactions(context.Background())
	assert.Error(t, err)
}

func TestClient_Append(t *testing.T) {
	var got struct {
		Type   string      `json:"type"`
		Amount json.Number `json:"amount"`
		Note   string      `json:"note"`
	}
	received := make(chan error, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	cache := newMemCache()
	require.NoError(t, cache.Put("feed-url", []byte(feedSample), time.Minute))
	client := &Client{FeedURL: "feed-url", ScriptURL: srv.URL, Cache: cache}

	tx := fintrack.NewWithdraw(fintrack.NewDate(2025, 6, 4), 20_000, "coffee fund")
	require.NoError(t, client.Append(context.Background(), tx))

	require.NoError(t, <-received)
	assert.Equal(t, "withdraw", got.Type)
	assert.Equal(t, json.Number("-20000"), got.Amount)
	assert.Equal(t, "coffee fund", got.Note)

	// A successful append drops the cached feed.
	_, ok := cache.Get("feed-url")
	assert.False(t, ok)
}

func TestClient_AppendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "script error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cache := newMemCache()
	require.NoError(t, cache.Put("feed-url", []byte(feedSample), time.Minute))
	client := &Client{FeedURL: "feed-url", ScriptURL: srv.URL, Cache: cache}

	err := client.Append(context.Background(), fintrack.NewProfit(fintrack.Date{}, 1000, ""))
	assert.Error(t, err)

	// A failed append keeps the cached feed.
	_, ok := cache.Get("feed-url")
	assert.True(t, ok)
}
