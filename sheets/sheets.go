// Package sheets reads and writes the transaction store backed by a Google
// Sheets spreadsheet.
//
// Reads go through the sheet's published feed (CSV, or the gviz JSON
// endpoint, auto-detected); writes go through the Apps Script web app bound
// to the same spreadsheet. The published feed lags writes, so the client
// keeps a short-lived cached copy and drops it after each successful append.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/adinata/fintrack"
)

// DefaultTTL matches the republish cadence of the feed.
const DefaultTTL = 60 * time.Second

// Client is the remote transaction store of one spreadsheet.
//
// The zero value is not usable; FeedURL is required for reads and ScriptURL
// for writes. The other fields have working defaults.
type Client struct {
	// FeedURL is the published feed of the transactions tab.
	FeedURL string
	// ScriptURL is the Apps Script web app receiving new transactions.
	ScriptURL string

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Cache holds feed snapshots between reads. Defaults to a DiskCache
	// in the system temp directory.
	Cache Cache
	// TTL bounds the age of a cached feed. Zero means DefaultTTL.
	TTL time.Duration
}

// NewClient creates a store client for the given published feed and web app.
func NewClient(feedURL, scriptURL string) *Client {
	return &Client{FeedURL: feedURL, ScriptURL: scriptURL}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) feedCache() Cache {
	if c.Cache != nil {
		return c.Cache
	}
	return defaultDiskCache
}

func (c *Client) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return DefaultTTL
}

// Transactions returns the current snapshot of the store.
//
// It serves from the cache when a fresh copy exists, otherwise it fetches
// the published feed and caches the raw body. The snapshot keeps the feed's
// row order.
func (c *Client) Transactions(ctx context.Context) (*fintrack.Ledger, error) {
	body, ok := c.feedCache().Get(c.FeedURL)
	if !ok {
		var err error
		body, err = c.fetchFeed(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.feedCache().Put(c.FeedURL, body, c.ttl()); err != nil {
			log.Printf("cache write err (ignored): %v", err)
		}
	}
	return decodeBody(body)
}

// Append submits one transaction to the web app and drops the cached feed
// so the next read sees the write as soon as the sheet republishes.
func (c *Client) Append(ctx context.Context, tx fintrack.Transaction) error {
	// The web app contract: a JSON object, amount as a plain number.
	payload := struct {
		Type   string      `json:"type"`
		Amount json.Number `json:"amount"`
		Note   string      `json:"note"`
	}{
		Type:   tx.Kind.String(),
		Amount: json.Number(tx.Amount.String()),
		Note:   tx.Note,
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ScriptURL, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	// The script redirects to a result page; the final status is what counts.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot save transaction: %v", resp.Status)
	}

	c.Invalidate()
	return nil
}

// Invalidate drops the cached copy of the feed, forcing the next read to
// hit the network.
func (c *Client) Invalidate() {
	c.feedCache().Invalidate(c.FeedURL)
}

// fetchFeed downloads the published feed body.
func (c *Client) fetchFeed(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.FeedURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// decodeBody picks the feed dialect: the gviz JSONP wrapper when present,
// plain CSV otherwise.
func decodeBody(body []byte) (*fintrack.Ledger, error) {
	if isGviz(body) {
		return decodeGviz(body)
	}
	return fintrack.DecodeFeed(bytes.NewReader(body))
}
