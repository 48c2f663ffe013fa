package sheets

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Cache is the feed cache port of the client.
//
// Get returns the cached value and whether a fresh entry exists. Put stores
// a value that expires after ttl. Invalidate drops the entry immediately.
type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte, ttl time.Duration) error
	Invalidate(key string)
}

// defaultDiskCache is shared by all clients that do not bring their own cache.
var defaultDiskCache = &DiskCache{}

// DiskCache implements Cache with one file per entry.
//
// The entry file starts with a line holding the expiry instant in unix
// nanoseconds, followed by the raw value. A stale or unreadable entry is a
// miss; Get removes stale files as it finds them.
type DiskCache struct {
	// Dir defaults to the system temp directory.
	Dir string
}

func (c *DiskCache) dir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return os.TempDir()
}

// path maps a key to its entry file.
func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir(), fmt.Sprintf("fintrack-%x", sha1.Sum([]byte(key))))
}

// Get implements Cache.
func (c *DiskCache) Get(key string) ([]byte, bool) {
	content, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	header, value, found := bytes.Cut(content, []byte("\n"))
	if !found {
		return nil, false
	}
	expiry, err := strconv.ParseInt(string(header), 10, 64)
	if err != nil {
		return nil, false
	}
	if time.Now().UnixNano() >= expiry {
		os.Remove(c.path(key))
		return nil, false
	}
	return value, true
}

// Put implements Cache.
func (c *DiskCache) Put(key string, value []byte, ttl time.Duration) error {
	f, err := os.Create(c.path(key))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "%d\n", time.Now().Add(ttl).UnixNano()); err != nil {
		f.Close()
		return err
	}
	_, err = f.Write(value)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Invalidate implements Cache.
func (c *DiskCache) Invalidate(key string) {
	os.Remove(c.path(key))
}
