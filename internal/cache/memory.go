package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"titleguard/internal/heuristics"
)

// Memory is an in-process cache with per-entry expiry.
type Memory struct {
	store *gocache.Cache
}

var _ ResultCache = (*Memory)(nil)

// NewMemory creates a cache whose entries live for ttl. A non-positive ttl
// keeps entries until Flush.
func NewMemory(ttl time.Duration) *Memory {
	expiry, cleanup := ttl, ttl*2
	if ttl <= 0 {
		expiry, cleanup = gocache.NoExpiration, 0
	}
	return &Memory{store: gocache.New(expiry, cleanup)}
}

func (m *Memory) Get(_ context.Context, title string) (heuristics.Result, bool, error) {
	v, ok := m.store.Get(title)
	if !ok {
		return heuristics.Result{}, false, nil
	}
	res, ok := v.(heuristics.Result)
	return res, ok, nil
}

func (m *Memory) Set(_ context.Context, title string, res heuristics.Result) error {
	m.store.Set(title, res, gocache.DefaultExpiration)
	return nil
}

// Len is the number of live entries.
func (m *Memory) Len() int {
	return m.store.ItemCount()
}

// Flush drops every entry.
func (m *Memory) Flush() {
	m.store.Flush()
}
