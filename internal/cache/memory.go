package cache

import (
	"context"
	"sync"
	"time"

	"github.com/varun4505/news-parser-ai/internal/model"
)

const (
	DefaultTTL        = 300 * time.Second
	DefaultMaxEntries = 1024
)

type memoryEntry struct {
	articles []model.Article
	storedAt time.Time
}

// Memory is a mutex-guarded in-process TTL store. Expired entries are swept on
// every write and double-checked on read, so a stale entry is never returned
// even between sweeps. Entry count is bounded by evicting the oldest entries.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Memory{
		entries:    make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]model.Article, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if m.now().Sub(entry.storedAt) > m.ttl {
		delete(m.entries, key)
		return nil, false, nil
	}
	return entry.articles, true, nil
}

func (m *Memory) Put(_ context.Context, key string, articles []model.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep()
	if len(m.entries) >= m.maxEntries {
		m.evictOldest()
	}
	m.entries[key] = memoryEntry{articles: articles, storedAt: m.now()}
	return nil
}

// sweep removes all expired entries. Callers must hold the lock.
func (m *Memory) sweep() {
	now := m.now()
	for key, entry := range m.entries {
		if now.Sub(entry.storedAt) > m.ttl {
			delete(m.entries, key)
		}
	}
}

func (m *Memory) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	for key, entry := range m.entries {
		if oldestKey == "" || entry.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.storedAt
		}
	}
	if oldestKey != "" {
		delete(m.entries, oldestKey)
	}
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
