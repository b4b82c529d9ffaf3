// Package cache implements the explicit aggregate-news cache. Entries are
// content-addressed by (userID, sorted ticker set) and removed by an explicit
// Invalidate call after every successful subscription mutation. Each user
// also carries a generation counter used to discard in-flight aggregations
// that started against a ticker set that has since changed.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
)

type entry struct {
	articles  []domain.NewsArticle
	expiresAt time.Time
}

type NewsCache struct {
	mu          sync.RWMutex
	entries     map[string]entry
	generations map[uuid.UUID]uint64
	ttl         time.Duration
	now         func() time.Time
}

func NewNewsCache(ttl time.Duration) *NewsCache {
	return &NewsCache{
		entries:     make(map[string]entry),
		generations: make(map[uuid.UUID]uint64),
		ttl:         ttl,
		now:         time.Now,
	}
}

// Key builds the content-addressed cache key for a user's ticker set.
// Ticker order does not matter: {A,B} and {B,A} address the same entry.
func Key(userID uuid.UUID, tickers []string) string {
	sorted := make([]string, len(tickers))
	copy(sorted, tickers)
	sort.Strings(sorted)
	return userID.String() + "|" + strings.Join(sorted, ",")
}

func (c *NewsCache) Get(key string) ([]domain.NewsArticle, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.articles, true
}

func (c *NewsCache) Set(key string, articles []domain.NewsArticle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{articles: articles, expiresAt: c.now().Add(c.ttl)}
}

// Generation returns the user's current subscription generation.
func (c *NewsCache) Generation(userID uuid.UUID) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generations[userID]
}

// Invalidate bumps the user's generation and drops every cached aggregate
// belonging to that user. Called after each successful subscribe or
// unsubscribe.
func (c *NewsCache) Invalidate(userID uuid.UUID) {
	prefix := userID.String() + "|"

	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[userID]++
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}
