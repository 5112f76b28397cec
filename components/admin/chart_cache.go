package admin

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"
)

// RenderCache memoizes rendered chart HTML.
type RenderCache interface {
	GetOrRender(key string, render func() (string, error)) (string, error)
}

type cachedChart struct {
	html    string
	expires time.Time
}

// ChartCache is a TTL cache for chart HTML. A nil cache or a non-positive
// TTL renders every time.
type ChartCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cachedChart
	now     func() time.Time
}

// NewChartCache builds a cache with the given TTL.
func NewChartCache(ttl time.Duration) *ChartCache {
	return &ChartCache{
		ttl:     ttl,
		entries: make(map[string]cachedChart),
		now:     time.Now,
	}
}

// GetOrRender returns the cached HTML for key or renders, stores, and
// returns fresh output.
func (c *ChartCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	if c == nil || c.ttl <= 0 {
		return render()
	}
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && c.now().Before(entry.expires) {
		c.mu.Unlock()
		return entry.html, nil
	}
	c.mu.Unlock()

	html, err := render()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.entries[key] = cachedChart{html: html, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return html, nil
}

// configHash derives a stable cache-key fragment from a chart config.
func configHash(config map[string]any) string {
	if len(config) == 0 {
		return "empty"
	}
	raw, err := json.Marshal(config)
	if err != nil {
		return "invalid"
	}
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}
