package dedupe

import (
	"crypto/sha1"
	"encoding/hex"
	"sync"
	"time"
)

// Key derives a stable dedupe key from an article's title and description.
func Key(title, description string) string {
	sum := sha1.Sum([]byte(title + "|" + description))
	return hex.EncodeToString(sum[:])
}

type record struct {
	key  string
	seen time.Time
}

// Cache remembers recently observed article keys so that overlapping
// sources (listing page plus feed) contribute each article once.
type Cache struct {
	mu       sync.Mutex
	seen     map[string]time.Time
	queue    []record
	capacity int
	ttl      time.Duration
}

// NewCache creates a cache bounded by capacity and ttl.
func NewCache(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{
		seen:     make(map[string]time.Time, capacity),
		queue:    make([]record, 0, capacity),
		capacity: capacity,
		ttl:      ttl,
	}
}

// Seen reports whether the key was observed inside the ttl window and, if
// not, records it.
func (c *Cache) Seen(key string) bool {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if ts, ok := c.seen[key]; ok && now.Sub(ts) <= c.ttl {
		return true
	}

	c.seen[key] = now
	c.queue = append(c.queue, record{key: key, seen: now})
	c.evict(now)
	return false
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

func (c *Cache) evict(now time.Time) {
	cutoff := now.Add(-c.ttl)

	for len(c.queue) > 0 && (len(c.seen) > c.capacity || c.queue[0].seen.Before(cutoff)) {
		oldest := c.queue[0]
		c.queue = c.queue[1:]

		// A newer record for the same key may exist; only drop exact matches.
		if ts, ok := c.seen[oldest.key]; ok && ts == oldest.seen {
			delete(c.seen, oldest.key)
		}
	}
}
