package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fittrack/fittrack/internal/fitness"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// DashboardCache keeps computed dashboard summaries per user.
// Entries are keyed by a per-user generation; Invalidate bumps the generation
// so every older entry of that user becomes unreachable and ages out.
type DashboardCache struct {
	cache         *freecache.Cache
	expireSeconds int

	mu          sync.Mutex
	generations map[string]uint64
}

func NewDashboardCache(sizeMB int, ttl time.Duration) *DashboardCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &DashboardCache{
		cache:         freecache.NewCache(sizeMB * megabyte),
		expireSeconds: int(ttl.Seconds()),
		generations:   make(map[string]uint64),
	}
}

func (c *DashboardCache) generation(userID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[userID]
}

func key(userID string, gen uint64, day string, chartDays int) []byte {
	return []byte(fmt.Sprintf("dashboard::%s::%d::%s::%d", userID, gen, day, chartDays))
}

// Get returns the cached summary for the user, day and chart range, along with
// the user's generation at lookup time. Pass that generation to Set so a
// summary computed before an Invalidate is never stored under the new one.
func (c *DashboardCache) Get(userID, day string, chartDays int) (*fitness.Summary, uint64, bool) {
	gen := c.generation(userID)
	raw, err := c.cache.Get(key(userID, gen, day, chartDays))
	if err != nil {
		return nil, gen, false
	}
	var summary fitness.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		log.Errorf("failed to unmarshal cached dashboard for user %s: %s", userID, err)
		return nil, gen, false
	}
	return &summary, gen, true
}

// Set stores the summary under generation gen. It is a no-op once the user
// has been invalidated past gen.
func (c *DashboardCache) Set(userID string, gen uint64, day string, chartDays int, summary *fitness.Summary) {
	if c.generation(userID) != gen {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal dashboard for user %s: %s", userID, err)
		return
	}
	if err := c.cache.Set(key(userID, gen, day, chartDays), raw, c.expireSeconds); err != nil {
		log.Debugf("dashboard cache set for user %s: %s", userID, err)
	}
}

// Invalidate drops every cached summary of the user.
func (c *DashboardCache) Invalidate(userID string) {
	c.mu.Lock()
	c.generations[userID]++
	c.mu.Unlock()
}
