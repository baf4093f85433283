package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fittrack/fittrack/internal/fitness"
	"github.com/fittrack/fittrack/internal/storage"
)

// recordingCache is an in-memory SummaryCache that remembers invalidations.
type recordingCache struct {
	mu          sync.Mutex
	entries     map[string]*fitness.Summary
	generations map[string]uint64
	invalidated []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{
		entries:     make(map[string]*fitness.Summary),
		generations: make(map[string]uint64),
	}
}

func cacheKey(userID, day string, chartDays int) string {
	return fmt.Sprintf("%s|%s|%d", userID, day, chartDays)
}

func (c *recordingCache) Get(userID, day string, chartDays int) (*fitness.Summary, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[cacheKey(userID, day, chartDays)]
	return s, c.generations[userID], ok
}

func (c *recordingCache) Set(userID string, gen uint64, day string, chartDays int, summary *fitness.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[userID] != gen {
		return
	}
	c.entries[cacheKey(userID, day, chartDays)] = summary
}

func (c *recordingCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[userID]++
	for k := range c.entries {
		if strings.HasPrefix(k, userID+"|") {
			delete(c.entries, k)
		}
	}
	c.invalidated = append(c.invalidated, userID)
}

// memStorage is an in-memory storage.FileStorage.
type memStorage struct {
	objects    map[string][]byte
	putErr     error
	presignErr error
	deleted    []string
}

var _ storage.FileStorage = (*memStorage)(nil)

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

func (m *memStorage) PutObject(_ context.Context, key, _ string, body []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[key] = body
	return nil
}

func (m *memStorage) GeneratePresignedDownloadURL(_ context.Context, key string, expires time.Duration) (string, error) {
	if m.presignErr != nil {
		return "", m.presignErr
	}
	return fmt.Sprintf("https://storage.test/%s?expires=%d", key, int(expires.Seconds())), nil
}

func (m *memStorage) DeleteObject(_ context.Context, key string) error {
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}
