package cache

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// DefaultMaxAge is how long an entry is served without refetching.
const DefaultMaxAge = 60 * time.Second

// Tag groups cached results so a mutation can invalidate them together.
type Tag string

type Entry struct {
	Data      any
	Err       error
	UpdatedAt time.Time
	Stale     bool
	Tags      []Tag
}

// Refetcher reloads one cache key. It is registered by an active consumer.
type Refetcher func(ctx context.Context) error

type subscriber struct {
	id      uint64
	refetch Refetcher
}

// QueryCache stores query results keyed by their serialised arguments.
// It is written only by the query completion path and by invalidation.
type QueryCache struct {
	mu          sync.Mutex
	MaxAge      time.Duration
	entries     map[string]*Entry
	tags        map[Tag]map[string]struct{}
	subscribers map[string][]subscriber
	nextID      uint64
	now         func() time.Time
}

func NewQueryCache() *QueryCache {
	return &QueryCache{
		MaxAge:      DefaultMaxAge,
		entries:     make(map[string]*Entry),
		tags:        make(map[Tag]map[string]struct{}),
		subscribers: make(map[string][]subscriber),
		now:         time.Now,
	}
}

// Lookup returns a copy of the entry and whether it can be served as is.
func (c *QueryCache) Lookup(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return Entry{}, false
	}

	fresh := !entry.Stale && entry.Err == nil && c.now().Sub(entry.UpdatedAt) < c.MaxAge

	return *entry, fresh
}

// Store records the outcome of a query and indexes it under tags.
func (c *QueryCache) Store(key string, data any, err error, tags []Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if previous, ok := c.entries[key]; ok {
		c.unindex(key, previous.Tags)
	}

	entry := &Entry{
		Data:      data,
		Err:       err,
		UpdatedAt: c.now(),
		Tags:      append([]Tag(nil), tags...),
	}

	// A failed refetch keeps the last good data.
	if err != nil {
		if previous, ok := c.entries[key]; ok && previous.Err == nil {
			entry.Data = previous.Data
		}
	}

	c.entries[key] = entry

	for _, tag := range entry.Tags {
		keys, ok := c.tags[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.tags[tag] = keys
		}

		keys[key] = struct{}{}
	}
}

// Subscribe marks key as active. Invalidating any of its tags calls refetch
// until the returned cancel func is called.
func (c *QueryCache) Subscribe(key string, refetch Refetcher) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.subscribers[key] = append(c.subscribers[key], subscriber{id: id, refetch: refetch})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		subs := c.subscribers[key]
		for i, sub := range subs {
			if sub.id == id {
				c.subscribers[key] = append(subs[:i], subs[i+1:]...)
				break
			}
		}

		if len(c.subscribers[key]) == 0 {
			delete(c.subscribers, key)
		}
	}
}

func (c *QueryCache) Active(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.subscribers[key]) > 0
}

// Invalidate marks every entry carrying one of tags as stale and refetches
// the active ones in full. It returns the invalidated keys in order.
func (c *QueryCache) Invalidate(ctx context.Context, tags ...Tag) ([]string, error) {
	c.mu.Lock()

	seen := make(map[string]struct{})
	for _, tag := range tags {
		for key := range c.tags[tag] {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var refetchers []Refetcher
	for _, key := range keys {
		if entry, ok := c.entries[key]; ok {
			entry.Stale = true
		}

		for _, sub := range c.subscribers[key] {
			refetchers = append(refetchers, sub.refetch)
		}
	}

	c.mu.Unlock()

	var errs []error
	for _, refetch := range refetchers {
		if err := refetch(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return keys, errors.Join(errs...)
}

func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Reset drops every entry, tag and subscriber.
func (c *QueryCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*Entry)
	c.tags = make(map[Tag]map[string]struct{})
	c.subscribers = make(map[string][]subscriber)
}

func (c *QueryCache) unindex(key string, tags []Tag) {
	for _, tag := range tags {
		if keys, ok := c.tags[tag]; ok {
			delete(keys, key)

			if len(keys) == 0 {
				delete(c.tags, tag)
			}
		}
	}
}
