// Package cache memoizes rendered cards per profile.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Default policy values.
const (
	DefaultTTL      = 10 * time.Minute
	DefaultCapacity = 1024
)

// Entry is one rendered card. Entries are immutable once stored.
type Entry struct {
	Key       string
	Markup    string
	CreatedAt time.Time
}

// Store holds rendered markup by key. Implementations decide freshness.
type Store interface {
	// Get returns the markup for key if a fresh entry exists.
	Get(key string) (string, bool)
	// Put stores markup for key, replacing any existing entry.
	Put(key, markup string)
}

// Memory is an in-process Store with TTL freshness and a capacity bound.
// When full, the entry inserted longest ago is evicted.
// It is safe for concurrent use.
type Memory struct {
	ttl      time.Duration
	capacity int
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]*list.Element // values are *Entry
	order   *list.List               // front = oldest insertion
}

// Option configures a Memory store.
type Option func(*Memory)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates a store. Non-positive ttl or capacity use the defaults.
func NewMemory(ttl time.Duration, capacity int, opts ...Option) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	m := &Memory{
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the markup if an entry younger than the TTL exists.
// Stale entries are left in place; the next Put replaces them.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[key]
	if !ok {
		return "", false
	}
	entry := el.Value.(*Entry)
	if m.now().Sub(entry.CreatedAt) >= m.ttl {
		return "", false
	}
	return entry.Markup, true
}

// Put stores markup under key with the current time.
func (m *Memory) Put(key, markup string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.entries[key]; ok {
		m.order.Remove(el)
		delete(m.entries, key)
	}

	for m.order.Len() >= m.capacity {
		oldest := m.order.Front()
		m.order.Remove(oldest)
		delete(m.entries, oldest.Value.(*Entry).Key)
	}

	m.entries[key] = m.order.PushBack(&Entry{
		Key:       key,
		Markup:    markup,
		CreatedAt: m.now(),
	})
}

// Len returns the number of stored entries, fresh or stale.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}
