package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestMemory_FreshWithinTTL(t *testing.T) {
	clock := newClock()
	m := NewMemory(10*time.Minute, 10, WithClock(clock.Now))

	m.Put("alice", "<svg/>")
	clock.Advance(9*time.Minute + 59*time.Second)

	got, ok := m.Get("alice")
	require.True(t, ok)
	assert.Equal(t, "<svg/>", got)
}

func TestMemory_StaleAfterTTL(t *testing.T) {
	clock := newClock()
	m := NewMemory(10*time.Minute, 10, WithClock(clock.Now))

	m.Put("alice", "<svg>old</svg>")
	clock.Advance(10 * time.Minute)

	_, ok := m.Get("alice")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len(), "stale entries are ignored, not deleted")

	m.Put("alice", "<svg>new</svg>")
	got, ok := m.Get("alice")
	require.True(t, ok)
	assert.Equal(t, "<svg>new</svg>", got)
	assert.Equal(t, 1, m.Len())
}

func TestMemory_Miss(t *testing.T) {
	m := NewMemory(0, 0)
	_, ok := m.Get("nobody")
	assert.False(t, ok)
}

func TestMemory_EvictsOldestInsertion(t *testing.T) {
	m := NewMemory(time.Hour, 3)

	for i := range 3 {
		m.Put(fmt.Sprintf("user%d", i), "svg")
	}
	// Re-putting user0 makes it the newest insertion.
	m.Put("user0", "svg")
	m.Put("user3", "svg")

	assert.Equal(t, 3, m.Len())
	_, ok := m.Get("user1")
	assert.False(t, ok, "user1 was the oldest insertion")
	for _, key := range []string{"user0", "user2", "user3"} {
		_, ok := m.Get(key)
		assert.True(t, ok, key)
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := NewMemory(time.Hour, 50)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", (i+j)%80)
				m.Put(key, key)
				if v, ok := m.Get(key); ok {
					assert.Equal(t, key, v)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, m.Len(), 50)
}
