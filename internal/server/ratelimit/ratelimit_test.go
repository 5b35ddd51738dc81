package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTokenBucket_Take(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(10, 1.0, now) // 10 tokens, 1 token per second

	for i := 0; i < 10; i++ {
		if allowed, _, _, _ := bucket.take(now); !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	if allowed, _, _, _ := bucket.take(now); allowed {
		t.Error("Expected 11th request to be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(10, 1.0, now)

	for i := 0; i < 10; i++ {
		bucket.take(now)
	}

	later := now.Add(1100 * time.Millisecond)
	if allowed, _, _, _ := bucket.take(later); !allowed {
		t.Error("Expected request to be allowed after refill")
	}
	if allowed, _, _, _ := bucket.take(later); allowed {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestTokenBucket_Status(t *testing.T) {
	now := time.Now()
	bucket := newTokenBucket(10, 1.0, now)

	for i := 0; i < 4; i++ {
		bucket.take(now)
	}
	_, remaining, resetTime, _ := bucket.take(now)
	if remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", remaining)
	}
	if !resetTime.Equal(now.Add(5 * time.Second)) {
		t.Errorf("Expected reset in 5s, got %v", resetTime.Sub(now))
	}
}

func TestLimiter_Allow(t *testing.T) {
	clock := newTestClock()
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}, WithClock(clock.Now))
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", info.Limit)
		}
		if info.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, info.Remaining)
		}
	}

	allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if info.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", info.Remaining)
	}
	// 10 per minute refills one token every 6s.
	if info.RetryAfter != 6*time.Second {
		t.Errorf("Expected retry after 6s, got %v", info.RetryAfter)
	}

	clock.Advance(info.RetryAfter + 100*time.Millisecond)
	if allowed, _ := limiter.Allow("127.0.0.1", "/test", "GET"); !allowed {
		t.Error("Expected request to be allowed after waiting RetryAfter")
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		if allowed, _ := limiter.Allow("10.0.0.1", "/card", "GET"); !allowed {
			t.Errorf("Expected whitelisted request %d to be allowed", i+1)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"10.0.0.2": true},
	})
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("10.0.0.2", "/card", "GET"); allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false, DefaultLimit: 1})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/card", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
		if info.Limit != 0 {
			t.Errorf("Expected limit 0 when disabled, got %d", info.Limit)
		}
	}
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Hour})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET"); !allowed {
			t.Errorf("Expected health check %d to be allowed", i+1)
		}
	}
}

func TestLimiter_CardRoutesShareBucket(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: CardEndpointConfigs(4, time.Hour, 4),
	})
	defer limiter.Stop()

	clientID := "127.0.0.1"
	paths := []string{"/card", "/api", "/card", "/api"}
	for i, path := range paths {
		allowed, info := limiter.Allow(clientID, path, "GET")
		if !allowed {
			t.Errorf("Expected request %d to %s to be allowed", i+1, path)
		}
		if info.Limit != 4 {
			t.Errorf("Expected limit 4, got %d", info.Limit)
		}
	}

	if allowed, _ := limiter.Allow(clientID, "/api", "GET"); allowed {
		t.Error("Expected /api to be denied after the shared bucket is drained via /card")
	}

	if allowed, _ := limiter.Allow("127.0.0.2", "/card", "GET"); !allowed {
		t.Error("Expected a different client to have its own bucket")
	}

	allowed, info := limiter.Allow(clientID, "/other", "GET")
	if !allowed {
		t.Error("Expected different endpoint to be allowed")
	}
	if info.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", info.Limit)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Hour,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/card", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("Expected exactly 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_Cleanup(t *testing.T) {
	clock := newTestClock()
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTimeout:   time.Hour,
	}, WithClock(clock.Now))
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		limiter.Allow(fmt.Sprintf("10.0.0.%d", i), "/card", "GET")
	}
	if limiter.Len() != 3 {
		t.Fatalf("Expected 3 buckets, got %d", limiter.Len())
	}

	clock.Advance(30 * time.Minute)
	limiter.Allow("10.0.0.0", "/card", "GET")
	clock.Advance(31 * time.Minute)
	limiter.cleanupBuckets()

	if limiter.Len() != 1 {
		t.Errorf("Expected 1 bucket after cleanup, got %d", limiter.Len())
	}
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Stop()
	limiter.Stop()
}

func TestLoadConfig_FromEnv(t *testing.T) {
	env := map[string]string{
		"RATE_LIMIT_DEFAULT_LIMIT": "50",
		"RATE_LIMIT_CARD_LIMIT":    "5",
		"RATE_LIMIT_CARD_BURST":    "2",
		"RATE_LIMIT_WHITELIST":     "10.0.0.1, 10.0.0.2",
	}
	config := loadConfig(func(key string) string { return env[key] })

	if !config.Enabled {
		t.Fatal("Expected rate limiting to be enabled by default")
	}
	if config.DefaultLimit != 50 {
		t.Errorf("Expected default limit 50, got %d", config.DefaultLimit)
	}
	if len(config.Whitelist) != 2 || !config.Whitelist["10.0.0.2"] {
		t.Errorf("Unexpected whitelist %v", config.Whitelist)
	}
	card := MatchEndpoint("/card", "GET", config.EndpointConfigs)
	if card == nil || card.Limit != 5 || card.Burst != 2 || card.Group != CardGroup {
		t.Errorf("Unexpected card endpoint config %+v", card)
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	config := loadConfig(func(key string) string {
		if key == "RATE_LIMIT_ENABLED" {
			return "false"
		}
		return ""
	})
	if config.Enabled {
		t.Error("Expected rate limiting to be disabled")
	}
}

func TestMatchEndpoint_Prefix(t *testing.T) {
	configs := []EndpointConfig{{Path: "/cards/", Method: "GET", Limit: 3}}
	if got := MatchEndpoint("/cards/alice", "GET", configs); got == nil || got.Limit != 3 {
		t.Errorf("Expected prefix match, got %+v", got)
	}
	if got := MatchEndpoint("/cards/alice", "POST", configs); got != nil {
		t.Errorf("Expected no match for other method, got %+v", got)
	}
}
