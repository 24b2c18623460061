package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"revana/cache"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestSetThenGetWithinTTL(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	c := cache.NewWithClock[string](5*time.Minute, clk.Now)

	c.Set(cache.SearchPrefix+"lofi", "payload")

	got, ok := c.Get(cache.SearchPrefix + "lofi")
	assert.True(t, ok)
	assert.Equal(t, "payload", got)
}

func TestGetAfterTTLIsMiss(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	c := cache.NewWithClock[int](5*time.Minute, clk.Now)

	c.Set("k", 42)
	clk.Advance(5 * time.Minute)

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry should be evicted on read")
}

func TestSetOverwritesAndRestartsWindow(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	c := cache.NewWithClock[int](time.Minute, clk.Now)

	c.Set("k", 1)
	clk.Advance(40 * time.Second)
	c.Set("k", 2)
	clk.Advance(40 * time.Second)

	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestMissOnUnknownKey(t *testing.T) {
	c := cache.New[string](time.Minute)

	_, ok := c.Get("absent")
	assert.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	c := cache.New[int](time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set("shared", i)
			c.Get("shared")
		}(i)
	}
	wg.Wait()

	_, ok := c.Get("shared")
	assert.True(t, ok)
}
