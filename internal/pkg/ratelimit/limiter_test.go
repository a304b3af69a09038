package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowUpToLimit(t *testing.T) {
	l := New(10, 60*time.Second)
	now := time.Now()

	for i := 0; i < 10; i++ {
		allowed, retryAfter := l.Allow("tenant-a", now.Add(time.Duration(i)*time.Second))
		assert.True(t, allowed, "request %d should be admitted", i)
		assert.Equal(t, 0, retryAfter)
	}
}

func TestRejectOverLimitWithRetryAfter(t *testing.T) {
	l := New(10, 60*time.Second)
	now := time.Now()

	for i := 0; i < 10; i++ {
		l.Allow("tenant-a", now)
	}

	allowed, retryAfter := l.Allow("tenant-a", now.Add(5*time.Second))
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, 0)
	// Oldest stamp is at t=0, window is 60s, so it frees up 55s after t=5.
	assert.Equal(t, 55, retryAfter)
}

func TestAdmitAfterWindowPasses(t *testing.T) {
	l := New(10, 60*time.Second)
	now := time.Now()

	for i := 0; i < 10; i++ {
		l.Allow("tenant-a", now)
	}

	allowed, _ := l.Allow("tenant-a", now.Add(61*time.Second))
	assert.True(t, allowed)
}

func TestTenantsAreIsolated(t *testing.T) {
	l := New(1, 60*time.Second)
	now := time.Now()

	allowed, _ := l.Allow("tenant-a", now)
	assert.True(t, allowed)

	allowed, _ = l.Allow("tenant-a", now)
	assert.False(t, allowed)

	allowed, _ = l.Allow("tenant-b", now)
	assert.True(t, allowed, "tenant-b must not be affected by tenant-a's window")
}

func TestConcurrentSameTenant(t *testing.T) {
	l := New(50, 60*time.Second)
	now := time.Now()

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("tenant-a", now); ok {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, admitted)
}
