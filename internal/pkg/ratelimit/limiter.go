// Package ratelimit implements per-tenant sliding-window admission control
// for outbound send operations.
//
// State is in-memory and process-local: it resets on restart and is not
// shared across horizontally scaled instances.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Limiter admits at most max requests per tenant in any trailing window.
type Limiter struct {
	max    int
	window time.Duration

	mu      sync.RWMutex
	tenants map[string]*tenantWindow
}

// tenantWindow serializes admission decisions for a single tenant. Different
// tenants never contend on the same lock.
type tenantWindow struct {
	mu     sync.Mutex
	stamps []time.Time
}

// New creates a limiter admitting max requests per window per tenant.
func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:     max,
		window:  window,
		tenants: make(map[string]*tenantWindow),
	}
}

// Allow checks whether a request for the tenant is admitted at time now.
// When rejected, retryAfter is the number of seconds until the oldest
// retained timestamp exits the window.
func (l *Limiter) Allow(tenantID string, now time.Time) (allowed bool, retryAfter int) {
	w := l.getOrCreate(tenantID)

	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := now.Add(-l.window)

	// Trim timestamps that left the window. Stamps are appended in order,
	// so the retained suffix stays ordered.
	kept := w.stamps[:0]
	for _, t := range w.stamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.stamps = kept

	if len(w.stamps) >= l.max {
		oldest := w.stamps[0]
		wait := l.window - now.Sub(oldest)
		retryAfter = int(math.Ceil(wait.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		return false, retryAfter
	}

	w.stamps = append(w.stamps, now)
	return true, 0
}

func (l *Limiter) getOrCreate(tenantID string) *tenantWindow {
	l.mu.RLock()
	w, ok := l.tenants[tenantID]
	l.mu.RUnlock()
	if ok {
		return w
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if w, ok = l.tenants[tenantID]; ok {
		return w
	}
	w = &tenantWindow{}
	l.tenants[tenantID] = w
	return w
}
