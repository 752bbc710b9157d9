// Package ratelimit implements per-client token bucket rate limiting for
// the parse API. Parsing a URL can fan out to a headless browser and an
// LLM call, so /parse carries a much smaller budget than read routes.
package ratelimit

import (
	"sync"
	"time"
)

// Idle buckets older than this are evicted by the cleanup loop.
const bucketIdleTTL = time.Hour

// Decision reports the outcome of a limiter check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// bucket is a token bucket with continuous refill. Callers pass the current
// time explicitly so refill behavior stays deterministic under test.
type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	rate     float64 // tokens per second
	refilled time.Time
	lastSeen time.Time
}

func newBucket(capacity int, rate float64, now time.Time) *bucket {
	return &bucket{
		tokens:   float64(capacity),
		capacity: float64(capacity),
		rate:     rate,
		refilled: now,
		lastSeen: now,
	}
}

// take consumes one token when available. It reports whether the request may
// proceed, the whole tokens left, and when the bucket will be full again.
func (b *bucket) take(now time.Time) (ok bool, remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(b.capacity, b.tokens+now.Sub(b.refilled).Seconds()*b.rate)
	b.refilled = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	resetAt = now
	if deficit := b.capacity - b.tokens; deficit > 0 {
		resetAt = now.Add(time.Duration(deficit / b.rate * float64(time.Second)))
	}
	return ok, int(b.tokens), resetAt
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Limiter tracks one bucket per client and rule.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	policy  *Policy
	stop    chan struct{} // nil when the eviction loop is not running
}

// NewLimiter builds a limiter for the given policy. A nil policy gets the
// built-in defaults.
func NewLimiter(policy *Policy) *Limiter {
	if policy == nil {
		policy = defaultPolicy()
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		policy:  policy,
	}

	if policy.Enabled && policy.CleanupInterval > 0 {
		l.stop = make(chan struct{})
		go l.evictLoop(policy.CleanupInterval)
	}

	return l
}

// Check consumes one token from the bucket governing this client and route.
// Buckets are keyed by rule rather than raw path, so all requests matched by
// a prefix rule (e.g. DELETE /profiles/{id}) share one budget per client.
func (l *Limiter) Check(clientID, path, method string) Decision {
	if !l.policy.Enabled {
		return Decision{Allowed: true}
	}
	if _, ok := l.policy.AllowList[clientID]; ok {
		return Decision{Allowed: true}
	}
	if _, ok := l.policy.DenyList[clientID]; ok {
		return Decision{}
	}

	rule := l.policy.ruleFor(path, method)
	if rule.Limit <= 0 {
		return Decision{Allowed: true}
	}

	b := l.bucketFor(clientID+" "+method+" "+rule.Path, rule)
	ok, remaining, resetAt := b.take(time.Now())

	d := Decision{
		Allowed:   ok,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
	if !ok {
		d.RetryAfter = max(time.Until(resetAt), 0)
	}
	return d
}

func (l *Limiter) bucketFor(key string, rule Rule) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	b := newBucket(capacity, float64(rule.Limit)/rule.Window.Seconds(), time.Now())
	l.buckets[key] = b
	return b
}

func (l *Limiter) evictLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle(time.Now().Add(-bucketIdleTTL))
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops buckets whose last request predates cutoff.
func (l *Limiter) evictIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop terminates the eviction goroutine.
func (l *Limiter) Stop() {
	if l.stop != nil {
		close(l.stop)
	}
}
