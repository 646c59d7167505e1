package middleware

import (
	"sync"
	"time"
)

// FailureLimiter counts authentication failures per key over a fixed window.
type FailureLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*failureBucket
}

type failureBucket struct {
	count     int
	windowEnd time.Time
}

func NewFailureLimiter(limit int, window time.Duration) *FailureLimiter {
	return &FailureLimiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*failureBucket),
	}
}

// Blocked reports whether key has reached the failure limit inside the
// current window.
func (l *FailureLimiter) Blocked(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	bucket, ok := l.buckets[key]
	if !ok || time.Now().After(bucket.windowEnd) {
		return false
	}
	return bucket.count >= l.limit
}

// Record registers one failed attempt for key.
func (l *FailureLimiter) Record(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	bucket, ok := l.buckets[key]
	if !ok || now.After(bucket.windowEnd) {
		l.buckets[key] = &failureBucket{count: 1, windowEnd: now.Add(l.window)}
		return
	}
	bucket.count++
}
