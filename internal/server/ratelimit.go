package server

import (
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
)

// maxTrackedIPs bounds the bucket map before idle buckets are swept.
const maxTrackedIPs = 4096

type ipBucket struct {
	tokens float64
	last   time.Time
}

type rateLimiter struct {
	mu            sync.Mutex
	buckets       map[string]ipBucket
	ratePerSecond float64
	burst         float64
	now           func() time.Time
}

func newRateLimiter(limitPerMinute, burst int, now func() time.Time) *rateLimiter {
	if limitPerMinute <= 0 {
		limitPerMinute = 30
	}
	if burst <= 0 {
		burst = 10
	}
	return &rateLimiter{
		buckets:       make(map[string]ipBucket),
		ratePerSecond: float64(limitPerMinute) / 60.0,
		burst:         float64(burst),
		now:           now,
	}
}

// RateLimitMiddleware enforces per-IP connection limits using a token bucket.
func RateLimitMiddleware(limitPerMinute, burst int) wish.Middleware {
	return newRateLimiter(limitPerMinute, burst, time.Now).middleware()
}

func (l *rateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().UTC()
	if len(l.buckets) >= maxTrackedIPs {
		l.sweep(now)
	}

	bucket, ok := l.buckets[ip]
	if !ok {
		bucket = ipBucket{tokens: l.burst, last: now}
	}
	bucket = l.refill(bucket, now)

	if bucket.tokens < 1 {
		l.buckets[ip] = bucket
		return false
	}

	bucket.tokens--
	l.buckets[ip] = bucket
	return true
}

func (l *rateLimiter) refill(bucket ipBucket, now time.Time) ipBucket {
	elapsed := now.Sub(bucket.last).Seconds()
	if elapsed > 0 {
		bucket.tokens = min(bucket.tokens+elapsed*l.ratePerSecond, l.burst)
		bucket.last = now
	}
	return bucket
}

// sweep drops buckets that have refilled completely; they behave exactly
// like a missing bucket.
func (l *rateLimiter) sweep(now time.Time) {
	for ip, bucket := range l.buckets {
		if l.refill(bucket, now).tokens >= l.burst {
			delete(l.buckets, ip)
		}
	}
}

func (l *rateLimiter) middleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			ip := remoteIP(s)
			if !l.allow(ip) {
				log.Warn("rate_limit_throttled", "remote_ip", ip)
				_, _ = s.Write([]byte("rate limit exceeded\n"))
				return
			}
			next(s)
		}
	}
}

func remoteIP(s ssh.Session) string {
	remote := s.RemoteAddr()
	if remote == nil {
		return "unknown"
	}

	host, _, err := net.SplitHostPort(remote.String())
	if err != nil {
		return remote.String()
	}

	if host == "" {
		return "unknown"
	}
	return host
}
