package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/charmbracelet/ssh"
)

func TestRateLimitMiddlewareThrottlesByIP(t *testing.T) {
	middleware := RateLimitMiddleware(60, 2)
	called := 0
	handler := middleware(func(ssh.Session) { called++ })

	session := newFakeSession(context.Background(), "203.0.113.10")
	handler(session)
	handler(session)
	handler(session)

	if called != 2 {
		t.Fatalf("handler calls = %d, want 2", called)
	}
	if w := session.written(); len(w) != 1 || w[0] != "rate limit exceeded\n" {
		t.Fatalf("writes = %#v", w)
	}
}

func TestRateLimitMiddlewareIsolatedPerIP(t *testing.T) {
	middleware := RateLimitMiddleware(60, 1)
	called := 0
	handler := middleware(func(ssh.Session) { called++ })

	a := newFakeSession(context.Background(), "203.0.113.10")
	b := newFakeSession(context.Background(), "203.0.113.11")

	handler(a)
	handler(a)
	handler(b)

	if called != 2 {
		t.Fatalf("handler calls = %d, want 2", called)
	}
	if len(a.written()) != 1 {
		t.Fatalf("writes for session a = %#v, want one throttle write", a.written())
	}
	if len(b.written()) != 0 {
		t.Fatalf("writes for session b = %#v, want none", b.written())
	}
}

func TestRateLimiterRefills(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newRateLimiter(60, 1, func() time.Time { return now })

	if !l.allow("198.51.100.1") {
		t.Fatal("first connection should pass")
	}
	if l.allow("198.51.100.1") {
		t.Fatal("second connection within the same second should be throttled")
	}

	now = now.Add(time.Second)
	if !l.allow("198.51.100.1") {
		t.Fatal("bucket should refill one token per second at 60/min")
	}
}

func TestRateLimiterSweepsIdleBuckets(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newRateLimiter(60, 1, func() time.Time { return now })
	for i := 0; i < maxTrackedIPs; i++ {
		l.allow(net.IPv4(10, byte(i>>16), byte(i>>8), byte(i)).String())
	}

	now = now.Add(time.Minute)
	l.allow("198.51.100.1")
	if got := len(l.buckets); got != 1 {
		t.Fatalf("tracked buckets = %d, want 1 after sweep", got)
	}
}

func TestRemoteIPFallbacks(t *testing.T) {
	session := newFakeSession(context.Background(), "")
	if got := remoteIP(session); got != "unknown" {
		t.Fatalf("remoteIP(nil) = %q, want unknown", got)
	}

	session.remote = testAddr("opaque")
	if got := remoteIP(session); got != "opaque" {
		t.Fatalf("remoteIP(opaque) = %q, want opaque", got)
	}
}

type testAddr string

func (a testAddr) Network() string { return "test" }
func (a testAddr) String() string  { return string(a) }
