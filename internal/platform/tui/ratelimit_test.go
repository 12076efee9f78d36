package tui

import (
	"net"
	"testing"
	"time"
)

func TestIPRateLimiterBurst(t *testing.T) {
	rl := NewIPRateLimiter(RateLimitConfig{SessionsPerMinute: 1, Burst: 2, CleanupInterval: time.Hour})
	defer rl.Stop()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return base }

	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.1") {
		t.Fatal("burst sessions should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("third session inside the burst window should be rejected")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("other addresses have their own allowance")
	}

	// One token refills per minute.
	rl.now = func() time.Time { return base.Add(61 * time.Second) }
	if !rl.Allow("10.0.0.1") {
		t.Error("session should be allowed after the refill")
	}
}

func TestIPRateLimiterCleanup(t *testing.T) {
	rl := NewIPRateLimiter(RateLimitConfig{SessionsPerMinute: 60, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return base }
	rl.Allow("10.0.0.1")

	rl.now = func() time.Time { return base.Add(30 * time.Second) }
	rl.Allow("10.0.0.2")

	rl.now = func() time.Time { return base.Add(150 * time.Second) }
	rl.cleanup()

	if _, ok := rl.limiters.Load("10.0.0.1"); ok {
		t.Error("idle address should be forgotten")
	}
	if _, ok := rl.limiters.Load("10.0.0.2"); !ok {
		t.Error("recent address should be kept")
	}
}

func TestRemoteIP(t *testing.T) {
	tests := []struct {
		addr net.Addr
		want string
	}{
		{&net.TCPAddr{IP: net.ParseIP("192.168.1.9"), Port: 50022}, "192.168.1.9"},
		{&net.TCPAddr{IP: net.ParseIP("::1"), Port: 22}, "::1"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := remoteIP(tt.addr); got != tt.want {
			t.Errorf("remoteIP(%v) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}
