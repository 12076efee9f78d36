package tui

import (
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig configures the per-IP session limiter.
type RateLimitConfig struct {
	SessionsPerMinute float64       // Sessions allowed per minute per IP
	Burst             int           // Maximum burst size
	CleanupInterval   time.Duration // How often to forget idle addresses
}

// DefaultRateLimitConfig allows a handful of reconnects per minute.
var DefaultRateLimitConfig = RateLimitConfig{
	SessionsPerMinute: 6,
	Burst:             3,
	CleanupInterval:   5 * time.Minute,
}

type ipLimiterEntry struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// IPRateLimiter limits new SSH sessions per remote IP.
type IPRateLimiter struct {
	limiters sync.Map // map[string]*ipLimiterEntry
	config   RateLimitConfig
	now      func() time.Time
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewIPRateLimiter creates a limiter and starts its cleanup loop.
// Call Stop to end the loop.
func NewIPRateLimiter(cfg RateLimitConfig) *IPRateLimiter {
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultRateLimitConfig.CleanupInterval
	}
	rl := &IPRateLimiter{
		config:   cfg,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop ends the cleanup loop. Safe to call more than once.
func (rl *IPRateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopChan)
	})
}

func (rl *IPRateLimiter) entry(ip string) *ipLimiterEntry {
	if e, ok := rl.limiters.Load(ip); ok {
		return e.(*ipLimiterEntry)
	}
	limit := rate.Limit(rl.config.SessionsPerMinute / 60)
	fresh := &ipLimiterEntry{limiter: rate.NewLimiter(limit, rl.config.Burst)}
	actual, _ := rl.limiters.LoadOrStore(ip, fresh)
	return actual.(*ipLimiterEntry)
}

// Allow reports whether a new session from ip may start.
func (rl *IPRateLimiter) Allow(ip string) bool {
	e := rl.entry(ip)
	now := rl.now()

	e.mu.Lock()
	e.lastSeen = now
	e.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

func (rl *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopChan:
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

// cleanup forgets addresses idle for two cleanup intervals.
func (rl *IPRateLimiter) cleanup() {
	cutoff := rl.now().Add(-rl.config.CleanupInterval * 2)

	rl.limiters.Range(func(key, value any) bool {
		e := value.(*ipLimiterEntry)
		e.mu.Lock()
		stale := e.lastSeen.Before(cutoff)
		e.mu.Unlock()
		if stale {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// remoteIP strips the port from an SSH remote address.
func remoteIP(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
