package limits

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
)

// ConnectionLimiter caps concurrent chat websocket connections per client IP.
type ConnectionLimiter struct {
	maxPerIP    int
	connections sync.Map // map[string]*atomic.Int32
	blocked     atomic.Int64
}

// NewConnectionLimiter creates a new connection limiter.
func NewConnectionLimiter(maxPerIP int) *ConnectionLimiter {
	if maxPerIP <= 0 {
		maxPerIP = 4
	}
	return &ConnectionLimiter{maxPerIP: maxPerIP}
}

// Acquire attempts to take a connection slot for an IP.
func (cl *ConnectionLimiter) Acquire(ip string) bool {
	counter, _ := cl.connections.LoadOrStore(ip, &atomic.Int32{})
	c := counter.(*atomic.Int32)

	for {
		cur := c.Load()
		if int(cur) >= cl.maxPerIP {
			cl.blocked.Add(1)
			return false
		}
		if c.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// Release gives a connection slot back.
func (cl *ConnectionLimiter) Release(ip string) {
	if counter, ok := cl.connections.Load(ip); ok {
		c := counter.(*atomic.Int32)
		if c.Add(-1) <= 0 {
			cl.connections.Delete(ip)
		}
	}
}

// Count returns the current connection count for an IP.
func (cl *ConnectionLimiter) Count(ip string) int {
	if counter, ok := cl.connections.Load(ip); ok {
		return int(counter.(*atomic.Int32).Load())
	}
	return 0
}

// Blocked returns how many connections were refused.
func (cl *ConnectionLimiter) Blocked() int64 {
	return cl.blocked.Load()
}

// ClientIP extracts the client IP from an HTTP request.
// Checks X-Forwarded-For and X-Real-IP headers, falling back to RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
