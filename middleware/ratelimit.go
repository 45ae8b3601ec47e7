// Package middleware - middleware/ratelimit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-campus-events/logger"
)

// visitor pairs a limiter with its last activity so stale entries can be
// pruned.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Throttle limits how often a single client may hit a route, keyed by client
// IP. It exists for the login and register forms: a double-clicked submit or
// a credential-stuffing loop gets a 429 page instead of a second backend
// call while the first is still pending.
type Throttle struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    rate.Limit
	burst    int
}

// NewThrottle allows one request per `every` with the given burst.
func NewThrottle(every time.Duration, burst int) *Throttle {
	return &Throttle{
		visitors: make(map[string]*visitor),
		every:    rate.Every(every),
		burst:    burst,
	}
}

// Handler is the gin middleware form of the throttle. A rejected submission
// is rendered back on the page it came from so the form is not lost.
func (t *Throttle) Handler(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.allow(c.ClientIP()) {
			logger.Warn.Printf("[Throttle] Rejecting burst submission from %s on %s", c.ClientIP(), c.Request.URL.Path)
			c.HTML(http.StatusTooManyRequests, template, gin.H{
				"Error": "Please wait a moment before trying again.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// allow consumes one token for the client, creating its limiter on first
// sight and pruning entries idle for more than ten minutes.
func (t *Throttle) allow(clientIP string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	for ip, v := range t.visitors {
		if now.Sub(v.lastSeen) > 10*time.Minute {
			delete(t.visitors, ip)
		}
	}

	v, ok := t.visitors[clientIP]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(t.every, t.burst)}
		t.visitors[clientIP] = v
	}
	v.lastSeen = now
	return v.limiter.Allow()
}
