// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxAttempts    = 5
	defaultWindowDuration = 1 * time.Minute
)

// window counts the requests one client made since start.
type window struct {
	hits  int
	start time.Time
}

// RateLimiter throttles a route per client IP using fixed windows.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	max     int
	length  time.Duration
	code    string
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing five requests a minute.
// code is reported in the error body when a client is throttled.
func NewRateLimiter(code string) *RateLimiter {
	return NewRateLimiterWithConfig(code, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a limiter allowing max requests per length.
// A non-positive max disables limiting.
func NewRateLimiterWithConfig(code string, max int, length time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		max:     max,
		length:  length,
		code:    code,
		now:     time.Now,
	}
}

// Middleware rejects throttled clients with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.max <= 0 {
			c.Next()
			return
		}

		client := c.ClientIP()
		if client == "" {
			client = c.Request.RemoteAddr
		}

		wait, ok := rl.take(client)
		if !ok {
			seconds := int(math.Ceil(wait.Seconds()))
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: fmt.Sprintf("Too many requests. Try again in %d seconds.", seconds),
				Code:  rl.code,
			})
			return
		}

		c.Next()
	}
}

// take records a hit for client. When the window is exhausted it returns
// false and how long until the window reopens.
func (rl *RateLimiter) take(client string) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[client]
	if !ok || !now.Before(w.start.Add(rl.length)) {
		rl.windows[client] = &window{hits: 1, start: now}
		return 0, true
	}

	if w.hits < rl.max {
		w.hits++
		return 0, true
	}
	return w.start.Add(rl.length).Sub(now), false
}

// Reset forgets every client.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*window)
}

// Cleanup drops windows that have already closed.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for client, w := range rl.windows {
		if !now.Before(w.start.Add(rl.length)) {
			delete(rl.windows, client)
		}
	}
}

// RunCleanup calls Cleanup once per window until ctx is done.
func (rl *RateLimiter) RunCleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.length)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}
