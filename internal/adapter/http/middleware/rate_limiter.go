package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"checklistapp/internal/adapter/http/helper"
	"checklistapp/internal/core/telemetry"
	"checklistapp/pkg/config"
)

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

type RateLimiter struct {
	cache   *cache.Cache
	configs map[string]config.RateLimitConfig
	metrics *telemetry.AppMetrics
}

func NewRateLimiter(configs map[string]config.RateLimitConfig, metrics *telemetry.AppMetrics) *RateLimiter {
	return &RateLimiter{
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		configs: configs,
		metrics: metrics,
	}
}

// Middleware enforces a fixed window per client IP and route. Routes without
// a configured limit fall through untouched.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		limit, ok := rl.configs[path]

		if !ok {
			limit, ok = rl.configs["default"]
		}

		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s|%s", c.ClientIP(), path)
		now := time.Now()

		entry := rateLimitEntry{Count: 0, ResetTime: now.Add(limit.Window)}

		if cached, found := rl.cache.Get(key); found {
			entry = cached.(rateLimitEntry)

			if now.After(entry.ResetTime) {
				entry = rateLimitEntry{Count: 0, ResetTime: now.Add(limit.Window)}
			}
		}

		entry.Count++
		rl.cache.Set(key, entry, time.Until(entry.ResetTime))

		remaining := limit.Requests - entry.Count

		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if entry.Count > limit.Requests {
			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(path)
			}

			helper.SendProblem(c, http.StatusTooManyRequests, "Rate limit exceeded")
			c.Abort()
			return
		}

		if rl.metrics != nil {
			rl.metrics.RecordRateLimitAllowed(path)
		}

		c.Next()
	}
}
