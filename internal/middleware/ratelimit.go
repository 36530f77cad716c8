package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// WindowCounter increments the hit count of key within a fixed window and
// returns the new count and the time left in the window.
type WindowCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type redisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) WindowCounter {
	return &redisCounter{client: client}
}

func (r *redisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}

	// A key without expiry was just created by this hit.
	left := ttl.Val()
	if left < 0 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		left = window
	}
	return incr.Val(), left, nil
}

type RateLimitConfig struct {
	Scope  string
	Max    int
	Window time.Duration
}

// RateLimit allows Max requests per client IP per Window. When the counter
// store fails the request is let through and the failure logged.
func RateLimit(counter WindowCounter, cfg RateLimitConfig, log zerolog.Logger) gin.HandlerFunc {
	limit := strconv.Itoa(cfg.Max)

	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", cfg.Scope, c.ClientIP())

		count, left, err := counter.Hit(c.Request.Context(), key, cfg.Window)
		if err != nil {
			log.Warn().Err(err).Str("scope", cfg.Scope).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		remaining := int64(cfg.Max) - count
		if remaining < 0 {
			remaining = 0
		}

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", limit)
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Max) {
			h.Set("Retry-After", strconv.Itoa(int(left.Seconds()+0.5)))
			abort(c, http.StatusTooManyRequests, "too_many_requests", "Too many requests, please try again later.")
			return
		}

		c.Next()
	}
}
