package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobhunt-backend/internal/delivery/http/response"
	"go-jobhunt-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis counters
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// startCleanup runs a background goroutine removing expired fallback entries
func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit limits requests per client IP within a rolling window.
// Counters live in Redis when configured, otherwise in process memory
// (per-instance limits, good enough for a single replica).
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := fmt.Sprintf("%s%s", cfg.KeyPrefix, c.ClientIP())

		var count int
		if rc := redis.Client(); rc != nil {
			n, err := redisIncr(c.Request.Context(), rc, key, cfg.Window)
			if err == nil {
				count = n
			} else {
				// Fail open to the in-memory counter
				count = memoryIncr(key, cfg.Window)
			}
		} else {
			count = memoryIncr(key, cfg.Window)
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func redisIncr(ctx context.Context, rc *goredis.Client, key string, window time.Duration) (int, error) {
	res, err := rc.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, err
	}
	count, ok := res.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected eval result type %T", res)
	}
	return int(count), nil
}

func memoryIncr(key string, window time.Duration) int {
	val, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: time.Now().Add(window)})
	entry := val.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count
}
