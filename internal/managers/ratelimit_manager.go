package managers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"heritage-server/internal/config"
	"heritage-server/internal/goerrors"
	"heritage-server/internal/utils"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimitMgr counts requests per client and purpose in a fixed window.
type RateLimitMgr interface {
	Allow(ctx context.Context, key string) (bool, error)
	RateLimitMiddleware(purpose string) gin.HandlerFunc
}

// redisCounter is the part of the redis client used by the rate limiter.
type redisCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisRateLimitManager implements a fixed window counter with INCR and EXPIRE.
type RedisRateLimitManager struct {
	client redisCounter
	limit  int64
	window time.Duration
}

// NewRateLimitManager returns a redis backed limiter, or one that allows everything when no address is configured.
func NewRateLimitManager(cfg config.Redis) RateLimitMgr {
	if cfg.Addr == "" {
		log.Info("No redis address configured, rate limiting is disabled")
		return &NoopRateLimitManager{}
	}

	log.Info("Initializing rate limit manager")
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return NewRedisRateLimitManager(client, cfg.Limit, cfg.Window)
}

func NewRedisRateLimitManager(client redisCounter, limit int64, window time.Duration) *RedisRateLimitManager {
	return &RedisRateLimitManager{client: client, limit: limit, window: window}
}

// Allow increments the counter of key and reports whether it is still within the limit.
func (rm *RedisRateLimitManager) Allow(ctx context.Context, key string) (bool, error) {
	key = rateLimitKeyPrefix + key
	count, err := rm.client.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}

	if count == 1 {
		if err := rm.client.Expire(ctx, key, rm.window).Err(); err != nil {
			return true, err
		}
	}

	return count <= rm.limit, nil
}

// RateLimitMiddleware limits requests per client IP. Redis failures let the request through.
func (rm *RedisRateLimitManager) RateLimitMiddleware(purpose string) gin.HandlerFunc {
	return rateLimitMiddleware(rm, purpose)
}

// NoopRateLimitManager allows every request.
type NoopRateLimitManager struct{}

func (nm *NoopRateLimitManager) Allow(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func (nm *NoopRateLimitManager) RateLimitMiddleware(_ string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

func rateLimitMiddleware(limiter RateLimitMgr, purpose string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), purpose+":"+c.ClientIP())
		if err != nil {
			utils.LogMessageWithFieldsAndError(c, "warn", "Rate limiter unavailable", err)
		}
		if !allowed {
			utils.WriteAndLogError(c, goerrors.TooManyRequests, nil)
			return
		}

		c.Next()
	}
}
