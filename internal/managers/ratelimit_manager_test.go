package managers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"heritage-server/internal/config"
)

type mockRedis struct {
	mock.Mock
}

func (m *mockRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	args := m.Called(ctx, key)
	return redis.NewIntResult(int64(args.Int(0)), args.Error(1))
}

func (m *mockRedis) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	args := m.Called(ctx, key, expiration)
	return redis.NewBoolResult(args.Bool(0), args.Error(1))
}

func TestRedisRateLimitManager_Allow(t *testing.T) {
	client := new(mockRedis)
	client.On("Incr", mock.Anything, "ratelimit:login:1.2.3.4").Return(1, nil).Once()
	client.On("Expire", mock.Anything, "ratelimit:login:1.2.3.4", time.Minute).Return(true, nil).Once()
	client.On("Incr", mock.Anything, "ratelimit:login:1.2.3.4").Return(2, nil).Once()
	client.On("Incr", mock.Anything, "ratelimit:login:1.2.3.4").Return(3, nil).Once()

	rm := NewRedisRateLimitManager(client, 2, time.Minute)

	for _, expected := range []bool{true, true, false} {
		allowed, err := rm.Allow(context.Background(), "login:1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, expected, allowed)
	}
	client.AssertExpectations(t)
}

func TestRedisRateLimitManager_FailsOpen(t *testing.T) {
	client := new(mockRedis)
	client.On("Incr", mock.Anything, mock.Anything).Return(0, errors.New("connection refused"))

	rm := NewRedisRateLimitManager(client, 1, time.Minute)
	allowed, err := rm.Allow(context.Background(), "register:1.2.3.4")
	assert.Error(t, err)
	assert.True(t, allowed)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := new(mockRedis)
	client.On("Incr", mock.Anything, mock.Anything).Return(1, nil).Once()
	client.On("Expire", mock.Anything, mock.Anything, time.Minute).Return(true, nil)
	client.On("Incr", mock.Anything, mock.Anything).Return(2, nil).Once()

	rm := NewRedisRateLimitManager(client, 1, time.Minute)
	router := gin.New()
	router.POST("/auth/login", rm.RateLimitMiddleware("login"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, expected := range []int{http.StatusOK, http.StatusTooManyRequests} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
		assert.Equal(t, expected, rec.Code)
	}
}

func TestNoopRateLimitManager(t *testing.T) {
	rm := NewRateLimitManager(config.Redis{})
	allowed, err := rm.Allow(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, allowed)
}
