// File: utils/cache.go
package utils

import (
	"context"
	"sync"
	"time"

	"viaduct/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	cacheClient *redis.Client
	cacheOnce   sync.Once
)

// InitCache initializes the Redis cache client used for reminder
// shown-today bookkeeping. Redis is optional: when REDIS_ADDR is empty
// or the server is unreachable the client stays nil and callers skip
// dedup instead of failing.
func InitCache() {
	cacheOnce.Do(func() {
		if config.AppConfig.RedisAddr == "" {
			return
		}
		client := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisCacheDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := client.Ping(ctx).Result(); err != nil {
			GetLogger().Warn("Redis unreachable, running without reminder dedup cache", zap.Error(err))
			return
		}
		cacheClient = client
	})
}

// GetCacheClient returns the cache client, or nil when Redis is not configured.
func GetCacheClient() *redis.Client {
	InitCache()
	return cacheClient
}
