package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"rsiboard/conf"
)

var redisClient *redis.Client

// InitRedis connects the shared client. The cache is optional: when it is
// never initialized every Get is a miss and every Set a no-op, so the
// dashboard keeps working against the database alone.
func InitRedis(redisCfg conf.RedisConfig) error {
	client := redis.NewClient(&redis.Options{
		DB:           redisCfg.Db,
		Addr:         redisCfg.Addr,
		Password:     redisCfg.Password,
		PoolSize:     redisCfg.PoolSize,
		MinIdleConns: redisCfg.MinIdleConns,
	})
	if _, err := client.Ping(context.TODO()).Result(); err != nil {
		return err
	}
	redisClient = client
	return nil
}

func CloseRedis() {
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

// Set stores a string value with a ttl. Errors are swallowed, the database
// stays the source of truth.
func Set(ctx context.Context, key, value string, ttl time.Duration) {
	if redisClient == nil {
		return
	}
	_ = redisClient.Set(ctx, key, value, ttl).Err()
}

// Get returns the cached value and whether it was present.
func Get(ctx context.Context, key string) (string, bool) {
	if redisClient == nil {
		return "", false
	}
	v, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

// Del drops keys after a write invalidates them.
func Del(ctx context.Context, keys ...string) {
	if redisClient == nil {
		return
	}
	_ = redisClient.Del(ctx, keys...).Err()
}
