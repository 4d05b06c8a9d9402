package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// CacheGet returns the cached payload for key, if present. Safe to call when
// Redis was never initialized (returns a miss).
func CacheGet(key string) (string, bool) {
	if Client == nil {
		return "", false
	}
	val, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// CacheSet stores a payload under key with a TTL. Failures are ignored; the
// cache is best-effort.
func CacheSet(key string, payload string, ttl time.Duration) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, key, payload, ttl)
}

// CacheDel drops cached keys after a catalog mutation.
func CacheDel(keys ...string) {
	if Client == nil || len(keys) == 0 {
		return
	}
	Client.Del(Ctx, keys...)
}
