package rdx

import (
	"log"
	"os"
	"time"

	"natty/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

// Invalidate drops a cached listing after a mutation. Failures only log;
// the cache repopulates on the next read.
func Invalidate(keys ...string) {
	for _, key := range keys {
		if err := Conn.Del(globals.Ctx, key).Err(); err != nil && err != redis.Nil {
			log.Printf("Failed to invalidate cache key %s: %v", key, err)
		}
	}
}
