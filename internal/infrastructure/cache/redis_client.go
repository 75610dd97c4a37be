package cache

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client from REDIS_URI (e.g.
// redis://localhost:6379/0). Returns nil when the variable is unset or
// unparseable; callers treat a nil client as "rate limiting disabled".
func ConnectRedis() *redis.Client {
	uri := os.Getenv("REDIS_URI")
	if uri == "" {
		return nil
	}

	opts, err := redis.ParseURL(uri)
	if err != nil {
		log.Printf("[cache] invalid REDIS_URI, rate limiting disabled: %v", err)
		return nil
	}
	return redis.NewClient(opts)
}
