package infra

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the remote note store. A dead Redis is tolerated:
// note persistence degrades to local-only and the rest of the service keeps
// running.
func InitRedis() *redis.Client {
	opts := &redis.Options{
		Addr:         os.Getenv("REDIS_URL"),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
	if opts.Addr == "" {
		opts.Addr = "localhost:6379"
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable, note sync will fall back to local storage: %v", err)
	}

	return client
}
