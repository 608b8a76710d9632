package db

import (
	"context"
	"log"
	"time"

	"mealmarket-be/internal/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis opens the client backing the server-side cart store.
func InitRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to ping Redis: %v", err)
	}

	log.Println("Redis connection established")
	return client
}
