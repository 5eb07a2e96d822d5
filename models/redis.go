package models

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the product list cache. A nil client means every read
// goes to the database; nothing else depends on redis being up.
var RedisClient *redis.Client

func InitRedis() {
	opt, err := redisOptions()
	if err != nil {
		log.Println("Invalid REDIS_URL:", err)
		log.Println("Product cache disabled")
		return
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("Redis unreachable:", err)
		log.Println("Product cache disabled")
		return
	}

	RedisClient = client
	log.Println("Product cache connected")
}

func redisOptions() (*redis.Options, error) {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		return redis.ParseURL(redisURL)
	}

	return &redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	}, nil
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
