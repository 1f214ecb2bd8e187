package utils

import (
	"context"
	"log"
	"time"

	"tripwise/config"

	"github.com/go-redis/redis/v8"
)

// SessionClient is the Redis client backing the chat session store.
var SessionClient *redis.Client

// InitSessionCache initializes the Redis client for chat sessions.
func InitSessionCache() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (sessions): %v", err)
	}
}

// GetSessionClient returns the session Redis client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionCache()
	}
	return SessionClient
}
