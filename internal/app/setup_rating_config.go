package app

import (
	"context"
	"time"

	"github.com/bsecades/comment-rating/internal/datasources/redis"
)

// RedisConnectOptions reads the rating store connection settings.
func RedisConnectOptions(ctx context.Context) redis.ConnectOptions {
	return redis.ConnectOptions{
		Host:        GetEnvAsStringOrDefault("REDIS_HOST", "127.0.0.1"),
		Port:        GetEnvAsIntOrDefault(ctx, "REDIS_PORT", 6379),
		Password:    GetEnvAsStringOrDefault("REDIS_PASSWORD", ""),
		DB:          GetEnvAsIntOrDefault(ctx, "REDIS_DB", 0),
		DialTimeout: GetEnvAsDurationOrDefault(ctx, "REDIS_DIAL_TIMEOUT", 5*time.Second),
		IOTimeout:   GetEnvAsDurationOrDefault(ctx, "REDIS_IO_TIMEOUT", 3*time.Second),
		MaxRetries:  GetEnvAsIntOrDefault(ctx, "REDIS_MAX_RETRIES", 3),
	}
}

// RatingMaxTxAttempts is how often a conflicting vote transaction is retried.
func RatingMaxTxAttempts(ctx context.Context) int {
	return GetEnvAsIntOrDefault(ctx, "RATING_MAX_TX_ATTEMPTS", redis.DefaultMaxTxAttempts)
}
