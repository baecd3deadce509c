package redis

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ConnectOptions configures the connection to the rating store.
type ConnectOptions struct {
	Host     string
	Port     int
	Password string
	DB       int

	DialTimeout time.Duration
	IOTimeout   time.Duration

	// MaxRetries bounds how often a command is retried on transient
	// network errors before the error is returned.
	MaxRetries int
}

func Connect(ctx context.Context, opts ConnectOptions) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.IOTimeout,
		WriteTimeout: opts.IOTimeout,
		MaxRetries:   opts.MaxRetries,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("checking Redis connection: %w", err)
	}

	return client, nil
}
