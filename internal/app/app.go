package app

import (
	"context"
	"fmt"

	"github.com/bsecades/comment-rating/internal/command"
	"github.com/bsecades/comment-rating/internal/datasources/mysql"
	"github.com/bsecades/comment-rating/internal/datasources/redis"
	"github.com/bsecades/comment-rating/internal/transport/web/router"
	"github.com/bsecades/comment-rating/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	directory, err := setupDirectoryRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up directory repository: %w", err)
	}

	ratings, err := setupRatingRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up rating repository: %w", err)
	}

	saveRatingCmd := command.NewSaveRating(ratings)

	httpRouter, err := router.MakeRouter(directory, ratings, saveRatingCmd)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupDirectoryRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupRatingRepository(ctx context.Context) (*redis.Repository, error) {
	client, err := redis.Connect(ctx, RedisConnectOptions(ctx))
	if err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}
	return redis.New(client, redis.WithMaxTxAttempts(RatingMaxTxAttempts(ctx))), nil
}
