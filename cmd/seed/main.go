package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/bsecades/comment-rating/internal/app"
	"github.com/bsecades/comment-rating/internal/datasources/mysql"
	"github.com/bsecades/comment-rating/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

const (
	seedUsers           = 5
	seedCommentsPerUser = 2
	commentWords        = 50
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "seeding failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "seeding completed successfully")
}

func run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	db, err := mysql.Connect(ctx, app.MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return fmt.Errorf("connecting to MySQL: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := mysql.EnsureSchema(ctx, db); err != nil {
		return err
	}

	repo := mysql.New(db)
	for range seedUsers {
		user, err := repo.InsertUser(ctx, gofakeit.FirstName())
		if err != nil {
			return err
		}

		for range seedCommentsPerUser {
			comment, err := repo.InsertComment(ctx, user.ID, gofakeit.Sentence(commentWords))
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "inserted comment", "user_id", user.ID, "comment_id", comment.ID)
		}
	}

	return nil
}
