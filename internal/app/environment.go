package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bsecades/comment-rating/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma separated variable, trimming spaces.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	s := MustGetEnvAsString(ctx, name)

	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	return values
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	return parseEnvAsInt(ctx, name, MustGetEnvAsString(ctx, name))
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	return parseEnvAsBoolean(ctx, name, MustGetEnvAsString(ctx, name))
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	return parseEnvAsDuration(ctx, name, MustGetEnvAsString(ctx, name))
}

func GetEnvAsStringOrDefault(name, def string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		return def
	}
	return s
}

func GetEnvAsIntOrDefault(ctx context.Context, name string, def int) int {
	s, exists := os.LookupEnv(name)
	if !exists {
		return def
	}
	return parseEnvAsInt(ctx, name, s)
}

func GetEnvAsDurationOrDefault(ctx context.Context, name string, def time.Duration) time.Duration {
	s, exists := os.LookupEnv(name)
	if !exists {
		return def
	}
	return parseEnvAsDuration(ctx, name, s)
}

func parseEnvAsInt(ctx context.Context, name, s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as integer",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as integer [%s]: %s", name, s))
	}

	return v
}

func parseEnvAsBoolean(ctx context.Context, name, s string) bool {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func parseEnvAsDuration(ctx context.Context, name, s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}
