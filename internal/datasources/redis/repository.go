package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsecades/comment-rating/internal/datasources"
	"github.com/bsecades/comment-rating/internal/domain"
	"github.com/bsecades/comment-rating/internal/metrics"
	goredis "github.com/redis/go-redis/v9"
)

var _ datasources.RatingRepository = (*Repository)(nil)

const DefaultMaxTxAttempts = 10

// Repository stores each comment's votes as a Redis set of
// "<userId>:<signedScore>" members under "rating:<commentId>".
// A set that loses its last member is dropped by Redis, which is how a
// rating without votes is represented.
type Repository struct {
	client        goredis.UniversalClient
	maxTxAttempts int
}

type Option func(*Repository)

// WithMaxTxAttempts sets how many times a conflicting optimistic
// transaction is attempted before ErrConcurrentUpdate is returned.
func WithMaxTxAttempts(n int) Option {
	return func(r *Repository) {
		if n > 0 {
			r.maxTxAttempts = n
		}
	}
}

func New(client goredis.UniversalClient, opts ...Option) *Repository {
	r := &Repository{
		client:        client,
		maxTxAttempts: DefaultMaxTxAttempts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) GetRating(ctx context.Context, commentID int64) (*domain.Rating, error) {
	return loadRating(ctx, r.client, commentID)
}

func (r *Repository) GetTotalRating(ctx context.Context, commentID int64) (int, error) {
	rating, err := r.GetRating(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if rating == nil {
		return 0, nil
	}
	return rating.TotalScore(), nil
}

// SaveRating writes the difference between the stored votes and rating.
// The read and the write form one transaction, but rating itself may have
// been loaded earlier: votes stored since then by other writers are
// removed. Use UpdateRating for read-modify-write cycles.
func (r *Repository) SaveRating(ctx context.Context, rating *domain.Rating) error {
	_, err := r.UpdateRating(ctx, rating.CommentID(), func(*domain.Rating) (*domain.Rating, error) {
		return rating, nil
	})
	return err
}

// UpdateRating loads the rating under WATCH, applies mutate, and writes the
// difference in a MULTI block. If the key changes before EXEC the whole
// cycle is retried with a fresh read.
func (r *Repository) UpdateRating(
	ctx context.Context, commentID int64, mutate datasources.RatingMutation,
) (*domain.Rating, error) {
	logger := domain.LoggerFromContext(ctx)
	key := ratingKey(commentID)

	for attempt := 1; attempt <= r.maxTxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, &domain.StorageError{Op: "update", Err: err}
		}

		var result *domain.Rating
		var txErr error
		err := r.client.Watch(ctx, func(tx *goredis.Tx) error {
			result, txErr = reconcile(ctx, tx, commentID, mutate)
			return txErr
		}, key)

		switch {
		case err == nil:
			return result, nil
		case errors.Is(err, goredis.TxFailedErr):
			metrics.RatingTxConflicts.Inc()
			logger.DebugContext(ctx, "rating transaction conflicted, retrying",
				"comment_id", commentID, "attempt", attempt)
		case txErr != nil:
			return nil, txErr
		default:
			return nil, &domain.StorageError{Op: "watch", Err: err}
		}
	}

	return nil, &domain.StorageError{
		Op:  "update",
		Err: fmt.Errorf("%w: gave up after %d attempts", domain.ErrConcurrentUpdate, r.maxTxAttempts),
	}
}

func reconcile(
	ctx context.Context, tx *goredis.Tx, commentID int64, mutate datasources.RatingMutation,
) (*domain.Rating, error) {
	stored, err := loadRating(ctx, tx, commentID)
	if err != nil {
		return nil, err
	}

	wanted, err := mutate(stored.Clone())
	if err != nil {
		return nil, err
	}
	if wanted == nil {
		wanted = domain.NewRating(commentID)
	}
	if wanted.CommentID() != commentID {
		return nil, fmt.Errorf("rating of comment %d cannot be stored under comment %d",
			wanted.CommentID(), commentID)
	}

	diff := diffRatings(stored, wanted)
	if diff.empty() {
		return wanted, nil
	}

	key := ratingKey(commentID)
	_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		if len(diff.rem) > 0 {
			pipe.SRem(ctx, key, diff.rem...)
		}
		if len(diff.add) > 0 {
			pipe.SAdd(ctx, key, diff.add...)
		}
		return nil
	})
	if errors.Is(err, goredis.TxFailedErr) {
		return nil, err
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "write", Err: err}
	}

	return wanted, nil
}

type setMembersReader interface {
	SMembers(ctx context.Context, key string) *goredis.StringSliceCmd
}

func loadRating(ctx context.Context, c setMembersReader, commentID int64) (*domain.Rating, error) {
	members, err := c.SMembers(ctx, ratingKey(commentID)).Result()
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}
	return decodeRating(commentID, members)
}
