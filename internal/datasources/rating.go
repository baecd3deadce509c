package datasources

import (
	"context"

	"github.com/bsecades/comment-rating/internal/domain"
)

// RatingRepository combines all rating store operations.
type RatingRepository interface {
	RatingGetter
	RatingSaver
	RatingUpdater
	TotalRatingGetter
}

// RatingGetter loads the rating of a comment.
// It returns nil, nil when no vote has been recorded for the comment.
type RatingGetter interface {
	GetRating(ctx context.Context, commentID int64) (*domain.Rating, error)
}

// RatingSaver reconciles the stored votes of rating.CommentID() with rating.
// Only the difference against the stored votes is written.
type RatingSaver interface {
	SaveRating(ctx context.Context, rating *domain.Rating) error
}

// RatingMutation receives the stored rating, or nil if there is none, and
// returns the rating to persist. An error aborts the update and is returned
// to the caller unchanged.
type RatingMutation func(current *domain.Rating) (*domain.Rating, error)

// RatingUpdater applies a mutation to the stored rating atomically: the
// mutation may run more than once if another writer changes the rating
// between the read and the write.
type RatingUpdater interface {
	UpdateRating(ctx context.Context, commentID int64, mutate RatingMutation) (*domain.Rating, error)
}

// TotalRatingGetter sums the scores of a comment's votes, 0 if there are none.
type TotalRatingGetter interface {
	GetTotalRating(ctx context.Context, commentID int64) (int, error)
}
