package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsecades/comment-rating/internal/datasources"
	"github.com/bsecades/comment-rating/internal/domain"
	"github.com/bsecades/comment-rating/internal/metrics"
)

// SaveRatingRequest is the request for the SaveRating command.
type SaveRatingRequest struct {
	Comment domain.Comment
	User    domain.User
	Score   int
}

// SaveRating records a user's vote on a comment. A user may vote once per
// comment and never on their own comment.
type SaveRating struct {
	RatingUpdater datasources.RatingUpdater
}

// NewSaveRating creates a properly initialized SaveRating command.
func NewSaveRating(ratingUpdater datasources.RatingUpdater) *SaveRating {
	return &SaveRating{
		RatingUpdater: ratingUpdater,
	}
}

// Execute validates the vote, adds it to the comment's rating and returns the
// updated rating. Rule violations are returned as *domain.InvalidVoteError,
// bad scores as domain.ErrInvalidVoteAction.
func (c *SaveRating) Execute(ctx context.Context, req SaveRatingRequest) (*domain.Rating, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.Comment.UserID == req.User.ID {
		metrics.IncVote(metrics.VoteSelfVote)
		return nil, domain.NewInvalidVoteError("You can not vote your own comment")
	}

	action, err := domain.NewVoteAction(req.Score)
	if err != nil {
		metrics.IncVote(metrics.VoteInvalidAction)
		return nil, err
	}

	rating, err := c.RatingUpdater.UpdateRating(ctx, req.Comment.ID,
		func(current *domain.Rating) (*domain.Rating, error) {
			if current == nil {
				current = domain.NewRating(req.Comment.ID)
			} else if current.HasVote(req.User.ID) {
				return nil, domain.NewInvalidVoteError("User %d already vote", req.User.ID)
			}

			current.AddVote(domain.NewVote(req.User.ID, action))
			return current, nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidVote) {
			metrics.IncVote(metrics.VoteDuplicate)
			return nil, err
		}
		metrics.IncVote(metrics.VoteError)
		return nil, fmt.Errorf("saving rating: %w", err)
	}

	metrics.IncVote(metrics.VoteAccepted)
	logger.DebugContext(ctx, "saved vote",
		"comment_id", req.Comment.ID, "user_id", req.User.ID, "score", action.Score())

	return rating, nil
}
