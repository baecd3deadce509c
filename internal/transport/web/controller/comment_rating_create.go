package controller

import (
	"errors"
	"net/http"

	"github.com/bsecades/comment-rating/internal/command"
	"github.com/bsecades/comment-rating/internal/datasources"
	"github.com/bsecades/comment-rating/internal/domain"
)

// CommentRatingCreate handles POST /comment/{comment_id}/rating, recording a
// vote and responding with the updated rating.
type CommentRatingCreate struct {
	CommentFetcher datasources.CommentFetcher
	UserFetcher    datasources.UserFetcher
	SaveRatingCmd  command.Command[command.SaveRatingRequest, *domain.Rating]
}

func (c CommentRatingCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	commentID, ok := commentIDFromRequest(r)
	if !ok {
		writeError(ctx, w, http.StatusNotFound, ErrorCodeCommentNotExist, "Comment does not exist")
		return
	}

	logger := domain.LoggerFromContext(ctx).With("comment_id", commentID)
	ctx = domain.ContextWithLogger(ctx, logger)

	comment, err := c.CommentFetcher.FetchComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			writeError(ctx, w, http.StatusNotFound, ErrorCodeCommentNotExist, "Comment does not exist")
			return
		}
		logger.ErrorContext(ctx, "unable to fetch comment", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	body, errs := decodeScoreRequest(r.Body)
	if len(errs) > 0 {
		writeError(ctx, w, http.StatusBadRequest, ErrorCodeInvalidParameters, errs...)
		return
	}

	user, err := c.UserFetcher.FetchUser(ctx, *body.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(ctx, w, http.StatusBadRequest, ErrorCodeUserNotExist, "User does not exist")
			return
		}
		logger.ErrorContext(ctx, "unable to fetch user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	rating, err := c.SaveRatingCmd.Execute(ctx, command.SaveRatingRequest{
		Comment: comment,
		User:    user,
		Score:   *body.Score,
	})
	if err != nil {
		var invalidVote *domain.InvalidVoteError
		switch {
		case errors.As(err, &invalidVote):
			writeError(ctx, w, http.StatusBadRequest, ErrorCodeInvalidVote, invalidVote.Message)
		case errors.Is(err, domain.ErrInvalidVoteAction):
			writeError(ctx, w, http.StatusBadRequest, ErrorCodeInvalidParameters, err.Error())
		default:
			logger.ErrorContext(ctx, "unable to save rating", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeJSON(ctx, w, http.StatusOK, rating)
}
