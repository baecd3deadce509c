package controller

import (
	"errors"
	"net/http"

	"github.com/bsecades/comment-rating/internal/datasources"
	"github.com/bsecades/comment-rating/internal/domain"
)

// CommentRatingGet handles GET /comment/{comment_id}/rating and responds
// with the comment's total score.
type CommentRatingGet struct {
	CommentFetcher    datasources.CommentFetcher
	TotalRatingGetter datasources.TotalRatingGetter
}

func (c CommentRatingGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	commentID, ok := commentIDFromRequest(r)
	if !ok {
		writeError(ctx, w, http.StatusNotFound, ErrorCodeResourceNotExist, "Comment does not exist")
		return
	}

	logger := domain.LoggerFromContext(ctx).With("comment_id", commentID)
	ctx = domain.ContextWithLogger(ctx, logger)

	if _, err := c.CommentFetcher.FetchComment(ctx, commentID); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			writeError(ctx, w, http.StatusNotFound, ErrorCodeResourceNotExist, "Comment does not exist")
			return
		}
		logger.ErrorContext(ctx, "unable to fetch comment", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	total, err := c.TotalRatingGetter.GetTotalRating(ctx, commentID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to get total rating", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, total)
}
