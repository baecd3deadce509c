package datasources

import (
	"context"

	"github.com/bsecades/comment-rating/internal/domain"
)

// DirectoryRepository combines the comment and user lookups.
type DirectoryRepository interface {
	CommentFetcher
	UserFetcher
}

// CommentFetcher returns domain.ErrCommentNotFound for unknown IDs.
type CommentFetcher interface {
	FetchComment(ctx context.Context, id int64) (domain.Comment, error)
}

// UserFetcher returns domain.ErrUserNotFound for unknown IDs.
type UserFetcher interface {
	FetchUser(ctx context.Context, id int64) (domain.User, error)
}
