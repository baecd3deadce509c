package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVoteAction is returned when a score is neither +1 nor -1.
	ErrInvalidVoteAction = errors.New("invalid vote action")

	// ErrInvalidVote matches every InvalidVoteError.
	ErrInvalidVote = errors.New("invalid vote")

	ErrCommentNotFound = errors.New("comment not found")
	ErrUserNotFound    = errors.New("user not found")

	// ErrCorruptData indicates a stored rating member that cannot be decoded.
	ErrCorruptData = errors.New("corrupt rating data")

	// ErrConcurrentUpdate is returned when an optimistic rating transaction
	// kept conflicting with other writers until it ran out of attempts.
	ErrConcurrentUpdate = errors.New("rating modified concurrently")
)

// InvalidVoteError rejects a vote for a business rule, such as voting on your
// own comment or voting twice. Message is shown to API callers as is.
type InvalidVoteError struct {
	Message string
}

func NewInvalidVoteError(format string, args ...any) *InvalidVoteError {
	return &InvalidVoteError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidVoteError) Error() string {
	return e.Message
}

func (e *InvalidVoteError) Is(target error) bool {
	return target == ErrInvalidVote
}

// StorageError wraps a failure talking to the rating store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("rating storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
