package domain

import "fmt"

// VoteAction is the polarity of a vote. The only valid values are
// VoteActionUp and VoteActionDown.
type VoteAction int

const (
	VoteActionDown VoteAction = -1
	VoteActionUp   VoteAction = 1
)

// NewVoteAction validates a raw score.
func NewVoteAction(value int) (VoteAction, error) {
	switch VoteAction(value) {
	case VoteActionUp, VoteActionDown:
		return VoteAction(value), nil
	default:
		return 0, fmt.Errorf("%w: %d is not one of [1, -1]", ErrInvalidVoteAction, value)
	}
}

// Score returns the signed contribution of the action to a rating total.
func (a VoteAction) Score() int {
	return int(a)
}

func (a VoteAction) String() string {
	switch a {
	case VoteActionUp:
		return "up"
	case VoteActionDown:
		return "down"
	default:
		return fmt.Sprintf("VoteAction(%d)", int(a))
	}
}

// Vote is one user's vote on a comment.
type Vote struct {
	userID int64
	action VoteAction
}

func NewVote(userID int64, action VoteAction) Vote {
	return Vote{userID: userID, action: action}
}

func (v Vote) UserID() int64 {
	return v.userID
}

func (v Vote) Action() VoteAction {
	return v.action
}

func (v Vote) Score() int {
	return v.action.Score()
}
