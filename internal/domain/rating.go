package domain

import (
	"encoding/json"
	"maps"
	"slices"
)

// Rating holds the votes cast on one comment, at most one per user.
// It is rebuilt from storage on every read and is not safe for concurrent use.
type Rating struct {
	commentID int64
	votes     map[int64]Vote
}

func NewRating(commentID int64) *Rating {
	return &Rating{
		commentID: commentID,
		votes:     make(map[int64]Vote),
	}
}

// Clone returns an independent copy of r. It returns nil for a nil Rating.
func (r *Rating) Clone() *Rating {
	if r == nil {
		return nil
	}
	return &Rating{
		commentID: r.commentID,
		votes:     maps.Clone(r.votes),
	}
}

func (r *Rating) CommentID() int64 {
	return r.commentID
}

// AddVote stores v, replacing any earlier vote by the same user.
func (r *Rating) AddVote(v Vote) {
	r.votes[v.UserID()] = v
}

// DelVote removes the vote cast by v's user, if there is one.
func (r *Rating) DelVote(v Vote) {
	delete(r.votes, v.UserID())
}

func (r *Rating) HasVote(userID int64) bool {
	_, ok := r.votes[userID]
	return ok
}

// Votes returns a copy of the votes keyed by user ID.
func (r *Rating) Votes() map[int64]Vote {
	return maps.Clone(r.votes)
}

func (r *Rating) Len() int {
	return len(r.votes)
}

func (r *Rating) TotalScore() int {
	total := 0
	for _, v := range r.votes {
		total += v.Score()
	}
	return total
}

type ratingVoteJSON struct {
	UserID int64 `json:"userId"`
	Score  int   `json:"score"`
}

type ratingJSON struct {
	CommentID  int64            `json:"commentId"`
	Votes      []ratingVoteJSON `json:"votes"`
	TotalScore int              `json:"totalScore"`
}

func (r *Rating) MarshalJSON() ([]byte, error) {
	out := ratingJSON{
		CommentID:  r.commentID,
		Votes:      make([]ratingVoteJSON, 0, len(r.votes)),
		TotalScore: r.TotalScore(),
	}
	for _, userID := range slices.Sorted(maps.Keys(r.votes)) {
		out.Votes = append(out.Votes, ratingVoteJSON{
			UserID: userID,
			Score:  r.votes[userID].Score(),
		})
	}
	return json.Marshal(out)
}
