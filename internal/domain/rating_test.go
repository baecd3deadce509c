package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating_AddVote_Upserts(t *testing.T) {
	r := NewRating(156)

	r.AddVote(NewVote(100, VoteActionUp))
	r.AddVote(NewVote(100, VoteActionUp))
	assert.Equal(t, 1, r.Len())

	r.AddVote(NewVote(100, VoteActionDown))
	require.Equal(t, 1, r.Len())
	assert.Equal(t, VoteActionDown, r.Votes()[100].Action())
	assert.Equal(t, -1, r.TotalScore())
}

func TestRating_DelVote(t *testing.T) {
	r := NewRating(156)
	r.AddVote(NewVote(100, VoteActionUp))
	r.AddVote(NewVote(101, VoteActionUp))

	r.DelVote(NewVote(999, VoteActionUp))
	assert.Equal(t, 2, r.Len())

	// The action of the vote passed in does not matter, only the user.
	r.DelVote(NewVote(100, VoteActionDown))
	assert.Equal(t, 1, r.Len())
	assert.False(t, r.HasVote(100))
	assert.True(t, r.HasVote(101))
}

func TestRating_TotalScore(t *testing.T) {
	cases := []struct {
		name     string
		actions  []VoteAction
		expected int
	}{
		{name: "empty", expected: 0},
		{name: "three_up_one_down", actions: []VoteAction{VoteActionUp, VoteActionUp, VoteActionUp, VoteActionDown}, expected: 2},
		{name: "all_down", actions: []VoteAction{VoteActionDown, VoteActionDown}, expected: -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRating(1)
			for i, a := range tc.actions {
				r.AddVote(NewVote(int64(100+i), a))
			}
			assert.Equal(t, tc.expected, r.TotalScore())
		})
	}
}

func TestRating_VotesIsACopy(t *testing.T) {
	r := NewRating(156)
	r.AddVote(NewVote(100, VoteActionUp))

	votes := r.Votes()
	delete(votes, 100)

	assert.True(t, r.HasVote(100))
}

func TestRating_Clone(t *testing.T) {
	var missing *Rating
	assert.Nil(t, missing.Clone())

	r := NewRating(156)
	r.AddVote(NewVote(100, VoteActionUp))

	c := r.Clone()
	c.AddVote(NewVote(101, VoteActionDown))

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(156), c.CommentID())
}

func TestRating_MarshalJSON(t *testing.T) {
	r := NewRating(156)
	r.AddVote(NewVote(278, VoteActionUp))
	r.AddVote(NewVote(100, VoteActionDown))
	r.AddVote(NewVote(101, VoteActionUp))

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"commentId": 156,
		"votes": [
			{"userId": 100, "score": -1},
			{"userId": 101, "score": 1},
			{"userId": 278, "score": 1}
		],
		"totalScore": 1
	}`, string(b))

	b, err = json.Marshal(NewRating(3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"commentId": 3, "votes": [], "totalScore": 0}`, string(b))
}

func TestInvalidVoteError(t *testing.T) {
	err := fmt.Errorf("saving: %w", NewInvalidVoteError("User %d already vote", 278))

	assert.ErrorIs(t, err, ErrInvalidVote)
	assert.Equal(t, "saving: User 278 already vote", err.Error())

	var invalid *InvalidVoteError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "User 278 already vote", invalid.Message)
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &StorageError{Op: "load", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "rating storage load: connection refused", err.Error())
}
