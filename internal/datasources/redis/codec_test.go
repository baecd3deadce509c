package redis

import (
	"testing"

	"github.com/bsecades/comment-rating/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingKey(t *testing.T) {
	assert.Equal(t, "rating:156", ratingKey(156))
}

func TestEncodeVote(t *testing.T) {
	assert.Equal(t, "7612:1", encodeVote(domain.NewVote(7612, domain.VoteActionUp)))
	assert.Equal(t, "1000:-1", encodeVote(domain.NewVote(1000, domain.VoteActionDown)))
}

func TestDecodeVote(t *testing.T) {
	cases := []struct {
		name     string
		member   string
		expected domain.Vote
		corrupt  bool
	}{
		{name: "up", member: "7612:1", expected: domain.NewVote(7612, domain.VoteActionUp)},
		{name: "down", member: "1000:-1", expected: domain.NewVote(1000, domain.VoteActionDown)},
		{name: "no_separator", member: "7612", corrupt: true},
		{name: "empty", member: "", corrupt: true},
		{name: "non_numeric_user", member: "abc:1", corrupt: true},
		{name: "zero_user", member: "0:1", corrupt: true},
		{name: "negative_user", member: "-5:1", corrupt: true},
		{name: "non_numeric_score", member: "7612:up", corrupt: true},
		{name: "score_out_of_range", member: "7612:2", corrupt: true},
		{name: "extra_field", member: "7612:1:1", corrupt: true},
		{name: "plus_signed_user", member: "+100:1", corrupt: true},
		{name: "zero_padded_user", member: "0101:1", corrupt: true},
		{name: "plus_signed_score", member: "100:+1", corrupt: true},
		{name: "zero_padded_score", member: "100:01", corrupt: true},
		{name: "spaces", member: " 100:1", corrupt: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := decodeVote(tc.member)
			if tc.corrupt {
				require.ErrorIs(t, err, domain.ErrCorruptData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestDecodeRating(t *testing.T) {
	rating, err := decodeRating(156, nil)
	require.NoError(t, err)
	assert.Nil(t, rating)

	rating, err = decodeRating(156, []string{"100:1", "101:1", "103:-1"})
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, int64(156), rating.CommentID())
	assert.Equal(t, 3, rating.Len())
	assert.Equal(t, 1, rating.TotalScore())

	_, err = decodeRating(156, []string{"100:1", "100:-1"})
	require.ErrorIs(t, err, domain.ErrCorruptData)
}

func TestDiffRatings(t *testing.T) {
	makeRating := func(votes map[int64]domain.VoteAction) *domain.Rating {
		r := domain.NewRating(156)
		for userID, action := range votes {
			r.AddVote(domain.NewVote(userID, action))
		}
		return r
	}

	cases := []struct {
		name    string
		stored  *domain.Rating
		wanted  *domain.Rating
		wantAdd []any
		wantRem []any
	}{
		{
			name:    "nothing_stored_adds_all",
			stored:  nil,
			wanted:  makeRating(map[int64]domain.VoteAction{101: domain.VoteActionDown, 100: domain.VoteActionUp}),
			wantAdd: []any{"100:1", "101:-1"},
		},
		{
			name:    "add_and_remove_by_user",
			stored:  makeRating(map[int64]domain.VoteAction{100: domain.VoteActionUp, 101: domain.VoteActionUp}),
			wanted:  makeRating(map[int64]domain.VoteAction{101: domain.VoteActionUp, 102: domain.VoteActionDown}),
			wantAdd: []any{"102:-1"},
			wantRem: []any{"100:1"},
		},
		{
			name:    "changed_score_replaces_member",
			stored:  makeRating(map[int64]domain.VoteAction{100: domain.VoteActionUp}),
			wanted:  makeRating(map[int64]domain.VoteAction{100: domain.VoteActionDown}),
			wantAdd: []any{"100:-1"},
			wantRem: []any{"100:1"},
		},
		{
			name:   "unchanged",
			stored: makeRating(map[int64]domain.VoteAction{100: domain.VoteActionUp}),
			wanted: makeRating(map[int64]domain.VoteAction{100: domain.VoteActionUp}),
		},
		{
			name:    "everything_removed",
			stored:  makeRating(map[int64]domain.VoteAction{100: domain.VoteActionUp, 101: domain.VoteActionDown}),
			wanted:  makeRating(nil),
			wantRem: []any{"100:1", "101:-1"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := diffRatings(tc.stored, tc.wanted)
			assert.Equal(t, tc.wantAdd, d.add)
			assert.Equal(t, tc.wantRem, d.rem)
			assert.Equal(t, len(tc.wantAdd) == 0 && len(tc.wantRem) == 0, d.empty())
		})
	}
}
