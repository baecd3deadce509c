package redis

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/bsecades/comment-rating/internal/domain"
)

// ratingKey is the set holding the votes of a comment.
func ratingKey(commentID int64) string {
	return fmt.Sprintf("rating:%d", commentID)
}

// encodeVote renders a set member as "<userId>:<signedScore>", e.g. "7612:1".
func encodeVote(v domain.Vote) string {
	return strconv.FormatInt(v.UserID(), 10) + ":" + strconv.Itoa(v.Score())
}

func decodeVote(member string) (domain.Vote, error) {
	userStr, scoreStr, ok := strings.Cut(member, ":")
	if !ok {
		return domain.Vote{}, fmt.Errorf("%w: member %q has no separator", domain.ErrCorruptData, member)
	}

	userID, err := strconv.ParseInt(userStr, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Vote{}, fmt.Errorf("%w: member %q has invalid user ID", domain.ErrCorruptData, member)
	}

	score, err := strconv.Atoi(scoreStr)
	if err != nil {
		return domain.Vote{}, fmt.Errorf("%w: member %q has invalid score", domain.ErrCorruptData, member)
	}

	action, err := domain.NewVoteAction(score)
	if err != nil {
		return domain.Vote{}, fmt.Errorf("%w: member %q: %w", domain.ErrCorruptData, member, err)
	}

	v := domain.NewVote(userID, action)
	if encodeVote(v) != member {
		return domain.Vote{}, fmt.Errorf("%w: member %q is not in canonical form", domain.ErrCorruptData, member)
	}

	return v, nil
}

// decodeRating rebuilds a rating from set members. It returns nil for an
// empty member list, which is how Redis reports a missing set.
func decodeRating(commentID int64, members []string) (*domain.Rating, error) {
	if len(members) == 0 {
		return nil, nil
	}

	rating := domain.NewRating(commentID)
	for _, member := range members {
		v, err := decodeVote(member)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", ratingKey(commentID), err)
		}
		if rating.HasVote(v.UserID()) {
			return nil, fmt.Errorf("decoding %s: %w: user %d has more than one vote",
				ratingKey(commentID), domain.ErrCorruptData, v.UserID())
		}
		rating.AddVote(v)
	}

	return rating, nil
}

// ratingDiff is the set of member changes that turns the stored votes into
// the wanted votes.
type ratingDiff struct {
	add []any
	rem []any
}

func (d ratingDiff) empty() bool {
	return len(d.add) == 0 && len(d.rem) == 0
}

// diffRatings compares votes by user. Users only in wanted are added, users
// only in stored are removed, and users whose score changed have the old
// member removed and the new one added. Members are sorted by user ID.
func diffRatings(stored, wanted *domain.Rating) ratingDiff {
	var d ratingDiff

	var storedVotes map[int64]domain.Vote
	if stored != nil {
		storedVotes = stored.Votes()
	}
	wantedVotes := wanted.Votes()

	for _, userID := range sortedUserIDs(wantedVotes) {
		v := wantedVotes[userID]
		old, ok := storedVotes[userID]
		switch {
		case !ok:
			d.add = append(d.add, encodeVote(v))
		case old.Action() != v.Action():
			d.rem = append(d.rem, encodeVote(old))
			d.add = append(d.add, encodeVote(v))
		}
	}

	for _, userID := range sortedUserIDs(storedVotes) {
		if _, ok := wantedVotes[userID]; !ok {
			d.rem = append(d.rem, encodeVote(storedVotes[userID]))
		}
	}

	return d
}

func sortedUserIDs(votes map[int64]domain.Vote) []int64 {
	return slices.Sorted(maps.Keys(votes))
}
