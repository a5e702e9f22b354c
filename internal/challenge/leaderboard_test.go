package challenge

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

func stat(id string, points int) UserStats {
	return UserStats{UserID: id, TotalPoints: points, Level: 1}
}

func userIDs(entries []LeaderboardEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.UserID
	}
	return ids
}

func TestRankLeaderboardStableOnTies(t *testing.T) {
	input := []UserStats{stat("A", 50), stat("B", 80), stat("C", 50)}

	entries, err := RankLeaderboard(input, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A", "C"}, userIDs(entries))
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
	assert.Equal(t, "crown", entries[0].Badge)
	assert.Equal(t, "silver", entries[1].Badge)
	assert.Equal(t, "bronze", entries[2].Badge)
}

func TestRankLeaderboardTruncatesAfterRanking(t *testing.T) {
	input := []UserStats{stat("low", 1), stat("mid", 10), stat("high", 100), stat("top", 1000)}

	entries, err := RankLeaderboard(input, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"top", "high"}, userIDs(entries))
}

func TestRankLeaderboardDoesNotMutateInput(t *testing.T) {
	input := []UserStats{stat("A", 1), stat("B", 2)}
	before := append([]UserStats(nil), input...)

	_, err := RankLeaderboard(input, 5)
	require.NoError(t, err)
	if diff := cmp.Diff(before, input); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestRankLeaderboardIdempotent(t *testing.T) {
	input := []UserStats{stat("A", 30), stat("B", 30), stat("C", 90), stat("D", 10)}

	first, err := RankLeaderboard(input, 10)
	require.NoError(t, err)

	reranked := make([]UserStats, len(first))
	for i, e := range first {
		reranked[i] = e.UserStats
	}
	second, err := RankLeaderboard(reranked, 10)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("ranking a ranked board changed it (-first +second):\n%s", diff)
	}
}

func TestRankLeaderboardEmptyInput(t *testing.T) {
	entries, err := RankLeaderboard(nil, 10)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestRankLeaderboardRejectsNonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		_, err := RankLeaderboard([]UserStats{stat("A", 1)}, limit)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidLimit))
		assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
	}
}

func TestRankBadge(t *testing.T) {
	assert.Equal(t, "crown", RankBadge(1))
	assert.Equal(t, "silver", RankBadge(2))
	assert.Equal(t, "bronze", RankBadge(3))
	assert.Empty(t, RankBadge(4))
	assert.Empty(t, RankBadge(0))
}
