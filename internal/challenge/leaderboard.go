package challenge

import (
	"cmp"
	"fmt"
	"slices"
)

// RankLeaderboard orders a copy of stats by total points, highest first, keeping input order on ties,
// and assigns ranks 1..N by position before truncating to limit.
func RankLeaderboard(stats []UserStats, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	sorted := slices.Clone(stats)
	slices.SortStableFunc(sorted, func(a, b UserStats) int {
		return cmp.Compare(b.TotalPoints, a.TotalPoints)
	})

	n := min(limit, len(sorted))
	entries := make([]LeaderboardEntry, n)
	for i := range n {
		entries[i] = LeaderboardEntry{
			Rank:      i + 1,
			Badge:     RankBadge(i + 1),
			UserStats: sorted[i],
		}
	}
	return entries, nil
}

// RankBadge names the podium badge for rank, or "" below third place.
func RankBadge(rank int) string {
	switch rank {
	case 1:
		return "crown"
	case 2:
		return "silver"
	case 3:
		return "bronze"
	default:
		return ""
	}
}
