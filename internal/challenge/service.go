package challenge

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLeaderboardLimit is used when the caller has no explicit limit configured.
const DefaultLeaderboardLimit = 10

// Service assembles challenge boards from repository snapshots.
type Service struct {
	repo Repository
}

// NewService creates a challenge service.
func NewService(repo Repository) (*Service, error) {
	if repo == nil {
		return nil, errNilRepository
	}
	return &Service{repo: repo}, nil
}

// Board reads its repository snapshots concurrently and derives every presentational value from them.
func (s *Service) Board(ctx context.Context, userID string, limit int) (*Board, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	var (
		challenges []Challenge
		progress   []Progress
		stats      *UserStats
		top        []UserStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.repo.ListActiveChallenges(gctx)
		challenges = c
		return err
	})
	g.Go(func() error {
		p, err := s.repo.ListProgress(gctx, userID)
		progress = p
		return err
	})
	g.Go(func() error {
		st, err := s.repo.GetUserStats(gctx, userID)
		stats = st
		return err
	})
	g.Go(func() error {
		t, err := s.repo.TopUserStats(gctx, limit)
		top = t
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	leaderboard, err := RankLeaderboard(top, limit)
	if err != nil {
		return nil, err
	}

	board := &Board{
		Challenges:  BuildCards(challenges, progress),
		Leaderboard: leaderboard,
		Stats:       stats,
	}
	if stats != nil {
		level := ComputeLevelProgress(*stats)
		board.Level = &level
	}
	return board, nil
}

// Leaderboard returns the top limit users.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	top, err := s.repo.TopUserStats(ctx, limit)
	if err != nil {
		return nil, err
	}
	return RankLeaderboard(top, limit)
}

// BuildCards joins challenges with the caller's progress rows, keeping challenge order.
// Challenges without a progress row start at zero.
func BuildCards(challenges []Challenge, progress []Progress) []Card {
	byChallenge := make(map[string]Progress, len(progress))
	for _, p := range progress {
		byChallenge[p.ChallengeID] = p
	}

	cards := make([]Card, 0, len(challenges))
	for _, c := range challenges {
		var row *Progress
		if p, ok := byChallenge[c.ID]; ok {
			row = &p
		}
		cards = append(cards, Card{
			Challenge: c,
			Progress:  ComputeProgress(row, c),
			Action:    PickChallengeAction(c.Category),
			Icon:      ResolveIcon(c.Icon),
		})
	}
	return cards
}
