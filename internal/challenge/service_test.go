package challenge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	listActiveFn   func(context.Context) ([]Challenge, error)
	listProgressFn func(context.Context, string) ([]Progress, error)
	getStatsFn     func(context.Context, string) (*UserStats, error)
	topStatsFn     func(context.Context, int) ([]UserStats, error)
}

func (f *fakeRepo) ListActiveChallenges(ctx context.Context) ([]Challenge, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepo) ListProgress(ctx context.Context, userID string) ([]Progress, error) {
	if f.listProgressFn != nil {
		return f.listProgressFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeRepo) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	if f.getStatsFn != nil {
		return f.getStatsFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeRepo) TopUserStats(ctx context.Context, limit int) ([]UserStats, error) {
	if f.topStatsFn != nil {
		return f.topStatsFn(ctx, limit)
	}
	return nil, nil
}

func seededRepository() *MemoryRepository {
	repo := NewMemoryRepository()
	repo.PutChallenge(Challenge{ID: "c-id", Title: "Identify 5 plants", Category: CategoryIdentification, GoalCount: 5, PointsReward: 50, Icon: "Target", Active: true})
	repo.PutChallenge(Challenge{ID: "c-rep", Title: "Report 3 invasives", Category: CategoryReporting, GoalCount: 3, PointsReward: 100, Icon: "Shield", Active: true})
	repo.PutChallenge(Challenge{ID: "c-old", Title: "Retired", Category: CategoryRecipe, GoalCount: 1, PointsReward: 500, Active: false})
	repo.PutProgress(Progress{UserID: "u1", ChallengeID: "c-id", CurrentCount: 3})
	repo.PutProgress(Progress{UserID: "u1", ChallengeID: "c-rep", CurrentCount: 3, Completed: false})
	repo.PutProgress(Progress{UserID: "u2", ChallengeID: "c-id", CurrentCount: 5})
	repo.PutStats(UserStats{UserID: "u1", TotalPoints: 250, Level: 3})
	repo.PutStats(UserStats{UserID: "u2", TotalPoints: 400, Level: 4})
	repo.PutStats(UserStats{UserID: "u3", TotalPoints: 250, Level: 3})
	return repo
}

func TestServiceBoard(t *testing.T) {
	svc, err := NewService(seededRepository())
	require.NoError(t, err)

	board, err := svc.Board(context.Background(), "u1", 10)
	require.NoError(t, err)

	require.Len(t, board.Challenges, 2)
	report := board.Challenges[0]
	assert.Equal(t, "c-rep", report.Challenge.ID, "highest reward first")
	assert.Equal(t, ActionMapReport, report.Action)
	assert.Equal(t, "shield", report.Icon)
	assert.True(t, report.Progress.Completed)
	assert.Equal(t, StateCompleted, report.Progress.State)

	identify := board.Challenges[1]
	assert.Equal(t, ActionIdentify, identify.Action)
	assert.Equal(t, 60, identify.Progress.Percent)
	assert.False(t, identify.Progress.Completed)

	require.Len(t, board.Leaderboard, 3)
	assert.Equal(t, []string{"u2", "u1", "u3"}, userIDs(board.Leaderboard))

	require.NotNil(t, board.Stats)
	require.NotNil(t, board.Level)
	assert.Equal(t, LevelProgress{Level: 3, ProgressToNext: 50, PointsForNext: 300}, *board.Level)
}

func TestServiceBoardNewUser(t *testing.T) {
	svc, err := NewService(seededRepository())
	require.NoError(t, err)

	board, err := svc.Board(context.Background(), "newcomer", 2)
	require.NoError(t, err)

	for _, card := range board.Challenges {
		assert.Zero(t, card.Progress.CurrentCount)
		assert.Equal(t, StateInProgress, card.Progress.State)
	}
	assert.Len(t, board.Leaderboard, 2)
	assert.Nil(t, board.Stats)
	assert.Nil(t, board.Level)
}

func TestServiceBoardValidatesInput(t *testing.T) {
	svc, err := NewService(&fakeRepo{})
	require.NoError(t, err)

	_, err = svc.Board(context.Background(), "", 10)
	assert.ErrorIs(t, err, ErrMissingUserID)

	_, err = svc.Board(context.Background(), "u1", 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestServiceBoardPropagatesRepositoryErrors(t *testing.T) {
	wantErr := errors.New("progress store unavailable")
	svc, err := NewService(&fakeRepo{
		listProgressFn: func(context.Context, string) ([]Progress, error) { return nil, wantErr },
	})
	require.NoError(t, err)

	_, err = svc.Board(context.Background(), "u1", 10)
	assert.ErrorIs(t, err, wantErr)
}

func TestServiceLeaderboard(t *testing.T) {
	var gotLimit int
	svc, err := NewService(&fakeRepo{
		topStatsFn: func(_ context.Context, limit int) ([]UserStats, error) {
			gotLimit = limit
			return []UserStats{stat("x", 5), stat("y", 9)}, nil
		},
	})
	require.NoError(t, err)

	entries, err := svc.Leaderboard(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, []string{"y", "x"}, userIDs(entries))

	_, err = svc.Leaderboard(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestNewServiceRequiresRepository(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}

func TestBuildCardsJoinsOnChallengeID(t *testing.T) {
	challenges := []Challenge{
		{ID: "a", GoalCount: 2, Category: CategoryRecipe, Icon: "ChefHat"},
		{ID: "b", GoalCount: 4, Category: "unknown"},
	}
	progress := []Progress{{ChallengeID: "b", CurrentCount: 1}, {ChallengeID: "zzz", CurrentCount: 9}}

	cards := BuildCards(challenges, progress)
	require.Len(t, cards, 2)
	assert.Equal(t, 0, cards[0].Progress.CurrentCount)
	assert.Equal(t, ActionRecipes, cards[0].Action)
	assert.Equal(t, "chef-hat", cards[0].Icon)
	assert.Equal(t, 25, cards[1].Progress.Percent)
	assert.Equal(t, ActionDashboard, cards[1].Action)
	assert.Equal(t, DefaultIcon, cards[1].Icon)
}
