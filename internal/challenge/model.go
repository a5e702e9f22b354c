package challenge

import (
	"context"
	"time"
)

// Category identifies which user activity advances a challenge.
type Category string

const (
	CategoryIdentification Category = "identification"
	CategoryReporting      Category = "reporting"
	CategoryRecipe         Category = "recipe"
	CategoryOther          Category = "other"
)

// Challenge is a catalog entry describing a goal and its reward.
type Challenge struct {
	ID           string   `json:"id" firestore:"id"`
	Title        string   `json:"title" firestore:"title"`
	Description  string   `json:"description" firestore:"description"`
	Category     Category `json:"challenge_type" firestore:"challenge_type"`
	GoalCount    int      `json:"goal_count" firestore:"goal_count"`
	PointsReward int      `json:"points_reward" firestore:"points_reward"`
	Icon         string   `json:"icon" firestore:"icon"`
	Active       bool     `json:"is_active" firestore:"is_active"`
}

// Progress is the stored per-user counter for a challenge. Completed is advisory only.
type Progress struct {
	UserID       string `json:"user_id" firestore:"user_id"`
	ChallengeID  string `json:"challenge_id" firestore:"challenge_id"`
	CurrentCount int    `json:"current_count" firestore:"current_count"`
	Completed    bool   `json:"completed" firestore:"completed"`
}

// State is the derived lifecycle of a challenge for one user.
type State string

const (
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// ProgressView is the presentational progress of one challenge.
type ProgressView struct {
	CurrentCount int   `json:"current_count"`
	GoalCount    int   `json:"goal_count"`
	Percent      int   `json:"percent"`
	Completed    bool  `json:"completed"`
	State        State `json:"state"`
}

// UserStats is the per-user gamification summary.
type UserStats struct {
	UserID               string    `json:"user_id" firestore:"user_id"`
	TotalPoints          int       `json:"total_points" firestore:"total_points"`
	Level                int       `json:"level" firestore:"level"`
	StreakDays           int       `json:"streak_days" firestore:"streak_days"`
	IdentificationsCount int       `json:"identifications_count" firestore:"identifications_count"`
	ReportsCount         int       `json:"reports_count" firestore:"reports_count"`
	AchievementCount     int       `json:"achievement_count" firestore:"achievement_count"`
	CreatedAt            time.Time `json:"-" firestore:"created_at"`
}

// LevelProgress describes how far a user is into the current level.
type LevelProgress struct {
	Level          int `json:"level"`
	ProgressToNext int `json:"progress_to_next"`
	PointsForNext  int `json:"points_for_next"`
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	Badge string `json:"badge,omitempty"`
	UserStats
}

// Card pairs a challenge with the caller's derived progress and navigation hints.
type Card struct {
	Challenge Challenge    `json:"challenge"`
	Progress  ProgressView `json:"progress"`
	Action    Action       `json:"action"`
	Icon      string       `json:"icon"`
}

// Board is the full challenges page for one user.
type Board struct {
	Challenges  []Card             `json:"challenges"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Stats       *UserStats         `json:"stats,omitempty"`
	Level       *LevelProgress     `json:"level,omitempty"`
}

// Repository returns snapshots of challenge data. It never computes progress.
type Repository interface {
	// ListActiveChallenges returns active challenges ordered by points reward, highest first.
	ListActiveChallenges(ctx context.Context) ([]Challenge, error)
	// ListProgress returns every stored progress row for userID.
	ListProgress(ctx context.Context, userID string) ([]Progress, error)
	// GetUserStats returns nil without error when the user has no stats yet.
	GetUserStats(ctx context.Context, userID string) (*UserStats, error)
	// TopUserStats returns up to limit stats ordered by total points descending, ties in arrival order.
	TopUserStats(ctx context.Context, limit int) ([]UserStats, error)
}
