package challenge

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plantpal/plantpal-service/internal/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a challenge repository over the challenges, user_challenge_progress
// and user_stats tables.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListActiveChallenges(ctx context.Context) ([]Challenge, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, title, description, challenge_type, goal_count, points_reward, icon, is_active
		FROM challenges
		WHERE is_active
		ORDER BY points_reward DESC`)
	if err != nil {
		return nil, fmt.Errorf("query challenges: %w", err)
	}
	defer rows.Close()

	challenges := make([]Challenge, 0)
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan challenge: %w", err)
		}
		challenges = append(challenges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate challenges: %w", err)
	}
	return challenges, nil
}

func (r *postgresRepository) ListProgress(ctx context.Context, userID string) ([]Progress, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id::text, challenge_id::text, current_count, completed
		FROM user_challenge_progress
		WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("query challenge progress: %w", err)
	}
	defer rows.Close()

	progress := make([]Progress, 0)
	for rows.Next() {
		var p Progress
		if err := rows.Scan(&p.UserID, &p.ChallengeID, &p.CurrentCount, &p.Completed); err != nil {
			return nil, fmt.Errorf("scan challenge progress: %w", err)
		}
		progress = append(progress, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate challenge progress: %w", err)
	}
	return progress, nil
}

func scanChallenge(row pgx.Row) (Challenge, error) {
	var (
		c                 Challenge
		description, icon *string
	)
	if err := row.Scan(&c.ID, &c.Title, &description, &c.Category, &c.GoalCount, &c.PointsReward, &icon, &c.Active); err != nil {
		return Challenge{}, err
	}
	c.Description = database.Text(description)
	c.Icon = database.Text(icon)
	return c, nil
}

const statsColumns = `user_id::text, total_points, level, streak_days,
	identifications_count, reports_count, achievement_count, created_at`

func scanStats(row pgx.Row) (UserStats, error) {
	var s UserStats
	err := row.Scan(&s.UserID, &s.TotalPoints, &s.Level, &s.StreakDays,
		&s.IdentificationsCount, &s.ReportsCount, &s.AchievementCount, &s.CreatedAt)
	return s, err
}

func (r *postgresRepository) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1`, userID)
	stats, err := scanStats(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}
	return &stats, nil
}

func (r *postgresRepository) TopUserStats(ctx context.Context, limit int) ([]UserStats, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+statsColumns+`
		FROM user_stats
		ORDER BY total_points DESC, created_at ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	stats := make([]UserStats, 0, limit)
	for rows.Next() {
		s, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard: %w", err)
	}
	return stats, nil
}
