package challenge

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	challengesCollection = "challenges"
	progressCollection   = "user_challenge_progress"
	statsCollection      = "user_stats"
)

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository creates a challenge repository backed by Firestore.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) ListActiveChallenges(ctx context.Context) ([]Challenge, error) {
	iter := r.client.Collection(challengesCollection).
		Where("is_active", "==", true).
		OrderBy("points_reward", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	challenges := make([]Challenge, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var c Challenge
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("unmarshal challenge %s: %w", doc.Ref.ID, err)
		}
		c.ID = doc.Ref.ID
		challenges = append(challenges, c)
	}
	return challenges, nil
}

func (r *firestoreRepository) ListProgress(ctx context.Context, userID string) ([]Progress, error) {
	iter := r.client.Collection(progressCollection).
		Where("user_id", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	rows := make([]Progress, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var p Progress
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("unmarshal progress %s: %w", doc.Ref.ID, err)
		}
		rows = append(rows, p)
	}
	return rows, nil
}

func (r *firestoreRepository) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	doc, err := r.client.Collection(statsCollection).Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats UserStats
	if err := doc.DataTo(&stats); err != nil {
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}
	stats.UserID = userID
	return &stats, nil
}

func (r *firestoreRepository) TopUserStats(ctx context.Context, limit int) ([]UserStats, error) {
	iter := r.client.Collection(statsCollection).
		OrderBy("total_points", firestore.Desc).
		OrderBy("created_at", firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	stats := make([]UserStats, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var s UserStats
		if err := doc.DataTo(&s); err != nil {
			return nil, fmt.Errorf("unmarshal stats %s: %w", doc.Ref.ID, err)
		}
		s.UserID = doc.Ref.ID
		stats = append(stats, s)
	}
	return stats, nil
}
