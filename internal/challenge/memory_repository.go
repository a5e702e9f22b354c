package challenge

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryRepository keeps challenge data in process memory for local development and tests.
type MemoryRepository struct {
	mu         sync.RWMutex
	challenges []Challenge
	progress   map[string]map[string]Progress // userID -> challengeID -> Progress
	stats      []UserStats                    // arrival order
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{progress: make(map[string]map[string]Progress)}
}

// PutChallenge inserts or replaces a challenge by ID.
func (r *MemoryRepository) PutChallenge(c Challenge) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.challenges {
		if r.challenges[i].ID == c.ID {
			r.challenges[i] = c
			return
		}
	}
	r.challenges = append(r.challenges, c)
}

// PutProgress inserts or replaces the progress row for (UserID, ChallengeID).
func (r *MemoryRepository) PutProgress(p Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userProgress, ok := r.progress[p.UserID]
	if !ok {
		userProgress = make(map[string]Progress)
		r.progress[p.UserID] = userProgress
	}
	userProgress[p.ChallengeID] = p
}

// PutStats inserts or replaces a user's stats. Replacing keeps the original arrival position.
func (r *MemoryRepository) PutStats(s UserStats) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.stats {
		if r.stats[i].UserID == s.UserID {
			r.stats[i] = s
			return
		}
	}
	r.stats = append(r.stats, s)
}

func (r *MemoryRepository) ListActiveChallenges(_ context.Context) ([]Challenge, error) {
	r.mu.RLock()
	active := make([]Challenge, 0, len(r.challenges))
	for _, c := range r.challenges {
		if c.Active {
			active = append(active, c)
		}
	}
	r.mu.RUnlock()

	slices.SortStableFunc(active, func(a, b Challenge) int {
		return cmp.Compare(b.PointsReward, a.PointsReward)
	})
	return active, nil
}

func (r *MemoryRepository) ListProgress(_ context.Context, userID string) ([]Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]Progress, 0, len(r.progress[userID]))
	for _, p := range r.progress[userID] {
		rows = append(rows, p)
	}
	slices.SortFunc(rows, func(a, b Progress) int {
		return cmp.Compare(a.ChallengeID, b.ChallengeID)
	})
	return rows, nil
}

func (r *MemoryRepository) GetUserStats(_ context.Context, userID string) (*UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stats {
		if s.UserID == userID {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) TopUserStats(_ context.Context, limit int) ([]UserStats, error) {
	r.mu.RLock()
	snapshot := slices.Clone(r.stats)
	r.mu.RUnlock()

	slices.SortStableFunc(snapshot, func(a, b UserStats) int {
		return cmp.Compare(b.TotalPoints, a.TotalPoints)
	})
	if limit > 0 && len(snapshot) > limit {
		snapshot = snapshot[:limit]
	}
	return snapshot, nil
}
