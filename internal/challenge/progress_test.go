package challenge

import "testing"

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name      string
		progress  *Progress
		goal      int
		wantCount int
		wantPct   int
		wantDone  bool
	}{
		{name: "partial", progress: &Progress{CurrentCount: 3}, goal: 5, wantCount: 3, wantPct: 60},
		{name: "exactly complete", progress: &Progress{CurrentCount: 5}, goal: 5, wantCount: 5, wantPct: 100, wantDone: true},
		{name: "over goal is capped", progress: &Progress{CurrentCount: 12}, goal: 5, wantCount: 12, wantPct: 100, wantDone: true},
		{name: "no progress row", progress: nil, goal: 10, wantCount: 0, wantPct: 0},
		{name: "zero goal", progress: nil, goal: 0, wantCount: 0, wantPct: 100, wantDone: true},
		{name: "negative goal", progress: &Progress{CurrentCount: 1}, goal: -3, wantCount: 1, wantPct: 100, wantDone: true},
		{name: "rounds half up", progress: &Progress{CurrentCount: 1}, goal: 8, wantCount: 1, wantPct: 13},
		{name: "rounds down", progress: &Progress{CurrentCount: 1}, goal: 3, wantCount: 1, wantPct: 33},
		{name: "negative count clamps", progress: &Progress{CurrentCount: -4}, goal: 4, wantCount: 0, wantPct: 0},
		{name: "huge count stays in range", progress: &Progress{CurrentCount: 1 << 62}, goal: 3, wantCount: 1 << 62, wantPct: 100, wantDone: true},
		{name: "just below goal rounds to 100 but stays open", progress: &Progress{CurrentCount: 999}, goal: 1000, wantCount: 999, wantPct: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ComputeProgress(tt.progress, Challenge{GoalCount: tt.goal})
			if view.CurrentCount != tt.wantCount || view.Percent != tt.wantPct || view.Completed != tt.wantDone {
				t.Fatalf("got %+v, want count=%d percent=%d completed=%t", view, tt.wantCount, tt.wantPct, tt.wantDone)
			}
			wantState := StateInProgress
			if tt.wantDone {
				wantState = StateCompleted
			}
			if view.State != wantState {
				t.Fatalf("state = %q, want %q", view.State, wantState)
			}
			if view.Percent < 0 || view.Percent > 100 {
				t.Fatalf("percent out of range: %d", view.Percent)
			}
		})
	}
}

func TestComputeProgressIgnoresStoredFlag(t *testing.T) {
	stale := &Progress{CurrentCount: 5, Completed: true}

	view := ComputeProgress(stale, Challenge{GoalCount: 10})
	if view.Completed || view.State != StateInProgress {
		t.Fatalf("raising the goal must reopen the challenge, got %+v", view)
	}

	view = ComputeProgress(&Progress{CurrentCount: 10, Completed: false}, Challenge{GoalCount: 10})
	if !view.Completed {
		t.Fatalf("expected completion derived from counts, got %+v", view)
	}
}

func TestComputeProgressMonotonicInCount(t *testing.T) {
	c := Challenge{GoalCount: 7}
	prev := -1
	for count := 0; count <= 20; count++ {
		view := ComputeProgress(&Progress{CurrentCount: count}, c)
		if view.Percent < prev {
			t.Fatalf("percent decreased at count %d: %d < %d", count, view.Percent, prev)
		}
		prev = view.Percent
	}
}

func TestComputeLevelProgress(t *testing.T) {
	tests := []struct {
		stats UserStats
		want  LevelProgress
	}{
		{UserStats{TotalPoints: 250, Level: 3}, LevelProgress{Level: 3, ProgressToNext: 50, PointsForNext: 300}},
		{UserStats{TotalPoints: 0, Level: 1}, LevelProgress{Level: 1, ProgressToNext: 0, PointsForNext: 100}},
		{UserStats{TotalPoints: 99, Level: 1}, LevelProgress{Level: 1, ProgressToNext: 99, PointsForNext: 100}},
		{UserStats{TotalPoints: -20, Level: 0}, LevelProgress{Level: 0, ProgressToNext: 80, PointsForNext: 0}},
	}
	for _, tt := range tests {
		if got := ComputeLevelProgress(tt.stats); got != tt.want {
			t.Errorf("ComputeLevelProgress(%+v) = %+v, want %+v", tt.stats, got, tt.want)
		}
	}
}
