package challenge

import "math"

// ComputeProgress derives the caller's progress on c. A nil progress means no activity yet.
// The stored Completed flag is ignored; completion is always current >= goal.
// A goal of zero or less is trivially satisfied.
func ComputeProgress(progress *Progress, c Challenge) ProgressView {
	current := 0
	if progress != nil && progress.CurrentCount > 0 {
		current = progress.CurrentCount
	}

	view := ProgressView{CurrentCount: current, GoalCount: c.GoalCount}
	switch {
	case c.GoalCount <= 0, current >= c.GoalCount:
		view.Percent = 100
		view.Completed = true
	default:
		view.Percent = int(math.Round(math.Min(100, float64(current)*100/float64(c.GoalCount))))
	}

	view.State = StateInProgress
	if view.Completed {
		view.State = StateCompleted
	}
	return view
}

// ComputeLevelProgress applies the fixed 100-points-per-level rule to stats.
func ComputeLevelProgress(stats UserStats) LevelProgress {
	progress := stats.TotalPoints % 100
	if progress < 0 {
		progress += 100
	}
	return LevelProgress{
		Level:          stats.Level,
		ProgressToNext: progress,
		PointsForNext:  stats.Level * 100,
	}
}
