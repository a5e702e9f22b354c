package httpapi

import (
	"context"
	"net/http"
)

func (h *handler) getChallengesMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	limit, err := parseLimit(r, h.LeaderboardLimit)
	if err != nil {
		h.fail(w, r, "invalid limit", err, userID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	board, err := h.Challenges.Board(ctx, userID, limit)
	if err != nil {
		h.fail(w, r, "failed to load challenges", err, userID)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *handler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	limit, err := parseLimit(r, h.LeaderboardLimit)
	if err != nil {
		h.fail(w, r, "invalid limit", err, userID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	entries, err := h.Challenges.Leaderboard(ctx, limit)
	if err != nil {
		h.fail(w, r, "failed to load leaderboard", err, userID)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leaderboard": entries})
}
