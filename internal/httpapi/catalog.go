package httpapi

import (
	"context"
	"net/http"
)

func (h *handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	recipes, err := h.Recipes.List(ctx)
	if err != nil {
		h.fail(w, r, "failed to list recipes", err, userID)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recipes": recipes})
}

// browseCareGuides serves ?q= as a name search and ?plant= as an exact selection.
func (h *handler) browseCareGuides(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	query := r.URL.Query()
	page, err := h.CareGuides.Browse(ctx, query.Get("q"), query.Get("plant"))
	if err != nil {
		h.fail(w, r, "failed to load care guides", err, userID)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	stats, err := h.Dashboard.Stats(ctx, userID)
	if err != nil {
		h.fail(w, r, "failed to load dashboard", err, userID)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
