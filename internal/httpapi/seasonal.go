package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/plantpal/plantpal-service/internal/season"
	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

func (h *handler) listSeasonalPlants(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	rawMonth, rawSeason := query.Get("month"), query.Get("season")
	if rawMonth != "" && rawSeason != "" {
		writeError(w, r, http.StatusBadRequest, apperrors.CodeBadRequest, "month and season are mutually exclusive")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	var (
		listing season.Listing
		err     error
	)
	switch {
	case rawMonth != "":
		month, convErr := strconv.Atoi(rawMonth)
		if convErr != nil {
			h.fail(w, r, "invalid month", season.ErrInvalidMonth, userID)
			return
		}
		listing, err = h.Season.ByMonth(ctx, month)
	case rawSeason != "":
		s, parseErr := season.ParseSeason(rawSeason)
		if parseErr != nil {
			h.fail(w, r, "invalid season", parseErr, userID)
			return
		}
		listing, err = h.Season.BySeason(ctx, s)
	default:
		listing, err = h.Season.Current(ctx)
	}
	if err != nil {
		h.fail(w, r, "failed to list seasonal plants", err, userID)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}
