package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plantpal/plantpal-service/internal/journal"
	"github.com/plantpal/plantpal-service/internal/season"
)

type createJournalRequest struct {
	PlantName       string   `json:"plant_name" validate:"required,max=200"`
	CommonName      string   `json:"common_name" validate:"max=200"`
	ScientificName  string   `json:"scientific_name" validate:"max=200"`
	ImageURL        string   `json:"image_url" validate:"omitempty,url"`
	Notes           string   `json:"notes" validate:"max=2000"`
	LocationName    string   `json:"location_name" validate:"max=200"`
	ConfidenceScore *float64 `json:"confidence_score" validate:"omitempty,gte=0,lte=1"`
	PlantType       string   `json:"plant_type" validate:"omitempty,oneof=edible invasive medicinal ornamental"`
}

func (h *handler) listJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	filter, err := journal.ParseFilter(r.URL.Query().Get("q"), r.URL.Query().Get("filter"))
	if err != nil {
		h.fail(w, r, "invalid journal filter", err, userID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	listing, err := h.Journal.List(ctx, userID, filter)
	if err != nil {
		h.fail(w, r, "failed to list journal", err, userID)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *handler) createJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body createJournalRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	entry, err := h.Journal.Create(ctx, userID, journal.NewEntry{
		PlantName:       body.PlantName,
		CommonName:      body.CommonName,
		ScientificName:  body.ScientificName,
		ImageURL:        body.ImageURL,
		Notes:           body.Notes,
		LocationName:    body.LocationName,
		ConfidenceScore: body.ConfidenceScore,
		Category:        season.ParseCategory(body.PlantType),
	})
	if err != nil {
		h.fail(w, r, "failed to create journal entry", err, userID)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	entry, err := h.Journal.ToggleFavorite(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "failed to toggle favorite", err, userID)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *handler) deleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	if err := h.Journal.Delete(ctx, userID, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "failed to delete journal entry", err, userID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
