package httpapi

import (
	"context"
	"net/http"

	"github.com/plantpal/plantpal-service/internal/sighting"
)

type submitSightingRequest struct {
	SpeciesID string   `json:"species_id" validate:"omitempty,max=64"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Notes     string   `json:"notes" validate:"max=2000"`
}

func (h *handler) listSightings(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	reports, err := h.Sightings.List(ctx)
	if err != nil {
		h.fail(w, r, "failed to list sightings", err, userID)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func (h *handler) submitSighting(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body submitSightingRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	report, err := h.Sightings.Submit(ctx, userID, sighting.NewReport{
		SpeciesID: body.SpeciesID,
		Latitude:  *body.Latitude,
		Longitude: *body.Longitude,
		Notes:     body.Notes,
	})
	if err != nil {
		h.fail(w, r, "failed to submit sighting", err, userID)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}
