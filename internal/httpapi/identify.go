package httpapi

import (
	"context"
	"net/http"
)

type classifyRequest struct {
	ImagePath string `json:"imagePath" validate:"required,max=1024"`
}

func (h *handler) classify(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body classifyRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), serviceTimeout)
	defer cancel()

	result, err := h.Classifier.Classify(ctx, body.ImagePath)
	if err != nil {
		h.fail(w, r, "failed to classify image", err, userID)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
