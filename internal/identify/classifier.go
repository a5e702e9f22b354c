package identify

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/plantpal/plantpal-service/internal/season"
	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

// ErrMissingImagePath indicates an empty image reference.
var ErrMissingImagePath = fmt.Errorf("%w: imagePath is required", apperrors.ErrInvalidArgument)

// Classification is the identification result for one image.
type Classification struct {
	Species     string          `json:"species"`
	Category    season.Category `json:"type"`
	Confidence  float64         `json:"confidence"`
	Description string          `json:"description"`
	SafetyNotes string          `json:"safetyNotes"`
}

// Picker returns an index in [0, n).
type Picker func(n int) int

// Classifier identifies plants from stored images.
type Classifier struct {
	pick Picker
}

// NewClassifier creates a classifier. A nil picker draws uniformly at random.
func NewClassifier(pick Picker) *Classifier {
	if pick == nil {
		pick = rand.IntN
	}
	return &Classifier{pick: pick}
}

// Classify returns a classification for the image stored at imagePath.
func (c *Classifier) Classify(ctx context.Context, imagePath string) (Classification, error) {
	if strings.TrimSpace(imagePath) == "" {
		return Classification{}, ErrMissingImagePath
	}
	if err := ctx.Err(); err != nil {
		return Classification{}, err
	}

	n := len(mockClassifications)
	i := c.pick(n)
	if i < 0 || i >= n {
		return Classification{}, fmt.Errorf("classifier picked index %d outside [0, %d)", i, n)
	}
	return mockClassifications[i], nil
}

// Known returns a copy of every classification the classifier can produce.
func Known() []Classification {
	out := make([]Classification, len(mockClassifications))
	copy(out, mockClassifications)
	return out
}
