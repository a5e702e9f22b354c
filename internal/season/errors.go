package season

import (
	"fmt"

	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

var (
	// ErrInvalidMonth indicates a month outside 1-12.
	ErrInvalidMonth = fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrInvalidArgument)
	// ErrUnknownSeason indicates a season name other than spring, summer, fall or winter.
	ErrUnknownSeason = fmt.Errorf("%w: season must be one of spring, summer, fall, winter", apperrors.ErrInvalidArgument)
)
