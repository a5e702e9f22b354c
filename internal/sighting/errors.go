package sighting

import (
	"fmt"

	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

var (
	ErrInvalidLatitude   = fmt.Errorf("%w: latitude must be between -90 and 90", apperrors.ErrInvalidArgument)
	ErrInvalidLongitude  = fmt.Errorf("%w: longitude must be between -180 and 180", apperrors.ErrInvalidArgument)
	ErrUnknownSpecies    = fmt.Errorf("%w: unknown species", apperrors.ErrInvalidArgument)
	ErrNoInvasiveSpecies = fmt.Errorf("%w: no invasive species found", apperrors.ErrNotFound)
	ErrMissingUserID     = fmt.Errorf("%w: user id is required", apperrors.ErrInvalidArgument)
)
