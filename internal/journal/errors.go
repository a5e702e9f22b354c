package journal

import (
	"fmt"

	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

var (
	ErrEntryNotFound    = fmt.Errorf("%w: journal entry", apperrors.ErrNotFound)
	ErrMissingPlantName = fmt.Errorf("%w: plant name is required", apperrors.ErrInvalidArgument)
	ErrInvalidFilter    = fmt.Errorf("%w: filter must be all, favorites or a plant type", apperrors.ErrInvalidArgument)
	ErrInvalidScore     = fmt.Errorf("%w: confidence score must be between 0 and 1", apperrors.ErrInvalidArgument)
	ErrMissingUserID    = fmt.Errorf("%w: user id is required", apperrors.ErrInvalidArgument)
)
