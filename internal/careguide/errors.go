package careguide

import (
	"fmt"

	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

var ErrGuideNotFound = fmt.Errorf("%w: care guide", apperrors.ErrNotFound)
