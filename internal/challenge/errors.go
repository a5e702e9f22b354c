package challenge

import (
	"errors"
	"fmt"

	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

var (
	// ErrInvalidLimit indicates a non-positive leaderboard limit.
	ErrInvalidLimit = fmt.Errorf("%w: limit must be a positive integer", apperrors.ErrInvalidArgument)
	// ErrMissingUserID indicates a required user id was absent.
	ErrMissingUserID = fmt.Errorf("%w: user id is required", apperrors.ErrInvalidArgument)
	errNilRepository = errors.New("challenge: repository is required")
)
