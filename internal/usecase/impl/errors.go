package impl

import (
	domainerrors "refuge/internal/domain/errors"

	"github.com/pkg/errors"
)

// asBackingError leaves errors that already carry a kind untouched and wraps
// anything else as a failure of service.
func asBackingError(service, op string, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewBackingServiceError(service, op, err)
}

func errValidation(details string) error {
	return domainerrors.ErrValidationFailed.WithDetails(details)
}
