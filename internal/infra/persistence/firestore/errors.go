package firestore

import (
	domainerrors "refuge/internal/domain/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const service = "firestore"

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func backingError(op string, err error) error {
	return domainerrors.NewBackingServiceError(service, op, err)
}
