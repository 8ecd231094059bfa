package errors

import (
	"context"
	"net/http"
	"testing"

	"refuge/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	err := errors.Wrap(ErrValidationFailed.WithDetails("message too short"), "submit adoption request")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "message too short")
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"image too large", ErrImageTooLarge, CodeImageTooLarge},
		{"wrapped validation", errors.Wrap(ErrValidationFailed, "ctx"), CodeValidation},
		{"not found", ErrNotFound.WithDetails("animal a1"), CodeNotFound},
		{"backing service", NewBackingServiceError("firestore", "insert", context.DeadlineExceeded), CodeBackingService},
		{"unclassified", errors.New("boom"), CodeBackingService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestBackingServiceError_UnwrapsCause(t *testing.T) {
	err := NewBackingServiceError("kvstore", "get", context.Canceled)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, err.Error(), "kvstore get failed")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}
