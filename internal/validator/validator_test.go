package validator

import (
	"testing"

	domainerrors "refuge/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"required,role"`
	Description string `json:"description" validate:"min=20"`
	Age         int    `json:"age" validate:"gte=0"`
	RefugeName  string `json:"refugeName" validate:"required_if=Role refuge"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	valid := sample{
		Email:       "a@b.fr",
		Role:        "user",
		Description: "Un chat très affectueux",
	}
	assert.NoError(t, v.Struct(valid))

	err := v.Struct(sample{Email: "nope", Role: "admin", Description: "court", Age: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "email must be a valid email")
	assert.Contains(t, appErr.Details(), "role must be user or refuge")
	assert.Contains(t, appErr.Details(), "description must be at least 20 long")
	assert.Contains(t, appErr.Details(), "age must be at least 0")
}

func TestValidator_RequiredIf(t *testing.T) {
	v := New()

	err := v.Validate(sample{Email: "a@b.fr", Role: "refuge", Description: "Un refuge près de Lyon, ouvert"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refugeName is required for this role")
}
