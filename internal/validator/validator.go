// Package validator checks input structs against their `validate` tags and
// reports failures as validation errors.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared go-playground validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that names fields by their json tag and knows the
// domain enums.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})

	return &Validator{validate: v}
}

// Struct validates s and returns ErrValidationFailed with one detail per
// failing field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !asValidationErrors(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // returned unwrapped by Struct
	if ok {
		*target = fieldErrs
	}

	return ok
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s long", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "role":
		return fmt.Sprintf("%s must be user or refuge", fe.Field())
	case "required_if":
		return fmt.Sprintf("%s is required for this role", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
