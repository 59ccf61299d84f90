// Package validator wires go-playground/validator into Echo's request
// validation hook.
package validator

import (
	domainerrors "timesheet/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator adapts a validator.Validate instance to echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New constructs a Validator with struct tag validation enabled.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Violations surface as the validation
// AppError so the central error handler renders them consistently.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
