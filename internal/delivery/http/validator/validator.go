// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "cliphub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator.Validate instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New builds the request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
