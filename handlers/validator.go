package handlers

import "github.com/go-playground/validator/v10"

// RequestValidator plugs go-playground/validator into Echo. Violations
// surface as validator.ValidationErrors and become 422 responses in the
// error handler.
type RequestValidator struct {
	validate *validator.Validate
}

func NewValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
