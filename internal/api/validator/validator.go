package validator

import (
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field string
	Tag   string
}

type XValidator struct {
	validator *validator.Validate
}

func New() *XValidator {
	return &XValidator{validator: validator.New()}
}

func (x *XValidator) Validate(data interface{}) []FieldError {
	var fieldErrors []FieldError

	errs := x.validator.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			fieldErrors = append(fieldErrors, FieldError{
				Field: err.Field(),
				Tag:   err.Tag(),
			})
		}
	}
	return fieldErrors
}
