package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"employees-api/internal/apperror"
)

var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// fieldNames maps EmployeeInput fields to their wire names.
var fieldNames = map[string]string{
	"Name":       "name",
	"Email":      "email",
	"Department": "department",
	"Position":   "position",
	"Salary":     "salary",
	"HireDate":   "hire_date",
	"Phone":      "phone",
}

func validateInput(input EmployeeInput) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate employee input: %w", err)
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		name, ok := fieldNames[fieldErr.StructField()]
		if !ok {
			name = fieldErr.Field()
		}
		missing = append(missing, name)
	}
	return apperror.MissingFields(missing)
}
