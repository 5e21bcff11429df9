// Package validation provides request shape checking ahead of the auth core.
// Handlers run it before any flow so the core can assume well-formed input.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/breakbuddy/pkg/util"
)

// Validator checks struct-tag constraints on request payloads.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator using json tag names in error output.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates the payload and converts failures into a single
// VALIDATION_FAILED error carrying the first field message plus details for
// every failing field.
func (v *Validator) Struct(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("Validation failed", nil)
	}

	details := make(map[string]any, len(fieldErrs))
	first := ""
	for _, fe := range fieldErrs {
		msg := fieldMessage(fe)
		details[fieldName(fe)] = msg
		if first == "" {
			first = msg
		}
	}
	return apperrors.NewValidationError(first, details)
}

func fieldName(fe validator.FieldError) string {
	if name := fe.Field(); name != "" {
		return name
	}
	return "body"
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldName(fe))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldName(fe), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fieldName(fe))
	}
}
