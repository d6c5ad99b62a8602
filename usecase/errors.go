package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps an input field name to the reasons it was
// rejected. It is surfaced to the caller as-is and never logged as a
// server fault.
type ValidationErrors map[string][]string

func (ve ValidationErrors) Error() string {
	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(ve[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (ve ValidationErrors) Add(field, message string) {
	ve[field] = append(ve[field], message)
}

// AsValidationErrors unwraps err into a ValidationErrors mapping, if
// it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// fieldErrors translates validator tag failures into the field to
// messages mapping handlers return to clients.
func fieldErrors(err error) ValidationErrors {
	out := ValidationErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add("request", "invalid request")
		return out
	}

	for _, fe := range verrs {
		out.Add(fe.Field(), tagMessage(fe))
	}
	return out
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "alphanum":
		return "must contain only letters and numbers"
	default:
		return "is invalid"
	}
}
