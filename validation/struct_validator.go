package validation

import (
	stderrors "errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/kbukum/errkit/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(tagName)
	})
	return validate
}

// Validate validates a struct using its `validate:"..."` tags and reports
// failures as a ValidationError for context. Passing something that is not a
// struct is a programming error and returns InternalServerError.
func Validate(s any, context string) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return apperrors.InternalServerError.FromCause(err)
	}

	verr, ferr := apperrors.FromValidationFailures(fromFieldErrors(fieldErrs, path{}), context)
	if ferr != nil {
		return apperrors.InternalServerError.FromCause(err)
	}
	return verr
}

// toSnakeCase converts a field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32) // lowercase
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
