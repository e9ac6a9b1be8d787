package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/kbukum/errkit/errors"
)

// Validator collects validation failures for one request context.
// Field names are dotted paths ("address.city", "tags.0").
type Validator struct {
	context  string
	failures []apperrors.RawFailure
}

// New creates a new Validator for context.
func New(context string) *Validator {
	return &Validator{
		context:  context,
		failures: make([]apperrors.RawFailure, 0),
	}
}

// AddFailure adds a failure of keyword at field.
func (v *Validator) AddFailure(field, keyword string, params map[string]any, message string) {
	v.failures = append(v.failures, failureAt(parseField(field), keyword, params, message))
}

// HasErrors returns true if there are validation failures.
func (v *Validator) HasErrors() bool {
	return len(v.failures) > 0
}

// Failures returns all failures in the order they were found.
func (v *Validator) Failures() []apperrors.RawFailure {
	return v.failures
}

// Validate returns a ValidationError carrying every failure, or nil.
func (v *Validator) Validate() error {
	if !v.HasErrors() {
		return nil
	}
	e, err := apperrors.FromValidationFailures(v.failures, v.context)
	if err != nil {
		return err
	}
	return e
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.failures = append(v.failures, requiredAt(parseField(field)))
	}
	return v
}

// RequiredUUID checks if a string is a valid non-nil UUID.
func (v *Validator) RequiredUUID(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.failures = append(v.failures, requiredAt(parseField(field)))
		return v
	}

	parsed, err := uuid.Parse(value)
	if err != nil {
		v.formatFailure(field, "uuid")
		return v
	}

	if parsed == uuid.Nil {
		v.AddFailure(field, "not", map[string]any{}, "must NOT be the nil UUID")
	}

	return v
}

// OptionalUUID checks if a non-empty string is a valid UUID.
func (v *Validator) OptionalUUID(field, value string) *Validator {
	if value == "" {
		return v
	}
	if _, err := uuid.Parse(value); err != nil {
		v.formatFailure(field, "uuid")
	}
	return v
}

func (v *Validator) formatFailure(field, format string) {
	v.AddFailure(field, "format", map[string]any{"format": format},
		fmt.Sprintf("must match format %q", format))
}

// MaxLength checks if a string is within max length.
func (v *Validator) MaxLength(field, value string, maxLen int) *Validator {
	if len(value) > maxLen {
		v.AddFailure(field, "maxLength", map[string]any{"limit": maxLen},
			fmt.Sprintf("must NOT have more than %d characters", maxLen))
	}
	return v
}

// MinLength checks if a string meets minimum length.
func (v *Validator) MinLength(field, value string, minLen int) *Validator {
	if len(value) < minLen {
		v.AddFailure(field, "minLength", map[string]any{"limit": minLen},
			fmt.Sprintf("must NOT have fewer than %d characters", minLen))
	}
	return v
}

// Range checks if a number is within a range.
func (v *Validator) Range(field string, value, minVal, maxVal int) *Validator {
	return v.Min(field, value, minVal).Max(field, value, maxVal)
}

// Min checks if a number meets minimum value.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	if value < minVal {
		v.AddFailure(field, "minimum", map[string]any{"comparison": ">=", "limit": minVal},
			fmt.Sprintf("must be >= %d", minVal))
	}
	return v
}

// Max checks if a number is within max value.
func (v *Validator) Max(field string, value, maxVal int) *Validator {
	if value > maxVal {
		v.AddFailure(field, "maximum", map[string]any{"comparison": "<=", "limit": maxVal},
			fmt.Sprintf("must be <= %d", maxVal))
	}
	return v
}

// Pattern checks if a string matches a regex pattern.
func (v *Validator) Pattern(field, value, pattern string) *Validator {
	if value == "" {
		return v
	}
	matched, err := regexp.MatchString(pattern, value)
	if err != nil || !matched {
		v.AddFailure(field, "pattern", map[string]any{"pattern": pattern},
			fmt.Sprintf("must match pattern %q", pattern))
	}
	return v
}

// OneOf checks if a value is one of the allowed values.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" {
		return v
	}
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	values := make([]any, len(allowed))
	for i, a := range allowed {
		values[i] = a
	}
	v.AddFailure(field, "enum", map[string]any{"allowedValues": values},
		"must be equal to one of the allowed values")
	return v
}

// Custom applies a custom validation condition.
func (v *Validator) Custom(condition bool, field, keyword, message string) *Validator {
	if !condition {
		v.AddFailure(field, keyword, map[string]any{}, message)
	}
	return v
}

// Required validates a single required field and returns an error if empty.
func Required(field, value, context string) error {
	return New(context).Required(field, value).Validate()
}

// ValidateUUID validates and parses a UUID path parameter.
func ValidateUUID(field, value string) (uuid.UUID, error) {
	v := New(ContextParams).RequiredUUID(field, value)
	if err := v.Validate(); err != nil {
		return uuid.Nil, err
	}
	return uuid.MustParse(value), nil
}
