package errors

import (
	stderrors "errors"
)

// ErrNoFailures is returned when a validation error is requested without
// any failure to report.
var ErrNoFailures = stderrors.New("errors: at least one validation failure is required")

// ValidationItem describes one field that failed validation.
type ValidationItem struct {
	// InstancePath is a JSON pointer into the rejected payload, e.g. "/id".
	InstancePath string `json:"instancePath"`
	// SchemaPath points at the rule that rejected it, e.g. "#/properties/id/format".
	SchemaPath string `json:"schemaPath"`
	// Keyword is the violated rule, e.g. "type" or "format".
	Keyword string `json:"keyword"`
	// Params carries rule-specific detail, e.g. {"format": "uuid"}.
	Params map[string]any `json:"params"`
	// Message is the human-readable failure, empty if the validator gave none.
	Message string `json:"message"`
}

// RawFailure is a field failure as reported by the request validator.
type RawFailure struct {
	InstancePath string
	SchemaPath   string
	Keyword      string
	Params       map[string]any
	Message      string
}

// FromValidationFailures normalizes validator failures into a ValidationError.
// See Kind.FromValidationFailures.
func FromValidationFailures(failures []RawFailure, context string) (*Error, error) {
	return ValidationError.FromValidationFailures(failures, context)
}

// FromValidationFailure is FromValidationFailures for a single failure.
func FromValidationFailure(failure RawFailure, context string) *Error {
	e, _ := ValidationError.FromValidationFailures([]RawFailure{failure}, context)
	return e
}

// FromValidationFailures creates an instance of k carrying every failure in
// order. The headline message is built from the first failure only:
// context + instancePath + " " + message. An empty failure list is a contract
// violation and returns ErrNoFailures.
func (k *Kind) FromValidationFailures(failures []RawFailure, context string) (*Error, error) {
	if len(failures) == 0 {
		return nil, ErrNoFailures
	}

	first := failures[0]
	e := k.New(context + first.InstancePath + " " + first.Message)

	e.Validation = make([]ValidationItem, len(failures))
	for i, f := range failures {
		e.Validation[i] = ValidationItem{
			InstancePath: f.InstancePath,
			SchemaPath:   f.SchemaPath,
			Keyword:      f.Keyword,
			Params:       cloneParams(f.Params),
			Message:      f.Message,
		}
	}
	e.ValidationContext = context
	return e, nil
}

// cloneParams copies params so items never share maps with the validator.
// A nil map becomes empty so params always serializes as an object.
func cloneParams(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
