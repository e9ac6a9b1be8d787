package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

var (
	// ErrInvalidStatus is returned when a kind is declared with a status outside 100-599.
	ErrInvalidStatus = stderrors.New("status code must be between 100 and 599")
	// ErrEmptyCode is returned when a kind is declared without a code.
	ErrEmptyCode = stderrors.New("code must not be empty")
	// ErrEmptyMessage is returned when a kind has no message and its status
	// has no standard text to fall back to.
	ErrEmptyMessage = stderrors.New("message must not be empty")
)

// Kind is an immutable error declaration. Create kinds with Declare at
// package initialization and raise them with New, FromCause or Wrap.
type Kind struct {
	statusCode  int
	code        string
	message     string
	description string
	example     *Example
}

// Example documents a kind in API docs. Set fields override the defaults
// derived from the kind.
type Example struct {
	Message           string           `json:"message,omitempty"`
	Validation        []ValidationItem `json:"validation,omitempty"`
	ValidationContext string           `json:"validationContext,omitempty"`
}

// KindOption configures optional fields of a Kind.
type KindOption func(*Kind)

// WithDescription sets the documentation description of the kind.
func WithDescription(description string) KindOption {
	return func(k *Kind) { k.description = description }
}

// WithExample sets the documentation example of the kind.
func WithExample(example Example) KindOption {
	return func(k *Kind) {
		ex := example
		ex.Validation = cloneItems(example.Validation)
		k.example = &ex
	}
}

// TryDeclare declares a new error kind, returning an error for an invalid
// status code or an empty code. An empty message falls back to the standard
// HTTP status text; statuses without one need an explicit message.
func TryDeclare(statusCode int, code, message string, opts ...KindOption) (*Kind, error) {
	if statusCode < 100 || statusCode > 599 {
		return nil, fmt.Errorf("declare %q: %w (got: %d)", code, ErrInvalidStatus, statusCode)
	}
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("declare kind with status %d: %w", statusCode, ErrEmptyCode)
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if message == "" {
		return nil, fmt.Errorf("declare %q: %w (status %d has no standard text)", code, ErrEmptyMessage, statusCode)
	}
	k := &Kind{statusCode: statusCode, code: code, message: message}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// Declare declares a new error kind and panics on an invalid declaration.
// Declarations are programmer errors, so they fail at startup rather than
// when the kind is first raised.
func Declare(statusCode int, code, message string, opts ...KindOption) *Kind {
	k, err := TryDeclare(statusCode, code, message, opts...)
	if err != nil {
		panic("errors: " + err.Error())
	}
	return k
}

// StatusCode returns the declared HTTP status.
func (k *Kind) StatusCode() int { return k.statusCode }

// Code returns the stable application code.
func (k *Kind) Code() string { return k.code }

// Message returns the literal message template.
func (k *Kind) Message() string { return k.message }

// Description returns the documentation description, if any.
func (k *Kind) Description() string { return k.description }

// Example returns a copy of the documentation example, or nil.
func (k *Kind) Example() *Example {
	if k.example == nil {
		return nil
	}
	ex := *k.example
	ex.Validation = cloneItems(k.example.Validation)
	return &ex
}

// Error lets a bare kind be returned as an error; the handler treats it as
// an instance with the default message.
func (k *Kind) Error() string { return k.code + ": " + k.message }

// ErrorCode returns the application code.
func (k *Kind) ErrorCode() string { return k.code }

// New creates an instance, rendering the message template with args.
func (k *Kind) New(args ...any) *Error {
	msg := k.message
	if len(args) > 0 {
		msg = Render(k.message, args...)
	}
	if msg == "" {
		msg = k.fallbackMessage()
	}
	return &Error{
		StatusCode: k.statusCode,
		Code:       k.code,
		Message:    msg,
	}
}

// FromCause creates an instance from an underlying failure. The cause's
// message is passed to the template as its first argument, so literal
// templates keep their own message, and cause stays in the chain for
// diagnostics.
func (k *Kind) FromCause(cause error) *Error {
	if cause == nil {
		return k.New()
	}
	return k.New(cause.Error()).WithCause(cause)
}

// Wrap is FromCause with the cause's message enclosed in brackets.
func (k *Kind) Wrap(cause error) *Error {
	if cause == nil {
		return k.New()
	}
	return k.New("[" + cause.Error() + "]").WithCause(cause)
}

// fallbackMessage replaces a message that rendered empty.
func (k *Kind) fallbackMessage() string {
	if text := http.StatusText(k.statusCode); text != "" {
		return text
	}
	return k.code
}

type codeCarrier interface {
	ErrorCode() string
}

// Matches reports whether candidate carries this kind's code. Candidates are
// values with an ErrorCode method, maps with a string "code" entry, structs
// (or pointers to them) with an exported string Code field, or errors
// wrapping a code carrier. Identity is never compared.
func (k *Kind) Matches(candidate any) bool {
	code, ok := CodeOf(candidate)
	return ok && code == k.code
}

// CodeOf extracts the application code exposed by v, if any.
func CodeOf(v any) (string, bool) {
	switch c := v.(type) {
	case nil:
		return "", false
	case codeCarrier:
		if rv := reflect.ValueOf(c); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		code := c.ErrorCode()
		return code, code != ""
	case map[string]any:
		code, ok := c["code"].(string)
		return code, ok && code != ""
	case map[string]string:
		code, ok := c["code"]
		return code, ok && code != ""
	case error:
		var cc codeCarrier
		if stderrors.As(c, &cc) {
			code := cc.ErrorCode()
			return code, code != ""
		}
		return "", false
	}
	return codeField(v)
}

// codeField reads an exported string Code field from a struct or a non-nil
// pointer to one.
func codeField(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}
	f := rv.FieldByName("Code")
	if !f.IsValid() || f.Kind() != reflect.String {
		return "", false
	}
	if sf, _ := rv.Type().FieldByName("Code"); !sf.IsExported() {
		return "", false
	}
	code := f.String()
	return code, code != ""
}

func cloneItems(items []ValidationItem) []ValidationItem {
	if items == nil {
		return nil
	}
	out := make([]ValidationItem, len(items))
	for i, it := range items {
		out[i] = it
		out[i].Params = cloneParams(it.Params)
	}
	return out
}
