package validation

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/kbukum/errkit/errors"
)

// gin's binding validator reports fields by their wire names, so failure
// paths match what the client sent. The name func is registered before any
// request can validate concurrently.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(tagName)
	}
}

// tagName returns the wire name of a field: the first of its json, uri,
// form and header tags, else the snake_case field name.
func tagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "uri", "form", "header"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return "-"
		}
		if name != "" {
			return name
		}
	}
	return toSnakeCase(fld.Name)
}

// BindJSON decodes and validates the request body.
func BindJSON(c *gin.Context, obj any) error {
	return FromBindError(c.ShouldBindJSON(obj), ContextBody)
}

// BindQuery decodes and validates the query string.
func BindQuery(c *gin.Context, obj any) error {
	return FromBindError(c.ShouldBindQuery(obj), ContextQuerystring)
}

// BindURI decodes and validates the path parameters.
func BindURI(c *gin.Context, obj any) error {
	return FromBindError(c.ShouldBindUri(obj), ContextParams)
}

// BindHeader decodes and validates the request headers.
func BindHeader(c *gin.Context, obj any) error {
	return FromBindError(c.ShouldBindHeader(obj), ContextHeaders)
}

// FromBindError classifies a gin binding error. Validation and type
// failures become a ValidationError for context. An oversized body becomes
// PayloadTooLargeError and anything else that prevented decoding becomes
// BadRequestError. A nil error returns nil.
func FromBindError(err error, context string) error {
	if err == nil {
		return nil
	}

	failures := bindFailures(err)
	if len(failures) > 0 {
		verr, ferr := apperrors.FromValidationFailures(failures, context)
		if ferr != nil {
			return apperrors.BadRequestError.FromCause(err)
		}
		return verr.WithCause(err)
	}

	var maxBytes *http.MaxBytesError
	if stderrors.As(err, &maxBytes) {
		return apperrors.PayloadTooLargeError.FromCause(err)
	}
	if appErr, ok := apperrors.AsError(err); ok {
		return appErr
	}
	return apperrors.BadRequestError.FromCause(err)
}

func bindFailures(err error) []apperrors.RawFailure {
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		return fromFieldErrors(fieldErrs, path{})
	}

	var sliceErrs binding.SliceValidationError
	if stderrors.As(err, &sliceErrs) {
		var out []apperrors.RawFailure
		for i, e := range sliceErrs {
			var itemErrs validator.ValidationErrors
			if e == nil || !stderrors.As(e, &itemErrs) {
				continue
			}
			var prefix path
			prefix.push(strconv.Itoa(i), true)
			out = append(out, fromFieldErrors(itemErrs, prefix)...)
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return []apperrors.RawFailure{typeAt(parseField(typeErr.Field), jsonType(typeErr.Type))}
	}

	// Form binding reports conversion failures without the field name.
	var numErr *strconv.NumError
	if stderrors.As(err, &numErr) {
		return []apperrors.RawFailure{typeAt(path{}, numberType(numErr.Func))}
	}
	return nil
}

func numberType(fn string) string {
	switch fn {
	case "ParseBool":
		return "boolean"
	case "ParseFloat":
		return "number"
	default:
		return "integer"
	}
}
