package errors

import (
	stderrors "errors"
	"net/http"
)

// Response is the generic error body sent to clients.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// ValidationResponse is the body sent for validation failures. Its status is
// always 400.
type ValidationResponse struct {
	StatusCode        int              `json:"statusCode"`
	Code              string           `json:"code"`
	Message           string           `json:"message"`
	Validation        []ValidationItem `json:"validation"`
	ValidationContext string           `json:"validationContext,omitempty"`
}

// ErrorCode returns the application code, so decoded bodies can be matched
// against kinds.
func (r Response) ErrorCode() string { return r.Code }

// ErrorCode returns the application code.
func (r ValidationResponse) ErrorCode() string { return r.Code }

type statusCarrier interface {
	HTTPStatus() int
}

// ToResponse translates any raised value into an HTTP status and one of the
// two wire shapes. Values carrying validation detail always produce 400.
// Unclassified errors become a 500 with the catalog's generic message, so no
// internal detail reaches the body.
func ToResponse(err error, catalog *Catalog) (int, any) {
	if e, ok := AsError(err); ok {
		if e.HasValidation() {
			return http.StatusBadRequest, ValidationResponse{
				StatusCode:        http.StatusBadRequest,
				Code:              e.Code,
				Message:           e.Message,
				Validation:        e.Validation,
				ValidationContext: e.ValidationContext,
			}
		}
		status := validStatus(e.StatusCode)
		return status, Response{
			StatusCode: status,
			Code:       codeOrFallback(e.Code, status, catalog),
			Message:    e.Message,
		}
	}

	status := http.StatusInternalServerError
	var sc statusCarrier
	hasStatus := stderrors.As(err, &sc)
	if hasStatus {
		status = validStatus(sc.HTTPStatus())
	}
	code, hasCode := CodeOf(err)
	if !hasStatus && !hasCode {
		return status, Response{
			StatusCode: status,
			Code:       codeOrFallback("", status, catalog),
			Message:    InternalServerError.message,
		}
	}
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return status, Response{
		StatusCode: status,
		Code:       codeOrFallback(code, status, catalog),
		Message:    msg,
	}
}

func validStatus(status int) int {
	if status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

func codeOrFallback(code string, status int, catalog *Catalog) string {
	if code != "" {
		return code
	}
	if catalog != nil {
		if k, ok := catalog.ByStatus(status); ok {
			return k.code
		}
	}
	return CodeInternalServerError
}
