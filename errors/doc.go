// Package errors provides the HTTP error taxonomy for gin services.
//
// A Kind is an immutable error declaration (status code, stable code, message
// template). An *Error is one raised occurrence of a kind and is what handlers
// return. Kinds are compared by code, never by identity, so errors that crossed
// a serialization boundary still classify correctly.
//
//	var ErrUserNotFound = errors.Declare(404, "ERR_USER_NOT_FOUND", "user %s not found")
//
//	func (h *Handler) Get(c *gin.Context) error {
//	    return ErrUserNotFound.New(c.Param("id"))
//	}
//
// The standard catalog declares one kind per HTTP 4xx/5xx status plus
// ValidationError, which carries per-field validation detail.
package errors
