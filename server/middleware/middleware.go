package middleware

import (
	"net/http"
)

// Middleware wraps an http.Handler. Transport concerns that must run before
// the router (CORS preflight, body limits) use this form and wrap the whole
// server handler. Everything that raises errkit errors is a gin.HandlerFunc,
// so failures reach the error handler.
type Middleware func(http.Handler) http.Handler

// Chain composes multiple middleware. The first in the list is the outermost
// (runs first on a request, last on a response).
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
