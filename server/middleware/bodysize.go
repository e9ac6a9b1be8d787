package middleware

import (
	"net/http"
)

// BodySizeLimit caps request bodies at maxBytes. Reading past the limit
// fails with *http.MaxBytesError, which request binding reports as
// PayloadTooLargeError. Requests whose declared length already exceeds the
// limit are still routed so the handler decides how to answer.
func BodySizeLimit(maxBytes int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
